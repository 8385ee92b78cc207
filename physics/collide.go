// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "cogentcore.org/core/math32"

// Contact is one overlapping body pair found by the narrow phase.
type Contact struct {

	// A and B are the bodies in contact.
	A, B *Body

	// Normal is the unit vector from A's position toward B's.
	Normal math32.Vector3

	// Depth is the penetration depth along the normal.
	Depth float32

	// Point is the contact midpoint between the two surfaces.
	Point math32.Vector3
}

// Impact returns the magnitude of the relative velocity of the two
// bodies projected on the contact normal.
func (ct *Contact) Impact() float32 {
	rel := ct.B.LinVel.Sub(ct.A.LinVel)
	return math32.Abs(rel.Dot(ct.Normal))
}

// CollisionEvent describes a contact that began this step. It is
// delivered once per new body pair to every registered observer,
// before the default collision response runs, so observers may
// apply their own impulses first.
type CollisionEvent struct {

	// A and B are the bodies that came into contact.
	A, B *Body

	// Normal is the unit vector from A's position toward B's.
	Normal math32.Vector3

	// RelVel is the relative velocity of B with respect to A at the
	// time the contact began.
	RelVel math32.Vector3

	// Impact is the magnitude of the relative velocity projected on
	// the normal at the time the contact began.
	Impact float32

	// Point is the contact midpoint.
	Point math32.Vector3
}

// centerNormal returns the unit vector from a toward b, defaulting
// to +X for coincident positions.
func centerNormal(a, b *Body) math32.Vector3 {
	d := b.Pos.Sub(a.Pos)
	if d.LengthSquared() < 1.0e-12 {
		return math32.Vec3(1, 0, 0)
	}
	return d.Normal()
}

// collideRadius returns the narrow phase sphere radius for
// sphere-like shapes. Capsules collide through their bounding
// sphere.
func collideRadius(sh Shape) float32 {
	if sh.Kind == ShapeCapsule {
		return sh.BoundingRadius()
	}
	return sh.Radius
}

// bodyContact runs the narrow phase on one candidate pair,
// returning the contact if the bodies overlap. Boxes collide as
// their world axis-aligned bounds.
func bodyContact(a, b *Body) (Contact, bool) {
	ct := Contact{A: a, B: b, Normal: centerNormal(a, b)}
	aBox := a.Shape.Kind == ShapeBox
	bBox := b.Shape.Kind == ShapeBox
	switch {
	case !aBox && !bBox:
		ra, rb := collideRadius(a.Shape), collideRadius(b.Shape)
		dist := a.Pos.DistanceTo(b.Pos)
		ct.Depth = ra + rb - dist
		if ct.Depth <= 0 {
			return ct, false
		}
		sa := a.Pos.Add(ct.Normal.MulScalar(ra))
		sb := b.Pos.Sub(ct.Normal.MulScalar(rb))
		ct.Point = sa.Add(sb).MulScalar(0.5)
	case aBox && bBox:
		if !a.bbox.IntersectsBox(b.bbox) {
			return ct, false
		}
		ov := a.bbox.Intersect(b.bbox)
		sz := ov.Size()
		ct.Depth = math32.Min(sz.X, math32.Min(sz.Y, sz.Z))
		ct.Point = ov.Center()
	default:
		sb, bb := a, b
		if aBox { // normalize to sphere versus box
			sb, bb = b, a
		}
		r := collideRadius(sb.Shape)
		closest := bb.bbox.ClampPoint(sb.Pos)
		dist := closest.DistanceTo(sb.Pos)
		ct.Depth = r - dist
		if ct.Depth <= 0 {
			return ct, false
		}
		ct.Point = closest
	}
	return ct, true
}

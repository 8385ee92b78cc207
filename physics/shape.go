// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "cogentcore.org/core/math32"

// Shapes are the collision geometry kinds a body can have.
type Shapes int32 //enums:enum -trim-prefix Shape -transform kebab

const (
	// ShapeSphere is a sphere with a radius.
	ShapeSphere Shapes = iota

	// ShapeBox is an axis-aligned box with full extents per axis.
	ShapeBox

	// ShapeCapsule is a vertical cylinder with hemisphere end caps.
	// It collides through its bounding sphere.
	ShapeCapsule
)

// Shape describes a body's collision geometry, centered on the
// body's position.
type Shape struct {

	// Kind selects the geometry.
	Kind Shapes

	// Radius is the sphere or capsule radius.
	Radius float32

	// Size is the box's full extents along each axis.
	Size math32.Vector3

	// Height is the capsule's total height including both end caps.
	Height float32
}

// Sphere returns a sphere shape with the given radius.
func Sphere(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Box returns a box shape with the given full extents.
func Box(size math32.Vector3) Shape {
	return Shape{Kind: ShapeBox, Size: size}
}

// Capsule returns a capsule shape with the given radius and total
// height. Heights below a full sphere are raised to one.
func Capsule(radius, height float32) Shape {
	if height < 2*radius {
		height = 2 * radius
	}
	return Shape{Kind: ShapeCapsule, Radius: radius, Height: height}
}

// Bounds returns the shape's local axis-aligned bounds around the
// body center.
func (sh Shape) Bounds() math32.Box3 {
	switch sh.Kind {
	case ShapeBox:
		half := sh.Size.MulScalar(0.5)
		return math32.Box3{Min: half.Negate(), Max: half}
	case ShapeCapsule:
		h2 := sh.Height / 2
		return math32.Box3{
			Min: math32.Vec3(-sh.Radius, -h2, -sh.Radius),
			Max: math32.Vec3(sh.Radius, h2, sh.Radius),
		}
	default:
		r := math32.Vec3(sh.Radius, sh.Radius, sh.Radius)
		return math32.Box3{Min: r.Negate(), Max: r}
	}
}

// BoundingRadius returns the radius of the smallest sphere that
// contains the shape.
func (sh Shape) BoundingRadius() float32 {
	switch sh.Kind {
	case ShapeBox:
		return sh.Size.MulScalar(0.5).Length()
	case ShapeCapsule:
		return sh.Height / 2
	default:
		return sh.Radius
	}
}

// WorldBBox returns the axis-aligned bounds of the shape rotated by
// quat and translated to pos, wrapping the rotated local corner
// points.
func (sh Shape) WorldBBox(pos math32.Vector3, quat math32.Quat) math32.Box3 {
	lb := sh.Bounds()
	if sh.Kind == ShapeSphere {
		return lb.Translate(pos)
	}
	return lb.MulQuat(quat).Translate(pos)
}

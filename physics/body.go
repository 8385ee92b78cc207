// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "cogentcore.org/core/math32"

// Rigid is the mass and material of a body.
type Rigid struct {

	// Mass in kg. A zero mass makes the body static: it never
	// moves, but dynamic bodies collide with it.
	Mass float32 `default:"1"`

	// Friction slows tangential motion during contact.
	Friction float32 `default:"0.5"`

	// Bounce is the restitution: the fraction of approach speed
	// retained by the default collision response.
	Bounce float32 `default:"0.4"`

	// LinDamp is the linear velocity damping applied per second.
	LinDamp float32 `default:"0.1"`

	// AngDamp is the angular velocity damping applied per second.
	AngDamp float32 `default:"0.1"`
}

// Defaults sets standard material values for a unit mass body.
func (rg *Rigid) Defaults() {
	rg.Mass = 1
	rg.Friction = 0.5
	rg.Bounce = 0.4
	rg.LinDamp = 0.1
	rg.AngDamp = 0.1
}

// Body is one rigid body in a [World]. Bodies are created by
// [World.AddBody] and owned by the world until removed: velocity
// and force mutation goes through the World methods, while material
// fields may be set directly between steps.
type Body struct {

	// State is the kinematic state.
	State

	// Rigid is the mass and material.
	Rigid Rigid

	// Shape is the collision geometry.
	Shape Shape

	// Tag is caller metadata carried into collision and sound
	// events, typically the piece type name.
	Tag string

	id    int64
	vis   string
	world *World

	force  math32.Vector3
	torque math32.Vector3

	bbox    math32.Box3
	velBBox math32.Box3
}

// ID returns the body's unique id within its world.
func (bd *Body) ID() int64 { return bd.id }

// Vis returns the id of the visual handle backing this body, or an
// empty string if the body is not bound to a visual. Use
// [Body.SetVis] to bind one.
func (bd *Body) Vis() string { return bd.vis }

// SetVis binds the body to the given visual handle id. At most one
// live body may back a given visual id: binding an id held by
// another body fails. An empty id unbinds the body.
func (bd *Body) SetVis(vis string) error {
	if bd.world == nil {
		return nil
	}
	return bd.world.setVis(bd, vis)
}

// Dynamic reports whether the body moves: it has positive mass.
func (bd *Body) Dynamic() bool { return bd.Rigid.Mass > 0 }

// InvMass returns the inverse mass, which is zero for static
// bodies.
func (bd *Body) InvMass() float32 {
	if bd.Rigid.Mass <= 0 {
		return 0
	}
	return 1 / bd.Rigid.Mass
}

// invInertia returns the inverse of the scalar rotational inertia,
// approximating every shape as a solid sphere of its bounding
// radius.
func (bd *Body) invInertia() float32 {
	if bd.Rigid.Mass <= 0 {
		return 0
	}
	r := bd.Shape.BoundingRadius()
	in := 0.4 * bd.Rigid.Mass * r * r
	if in <= 0 {
		return 1 / bd.Rigid.Mass
	}
	return 1 / in
}

// BBox returns the body's current world bounding box.
func (bd *Body) BBox() math32.Box3 { return bd.bbox }

// updateBBox recomputes the world bounding box and the velocity
// expanded box used by the broad phase, projecting motion over the
// given step.
func (bd *Body) updateBBox(step float32) {
	bd.bbox = bd.Shape.WorldBBox(bd.Pos, bd.Quat)
	bd.velBBox = bd.bbox
	vp := bd.LinVel.MulScalar(step)
	bd.velBBox.Min = bd.velBBox.Min.Add(vp.Min(math32.Vector3{}))
	bd.velBBox.Max = bd.velBBox.Max.Add(vp.Max(math32.Vector3{}))
}

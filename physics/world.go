// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics simulates the rigid bodies backing board game
// visuals: fixed timestep integration with bounded substeps,
// contact detection with begin-contact observer callbacks, a
// restitution and friction response, and segment raycasts.
package physics

//go:generate core generate

import (
	"fmt"
	"slices"
	"sort"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
)

// collisionObserver is one registered collision callback.
type collisionObserver struct {
	id int64
	fn func(ev *CollisionEvent)
}

// World owns and simulates rigid bodies. It advances on fixed
// substeps driven by [World.Step], detects contacts, notifies
// collision observers once per new contact, and applies a
// restitution and friction response. A World is not safe for
// concurrent use: drive it from the frame loop.
type World struct {

	// Gravity is the acceleration applied to every dynamic body.
	Gravity math32.Vector3

	// Quality is the simulation quality tier, driving the fixed
	// timestep, solver iterations, and broad phase. Change it only
	// between Step calls.
	Quality Quality

	// MaxSubSteps bounds the fixed substeps run by one Step call.
	MaxSubSteps int `default:"3"`

	// GridCellSize is the cell size of the broad phase hash grid.
	GridCellSize float32 `default:"2"`

	bodies   ordmap.Map[int64, *Body]
	byVis    map[string]*Body
	obs      []collisionObserver
	touching map[[2]int64]struct{}
	nextID   int64
	nextObs  int64
	rem      float32
}

// DefaultGravity is the standard earth gravity vector.
func DefaultGravity() math32.Vector3 {
	return math32.Vec3(0, -9.81, 0)
}

// NewWorld returns a world with the given gravity and quality tier.
func NewWorld(gravity math32.Vector3, quality Quality) *World {
	wd := &World{Gravity: gravity, Quality: quality}
	wd.MaxSubSteps = 3
	wd.GridCellSize = 2
	wd.byVis = make(map[string]*Body)
	wd.touching = make(map[[2]int64]struct{})
	return wd
}

// SetQuality retiers the fixed timestep, solver iterations, and
// broad phase on the fly. Bodies are untouched.
func (wd *World) SetQuality(q Quality) {
	wd.Quality = q
	wd.rem = 0
}

//////// 	Bodies

// AddBody creates a body with the given shape, mass, and initial
// pose, adds it to the world, and returns it. A zero or negative
// mass makes the body static. Material values start at their
// defaults and may be adjusted on the returned body.
func (wd *World) AddBody(shape Shape, mass float32, pose State) *Body {
	pose.Defaults()
	bd := &Body{State: pose, Shape: shape, world: wd}
	bd.Rigid.Defaults()
	if mass < 0 {
		mass = 0
	}
	bd.Rigid.Mass = mass
	wd.nextID++
	bd.id = wd.nextID
	bd.updateBBox(wd.Quality.Timestep())
	wd.bodies.Add(bd.id, bd)
	return bd
}

// RemoveBody removes the body from the world, releasing its visual
// binding. Removing a body twice, or a nil body, is a no-op.
func (wd *World) RemoveBody(bd *Body) {
	if !wd.owns(bd) {
		return
	}
	if bd.vis != "" {
		delete(wd.byVis, bd.vis)
	}
	wd.bodies.DeleteKey(bd.id)
	bd.world = nil
	for pk := range wd.touching {
		if pk[0] == bd.id || pk[1] == bd.id {
			delete(wd.touching, pk)
		}
	}
}

// NumBodies returns the number of bodies in the world.
func (wd *World) NumBodies() int { return wd.bodies.Len() }

// EachBody calls fn for every body, in insertion order.
func (wd *World) EachBody(fn func(bd *Body)) {
	for _, kv := range wd.bodies.Order {
		fn(kv.Value)
	}
}

// BodyByVis returns the body backing the given visual id, or nil.
func (wd *World) BodyByVis(vis string) *Body { return wd.byVis[vis] }

// BodiesInRadius appends to out every body whose position lies
// within radius of center, in insertion order, and returns it.
func (wd *World) BodiesInRadius(center math32.Vector3, radius float32, out []*Body) []*Body {
	r2 := radius * radius
	for _, kv := range wd.bodies.Order {
		bd := kv.Value
		if bd.Pos.Sub(center).LengthSquared() <= r2 {
			out = append(out, bd)
		}
	}
	return out
}

// setVis updates the visual binding index for [Body.SetVis].
func (wd *World) setVis(bd *Body, vis string) error {
	if vis == bd.vis {
		return nil
	}
	if vis != "" {
		if other, ok := wd.byVis[vis]; ok && other != bd {
			return errors.Log(fmt.Errorf("physics: visual %q is already backed by body %d", vis, other.id))
		}
	}
	if bd.vis != "" {
		delete(wd.byVis, bd.vis)
	}
	bd.vis = vis
	if vis != "" {
		wd.byVis[vis] = bd
	}
	return nil
}

// owns reports whether the body is live in this world. Stale or
// foreign handles make the mutating methods no-ops.
func (wd *World) owns(bd *Body) bool { return bd != nil && bd.world == wd }

//////// 	Forces and velocities

// ApplyForce adds a force through the center of mass, integrated by
// every substep of the next Step call and cleared afterward.
func (wd *World) ApplyForce(bd *Body, force math32.Vector3) {
	if !wd.owns(bd) || !bd.Dynamic() {
		return
	}
	bd.force.SetAdd(force)
}

// ApplyForceAt adds a force acting at a world point, producing
// torque about the center of mass.
func (wd *World) ApplyForceAt(bd *Body, force, point math32.Vector3) {
	if !wd.owns(bd) || !bd.Dynamic() {
		return
	}
	bd.force.SetAdd(force)
	bd.torque.SetAdd(point.Sub(bd.Pos).Cross(force))
}

// ApplyImpulse immediately changes the linear velocity by
// impulse / mass.
func (wd *World) ApplyImpulse(bd *Body, impulse math32.Vector3) {
	if !wd.owns(bd) || !bd.Dynamic() {
		return
	}
	bd.LinVel.SetAdd(impulse.MulScalar(bd.InvMass()))
}

// ApplyImpulseAt applies an impulse at a world point, immediately
// changing both linear and angular velocity.
func (wd *World) ApplyImpulseAt(bd *Body, impulse, point math32.Vector3) {
	if !wd.owns(bd) || !bd.Dynamic() {
		return
	}
	bd.LinVel.SetAdd(impulse.MulScalar(bd.InvMass()))
	bd.AngVel.SetAdd(point.Sub(bd.Pos).Cross(impulse).MulScalar(bd.invInertia()))
}

// SetVelocity sets the linear velocity directly.
func (wd *World) SetVelocity(bd *Body, vel math32.Vector3) {
	if !wd.owns(bd) || !bd.Dynamic() {
		return
	}
	bd.LinVel = vel
}

// SetAngularVelocity sets the angular velocity directly.
func (wd *World) SetAngularVelocity(bd *Body, vel math32.Vector3) {
	if !wd.owns(bd) || !bd.Dynamic() {
		return
	}
	bd.AngVel = vel
}

//////// 	Observers

// OnCollisionBegin registers an observer called once per body pair
// whose contact begins during a Step, in registration order, before
// the default collision response runs. It returns the id to pass to
// Off.
func (wd *World) OnCollisionBegin(fn func(ev *CollisionEvent)) int64 {
	wd.nextObs++
	wd.obs = append(wd.obs, collisionObserver{id: wd.nextObs, fn: fn})
	return wd.nextObs
}

// Off unregisters the collision observer with the given id.
// Unknown ids are ignored.
func (wd *World) Off(id int64) {
	for i, ob := range wd.obs {
		if ob.id == id {
			wd.obs = slices.Delete(wd.obs, i, i+1)
			return
		}
	}
}

//////// 	Stepping

// Step advances the simulation by dt seconds of wall time, running
// whole fixed substeps of [Quality.Timestep]. At most MaxSubSteps
// substeps run per call: time beyond that bound is dropped rather
// than accumulated, trading determinism for a bounded worst case
// cost. Sub-timestep remainders carry over to the next call. A
// non-positive dt is a no-op.
func (wd *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	ts := wd.Quality.Timestep()
	maxSub := wd.MaxSubSteps
	if maxSub <= 0 {
		maxSub = 1
	}
	wd.rem += dt
	n := int(wd.rem / ts)
	if n > maxSub {
		n = maxSub
		wd.rem = 0
	} else {
		wd.rem -= float32(n) * ts
	}
	for i := 0; i < n; i++ {
		wd.substep(ts)
	}
	if n > 0 {
		wd.clearForces()
	}
}

// substep integrates one fixed timestep and resolves contacts.
func (wd *World) substep(ts float32) {
	for _, kv := range wd.bodies.Order {
		bd := kv.Value
		if bd.Dynamic() {
			acc := wd.Gravity.Add(bd.force.MulScalar(bd.InvMass()))
			bd.LinVel.SetAdd(acc.MulScalar(ts))
			bd.AngVel.SetAdd(bd.torque.MulScalar(bd.invInertia() * ts))
			bd.LinVel.SetMulScalar(damp(bd.Rigid.LinDamp, ts))
			bd.AngVel.SetMulScalar(damp(bd.Rigid.AngDamp, ts))
			bd.StepByLinVel(ts)
			if bd.AngVel.LengthSquared() > 0 {
				bd.StepByAngVel(ts)
			}
		}
		bd.updateBBox(ts)
	}
	cts := wd.collectContacts()
	wd.fireNewContacts(cts)
	wd.resolve(cts)
}

// damp returns the velocity retention factor for damping d over dt.
func damp(d, dt float32) float32 {
	f := 1 - d*dt
	if f < 0 {
		return 0
	}
	return f
}

// clearForces zeroes the per-Step force and torque accumulators.
func (wd *World) clearForces() {
	for _, kv := range wd.bodies.Order {
		kv.Value.force.SetZero()
		kv.Value.torque.SetZero()
	}
}

// collectContacts runs the broad and narrow phases, returning the
// current contacts in canonical body id order.
func (wd *World) collectContacts() []Contact {
	var cand [][2]*Body
	if wd.Quality.GridBroad() {
		bg := newBroadGrid(wd.GridCellSize)
		for _, kv := range wd.bodies.Order {
			bg.add(kv.Value)
		}
		cand = bg.pairs(cand)
	} else {
		n := wd.bodies.Len()
		for i := 0; i < n; i++ {
			a := wd.bodies.ValueByIndex(i)
			for j := i + 1; j < n; j++ {
				b := wd.bodies.ValueByIndex(j)
				if !a.Dynamic() && !b.Dynamic() {
					continue
				}
				cand = append(cand, [2]*Body{a, b})
			}
		}
	}
	sort.Slice(cand, func(i, j int) bool {
		ki := pairKey(cand[i][0].id, cand[i][1].id)
		kj := pairKey(cand[j][0].id, cand[j][1].id)
		if ki[0] != kj[0] {
			return ki[0] < kj[0]
		}
		return ki[1] < kj[1]
	})
	var cts []Contact
	for _, pr := range cand {
		a, b := pr[0], pr[1]
		if a.id > b.id {
			a, b = b, a
		}
		if !a.velBBox.IntersectsBox(b.velBBox) {
			continue
		}
		if ct, ok := bodyContact(a, b); ok {
			cts = append(cts, ct)
		}
	}
	return cts
}

// fireNewContacts delivers a CollisionEvent for every contact pair
// that was not touching on the previous substep, then records the
// currently touching set.
func (wd *World) fireNewContacts(cts []Contact) {
	now := make(map[[2]int64]struct{}, len(cts))
	for i := range cts {
		ct := &cts[i]
		pk := pairKey(ct.A.id, ct.B.id)
		now[pk] = struct{}{}
		if _, ok := wd.touching[pk]; ok {
			continue
		}
		ev := &CollisionEvent{A: ct.A, B: ct.B, Normal: ct.Normal, RelVel: ct.B.LinVel.Sub(ct.A.LinVel), Impact: ct.Impact(), Point: ct.Point}
		for _, ob := range wd.obs {
			ob.fn(ev)
		}
	}
	wd.touching = now
}

// resolve runs the velocity solver for the quality tier's iteration
// count and then separates overlapping bodies.
func (wd *World) resolve(cts []Contact) {
	iters := wd.Quality.Iterations()
	for i := 0; i < iters; i++ {
		for ci := range cts {
			solveVelocity(&cts[ci])
		}
	}
	for ci := range cts {
		correctPositions(&cts[ci])
	}
}

// solveVelocity applies a restitution impulse along the contact
// normal if the bodies are still approaching, plus Coulomb friction
// on the tangential velocity.
func solveVelocity(ct *Contact) {
	a, b := ct.A, ct.B
	invSum := a.InvMass() + b.InvMass()
	if invSum == 0 {
		return
	}
	rel := b.LinVel.Sub(a.LinVel)
	vn := rel.Dot(ct.Normal)
	if vn >= 0 { // separating
		return
	}
	bounce := 0.5 * (a.Rigid.Bounce + b.Rigid.Bounce)
	jn := -(1 + bounce) * vn / invSum
	imp := ct.Normal.MulScalar(jn)
	a.LinVel.SetSub(imp.MulScalar(a.InvMass()))
	b.LinVel.SetAdd(imp.MulScalar(b.InvMass()))

	rel = b.LinVel.Sub(a.LinVel)
	tan := rel.Sub(ct.Normal.MulScalar(rel.Dot(ct.Normal)))
	tl := tan.Length()
	if tl < 1.0e-6 {
		return
	}
	fric := 0.5 * (a.Rigid.Friction + b.Rigid.Friction)
	jt := math32.Min(fric*jn, tl/invSum)
	ft := tan.DivScalar(tl).MulScalar(jt)
	a.LinVel.SetAdd(ft.MulScalar(a.InvMass()))
	b.LinVel.SetSub(ft.MulScalar(b.InvMass()))
}

// correctPositions pushes overlapping bodies apart along the
// contact normal, split by inverse mass share, leaving a small slop
// so resting contacts stay stable.
func correctPositions(ct *Contact) {
	const (
		slop    = 0.005
		percent = 0.8
	)
	a, b := ct.A, ct.B
	invSum := a.InvMass() + b.InvMass()
	if invSum == 0 {
		return
	}
	pen := ct.Depth - slop
	if pen <= 0 {
		return
	}
	corr := ct.Normal.MulScalar(percent * pen / invSum)
	a.Pos.SetSub(corr.MulScalar(a.InvMass()))
	b.Pos.SetAdd(corr.MulScalar(b.InvMass()))
}

//////// 	Raycasting

// RaycastHit is one raycast result.
type RaycastHit struct {

	// Body is the body that was hit.
	Body *Body

	// Point is the world position of the hit.
	Point math32.Vector3

	// Dist is the distance from the segment start to the hit.
	Dist float32
}

// Raycast casts a segment from from to to and returns the nearest
// hit. Spheres and capsules are tested against their bounding
// sphere, boxes against their world bounds. An empty world or a
// degenerate segment returns no hit.
func (wd *World) Raycast(from, to math32.Vector3) (RaycastHit, bool) {
	var hit RaycastHit
	seg := to.Sub(from)
	maxDist := seg.Length()
	if maxDist == 0 {
		return hit, false
	}
	ray := math32.Ray{Origin: from, Dir: seg.DivScalar(maxDist)}
	found := false
	for _, kv := range wd.bodies.Order {
		bd := kv.Value
		var pt math32.Vector3
		var ok bool
		if bd.Shape.Kind == ShapeBox {
			pt, ok = ray.IntersectBox(bd.bbox)
		} else {
			pt, ok = raySphere(ray, bd.Pos, collideRadius(bd.Shape))
		}
		if !ok {
			continue
		}
		d := pt.DistanceTo(from)
		if d > maxDist {
			continue
		}
		if !found || d < hit.Dist {
			hit = RaycastHit{Body: bd, Point: pt, Dist: d}
			found = true
		}
	}
	return hit, found
}

// raySphere returns the nearest intersection of the ray with a
// sphere, if any lies in front of the origin.
func raySphere(ray math32.Ray, center math32.Vector3, radius float32) (math32.Vector3, bool) {
	oc := center.Sub(ray.Origin)
	tca := oc.Dot(ray.Dir)
	d2 := oc.LengthSquared() - tca*tca
	r2 := radius * radius
	if d2 > r2 {
		return math32.Vector3{}, false
	}
	thc := math32.Sqrt(r2 - d2)
	t := tca - thc
	if t < 0 {
		t = tca + thc // origin inside the sphere
	}
	if t < 0 {
		return math32.Vector3{}, false
	}
	return ray.Origin.Add(ray.Dir.MulScalar(t)), true
}

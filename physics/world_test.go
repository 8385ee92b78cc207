// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestApplyImpulse(t *testing.T) {
	wd := NewWorld(math32.Vector3{}, QualityMedium)
	bd := wd.AddBody(Sphere(0.5), 2, State{})
	wd.SetVelocity(bd, math32.Vec3(1, 0, 0))

	wd.ApplyImpulse(bd, math32.Vec3(4, 0, 0))
	assert.Equal(t, math32.Vec3(3, 0, 0), bd.LinVel)

	st := wd.AddBody(Sphere(0.5), 0, State{})
	wd.ApplyImpulse(st, math32.Vec3(4, 0, 0))
	wd.SetVelocity(st, math32.Vec3(1, 0, 0))
	assert.Equal(t, math32.Vector3{}, st.LinVel)

	wd.RemoveBody(bd)
	wd.ApplyImpulse(bd, math32.Vec3(4, 0, 0))
	assert.Equal(t, math32.Vec3(3, 0, 0), bd.LinVel)
}

func TestApplyImpulseAtSpin(t *testing.T) {
	wd := NewWorld(math32.Vector3{}, QualityMedium)
	bd := wd.AddBody(Sphere(1), 1, State{})

	wd.ApplyImpulseAt(bd, math32.Vec3(0, 0, -5), math32.Vec3(1, 0, 0))
	assert.Equal(t, math32.Vec3(0, 0, -5), bd.LinVel)
	// inertia = 0.4 * m * r^2 = 0.4, torque impulse = (0, 5, 0)
	tolassert.EqualTol(t, 12.5, bd.AngVel.Y, 1.0e-4)
	tolassert.Equal(t, 0, bd.AngVel.X)
	tolassert.Equal(t, 0, bd.AngVel.Z)
}

func TestRemoveBodyIdempotent(t *testing.T) {
	wd := NewWorld(DefaultGravity(), QualityMedium)
	a := wd.AddBody(Sphere(0.5), 1, State{})
	b := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(5, 0, 0)})
	assert.NoError(t, a.SetVis("rook"))
	assert.Equal(t, 2, wd.NumBodies())

	wd.RemoveBody(a)
	assert.Equal(t, 1, wd.NumBodies())
	assert.Nil(t, wd.BodyByVis("rook"))

	wd.RemoveBody(a)
	wd.RemoveBody(nil)
	assert.Equal(t, 1, wd.NumBodies())

	n := 0
	wd.EachBody(func(bd *Body) { n++; assert.Equal(t, b, bd) })
	assert.Equal(t, 1, n)
}

func TestStepNonPositive(t *testing.T) {
	wd := NewWorld(DefaultGravity(), QualityMedium)
	bd := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(0, 5, 0)})

	wd.Step(0)
	wd.Step(-0.1)
	assert.Equal(t, math32.Vec3(0, 5, 0), bd.Pos)
	assert.Equal(t, math32.Vector3{}, bd.LinVel)
}

func TestFreeFall(t *testing.T) {
	wd := NewWorld(math32.Vec3(0, -10, 0), QualityMedium)
	bd := wd.AddBody(Sphere(0.5), 1, State{})
	bd.Rigid.LinDamp = 0

	ts := QualityMedium.Timestep()
	wd.Step(ts)
	tolassert.EqualTol(t, -10.0/60.0, bd.LinVel.Y, 1.0e-6)
	tolassert.EqualTol(t, -10.0/3600.0, bd.Pos.Y, 1.0e-6)

	wd.Step(ts)
	tolassert.EqualTol(t, -20.0/60.0, bd.LinVel.Y, 1.0e-6)
	tolassert.EqualTol(t, -30.0/3600.0, bd.Pos.Y, 1.0e-6)
}

func TestMaxSubSteps(t *testing.T) {
	wd := NewWorld(math32.Vec3(0, -10, 0), QualityMedium)
	bd := wd.AddBody(Sphere(0.5), 1, State{})
	bd.Rigid.LinDamp = 0

	// one second of wall time runs only MaxSubSteps substeps, and
	// the excess is dropped rather than carried
	wd.Step(1)
	tolassert.EqualTol(t, 3*-10.0/60.0, bd.LinVel.Y, 1.0e-5)

	wd.Step(0.01)
	tolassert.EqualTol(t, 3*-10.0/60.0, bd.LinVel.Y, 1.0e-5)
}

func TestRemainderCarry(t *testing.T) {
	wd := NewWorld(math32.Vec3(0, -10, 0), QualityMedium)
	bd := wd.AddBody(Sphere(0.5), 1, State{})
	bd.Rigid.LinDamp = 0

	// below one timestep: nothing advances yet
	wd.Step(0.01)
	assert.Equal(t, math32.Vector3{}, bd.LinVel)

	// the remainder carries, so the second small step crosses the
	// timestep boundary and runs one substep
	wd.Step(0.01)
	tolassert.EqualTol(t, -10.0/60.0, bd.LinVel.Y, 1.0e-6)
}

func TestForceLifecycle(t *testing.T) {
	wd := NewWorld(math32.Vector3{}, QualityMedium)
	bd := wd.AddBody(Sphere(0.5), 2, State{})
	bd.Rigid.LinDamp = 0

	wd.ApplyForce(bd, math32.Vec3(6, 0, 0))

	// no substep ran, so the force is retained for the next step
	wd.Step(0.005)
	assert.Equal(t, math32.Vector3{}, bd.LinVel)

	// two substeps, each integrating the same accumulated force
	wd.Step(2.0 / 60.0)
	tolassert.EqualTol(t, 0.1, bd.LinVel.X, 1.0e-5)

	// cleared after the step: velocity stays constant
	wd.Step(1.0 / 60.0)
	tolassert.EqualTol(t, 0.1, bd.LinVel.X, 1.0e-5)
}

func TestForceAtTorque(t *testing.T) {
	wd := NewWorld(math32.Vector3{}, QualityMedium)
	bd := wd.AddBody(Sphere(1), 1, State{})
	bd.Rigid.LinDamp = 0
	bd.Rigid.AngDamp = 0

	wd.ApplyForceAt(bd, math32.Vec3(0, 0, -5), math32.Vec3(1, 0, 0))
	ts := QualityMedium.Timestep()
	wd.Step(ts)
	// angular acceleration = 5 / 0.4 about Y
	tolassert.EqualTol(t, 12.5*ts, bd.AngVel.Y, 1.0e-5)
	tolassert.EqualTol(t, -5*ts, bd.LinVel.Z, 1.0e-5)
}

func TestHeadOnCollision(t *testing.T) {
	wd := NewWorld(math32.Vector3{}, QualityMedium)
	a := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(-0.55, 0, 0)})
	b := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(0.55, 0, 0)})
	a.Rigid.LinDamp = 0
	b.Rigid.LinDamp = 0
	wd.SetVelocity(a, math32.Vec3(1, 0, 0))
	wd.SetVelocity(b, math32.Vec3(-1, 0, 0))

	var evs []*CollisionEvent
	var velAtEvent [2]float32
	wd.OnCollisionBegin(func(ev *CollisionEvent) {
		evs = append(evs, ev)
		velAtEvent[0] = a.LinVel.X
		velAtEvent[1] = b.LinVel.X
	})

	for i := 0; i < 10; i++ {
		wd.Step(1.0 / 60.0)
	}

	assert.Equal(t, 1, len(evs))
	ev := evs[0]
	assert.Equal(t, a, ev.A)
	assert.Equal(t, b, ev.B)
	tolassert.EqualTol(t, 2, ev.Impact, 1.0e-4)
	tolassert.EqualTol(t, 1, ev.Normal.X, 1.0e-6)
	tolassert.Equal(t, 0, ev.Normal.Y)
	tolassert.Equal(t, 0, ev.Normal.Z)

	// observers run before the default response
	tolassert.EqualTol(t, 1, velAtEvent[0], 1.0e-5)
	tolassert.EqualTol(t, -1, velAtEvent[1], 1.0e-5)

	// default restitution response: equal masses rebound at the
	// average bounce fraction of the approach speed
	tolassert.EqualTol(t, -0.4, a.LinVel.X, 1.0e-4)
	tolassert.EqualTol(t, 0.4, b.LinVel.X, 1.0e-4)
}

func TestObserverOrderAndOff(t *testing.T) {
	wd := NewWorld(math32.Vector3{}, QualityLow) // brute force broad phase
	a := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(-0.6, 0, 0)})
	b := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(0.6, 0, 0)})
	a.Rigid.LinDamp = 0
	b.Rigid.LinDamp = 0
	wd.SetVelocity(a, math32.Vec3(1, 0, 0))
	wd.SetVelocity(b, math32.Vec3(-1, 0, 0))

	var order []int
	first := wd.OnCollisionBegin(func(ev *CollisionEvent) { order = append(order, 1) })
	wd.OnCollisionBegin(func(ev *CollisionEvent) { order = append(order, 2) })

	ts := QualityLow.Timestep()
	for i := 0; i < 6; i++ {
		wd.Step(ts)
	}
	assert.Equal(t, []int{1, 2}, order)

	wd.Off(first)
	wd.Off(9999)
	c := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(-0.6, 0, 5)})
	d := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(0.6, 0, 5)})
	c.Rigid.LinDamp = 0
	d.Rigid.LinDamp = 0
	wd.SetVelocity(c, math32.Vec3(1, 0, 0))
	wd.SetVelocity(d, math32.Vec3(-1, 0, 0))
	for i := 0; i < 6; i++ {
		wd.Step(ts)
	}
	assert.Equal(t, []int{1, 2, 2}, order)
}

func TestVisBinding(t *testing.T) {
	wd := NewWorld(DefaultGravity(), QualityMedium)
	b1 := wd.AddBody(Sphere(0.5), 1, State{})
	b2 := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(3, 0, 0)})

	assert.NoError(t, b1.SetVis("king"))
	assert.Equal(t, b1, wd.BodyByVis("king"))
	assert.Equal(t, "king", b1.Vis())

	assert.Error(t, b2.SetVis("king"))
	assert.Equal(t, b1, wd.BodyByVis("king"))

	assert.NoError(t, b2.SetVis("queen"))
	assert.NoError(t, b1.SetVis("king")) // rebinding the same id is fine

	assert.NoError(t, b1.SetVis(""))
	assert.Nil(t, wd.BodyByVis("king"))

	// rebinding moves the index entry
	assert.NoError(t, b2.SetVis("king"))
	assert.Nil(t, wd.BodyByVis("queen"))
	assert.Equal(t, b2, wd.BodyByVis("king"))

	wd.RemoveBody(b2)
	assert.Nil(t, wd.BodyByVis("king"))
}

func TestRaycast(t *testing.T) {
	wd := NewWorld(math32.Vector3{}, QualityMedium)
	_, ok := wd.Raycast(math32.Vec3(-3, 0, 0), math32.Vec3(10, 0, 0))
	assert.False(t, ok)

	sp := wd.AddBody(Sphere(1), 0, State{})
	bx := wd.AddBody(Box(math32.Vec3(1, 1, 1)), 0, State{Pos: math32.Vec3(5, 0, 0)})

	hit, ok := wd.Raycast(math32.Vec3(-3, 0, 0), math32.Vec3(10, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, sp, hit.Body)
	tolassert.EqualTol(t, 2, hit.Dist, 1.0e-4)
	tolassert.EqualTol(t, -1, hit.Point.X, 1.0e-4)

	// starting past the sphere, the box is the nearest hit
	hit, ok = wd.Raycast(math32.Vec3(2, 0, 0), math32.Vec3(10, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, bx, hit.Body)
	tolassert.EqualTol(t, 2.5, hit.Dist, 1.0e-4)
	tolassert.EqualTol(t, 4.5, hit.Point.X, 1.0e-4)

	// parallel ray above everything
	_, ok = wd.Raycast(math32.Vec3(0, 5, 0), math32.Vec3(10, 5, 0))
	assert.False(t, ok)

	// segment ends before reaching the sphere
	_, ok = wd.Raycast(math32.Vec3(-3, 0, 0), math32.Vec3(-2.5, 0, 0))
	assert.False(t, ok)

	_, ok = wd.Raycast(math32.Vec3(-3, 0, 0), math32.Vec3(-3, 0, 0))
	assert.False(t, ok)
}

func TestRestingOnStaticFloor(t *testing.T) {
	wd := NewWorld(DefaultGravity(), QualityMedium)
	floor := wd.AddBody(Box(math32.Vec3(10, 1, 10)), 0, State{})
	ball := wd.AddBody(Sphere(0.5), 1, State{Pos: math32.Vec3(0, 3, 0)})

	for i := 0; i < 360; i++ {
		wd.Step(1.0 / 60.0)
	}

	assert.Equal(t, math32.Vector3{}, floor.Pos)
	assert.Equal(t, math32.Vector3{}, floor.LinVel)
	assert.Greater(t, ball.Pos.Y, float32(0.9))
	assert.Less(t, ball.Pos.Y, float32(1.1))
	assert.Less(t, math32.Abs(ball.LinVel.Y), float32(0.2))
}

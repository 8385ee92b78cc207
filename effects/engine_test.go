// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package effects

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/gambit/physics"
)

func TestCollisionResponse(t *testing.T) {
	wd := physics.NewWorld(math32.Vector3{}, physics.QualityMedium)
	a := wd.AddBody(physics.Sphere(0.5), 1, physics.State{Pos: math32.Vec3(-0.5, 0, 0)})
	b := wd.AddBody(physics.Sphere(0.5), 1, physics.State{Pos: math32.Vec3(0.5, 0, 0)})
	a.Tag = "pawn"
	b.Tag = "rook"

	eg := NewEngine(wd)
	eg.Rand = randx.NewSysRand(7)

	var sounds []SoundEvent
	eg.OnSound(func(ev SoundEvent) { sounds = append(sounds, ev) })

	ev := &physics.CollisionEvent{
		A:      a,
		B:      b,
		Normal: math32.Vec3(1, 0, 0),
		RelVel: math32.Vec3(-2, 0, 0),
		Impact: 2,
		Point:  math32.Vector3{},
	}
	eg.Collision(ev)

	// bounce impulses split by the other body's mass share
	tolassert.EqualTol(t, -0.15, a.LinVel.X, 1.0e-6)
	tolassert.EqualTol(t, 0.15, b.LinVel.X, 1.0e-6)
	assert.NotEqual(t, math32.Vector3{}, a.AngVel)
	assert.NotEqual(t, math32.Vector3{}, b.AngVel)

	assert.Equal(t, 1, eg.NumSystems())
	assert.NotNil(t, eg.System("spark-1"))

	assert.Equal(t, 1, len(sounds))
	assert.Equal(t, "pawn", sounds[0].PieceA)
	assert.Equal(t, "rook", sounds[0].PieceB)
	tolassert.Equal(t, 2, sounds[0].Intensity)

	// at or below the threshold nothing happens
	ev.Impact = 0.5
	eg.Collision(ev)
	assert.Equal(t, 1, eg.NumSystems())
	assert.Equal(t, 1, len(sounds))
	tolassert.EqualTol(t, -0.15, a.LinVel.X, 1.0e-6)
}

func TestCollisionUnevenMasses(t *testing.T) {
	wd := physics.NewWorld(math32.Vector3{}, physics.QualityMedium)
	a := wd.AddBody(physics.Sphere(0.5), 3, physics.State{Pos: math32.Vec3(-0.5, 0, 0)})
	b := wd.AddBody(physics.Sphere(0.5), 1, physics.State{Pos: math32.Vec3(0.5, 0, 0)})
	eg := NewEngine(wd)
	eg.Rand = randx.NewSysRand(7)

	ev := &physics.CollisionEvent{A: a, B: b, Normal: math32.Vec3(1, 0, 0), Impact: 1}
	eg.Collision(ev)

	// impulses split by the other body's mass share, then divided by
	// each body's own mass: the heavy body barely moves
	tolassert.EqualTol(t, -0.3*0.25/3, a.LinVel.X, 1.0e-6)
	tolassert.EqualTol(t, 0.3*0.75, b.LinVel.X, 1.0e-6)
}

func TestCollisionViaWorld(t *testing.T) {
	wd := physics.NewWorld(math32.Vector3{}, physics.QualityMedium)
	a := wd.AddBody(physics.Sphere(0.5), 1, physics.State{Pos: math32.Vec3(-0.55, 0, 0)})
	b := wd.AddBody(physics.Sphere(0.5), 1, physics.State{Pos: math32.Vec3(0.55, 0, 0)})
	a.Rigid.LinDamp = 0
	b.Rigid.LinDamp = 0
	a.Tag = "queen"
	b.Tag = "knight"
	wd.SetVelocity(a, math32.Vec3(1, 0, 0))
	wd.SetVelocity(b, math32.Vec3(-1, 0, 0))

	eg := NewEngine(wd)
	eg.Rand = randx.NewSysRand(42)
	wd.OnCollisionBegin(eg.Collision)

	var sounds []SoundEvent
	eg.OnSound(func(ev SoundEvent) { sounds = append(sounds, ev) })

	for i := 0; i < 10; i++ {
		wd.Step(1.0 / 60.0)
	}

	assert.Equal(t, 1, len(sounds))
	tolassert.EqualTol(t, 2, sounds[0].Intensity, 1.0e-4)
	assert.Equal(t, "queen", sounds[0].PieceA)
	assert.Equal(t, 1, eg.NumSystems())

	// bounce impulse lands before the restitution solver: approach
	// speed at the solve is 0.85 each, rebound 0.4 of that
	tolassert.EqualTol(t, -0.34, a.LinVel.X, 1.0e-3)
	tolassert.EqualTol(t, 0.34, b.LinVel.X, 1.0e-3)
}

func TestScaledCounts(t *testing.T) {
	wd := physics.NewWorld(math32.Vector3{}, physics.QualityMedium)
	eg := NewEngine(wd)

	eg.SetQuality(physics.QualityLow)
	id := eg.NewExplosionEffect(math32.Vector3{}, 5, 10)
	assert.Equal(t, 12, eg.System(id).NumPoints()) // round(0.3 * 40)
	assert.Equal(t, 1, eg.NumForceEffects())

	id = eg.NewEffect(EffectCheckmate, math32.Vector3{})
	assert.Equal(t, 15, eg.System(id).NumPoints()) // round(0.3 * 50)

	eg.SetQuality(physics.QualityMedium)
	id = eg.NewEffect(EffectCapture, math32.Vector3{})
	assert.Equal(t, 18, eg.System(id).NumPoints()) // round(0.6 * 30)

	eg.SetQuality(physics.QualityHigh)
	id = eg.NewEffect(EffectCapture, math32.Vector3{})
	assert.Equal(t, 30, eg.System(id).NumPoints())

	id = eg.NewEffect(EffectKinds(99), math32.Vector3{})
	assert.Equal(t, 10, eg.System(id).NumPoints()) // default row
}

func TestUpdateLifecycle(t *testing.T) {
	wd := physics.NewWorld(math32.Vector3{}, physics.QualityMedium)
	eg := NewEngine(wd)

	id := eg.NewEffect(EffectDefault, math32.Vec3(0, 1, 0))
	assert.Equal(t, 1, eg.NumSystems())

	disposed := 0
	eg.System(id).OnDispose = func() { disposed++ }

	// fade rate drains alpha in 2/3 s; still alive after 0.5
	eg.Update(0.5)
	assert.Equal(t, 1, eg.NumSystems())
	assert.True(t, eg.System(id).Alive())

	eg.Update(0.5)
	assert.Equal(t, 0, eg.NumSystems())
	assert.Nil(t, eg.System(id))
	assert.Equal(t, 1, disposed)

	// dead systems are disposed exactly once
	eg.Update(0.5)
	assert.Equal(t, 1, disposed)
}

func TestJobSystemDetached(t *testing.T) {
	wd := physics.NewWorld(math32.Vector3{}, physics.QualityMedium)
	eg := NewEngine(wd)

	ps := eg.NewJobSystem(EffectEvolution, math32.Vector3{})
	assert.Equal(t, 0, eg.NumSystems())
	assert.Equal(t, 40, ps.NumPoints())

	before := ps.Points[0]
	eg.Update(0.1)
	assert.Equal(t, before, ps.Points[0])

	ps.Update(0.1)
	assert.NotEqual(t, before, ps.Points[0])

	ps.Dispose()
	ps.Dispose()
	assert.True(t, ps.Disposed())
	assert.False(t, ps.Alive())
}

func TestDisposeAll(t *testing.T) {
	wd := physics.NewWorld(math32.Vector3{}, physics.QualityMedium)
	eg := NewEngine(wd)

	s1 := eg.NewEffect(EffectMove, math32.Vector3{})
	s2 := eg.NewSparkEffect(math32.Vector3{}, math32.Vec3(0, 1, 0), 1)
	s3 := eg.NewTrailEffect(math32.Vector3{}, math32.Vec3(1, 0, 0))
	p1 := eg.System(s1)
	p2 := eg.System(s2)
	p3 := eg.System(s3)
	eg.AddForceEffect(ForceEffect{Kind: ForceVortex, Strength: 1, Radius: 2, Duration: 5})
	assert.Equal(t, 3, eg.NumSystems())
	assert.Equal(t, 1, eg.NumForceEffects())

	eg.Dispose()
	assert.Equal(t, 0, eg.NumSystems())
	assert.Equal(t, 0, eg.NumForceEffects())
	assert.True(t, p1.Disposed())
	assert.True(t, p2.Disposed())
	assert.True(t, p3.Disposed())

	eg.Dispose()
	assert.Equal(t, 0, eg.NumSystems())
}

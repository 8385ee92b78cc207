// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package effects generates and animates the transient visuals and
// forces around the physics world: particle systems spawned from a
// catalog of board events, collision sparks with bounce impulses
// and outbound sound events, and timed spatial force fields
// (explosion, attraction, repulsion, vortex, directional) applied
// to bodies each frame.
package effects

//go:generate core generate

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"

	"cogentcore.org/gambit/physics"
)

// base particle counts for the non-catalog factories, scaled by the
// quality tier like the catalog counts.
const (
	sparkBase     = 12
	explosionBase = 40
	trailBase     = 20
)

// explosionForceDuration is the lifetime of the force field
// installed alongside an explosion visual.
const explosionForceDuration = 0.3

// angularKickMax is the largest random angular velocity, in rad/s
// per axis, added to each body by a collision response.
const angularKickMax = 0.3

// SoundEvent is the outbound audio notification for a collision:
// fire-and-forget, consumed by an external audio collaborator.
type SoundEvent struct {

	// PieceA and PieceB are the Tag values of the colliding bodies.
	PieceA, PieceB string

	// Intensity is the collision impact magnitude.
	Intensity float32

	// Pos is the world position of the contact.
	Pos math32.Vector3
}

// soundObserver is one registered sound callback.
type soundObserver struct {
	id int64
	fn func(ev SoundEvent)
}

// Engine owns the live particle systems and force effects around a
// physics world. It is driven once per frame by [Engine.Update] and
// fed contacts via [Engine.Collision]. Not safe for concurrent use.
type Engine struct {

	// World is the physics world the engine decorates and pushes
	// impulses into.
	World *physics.World

	// Rand is the randomness source for particle scatter and
	// angular kicks. Defaults to the global source; tests inject a
	// seeded one.
	Rand randx.Rand

	// Quality scales particle counts for new effects. Changing it
	// never resizes live systems: the host calls [Engine.Dispose]
	// when a tier change should release previous-tier buffers.
	Quality physics.Quality

	// SparkThreshold is the impact magnitude above which a
	// collision produces a spark, impulses, and a sound event.
	SparkThreshold float32 `default:"0.5"`

	// BounceFactor scales the bounce impulses applied to colliding
	// bodies, split by the other body's mass share.
	BounceFactor float32 `default:"0.3"`

	systems ordmap.Map[string, *ParticleSystem]
	forces  ordmap.Map[string, *ForceEffect]
	sounds  []soundObserver
	nextSys int64
	nextFrc int64
	nextSnd int64
	scratch []*physics.Body
}

// NewEngine returns an effects engine attached to the given world.
func NewEngine(world *physics.World) *Engine {
	eg := &Engine{World: world}
	eg.Rand = randx.NewGlobalRand()
	eg.Quality = physics.QualityHigh
	eg.SparkThreshold = 0.5
	eg.BounceFactor = 0.3
	return eg
}

// SetQuality sets the particle count scaling tier for future
// spawns. Live systems keep their buffers.
func (eg *Engine) SetQuality(q physics.Quality) { eg.Quality = q }

// NumSystems returns the number of live particle systems.
func (eg *Engine) NumSystems() int { return eg.systems.Len() }

// NumForceEffects returns the number of pending force effects.
func (eg *Engine) NumForceEffects() int { return eg.forces.Len() }

// System returns the live particle system with the given id, or nil.
func (eg *Engine) System(id string) *ParticleSystem {
	ps, _ := eg.systems.ValueByKeyTry(id)
	return ps
}

//////// 	Collision response

// Collision realizes the response to a begin-contact event: above
// the spark threshold it spawns a spark at the contact point,
// applies opposing bounce impulses proportional to the other body's
// mass share, adds a small random angular kick, and emits a
// SoundEvent to the registered observers in registration order.
// Wire it to [physics.World.OnCollisionBegin].
func (eg *Engine) Collision(ev *physics.CollisionEvent) {
	if ev.Impact <= eg.SparkThreshold {
		return
	}
	eg.NewSparkEffect(ev.Point, ev.Normal, ev.Impact)

	total := ev.A.Rigid.Mass + ev.B.Rigid.Mass
	if eg.World != nil && total > 0 {
		k := eg.BounceFactor
		eg.World.ApplyImpulse(ev.A, ev.Normal.MulScalar(-k*ev.B.Rigid.Mass/total))
		eg.World.ApplyImpulse(ev.B, ev.Normal.MulScalar(k*ev.A.Rigid.Mass/total))
		eg.World.SetAngularVelocity(ev.A, ev.A.AngVel.Add(eg.randVec().MulScalar(angularKickMax)))
		eg.World.SetAngularVelocity(ev.B, ev.B.AngVel.Add(eg.randVec().MulScalar(angularKickMax)))
	}

	snd := SoundEvent{PieceA: ev.A.Tag, PieceB: ev.B.Tag, Intensity: ev.Impact, Pos: ev.Point}
	for _, ob := range eg.sounds {
		ob.fn(snd)
	}
}

// OnSound registers a sound event observer, returning the id to
// pass to OffSound.
func (eg *Engine) OnSound(fn func(ev SoundEvent)) int64 {
	eg.nextSnd++
	eg.sounds = append(eg.sounds, soundObserver{id: eg.nextSnd, fn: fn})
	return eg.nextSnd
}

// OffSound unregisters a sound observer. Unknown ids are ignored.
func (eg *Engine) OffSound(id int64) {
	for i, ob := range eg.sounds {
		if ob.id == id {
			eg.sounds = slices.Delete(eg.sounds, i, i+1)
			return
		}
	}
}

//////// 	Force effects

// AddForceEffect validates and installs a timed force effect that
// influences bodies within its radius on every Update until its
// duration elapses. It returns the effect id.
func (eg *Engine) AddForceEffect(fe ForceEffect) (string, error) {
	if err := fe.validate(); err != nil {
		return "", err
	}
	fe.remaining = fe.Duration
	eg.nextFrc++
	id := fmt.Sprintf("force-%d", eg.nextFrc)
	eg.forces.Add(id, &fe)
	return id, nil
}

// ApplyForceEffect applies the effect's force to every body
// currently within its radius, once. Update calls this each frame
// for pending effects; it is exposed for one-shot application.
func (eg *Engine) ApplyForceEffect(fe *ForceEffect) {
	if eg.World == nil {
		return
	}
	eg.scratch = eg.World.BodiesInRadius(fe.Pos, fe.Radius, eg.scratch[:0])
	for _, bd := range eg.scratch {
		if f, ok := fe.ForceAt(bd.Pos); ok {
			eg.World.ApplyForce(bd, f)
		}
	}
}

//////// 	Frame update

// Update advances every live particle system by dt (updates always
// precede the disposal check), disposes and removes dead systems,
// applies pending force effects to the world, and expires force
// effects whose duration has elapsed.
func (eg *Engine) Update(dt float32) {
	if dt <= 0 {
		return
	}
	var dead []string
	for _, kv := range eg.systems.Order {
		kv.Value.Update(dt)
		if !kv.Value.Alive() {
			dead = append(dead, kv.Key)
		}
	}
	for _, id := range dead {
		if ps, ok := eg.systems.ValueByKeyTry(id); ok {
			ps.Dispose()
			eg.systems.DeleteKey(id)
		}
	}

	var expired []string
	for _, kv := range eg.forces.Order {
		fe := kv.Value
		eg.ApplyForceEffect(fe)
		fe.remaining -= dt
		if fe.remaining <= 0 {
			expired = append(expired, kv.Key)
		}
	}
	for _, id := range expired {
		eg.forces.DeleteKey(id)
	}
}

// Dispose forcibly disposes every live particle system and clears
// all pending force effects. Used on scene teardown and on
// host-driven quality tier changes. Idempotent.
func (eg *Engine) Dispose() {
	n := eg.systems.Len()
	for _, kv := range eg.systems.Order {
		kv.Value.Dispose()
	}
	eg.systems.Reset()
	eg.forces.Reset()
	if n > 0 {
		logx.PrintlnDebug("effects.Dispose: released", n, "particle systems")
	}
}

//////// 	Factories

// scaledCount applies the quality tier's particle scaling to a base
// count.
func (eg *Engine) scaledCount(base int) int {
	return int(math32.Round(float32(base) * eg.Quality.ParticleScale()))
}

// randVec returns a vector with each component uniform in [-1, 1).
func (eg *Engine) randVec() math32.Vector3 {
	return math32.Vec3(2*eg.Rand.Float32()-1, 2*eg.Rand.Float32()-1, 2*eg.Rand.Float32()-1)
}

// register adds the system under a fresh id and returns the id.
func (eg *Engine) register(label string, ps *ParticleSystem) string {
	eg.nextSys++
	id := fmt.Sprintf("%s-%d", label, eg.nextSys)
	eg.systems.Add(id, ps)
	return id
}

// newSystem builds a particle system of n points at pos with the
// given velocity generator.
func newSystem(n int, pos math32.Vector3, vel func(i int) math32.Vector3) *ParticleSystem {
	ps := &ParticleSystem{
		Points: make([]math32.Vector3, n),
		Vels:   make([]math32.Vector3, n),
		Alphas: make([]float32, n),
	}
	for i := 0; i < n; i++ {
		ps.Points[i] = pos
		ps.Vels[i] = vel(i)
		ps.Alphas[i] = 1
	}
	return ps
}

// NewSparkEffect spawns a collision spark at pos, biased along the
// contact normal and scaled by the impact intensity. It returns the
// effect id.
func (eg *Engine) NewSparkEffect(pos, normal math32.Vector3, intensity float32) string {
	speed := 1 + 0.5*intensity
	ps := newSystem(eg.scaledCount(sparkBase), pos, func(i int) math32.Vector3 {
		return normal.MulScalar(speed).Add(eg.randVec().MulScalar(0.6 * speed))
	})
	ps.Color = EffectDefault.Color()
	ps.Size = 0.03
	ps.Gravity = 0.4
	ps.Fade = 2.5
	return eg.register("spark", ps)
}

// NewExplosionEffect spawns an explosion visual at pos and installs
// a matching short-lived explosion force field with the given
// radius and strength. It returns the visual's effect id.
func (eg *Engine) NewExplosionEffect(pos math32.Vector3, radius, strength float32) string {
	speed := 0.3 * strength
	ps := newSystem(eg.scaledCount(explosionBase), pos, func(i int) math32.Vector3 {
		return eg.randVec().MulScalar(speed).Add(math32.Vec3(0, 0.3*speed, 0))
	})
	ps.Color = EffectCapture.Color()
	ps.Size = 0.06
	ps.Gravity = 0.25
	ps.Fade = 1.2
	id := eg.register("explosion", ps)
	eg.AddForceEffect(ForceEffect{Kind: ForceExplosion, Strength: strength, Radius: radius, Duration: explosionForceDuration, Pos: pos})
	return id
}

// NewTrailEffect spawns a short drift of particles behind a visual
// moving along dir. It returns the effect id.
func (eg *Engine) NewTrailEffect(pos, dir math32.Vector3) string {
	ps := newSystem(eg.scaledCount(trailBase), pos, func(i int) math32.Vector3 {
		return dir.Negate().MulScalar(0.8).Add(eg.randVec().MulScalar(0.3))
	})
	ps.Color = EffectMove.Color()
	ps.Size = 0.02
	ps.Gravity = 0.1
	ps.Fade = 2
	return eg.register("trail", ps)
}

// NewEffect spawns a catalog burst of the given kind at pos and
// returns the effect id.
func (eg *Engine) NewEffect(kind EffectKinds, pos math32.Vector3) string {
	ps := eg.newCatalogSystem(kind, pos)
	return eg.register(kind.String(), ps)
}

// NewJobSystem builds a catalog burst for the given kind without
// registering it: the caller owns it, typically handing it to a
// particle animation job that updates and disposes it.
func (eg *Engine) NewJobSystem(kind EffectKinds, pos math32.Vector3) *ParticleSystem {
	return eg.newCatalogSystem(kind, pos)
}

func (eg *Engine) newCatalogSystem(kind EffectKinds, pos math32.Vector3) *ParticleSystem {
	ps := newSystem(eg.scaledCount(kind.BaseCount()), pos, func(i int) math32.Vector3 {
		return eg.randVec().MulScalar(1.5)
	})
	ps.Color = kind.Color()
	ps.Size = kind.Size()
	ps.Gravity = 0.3
	ps.Fade = 1.5
	return ps
}

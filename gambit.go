// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gambit is the real-time animation and physics core for a
// 3D board game client. It coordinates three subsystems behind one
// [Engine]: an animation scheduler ([anim.Scheduler]), a rigid body
// world ([physics.World]), and a particle and force effects engine
// ([effects.Engine]). The host owns rendering, audio, and game
// rules: it drives the engine once per frame with
// [Engine.AdvanceFrame], mirrors simulation into its scene with
// [Engine.SyncVisuals], and consumes sound events through
// [effects.Engine.OnSound].
package gambit

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/gambit/anim"
	"cogentcore.org/gambit/effects"
	"cogentcore.org/gambit/physics"
)

// Stats is a per-frame snapshot of engine load, refreshed at the end
// of every [Engine.AdvanceFrame].
type Stats struct {

	// Frame counts AdvanceFrame calls since [New].
	Frame int64

	// Time is the accumulated time-scaled engine clock.
	Time time.Duration

	// ActiveJobs and QueuedJobs are the animation scheduler load.
	ActiveJobs, QueuedJobs int

	// Bodies is the number of rigid bodies in the world.
	Bodies int

	// ParticleSystems is the number of live particle systems.
	ParticleSystems int
}

// Engine owns and coordinates the animation, physics, and effects
// subsystems. [New] wires them together: collision events feed the
// effects engine, and morph bursts spawn evolution particles. An
// Engine is not safe for concurrent use: drive it from the frame
// loop.
type Engine struct {

	// Anim schedules and advances animation jobs.
	Anim *anim.Scheduler

	// Physics is the rigid body world.
	Physics *physics.World

	// Effects owns the particle systems and force effects.
	Effects *effects.Engine

	// TimeScale multiplies the dt passed to [Engine.AdvanceFrame].
	// It may be changed between frames.
	TimeScale float32

	// Visuals resolves visual ids for [Engine.SyncVisuals] and the
	// animation scheduler.
	Visuals anim.VisualSource

	paused bool
	now    time.Duration
	stats  Stats
}

// New returns an engine configured by opts, resolving visual ids
// through the given source. A nil opts uses [Options.Defaults];
// a nil source is allowed and skips all visual mutation.
func New(opts *Options, visuals anim.VisualSource) *Engine {
	if opts == nil {
		opts = &Options{}
		opts.Defaults()
	}
	eng := &Engine{Visuals: visuals, TimeScale: opts.TimeScale}
	if eng.TimeScale <= 0 {
		eng.TimeScale = 1
	}
	eng.Physics = physics.NewWorld(opts.Gravity, opts.Quality)
	if opts.MaxSubSteps > 0 {
		eng.Physics.MaxSubSteps = opts.MaxSubSteps
	}
	eng.Effects = effects.NewEngine(eng.Physics)
	eng.Effects.SetQuality(opts.Quality)
	eng.Anim = anim.NewScheduler(opts.MaxConcurrent, visuals)
	eng.Anim.Burst = func(pos math32.Vector3) {
		eng.Effects.NewEffect(effects.EffectEvolution, pos)
	}
	eng.Physics.OnCollisionBegin(eng.Effects.Collision)
	return eng
}

// AdvanceFrame advances the whole engine by one frame of dt seconds:
// animations tick first, then live effects update and force effects
// apply, then the physics world steps. dt is scaled by
// [Engine.TimeScale]. Paused engines and non-positive dt are no-ops.
func (eng *Engine) AdvanceFrame(dt float32) {
	if eng.paused || dt <= 0 {
		return
	}
	dt *= eng.TimeScale
	eng.now += time.Duration(float64(dt) * float64(time.Second))
	eng.Anim.Tick(eng.now)
	eng.Effects.Update(dt)
	eng.Physics.Step(dt)

	eng.stats.Frame++
	eng.stats.Time = eng.now
	eng.stats.ActiveJobs = eng.Anim.Active()
	eng.stats.QueuedJobs = eng.Anim.Queued()
	eng.stats.Bodies = eng.Physics.NumBodies()
	eng.stats.ParticleSystems = eng.Effects.NumSystems()
}

// Stats returns the load snapshot taken at the end of the last
// [Engine.AdvanceFrame].
func (eng *Engine) Stats() Stats { return eng.stats }

// SyncVisuals pushes the pose of every visual-bound body into its
// caller-owned visual handle, resolving ids through
// [Engine.Visuals]. Call it after [Engine.AdvanceFrame] to keep the
// scene in lockstep with the simulation. Stale ids are skipped.
func (eng *Engine) SyncVisuals() {
	if eng.Visuals == nil {
		return
	}
	eng.Physics.EachBody(func(bd *physics.Body) {
		if bd.Vis() == "" {
			return
		}
		if vis := eng.Visuals(bd.Vis()); vis != nil {
			vis.SetPos(bd.Pos)
			vis.SetQuat(bd.Quat)
		}
	})
}

// SetPaused pauses or resumes the engine clock. Paused engines
// ignore [Engine.AdvanceFrame]; scheduled jobs and live effects
// resume where they left off.
func (eng *Engine) SetPaused(on bool) { eng.paused = on }

// Paused reports whether the engine is paused.
func (eng *Engine) Paused() bool { return eng.paused }

// SetQuality retiers the physics world and the effects engine
// together. Live particle systems keep their buffers: call
// [Engine.Teardown] first when a tier change should release them.
func (eng *Engine) SetQuality(q physics.Quality) {
	eng.Physics.SetQuality(q)
	eng.Effects.SetQuality(q)
}

// Teardown force-finishes every animation job, firing completion
// callbacks, and disposes all particle systems and force effects.
// The engine and its bodies remain usable afterwards.
func (eng *Engine) Teardown() {
	eng.Anim.CancelAll()
	eng.Effects.Dispose()
}

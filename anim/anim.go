// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides a priority-scheduled animation system for
// board game scenes: piece moves along configurable trajectories,
// evolution morphs, camera transitions, and owned particle system
// playback. Jobs queue up through [Scheduler.Schedule], are promoted
// into a bounded active set in priority order, and advance together
// on a single engine clock through [Scheduler.Tick].
package anim

//go:generate core generate

import "cogentcore.org/core/math32"

// Visual is the caller-owned handle to a renderable scene object
// that animation jobs mutate. Implementations must tolerate being
// updated every frame.
type Visual interface {

	// Pos returns the current world position.
	Pos() math32.Vector3

	// SetPos sets the world position.
	SetPos(pos math32.Vector3)

	// SetQuat sets the world orientation.
	SetQuat(q math32.Quat)

	// SetScale sets the world scale.
	SetScale(s math32.Vector3)
}

// Emissive is implemented by visuals that expose an emissive
// material channel. Morph jobs drive the emissive intensity when
// the target visual implements it, and skip it otherwise.
type Emissive interface {
	SetEmissive(intensity float32)
}

// Camera is the caller-owned handle that camera move jobs drive.
type Camera interface {

	// SetView sets the camera eye position and look-at target.
	SetView(eye, lookAt math32.Vector3)
}

// VisualSource resolves a visual id to its live handle, returning
// nil for ids that are no longer alive. The scheduler skips the
// visual-mutating step of a job whose target has gone stale, while
// still advancing and completing the job on schedule.
type VisualSource func(id string) Visual

// ParticleSystem is the subset of a particle effect that particle
// jobs drive. The job owns the system: it updates it every tick at
// [ParticleStep] and disposes it when the job completes or is
// cancelled.
type ParticleSystem interface {

	// Update advances the system by dt seconds.
	Update(dt float32)

	// Dispose releases the system's resources. It must be safe to
	// call more than once.
	Dispose()
}

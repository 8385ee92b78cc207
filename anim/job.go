// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ParticleStep is the fixed timestep in seconds that particle jobs
// advance their owned system by on every tick.
const ParticleStep = float32(1.0 / 60.0)

// Evolution describes one end of a piece evolution morph. Level
// drives both the uniform scale factor and the emissive intensity
// that a [Morph] job interpolates.
type Evolution struct {

	// Name is the piece type name at this evolution stage.
	Name string

	// Level is the integer evolution level.
	Level int
}

// Scale returns the uniform visual scale factor at this stage.
func (ev Evolution) Scale() float32 { return 1 + 0.1*float32(ev.Level) }

// Emissive returns the emissive intensity at this stage.
func (ev Evolution) Emissive() float32 { return 0.1 * float32(ev.Level) }

// Anim is the payload of a [Job]: one of [Move], [Morph],
// [Particle], or [CameraMove].
type Anim interface {
	isAnim()
}

// Move animates a visual along a trajectory between two positions.
type Move struct {

	// Target is the id of the visual to move.
	Target string

	// From and To are the world positions the move runs between.
	From, To math32.Vector3

	// Trajectory selects the flight path between From and To.
	Trajectory Trajectories
}

func (Move) isAnim() {}

// Morph animates a piece evolution: uniform scale and emissive
// intensity interpolate between the two stages, and a decorative
// particle burst fires once in the middle of the transition.
type Morph struct {

	// Target is the id of the visual to morph.
	Target string

	// From and To are the evolution stages to interpolate between.
	From, To Evolution
}

func (Morph) isAnim() {}

// Particle drives an owned particle system for the duration of the
// job, updating it by [ParticleStep] every tick and disposing it
// when the job completes or is cancelled.
type Particle struct {

	// Kind tags the effect type for diagnostics.
	Kind string

	// Origin is the world position the system was spawned at.
	Origin math32.Vector3

	// System is the owned particle system.
	System ParticleSystem
}

func (Particle) isAnim() {}

// CameraMove interpolates a camera eye position and look-at target,
// applying the view to the camera every tick.
type CameraMove struct {

	// Camera is the camera handle to drive.
	Camera Camera

	// EyeFrom and EyeTo are the camera eye endpoints.
	EyeFrom, EyeTo math32.Vector3

	// LookFrom and LookTo are the look-at target endpoints.
	LookFrom, LookTo math32.Vector3
}

func (CameraMove) isAnim() {}

// Job is one scheduled animation. Jobs are values: Schedule copies
// the job, and the scheduler never mutates the caller's copy.
type Job struct {

	// ID identifies the job. It must be unique among all live
	// (queued or active) jobs.
	ID string

	// Priority orders activation: higher priority jobs start first.
	// Jobs of equal priority start in Schedule order.
	Priority int

	// Duration is the total animation time. It must be positive.
	Duration time.Duration

	// Ease is the curve applied to raw progress before the payload
	// is evaluated. The zero value is [EaseCubicInOut].
	Ease Easings

	// Anim is the animation payload.
	Anim Anim

	// OnUpdate, if non-nil, is called once per tick while the job
	// is active, with raw progress clamped to [0, 1].
	OnUpdate func(p float32)

	// OnComplete, if non-nil, is called exactly once: when progress
	// reaches 1, or when [Scheduler.CancelAll] force-finishes the
	// job. [Scheduler.Cancel] does not call it.
	OnComplete func()
}

// validate returns an error if the job cannot be scheduled.
func (jb *Job) validate() error {
	if jb.ID == "" {
		return errors.New("anim.Schedule: job ID must not be empty")
	}
	if jb.Duration <= 0 {
		return fmt.Errorf("anim.Schedule: job %q: duration must be positive, got %v", jb.ID, jb.Duration)
	}
	switch a := jb.Anim.(type) {
	case Move:
		if a.Trajectory < 0 || a.Trajectory >= TrajectoriesN {
			return fmt.Errorf("anim.Schedule: job %q: invalid trajectory %d", jb.ID, int(a.Trajectory))
		}
	case Morph:
	case Particle:
		if a.System == nil {
			return fmt.Errorf("anim.Schedule: job %q: particle job must have a System", jb.ID)
		}
	case CameraMove:
		if a.Camera == nil {
			return fmt.Errorf("anim.Schedule: job %q: camera job must have a Camera", jb.ID)
		}
	case nil:
		return fmt.Errorf("anim.Schedule: job %q: missing animation payload", jb.ID)
	}
	if jb.Ease < 0 || jb.Ease >= EasingsN {
		return fmt.Errorf("anim.Schedule: job %q: invalid easing %d", jb.ID, int(jb.Ease))
	}
	return nil
}

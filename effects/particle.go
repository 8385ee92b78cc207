// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package effects

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// standard downward acceleration scaled by each system's Gravity
// factor.
const particleGravity = 9.81

// ParticleSystem is an ephemeral point-sprite effect. Systems are
// created by [Engine] factories and animated by [Engine.Update]
// (or by an animation job holding a detached system) until every
// point has faded, then disposed. The point slices are read-only
// for the rendering collaborator; all mutation goes through
// [ParticleSystem.Update].
type ParticleSystem struct {

	// Points are the current world positions.
	Points []math32.Vector3

	// Vels are the per-point velocities.
	Vels []math32.Vector3

	// Alphas are the per-point opacities, fading from 1 to 0.
	Alphas []float32

	// Color is the uniform point color.
	Color color.RGBA

	// Size is the uniform point size in world units.
	Size float32

	// Gravity is the fraction of standard gravity pulling the
	// points down.
	Gravity float32

	// Fade is the opacity lost per second.
	Fade float32

	// OnDispose is called exactly once when the system is disposed,
	// for external buffer release.
	OnDispose func()

	disposed bool
}

// Update advances points by dt seconds: gravity drift, position
// integration, and linear alpha fade. Disposed systems do not move.
func (ps *ParticleSystem) Update(dt float32) {
	if ps.disposed || dt <= 0 {
		return
	}
	g := particleGravity * ps.Gravity * dt
	for i := range ps.Points {
		ps.Vels[i].Y -= g
		ps.Points[i].SetAdd(ps.Vels[i].MulScalar(dt))
		ps.Alphas[i] = math32.Max(0, ps.Alphas[i]-ps.Fade*dt)
	}
}

// Alive reports whether any point is still visible. Disposed
// systems are never alive.
func (ps *ParticleSystem) Alive() bool {
	if ps.disposed {
		return false
	}
	for _, a := range ps.Alphas {
		if a > 0 {
			return true
		}
	}
	return false
}

// NumPoints returns the number of points in the system.
func (ps *ParticleSystem) NumPoints() int { return len(ps.Points) }

// Dispose releases the point buffers and fires OnDispose.
// Disposing twice is safe and does nothing the second time.
func (ps *ParticleSystem) Dispose() {
	if ps.disposed {
		return
	}
	ps.disposed = true
	ps.Points = nil
	ps.Vels = nil
	ps.Alphas = nil
	if ps.OnDispose != nil {
		ps.OnDispose()
	}
}

// Disposed reports whether Dispose has run.
func (ps *ParticleSystem) Disposed() bool { return ps.disposed }

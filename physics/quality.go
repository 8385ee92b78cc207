// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// Quality selects the simulation quality tier, which drives the
// fixed timestep, the solver iteration count, the broad phase
// algorithm, and the particle count scaling applied by effects.
type Quality int32 //enums:enum -trim-prefix Quality -transform kebab

const (
	// QualityLow runs at 30 Hz with a brute force broad phase and
	// minimal solver iterations.
	QualityLow Quality = iota

	// QualityMedium runs at 60 Hz with the grid broad phase.
	QualityMedium

	// QualityHigh runs at 120 Hz with the grid broad phase.
	QualityHigh

	// QualityUltra runs at 120 Hz with extra solver iterations and
	// full particle counts.
	QualityUltra
)

// Timestep returns the fixed simulation timestep in seconds.
func (qu Quality) Timestep() float32 {
	switch qu {
	case QualityLow:
		return 1.0 / 30
	case QualityMedium:
		return 1.0 / 60
	default:
		return 1.0 / 120
	}
}

// Iterations returns the number of velocity solver iterations run
// per substep.
func (qu Quality) Iterations() int {
	switch qu {
	case QualityLow:
		return 4
	case QualityMedium:
		return 8
	case QualityHigh:
		return 12
	default:
		return 16
	}
}

// ParticleScale returns the multiplier applied to base particle
// counts by the effects engine.
func (qu Quality) ParticleScale() float32 {
	switch qu {
	case QualityLow:
		return 0.3
	case QualityMedium:
		return 0.6
	default:
		return 1
	}
}

// GridBroad reports whether this tier uses the spatial hash grid
// broad phase instead of the brute force pair scan.
func (qu Quality) GridBroad() bool {
	return qu != QualityLow
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gambit

import (
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/gambit/physics"
)

// Options configures a new [Engine]. Use [OpenOptions] to read one
// from a TOML file, or start from [Options.Defaults].
type Options struct {

	// Quality is the simulation and effects quality tier for both
	// the physics world and particle counts.
	Quality physics.Quality

	// Gravity is the world gravity acceleration.
	Gravity math32.Vector3

	// MaxConcurrent caps the simultaneously active animation jobs.
	MaxConcurrent int `default:"8"`

	// MaxSubSteps bounds the fixed physics substeps in one frame.
	MaxSubSteps int `default:"3"`

	// TimeScale multiplies frame time before it reaches the
	// subsystems: 1 is real time, 0.5 is half speed.
	TimeScale float32 `default:"1"`
}

// Defaults sets standard values: high quality, earth gravity, and
// the default tag values for the scalar fields.
func (op *Options) Defaults() {
	cli.SetFromDefaults(op)
	op.Quality = physics.QualityHigh
	op.Gravity = physics.DefaultGravity()
}

// OpenOptions reads options from the given TOML file, starting from
// defaults so that fields absent from the file keep their standard
// values.
func OpenOptions(filename string) (*Options, error) {
	op := &Options{}
	op.Defaults()
	err := tomlx.Open(op, filename)
	return op, err
}

// Save writes the options to the given TOML file.
func (op *Options) Save(filename string) error {
	return tomlx.Save(op, filename)
}

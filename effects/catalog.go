// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package effects

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// EffectKinds are the catalog particle effects for board events.
// Each kind maps to a fixed base particle count, color, and point
// size; counts scale down at lower quality tiers.
type EffectKinds int32 //enums:enum -trim-prefix Effect -transform kebab

const (
	// EffectDefault is the fallback burst for untyped events.
	EffectDefault EffectKinds = iota

	// EffectMove marks an ordinary piece move.
	EffectMove

	// EffectCapture marks a piece capture.
	EffectCapture

	// EffectCheckmate marks the end of the game.
	EffectCheckmate

	// EffectEvolution marks a piece evolution.
	EffectEvolution
)

// BaseCount returns the full-quality particle count for the kind.
// Out-of-range kinds use the default row.
func (ek EffectKinds) BaseCount() int {
	switch ek {
	case EffectMove:
		return 15
	case EffectCapture:
		return 30
	case EffectCheckmate:
		return 50
	case EffectEvolution:
		return 40
	default:
		return 10
	}
}

// Color returns the point color for the kind.
func (ek EffectKinds) Color() color.RGBA {
	switch ek {
	case EffectMove:
		return colors.Lightskyblue
	case EffectCapture:
		return colors.Red
	case EffectCheckmate:
		return colors.Gold
	case EffectEvolution:
		return colors.Mediumpurple
	default:
		return colors.White
	}
}

// Size returns the point size in world units for the kind.
func (ek EffectKinds) Size() float32 {
	switch ek {
	case EffectMove:
		return 0.04
	case EffectCapture:
		return 0.05
	case EffectCheckmate:
		return 0.08
	case EffectEvolution:
		return 0.06
	default:
		return 0.03
	}
}

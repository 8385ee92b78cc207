// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "cogentcore.org/core/math32"

// Easings are the easing curves that map raw job progress to the
// eased progress that animation payloads are evaluated at.
type Easings int32 //enums:enum -trim-prefix Ease -transform kebab

const (
	// EaseCubicInOut accelerates through the first half of the
	// animation and decelerates through the second. It is the
	// default easing.
	EaseCubicInOut Easings = iota

	// EaseLinear applies no easing.
	EaseLinear

	// EaseQuadInOut is a gentler in-out curve than cubic.
	EaseQuadInOut

	// EaseSineInOut follows a half cosine wave.
	EaseSineInOut
)

// Ease maps raw progress p in [0, 1] to eased progress. The curve
// endpoints are fixed: Ease(0) = 0 and Ease(1) = 1 for every easing.
func (es Easings) Ease(p float32) float32 {
	switch es {
	case EaseLinear:
		return p
	case EaseQuadInOut:
		if p < 0.5 {
			return 2 * p * p
		}
		q := -2*p + 2
		return 1 - q*q/2
	case EaseSineInOut:
		return -(math32.Cos(math32.Pi*p) - 1) / 2
	default:
		if p < 0.5 {
			return 4 * p * p * p
		}
		q := -2*p + 2
		return 1 - q*q*q/2
	}
}

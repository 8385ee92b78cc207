// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestEaseEndpoints(t *testing.T) {
	for _, es := range EasingsValues() {
		tolassert.Equal(t, 0, es.Ease(0), es.String())
		tolassert.Equal(t, 1, es.Ease(1), es.String())
	}
}

func TestEaseCurves(t *testing.T) {
	tests := []struct {
		ease Easings
		p    float32
		want float32
	}{
		{EaseLinear, 0.25, 0.25},
		{EaseLinear, 0.5, 0.5},
		{EaseCubicInOut, 0.25, 0.0625},
		{EaseCubicInOut, 0.5, 0.5},
		{EaseCubicInOut, 0.75, 0.9375},
		{EaseQuadInOut, 0.25, 0.125},
		{EaseQuadInOut, 0.75, 0.875},
		{EaseSineInOut, 0.25, 0.14644661},
		{EaseSineInOut, 0.5, 0.5},
	}
	for _, test := range tests {
		tolassert.EqualTol(t, test.want, test.ease.Ease(test.p), 1.0e-6, test.ease.String(), test.p)
	}
}

func TestTrajectoryLinear(t *testing.T) {
	from := math32.Vec3(1, 2, 3)
	to := math32.Vec3(5, 2, -1)
	pos := TrajectoryLinear.Pos(from, to, 0.5)
	tolassert.Equal(t, 3, pos.X)
	tolassert.Equal(t, 2, pos.Y)
	tolassert.Equal(t, 1, pos.Z)
	assert.Equal(t, from, TrajectoryLinear.Pos(from, to, 0))
	assert.Equal(t, to, TrajectoryLinear.Pos(from, to, 1))
}

func TestTrajectoryArc(t *testing.T) {
	from := math32.Vec3(0, 0, 0)
	to := math32.Vec3(10, 0, 0)

	start := TrajectoryArc.Pos(from, to, 0)
	end := TrajectoryArc.Pos(from, to, 1)
	tolassert.Equal(t, 0, start.DistanceTo(from))
	tolassert.Equal(t, 0, end.DistanceTo(to))

	// apex of the Bezier: midpoint lifted by half the control point
	// height, which is distance * 0.3 here
	mid := TrajectoryArc.Pos(from, to, 0.5)
	tolassert.Equal(t, 5, mid.X)
	tolassert.Equal(t, 1.5, mid.Y)

	// short hops still get the minimum lift
	near := math32.Vec3(0.5, 0, 0)
	mid = TrajectoryArc.Pos(from, near, 0.5)
	tolassert.Equal(t, 0.25, mid.Y)
}

func TestTrajectoryProjectile(t *testing.T) {
	from := math32.Vec3(0, 0, 0)
	to := math32.Vec3(10, 0, 0)

	// flat flight: height follows dist * p * (1-p) for a 45 degree
	// launch, returning to the board plane at the destination
	for _, p := range []float32{0, 0.25, 0.5, 0.75, 1} {
		pos := TrajectoryPhysicsProjectile.Pos(from, to, p)
		tolassert.EqualTol(t, 10*p, pos.X, 1.0e-5)
		tolassert.EqualTol(t, 10*p*(1-p), pos.Y, 1.0e-4)
		tolassert.Equal(t, 0, pos.Z)
	}

	// flight onto a raised destination never dips below it
	up := math32.Vec3(10, 5, 0)
	late := TrajectoryPhysicsProjectile.Pos(from, up, 0.9)
	tolassert.Equal(t, 5, late.Y)
	end := TrajectoryPhysicsProjectile.Pos(from, up, 1)
	tolassert.Equal(t, 0, end.DistanceTo(up))

	// degenerate zero-distance move stays put
	assert.Equal(t, from, TrajectoryPhysicsProjectile.Pos(from, from, 0.5))
}

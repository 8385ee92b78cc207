// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"cogentcore.org/core/math32"
)

// State is the kinematic state of a body: position, orientation,
// and linear and angular velocity. Mass and material properties go
// in [Rigid].
type State struct {

	// Pos is the position of the center of mass.
	Pos math32.Vector3

	// Quat is the orientation.
	Quat math32.Quat

	// LinVel is the linear velocity.
	LinVel math32.Vector3

	// AngVel is the angular velocity.
	AngVel math32.Vector3
}

// Defaults sets a valid identity orientation if none is set.
func (st *State) Defaults() {
	if st.Quat.IsNil() {
		st.Quat.SetIdentity()
	}
}

// AngMotionMax is the maximum angular motion per step.
const AngMotionMax = math.Pi / 4

// StepByAngVel steps the Quat rotation from the angular velocity.
func (st *State) StepByAngVel(step float32) {
	ang := math32.Sqrt(st.AngVel.Dot(st.AngVel))

	// limit the angular motion
	if ang*step > AngMotionMax {
		ang = AngMotionMax / step
	}
	var axis math32.Vector3
	if ang < 0.001 {
		// use Taylor's expansions of sync function
		axis = st.AngVel.MulScalar(0.5*step - (step*step*step)*0.020833333333*ang*ang)
	} else {
		// sync(fAngle) = sin(c*fAngle)/t
		axis = st.AngVel.MulScalar(math32.Sin(0.5*ang*step) / ang)
	}
	var dq math32.Quat
	dq.SetFromAxisAngle(axis, ang*step)
	st.Quat = dq.Mul(st.Quat)
	st.Quat.Normalize()
}

// StepByLinVel steps the Pos from the linear velocity.
func (st *State) StepByLinVel(step float32) {
	st.Pos = st.Pos.Add(st.LinVel.MulScalar(step))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "cogentcore.org/core/math32"

const (
	// gravity is the projectile gravitational acceleration in
	// m/s^2, matching the physics world default.
	gravity = 9.81

	// arcHeightFactor scales the arc control point lift by the
	// distance between the endpoints.
	arcHeightFactor = 0.3

	// arcMinHeight is the minimum arc control point lift.
	arcMinHeight = 0.5

	// arcYawMax is the peak yaw angle in radians applied to the
	// visual during arc flight.
	arcYawMax = 0.1
)

// Trajectories are the flight paths available to [Move] jobs.
type Trajectories int32 //enums:enum -trim-prefix Trajectory -transform kebab

const (
	// TrajectoryLinear interpolates position in a straight line.
	TrajectoryLinear Trajectories = iota

	// TrajectoryArc follows a quadratic Bezier curve through a
	// control point raised above the midpoint, with a slight yaw
	// wobble during flight.
	TrajectoryArc

	// TrajectoryPhysicsProjectile follows ballistic flight launched
	// at 45 degrees, with height clamped so the visual never drops
	// below the destination.
	TrajectoryPhysicsProjectile
)

// Pos returns the position from from to to along the trajectory, at
// eased progress p in [0, 1].
func (tr Trajectories) Pos(from, to math32.Vector3, p float32) math32.Vector3 {
	switch tr {
	case TrajectoryArc:
		return arcPos(from, to, p)
	case TrajectoryPhysicsProjectile:
		return projectilePos(from, to, p)
	default:
		return from.Lerp(to, p)
	}
}

// arcPos evaluates a quadratic Bezier between from and to, through
// a control point at the midpoint raised by
// max(arcMinHeight, distance * arcHeightFactor).
func arcPos(from, to math32.Vector3, p float32) math32.Vector3 {
	ctrl := from.Add(to).MulScalar(0.5)
	ctrl.Y += math32.Max(arcMinHeight, from.DistanceTo(to)*arcHeightFactor)
	q := 1 - p
	pos := from.MulScalar(q * q)
	pos.SetAdd(ctrl.MulScalar(2 * q * p))
	pos.SetAdd(to.MulScalar(p * p))
	return pos
}

// projectilePos evaluates ballistic flight at normalized time p,
// launching at 45 degrees with the initial speed that covers the
// distance between the endpoints.
func projectilePos(from, to math32.Vector3, p float32) math32.Vector3 {
	dist := from.DistanceTo(to)
	if dist < 1.0e-6 {
		return to
	}
	const angle = math32.Pi / 4
	speed := math32.Sqrt(dist * gravity / math32.Sin(2*angle))
	total := dist / (speed * math32.Cos(angle))
	t := p * total
	pos := from.Lerp(to, p)
	y := from.Y + speed*math32.Sin(angle)*t - 0.5*gravity*t*t
	pos.Y = math32.Max(y, to.Y)
	return pos
}

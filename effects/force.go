// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package effects

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ForceKinds are the spatial force field shapes.
type ForceKinds int32 //enums:enum -trim-prefix Force -transform kebab

const (
	// ForceExplosion pushes bodies radially away from the origin.
	ForceExplosion ForceKinds = iota

	// ForceAttraction pulls bodies radially toward the origin.
	ForceAttraction

	// ForceRepulsion pushes bodies radially away from the origin,
	// like an explosion but conventionally longer lived.
	ForceRepulsion

	// ForceVortex swirls bodies around the vertical axis through
	// the origin: 70% tangential, 30% inward.
	ForceVortex

	// ForceDirectional pushes every body in range along a caller
	// supplied unit direction.
	ForceDirectional
)

// vortex blend weights.
const (
	vortexTangential = 0.7
	vortexInward     = 0.3
)

// ForceEffect is a timed spatial force source applied to physics
// bodies within its radius on every engine update until its
// duration elapses. Expiry never destroys particle visuals, and
// bodies already pushed keep their momentum.
type ForceEffect struct {

	// Kind selects the force field shape.
	Kind ForceKinds

	// Strength is the force magnitude at the origin, falling off
	// linearly to zero at Radius.
	Strength float32

	// Radius is the influence radius.
	Radius float32

	// Duration is the lifetime in seconds.
	Duration float32

	// Pos is the world origin of the field.
	Pos math32.Vector3

	// Dir is the unit push direction, used by ForceDirectional only.
	Dir math32.Vector3

	remaining float32
}

// validate rejects malformed effects at the call that introduced
// them.
func (fe *ForceEffect) validate() error {
	if fe.Kind < 0 || fe.Kind >= ForceKindsN {
		return errors.Log(fmt.Errorf("effects: unknown force kind %d", fe.Kind))
	}
	if fe.Strength <= 0 {
		return errors.Log(fmt.Errorf("effects: force strength must be positive, got %g", fe.Strength))
	}
	if fe.Radius <= 0 {
		return errors.Log(fmt.Errorf("effects: force radius must be positive, got %g", fe.Radius))
	}
	if fe.Duration <= 0 {
		return errors.Log(fmt.Errorf("effects: force duration must be positive, got %g", fe.Duration))
	}
	if fe.Kind == ForceDirectional {
		if math32.Abs(fe.Dir.LengthSquared()-1) > 1.0e-3 {
			return errors.Log(fmt.Errorf("effects: directional force requires a unit direction, got length %g", fe.Dir.Length()))
		}
	}
	return nil
}

// Remaining returns the seconds of influence left.
func (fe *ForceEffect) Remaining() float32 { return fe.remaining }

// ForceAt returns the force the field exerts on a body at pos, and
// whether pos is within the radius. The magnitude is
// strength * max(0, 1 - distance/radius) along the kind's direction.
func (fe *ForceEffect) ForceAt(pos math32.Vector3) (math32.Vector3, bool) {
	rad := pos.Sub(fe.Pos)
	dist := rad.Length()
	if dist > fe.Radius {
		return math32.Vector3{}, false
	}
	falloff := 1 - dist/fe.Radius
	var dir math32.Vector3
	switch fe.Kind {
	case ForceExplosion, ForceRepulsion:
		dir = radialOut(rad, dist)
	case ForceAttraction:
		dir = radialOut(rad, dist).Negate()
	case ForceVortex:
		out := radialOut(rad, dist)
		tan := math32.Vec3(0, 1, 0).Cross(out)
		dir = tan.MulScalar(vortexTangential).Sub(out.MulScalar(vortexInward))
	case ForceDirectional:
		dir = fe.Dir
	}
	return dir.MulScalar(fe.Strength * falloff), true
}

// radialOut returns the unit vector along rad, or +Y for a body
// sitting exactly on the origin.
func radialOut(rad math32.Vector3, dist float32) math32.Vector3 {
	if dist < 1.0e-6 {
		return math32.Vec3(0, 1, 0)
	}
	return rad.DivScalar(dist)
}

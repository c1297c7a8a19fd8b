// Package physics provides floating-point kinematics for screen-space particles.
package physics

// Kinetic is a point in screen space with a velocity, both in character cells
type Kinetic struct {
	X, Y   float64
	VX, VY float64
}

// Integrate advances the position by one tick of velocity: p = p + v
func Integrate(k *Kinetic) {
	k.X += k.VX
	k.Y += k.VY
}

// Damp scales velocity by factor (exponential decay when factor < 1)
func Damp(k *Kinetic, factor float64) {
	k.VX *= factor
	k.VY *= factor
}

// SetImpulse overrides velocity
func SetImpulse(k *Kinetic, vx, vy float64) {
	k.VX = vx
	k.VY = vy
}

// ReflectBoundsX negates horizontal velocity when the position touches or
// passes either edge of [0, width] while still heading outward. Position is
// left untouched and the magnitude is preserved. A point already heading
// back inside keeps its velocity. Returns true if reflection occurred.
func ReflectBoundsX(k *Kinetic, width float64) bool {
	if (k.X <= 0 && k.VX < 0) || (k.X >= width && k.VX > 0) {
		k.VX = -k.VX
		return true
	}
	return false
}

// ReflectBoundsY is ReflectBoundsX for the vertical axis
func ReflectBoundsY(k *Kinetic, height float64) bool {
	if (k.Y <= 0 && k.VY < 0) || (k.Y >= height && k.VY > 0) {
		k.VY = -k.VY
		return true
	}
	return false
}

// ReflectBounds handles both axis boundary reflections, returns true if any reflection occurred
func ReflectBounds(k *Kinetic, width, height float64) bool {
	rx := ReflectBoundsX(k, width)
	ry := ReflectBoundsY(k, height)
	return rx || ry
}

// Speed2 returns the squared velocity magnitude
func Speed2(k *Kinetic) float64 {
	return k.VX*k.VX + k.VY*k.VY
}

// GridPos maps the float position to a display cell, truncating toward zero
func GridPos(k *Kinetic) (x, y int) {
	return int(k.X), int(k.Y)
}

package player

// ControllerOption is a functional option for configuring a Controller.
// Use the With* functions to create options.
type ControllerOption func(c *playerController)

// WithHeading sets the initial yaw angle in radians.
//
// Parameters:
//   - heading: the initial heading
//
// Returns:
//   - ControllerOption: option function to apply
func WithHeading(heading float32) ControllerOption {
	return func(c *playerController) {
		c.heading = heading
	}
}

// WithCameraPitch sets the initial camera pitch in radians, measured from the
// vertical axis. Clamped into the pitch bounds at construction.
//
// Parameters:
//   - pitch: the initial pitch
//
// Returns:
//   - ControllerOption: option function to apply
func WithCameraPitch(pitch float32) ControllerOption {
	return func(c *playerController) {
		c.cameraPitch = pitch
	}
}

// WithCameraDistance sets the initial orbit radius in world units. Clamped
// into the distance bounds at construction.
//
// Parameters:
//   - distance: the initial distance
//
// Returns:
//   - ControllerOption: option function to apply
func WithCameraDistance(distance float32) ControllerOption {
	return func(c *playerController) {
		c.cameraDistance = distance
	}
}

// WithPitchBounds sets the minimum and maximum camera pitch in radians.
//
// Parameters:
//   - minPitch: the lower pitch bound
//   - maxPitch: the upper pitch bound
//
// Returns:
//   - ControllerOption: option function to apply
func WithPitchBounds(minPitch, maxPitch float32) ControllerOption {
	return func(c *playerController) {
		c.minPitch = minPitch
		c.maxPitch = maxPitch
	}
}

// WithDistanceBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - minDistance: the lower distance bound
//   - maxDistance: the upper distance bound
//
// Returns:
//   - ControllerOption: option function to apply
func WithDistanceBounds(minDistance, maxDistance float32) ControllerOption {
	return func(c *playerController) {
		c.minDistance = minDistance
		c.maxDistance = maxDistance
	}
}

// WithLookSensitivity sets the pitch input multiplier.
//
// Parameters:
//   - sensitivity: the multiplier applied to vertical look input
//
// Returns:
//   - ControllerOption: option function to apply
func WithLookSensitivity(sensitivity float32) ControllerOption {
	return func(c *playerController) {
		c.lookSensitivity = sensitivity
	}
}

// WithZoomSensitivity sets the zoom input multiplier.
//
// Parameters:
//   - sensitivity: the multiplier applied to wheel input
//
// Returns:
//   - ControllerOption: option function to apply
func WithZoomSensitivity(sensitivity float32) ControllerOption {
	return func(c *playerController) {
		c.zoomSensitivity = sensitivity
	}
}

// WithMoveSpeed sets the planar movement speed in world units per second.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - ControllerOption: option function to apply
func WithMoveSpeed(speed float32) ControllerOption {
	return func(c *playerController) {
		c.moveSpeed = speed
	}
}

// WithCamera binds the camera entity at construction, equivalent to calling
// BindCamera immediately after NewController.
//
// Parameters:
//   - id: the camera entity ID
//
// Returns:
//   - ControllerOption: option function to apply
func WithCamera(id uint64) ControllerOption {
	return func(c *playerController) {
		c.cameraID = id
		c.cameraBound = true
	}
}

// WithMovementKeys sets the four movement key bindings. Defaults are WASD.
//
// Parameters:
//   - forward: key code for forward movement
//   - back: key code for backward movement
//   - left: key code for leftward movement
//   - right: key code for rightward movement
//
// Returns:
//   - ControllerOption: option function to apply
func WithMovementKeys(forward, back, left, right uint32) ControllerOption {
	return func(c *playerController) {
		c.keyForward = forward
		c.keyBack = back
		c.keyLeft = left
		c.keyRight = right
	}
}

package scene

import "github.com/go-gl/mathgl/mgl32"

// EntityBuilderOption is a functional option for configuring an Entity.
// Use the With* functions to create options.
type EntityBuilderOption func(e *sceneEntity)

// WithName sets the entity's display name.
//
// Parameters:
//   - name: the name to assign
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithName(name string) EntityBuilderOption {
	return func(e *sceneEntity) {
		e.name = name
	}
}

// WithPosition sets the entity's initial local-space position.
//
// Parameters:
//   - p: the local position
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithPosition(p mgl32.Vec3) EntityBuilderOption {
	return func(e *sceneEntity) {
		e.local.Position = p
	}
}

// WithRotation sets the entity's initial local-space orientation.
//
// Parameters:
//   - q: the local orientation
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithRotation(q mgl32.Quat) EntityBuilderOption {
	return func(e *sceneEntity) {
		e.local.Rotation = q
	}
}

// WithScale sets the entity's initial local-space scale.
//
// Parameters:
//   - s: the local scale
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithScale(s mgl32.Vec3) EntityBuilderOption {
	return func(e *sceneEntity) {
		e.local.Scale = s
	}
}

// WithTransform sets the entity's full initial local-space transform.
//
// Parameters:
//   - t: the local pose
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithTransform(t Transform) EntityBuilderOption {
	return func(e *sceneEntity) {
		e.local = t
	}
}

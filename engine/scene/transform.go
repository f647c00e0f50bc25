package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a pose: position, orientation, and scale. An entity's
// transform is authored in its parent's space; entities without a parent are
// in world space already. Plain value type, copy freely.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// IdentityTransform returns a transform at the origin with identity rotation
// and unit scale.
//
// Returns:
//   - Transform: the identity pose
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Forward returns the +Z basis vector rotated by the transform's orientation.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// Right returns the +X basis vector rotated by the transform's orientation.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the +Y basis vector rotated by the transform's orientation.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Mul composes this transform with a child pose expressed in this transform's
// space, returning the child's pose in this transform's parent space. Chaining
// Mul from the root down yields world-space poses.
//
// Parameters:
//   - child: the pose local to this transform
//
// Returns:
//   - Transform: the composed pose
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(mulElem(t.Scale, child.Position))),
		Rotation: t.Rotation.Mul(child.Rotation),
		Scale:    mulElem(t.Scale, child.Scale),
	}
}

// mulElem multiplies two vectors component-wise.
func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Entity is a node in the scene graph: a stable identifier, a display name,
// and a transform local to the entity's parent (world space when unparented).
// Transform reads and writes are safe for concurrent use; parent/child
// structure lives on the Scene, not the entity.
type Entity interface {
	// ID returns the entity's unique identifier. Zero means the entity has
	// not been spawned into a scene yet.
	//
	// Returns:
	//   - uint64: the entity ID
	ID() uint64

	// SetID sets the entity's unique identifier. Assigned by the scene when
	// the entity is spawned with a zero ID.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the entity's display name.
	//
	// Returns:
	//   - string: the name, possibly empty
	Name() string

	// SetName sets the entity's display name.
	//
	// Parameters:
	//   - name: the name to assign
	SetName(name string)

	// Local returns the entity's full local-space transform.
	//
	// Returns:
	//   - Transform: the local pose
	Local() Transform

	// SetLocal replaces the entity's full local-space transform.
	//
	// Parameters:
	//   - t: the new local pose
	SetLocal(t Transform)

	// Position returns the entity's local-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the local position
	Position() mgl32.Vec3

	// SetPosition updates the entity's local-space position, preserving
	// rotation and scale.
	//
	// Parameters:
	//   - p: the new local position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the entity's local-space orientation.
	//
	// Returns:
	//   - mgl32.Quat: the local orientation
	Rotation() mgl32.Quat

	// SetRotation updates the entity's local-space orientation, preserving
	// position and scale.
	//
	// Parameters:
	//   - q: the new local orientation
	SetRotation(q mgl32.Quat)

	// Scale returns the entity's local-space scale.
	//
	// Returns:
	//   - mgl32.Vec3: the local scale
	Scale() mgl32.Vec3

	// SetScale updates the entity's local-space scale, preserving position
	// and rotation.
	//
	// Parameters:
	//   - s: the new local scale
	SetScale(s mgl32.Vec3)

	// Forward returns the entity's +Z basis vector in local space, derived
	// from the current orientation.
	//
	// Returns:
	//   - mgl32.Vec3: the forward basis vector
	Forward() mgl32.Vec3

	// Right returns the entity's +X basis vector in local space, derived
	// from the current orientation.
	//
	// Returns:
	//   - mgl32.Vec3: the right basis vector
	Right() mgl32.Vec3
}

type sceneEntity struct {
	id uint64

	mu    sync.RWMutex
	name  string
	local Transform
}

var _ Entity = &sceneEntity{}

// NewEntity creates a new Entity configured with the given options. The
// transform defaults to identity; the ID is assigned when the entity is
// spawned into a scene.
//
// Parameters:
//   - options: functional options to configure the entity
//
// Returns:
//   - Entity: the newly created entity
func NewEntity(options ...EntityBuilderOption) Entity {
	e := &sceneEntity{
		local: IdentityTransform(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *sceneEntity) ID() uint64 {
	return e.id
}

func (e *sceneEntity) SetID(id uint64) {
	e.id = id
}

func (e *sceneEntity) Name() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.name
}

func (e *sceneEntity) SetName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.name = name
}

func (e *sceneEntity) Local() Transform {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.local
}

func (e *sceneEntity) SetLocal(t Transform) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.local = t
}

func (e *sceneEntity) Position() mgl32.Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.local.Position
}

func (e *sceneEntity) SetPosition(p mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.local.Position = p
}

func (e *sceneEntity) Rotation() mgl32.Quat {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.local.Rotation
}

func (e *sceneEntity) SetRotation(q mgl32.Quat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.local.Rotation = q
}

func (e *sceneEntity) Scale() mgl32.Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.local.Scale
}

func (e *sceneEntity) SetScale(s mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.local.Scale = s
}

func (e *sceneEntity) Forward() mgl32.Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.local.Forward()
}

func (e *sceneEntity) Right() mgl32.Vec3 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.local.Right()
}

package player

import (
	"errors"
	"math"
	"sync"

	"github.com/Carmen-Shannon/orbit-go/common"
	"github.com/Carmen-Shannon/orbit-go/engine/input"
	"github.com/Carmen-Shannon/orbit-go/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrCameraBound is returned by BindCamera when the controller already has a
// camera entity. The association is made once at setup and never reassigned.
var ErrCameraBound = errors.New("player: camera entity already bound")

// Controller drives a third-person player from per-frame input. Each Update
// integrates aggregated look/zoom deltas into heading, camera pitch, and
// camera distance, applies keyboard movement on the ground plane, writes the
// player's yaw orientation, and places the orbiting camera in player-local
// space. Pitch and distance are clamped back into their bounds on every
// update.
// Thread-safe for concurrent access.
type Controller interface {
	// Update advances the controller by one frame. It consumes the frame's
	// aggregated input sample and the live keyboard state, then writes the
	// player entity's transform and the camera entity's local transform
	// through the scene. A player entity that fails to resolve skips the
	// transform writes; a camera entity that fails to resolve skips only the
	// camera placement. Neither case is an error and both retry next frame.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous frame
	//   - sample: the frame's aggregated look and zoom deltas
	//   - keys: live keyboard state, may be nil for no movement input
	Update(dt float32, sample input.Sample, keys input.KeyState)

	// PlayerEntity returns the ID of the player entity this controller
	// drives.
	//
	// Returns:
	//   - uint64: the player entity ID
	PlayerEntity() uint64

	// CameraEntity returns the bound camera entity ID.
	//
	// Returns:
	//   - uint64: the camera entity ID, zero if unbound
	//   - bool: true if a camera has been bound
	CameraEntity() (uint64, bool)

	// BindCamera associates the camera entity the controller places each
	// frame. The association is permanent for the controller's lifetime.
	//
	// Parameters:
	//   - id: the camera entity ID
	//
	// Returns:
	//   - error: ErrCameraBound if a camera is already bound
	BindCamera(id uint64) error

	// Heading returns the accumulated yaw angle in radians. Unbounded; it
	// wraps implicitly through the trigonometry that consumes it.
	Heading() float32

	// SetHeading sets the yaw angle in radians.
	//
	// Parameters:
	//   - heading: the new heading
	SetHeading(heading float32)

	// CameraPitch returns the camera pitch angle in radians, measured from
	// the vertical axis. Always within the pitch bounds.
	CameraPitch() float32

	// SetCameraPitch sets the camera pitch in radians, clamped to the pitch
	// bounds.
	//
	// Parameters:
	//   - pitch: the new pitch
	SetCameraPitch(pitch float32)

	// CameraDistance returns the orbit radius in world units. Always within
	// the distance bounds.
	CameraDistance() float32

	// SetCameraDistance sets the orbit radius, clamped to the distance
	// bounds.
	//
	// Parameters:
	//   - distance: the new distance
	SetCameraDistance(distance float32)

	// LookSensitivity returns the pitch input multiplier.
	LookSensitivity() float32

	// SetLookSensitivity sets the pitch input multiplier.
	//
	// Parameters:
	//   - sensitivity: the new multiplier
	SetLookSensitivity(sensitivity float32)

	// ZoomSensitivity returns the zoom input multiplier.
	ZoomSensitivity() float32

	// SetZoomSensitivity sets the zoom input multiplier.
	//
	// Parameters:
	//   - sensitivity: the new multiplier
	SetZoomSensitivity(sensitivity float32)

	// MoveSpeed returns the planar movement speed in world units per second.
	MoveSpeed() float32

	// SetMoveSpeed sets the planar movement speed in world units per second.
	//
	// Parameters:
	//   - speed: the new speed
	SetMoveSpeed(speed float32)
}

// playerController is the single implementation of Controller. Scalar orbit
// state lives here; entity transforms live in the scene and are written
// through it each frame.
type playerController struct {
	mu *sync.Mutex

	sc       scene.Scene
	playerID uint64

	cameraID    uint64
	cameraBound bool

	heading        float32
	cameraPitch    float32 // radians from the vertical axis
	cameraDistance float32

	// Orbit constraints
	minPitch    float32
	maxPitch    float32
	minDistance float32
	maxDistance float32

	// Input tuning
	lookSensitivity float32
	zoomSensitivity float32
	moveSpeed       float32

	// Movement key bindings
	keyForward uint32
	keyBack    uint32
	keyLeft    uint32
	keyRight   uint32
}

// Compile-time interface compliance check
var _ Controller = &playerController{}

// NewController creates a controller for the given player entity with
// sensible defaults: pitch 30 degrees, distance 20, pitch bounds 1-179
// degrees, distance bounds 5-30, WASD movement. Initial pitch and distance
// are clamped into bounds after options apply.
//
// Panics if the scene is nil.
//
// Parameters:
//   - sc: the scene holding the player and camera entities (must not be nil)
//   - playerID: the player entity this controller drives
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(sc scene.Scene, playerID uint64, options ...ControllerOption) Controller {
	if sc == nil {
		panic("player: NewController requires a non-nil Scene")
	}

	c := &playerController{
		mu:       &sync.Mutex{},
		sc:       sc,
		playerID: playerID,

		heading:        0,
		cameraPitch:    mgl32.DegToRad(30),
		cameraDistance: 20,

		minPitch:    mgl32.DegToRad(1),
		maxPitch:    mgl32.DegToRad(179),
		minDistance: 5,
		maxDistance: 30,

		lookSensitivity: 1.0,
		zoomSensitivity: 10.0,
		moveSpeed:       10.0,

		keyForward: common.KeyW,
		keyBack:    common.KeyS,
		keyLeft:    common.KeyA,
		keyRight:   common.KeyD,
	}

	for _, option := range options {
		option(c)
	}

	c.cameraPitch = mgl32.Clamp(c.cameraPitch, c.minPitch, c.maxPitch)
	c.cameraDistance = mgl32.Clamp(c.cameraDistance, c.minDistance, c.maxDistance)
	return c
}

func (c *playerController) Update(dt float32, sample input.Sample, keys input.KeyState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.heading += sample.Look.X() * dt
	c.cameraPitch -= sample.Look.Y() * dt * c.lookSensitivity
	c.cameraDistance -= sample.Zoom * dt * c.zoomSensitivity

	// Accumulation can leave either value out of range; both are pulled back
	// every frame before use.
	c.cameraPitch = mgl32.Clamp(c.cameraPitch, c.minPitch, c.maxPitch)
	c.cameraDistance = mgl32.Clamp(c.cameraDistance, c.minDistance, c.maxDistance)

	playerEnt := c.sc.Get(c.playerID)
	if playerEnt == nil {
		return
	}

	var intent mgl32.Vec2
	if keys != nil {
		if keys.Pressed(c.keyForward) {
			intent[1]++
		}
		if keys.Pressed(c.keyBack) {
			intent[1]--
		}
		if keys.Pressed(c.keyRight) {
			intent[0]++
		}
		if keys.Pressed(c.keyLeft) {
			intent[0]--
		}
	}
	if intent.X() != 0 || intent.Y() != 0 {
		intent = intent.Normalize()
	}
	intent = intent.Mul(dt * c.moveSpeed)

	// Movement projects onto the facing from the previous frame; the new
	// heading is written afterwards.
	prev := playerEnt.Local()
	forward := prev.Forward()
	forward[1] = 0
	right := prev.Right().Mul(-1)
	right[1] = 0

	next := prev
	next.Position = prev.Position.Add(forward.Mul(intent.Y())).Add(right.Mul(intent.X()))
	next.Rotation = mgl32.QuatRotate(-c.heading, mgl32.Vec3{0, 1, 0})
	playerEnt.SetLocal(next)

	if !c.cameraBound {
		return
	}
	cameraEnt := c.sc.Get(c.cameraID)
	if cameraEnt == nil {
		return
	}

	// Placement uses pitch and distance only; heading turns the player body
	// underneath the camera rather than orbiting the camera around it.
	pitch := float64(c.cameraPitch)
	camPos := mgl32.Vec3{
		0,
		float32(math.Cos(pitch)),
		-float32(math.Sin(pitch)),
	}.Normalize().Mul(c.cameraDistance)

	camLocal := cameraEnt.Local()
	camLocal.Position = camPos
	camLocal.Rotation = lookRotation(camPos, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cameraEnt.SetLocal(camLocal)
}

// lookRotation builds the orientation for an object at eye facing center,
// with -Z as the object's view direction and up as the vertical reference.
// This is the rotation component of a face-toward transform, the inverse of
// a view matrix rotation.
func lookRotation(eye, center, up mgl32.Vec3) mgl32.Quat {
	back := eye.Sub(center)
	if back.Len() < 1e-8 {
		return mgl32.QuatIdent()
	}
	back = back.Normalize()
	right := up.Cross(back)
	if right.Len() < 1e-8 {
		return mgl32.QuatIdent()
	}
	right = right.Normalize()
	newUp := back.Cross(right)

	m := mgl32.Mat4{
		right[0], right[1], right[2], 0,
		newUp[0], newUp[1], newUp[2], 0,
		back[0], back[1], back[2], 0,
		0, 0, 0, 1,
	}
	return mgl32.Mat4ToQuat(m)
}

func (c *playerController) PlayerEntity() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playerID
}

func (c *playerController) CameraEntity() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cameraID, c.cameraBound
}

func (c *playerController) BindCamera(id uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cameraBound {
		return ErrCameraBound
	}
	c.cameraID = id
	c.cameraBound = true
	return nil
}

func (c *playerController) Heading() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.heading
}

func (c *playerController) SetHeading(heading float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.heading = heading
}

func (c *playerController) CameraPitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cameraPitch
}

func (c *playerController) SetCameraPitch(pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cameraPitch = mgl32.Clamp(pitch, c.minPitch, c.maxPitch)
}

func (c *playerController) CameraDistance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cameraDistance
}

func (c *playerController) SetCameraDistance(distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cameraDistance = mgl32.Clamp(distance, c.minDistance, c.maxDistance)
}

func (c *playerController) LookSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookSensitivity
}

func (c *playerController) SetLookSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookSensitivity = sensitivity
}

func (c *playerController) ZoomSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomSensitivity
}

func (c *playerController) SetZoomSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoomSensitivity = sensitivity
}

func (c *playerController) MoveSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveSpeed
}

func (c *playerController) SetMoveSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moveSpeed = speed
}

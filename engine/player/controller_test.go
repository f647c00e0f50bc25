package player

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/orbit-go/common"
	"github.com/Carmen-Shannon/orbit-go/engine/input"
	"github.com/Carmen-Shannon/orbit-go/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

// testRig spawns a scene with a player at the origin and a camera parented to
// it, returning a controller bound to the camera.
func testRig(t *testing.T, options ...ControllerOption) (scene.Scene, uint64, uint64, Controller) {
	t.Helper()
	sc := scene.NewScene("rig")
	playerID := sc.Spawn(scene.NewEntity(scene.WithName("player")))
	cameraID := sc.Spawn(scene.NewEntity(scene.WithName("camera")))
	if err := sc.SetParent(cameraID, playerID); err != nil {
		t.Fatalf("SetParent: %v", err)
	}
	ctrl := NewController(sc, playerID, append([]ControllerOption{WithCamera(cameraID)}, options...)...)
	return sc, playerID, cameraID, ctrl
}

func expectedCameraPosition(pitch, distance float32) mgl32.Vec3 {
	p := float64(pitch)
	return mgl32.Vec3{
		0,
		float32(math.Cos(p)),
		-float32(math.Sin(p)),
	}.Normalize().Mul(distance)
}

func TestUpdateIdentityScenario(t *testing.T) {
	sc, playerID, cameraID, ctrl := testRig(t)

	ctrl.Update(1, input.Sample{}, nil)

	if got := ctrl.Heading(); got != 0 {
		t.Errorf("Heading = %v, want 0", got)
	}
	if got, want := ctrl.CameraPitch(), mgl32.DegToRad(30); got != want {
		t.Errorf("CameraPitch = %v, want %v", got, want)
	}
	if got := ctrl.CameraDistance(); got != 20 {
		t.Errorf("CameraDistance = %v, want 20", got)
	}

	if pos := sc.Get(playerID).Position(); !pos.ApproxEqualThreshold(mgl32.Vec3{}, epsilon) {
		t.Errorf("player position = %v, want origin", pos)
	}

	want := expectedCameraPosition(mgl32.DegToRad(30), 20)
	got := sc.Get(cameraID).Position()
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("camera local position = %v, want %v", got, want)
	}
}

func TestUpdateClampInvariant(t *testing.T) {
	_, _, _, ctrl := testRig(t)

	frames := []input.Sample{
		{Look: mgl32.Vec2{0, 500}},
		{Look: mgl32.Vec2{0, -500}},
		{Zoom: 1000},
		{Zoom: -1000},
		{Look: mgl32.Vec2{40, 80}, Zoom: 3},
		{Look: mgl32.Vec2{-3, -0.2}, Zoom: -0.4},
		{},
		{Look: mgl32.Vec2{0, 1e6}, Zoom: 1e6},
	}

	minPitch, maxPitch := mgl32.DegToRad(1), mgl32.DegToRad(179)
	for i, sample := range frames {
		ctrl.Update(0.016, sample, nil)
		if pitch := ctrl.CameraPitch(); pitch < minPitch || pitch > maxPitch {
			t.Fatalf("frame %d: pitch %v out of [%v, %v]", i, pitch, minPitch, maxPitch)
		}
		if dist := ctrl.CameraDistance(); dist < 5 || dist > 30 {
			t.Fatalf("frame %d: distance %v out of [5, 30]", i, dist)
		}
	}
}

func TestUpdateZoomClampScenario(t *testing.T) {
	_, _, _, ctrl := testRig(t)

	// distance 20 - 5*1*10 = -30, clamped to the lower bound.
	ctrl.Update(1, input.Sample{Zoom: 5}, nil)

	if got := ctrl.CameraDistance(); got != 5 {
		t.Fatalf("CameraDistance = %v, want 5", got)
	}
}

func TestUpdateLookIntegration(t *testing.T) {
	sc, playerID, _, ctrl := testRig(t)

	const dt = 0.5
	ctrl.Update(dt, input.Sample{Look: mgl32.Vec2{0.8, -0.4}}, nil)

	wantHeading := float32(0.8) * dt
	if got := ctrl.Heading(); !mgl32.FloatEqualThreshold(got, wantHeading, epsilon) {
		t.Errorf("Heading = %v, want %v", got, wantHeading)
	}

	wantPitch := mgl32.DegToRad(30) - float32(-0.4)*dt*1.0
	if got := ctrl.CameraPitch(); !mgl32.FloatEqualThreshold(got, wantPitch, epsilon) {
		t.Errorf("CameraPitch = %v, want %v", got, wantPitch)
	}

	// Orientation is a pure yaw of -heading.
	wantRot := mgl32.QuatRotate(-wantHeading, mgl32.Vec3{0, 1, 0})
	gotRot := sc.Get(playerID).Rotation()
	if !gotRot.ApproxEqualThreshold(wantRot, epsilon) {
		t.Errorf("player rotation = %v, want %v", gotRot, wantRot)
	}
}

func TestUpdateMovementNormalization(t *testing.T) {
	const dt = 0.25

	single := func() float32 {
		sc, playerID, _, ctrl := testRig(t)
		var kb input.Keyboard
		kb.SetDown(common.KeyW)
		ctrl.Update(dt, input.Sample{}, &kb)
		return sc.Get(playerID).Position().Len()
	}()

	diagonal := func() float32 {
		sc, playerID, _, ctrl := testRig(t)
		var kb input.Keyboard
		kb.SetDown(common.KeyW)
		kb.SetDown(common.KeyD)
		ctrl.Update(dt, input.Sample{}, &kb)
		return sc.Get(playerID).Position().Len()
	}()

	if single == 0 {
		t.Fatal("expected forward key to move the player")
	}
	if !mgl32.FloatEqualThreshold(single, diagonal, epsilon) {
		t.Fatalf("diagonal displacement %v != single-key displacement %v", diagonal, single)
	}
	if want := float32(dt) * 10; !mgl32.FloatEqualThreshold(single, want, epsilon) {
		t.Fatalf("displacement = %v, want dt*speed = %v", single, want)
	}
}

func TestUpdateMovementCancellation(t *testing.T) {
	tests := []struct {
		name string
		keys []uint32
	}{
		{name: "forward and back", keys: []uint32{common.KeyW, common.KeyS}},
		{name: "left and right", keys: []uint32{common.KeyA, common.KeyD}},
		{name: "all four", keys: []uint32{common.KeyW, common.KeyA, common.KeyS, common.KeyD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, playerID, _, ctrl := testRig(t)
			var kb input.Keyboard
			for _, k := range tt.keys {
				kb.SetDown(k)
			}

			ctrl.Update(0.5, input.Sample{}, &kb)

			if pos := sc.Get(playerID).Position(); !pos.ApproxEqualThreshold(mgl32.Vec3{}, epsilon) {
				t.Fatalf("player moved to %v with cancelling keys", pos)
			}
		})
	}
}

func TestUpdateMovementDirections(t *testing.T) {
	const dt = 1.0
	tests := []struct {
		name string
		keys []uint32
		want mgl32.Vec3
	}{
		{name: "forward is +Z", keys: []uint32{common.KeyW}, want: mgl32.Vec3{0, 0, 10}},
		{name: "back is -Z", keys: []uint32{common.KeyS}, want: mgl32.Vec3{0, 0, -10}},
		{name: "right is -X", keys: []uint32{common.KeyD}, want: mgl32.Vec3{-10, 0, 0}},
		{name: "left is +X", keys: []uint32{common.KeyA}, want: mgl32.Vec3{10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, playerID, _, ctrl := testRig(t)
			var kb input.Keyboard
			for _, k := range tt.keys {
				kb.SetDown(k)
			}

			ctrl.Update(dt, input.Sample{}, &kb)

			if pos := sc.Get(playerID).Position(); !pos.ApproxEqualThreshold(tt.want, epsilon) {
				t.Fatalf("player position = %v, want %v", pos, tt.want)
			}
		})
	}
}

func TestUpdateMovementRebinding(t *testing.T) {
	sc, playerID, _, ctrl := testRig(t,
		WithMovementKeys(common.KeyUp, common.KeyDown, common.KeyLeft, common.KeyRight),
	)
	var kb input.Keyboard

	// Old bindings are inert after a rebind.
	kb.SetDown(common.KeyW)
	ctrl.Update(1, input.Sample{}, &kb)
	if pos := sc.Get(playerID).Position(); !pos.ApproxEqualThreshold(mgl32.Vec3{}, epsilon) {
		t.Fatalf("unbound key moved the player to %v", pos)
	}

	kb.SetUp(common.KeyW)
	kb.SetDown(common.KeyUp)
	ctrl.Update(1, input.Sample{}, &kb)
	if pos := sc.Get(playerID).Position(); !pos.ApproxEqualThreshold(mgl32.Vec3{0, 0, 10}, epsilon) {
		t.Fatalf("player position = %v, want forward movement on the rebound key", pos)
	}
}

func TestUpdateMovementUsesPreviousFacing(t *testing.T) {
	sc, playerID, _, ctrl := testRig(t)
	var kb input.Keyboard
	kb.SetDown(common.KeyW)

	// Turn hard and move in the same frame: displacement must follow the
	// facing from before this frame's rotation write.
	const dt = 1.0
	turn := mgl32.DegToRad(90)
	ctrl.Update(dt, input.Sample{Look: mgl32.Vec2{turn / dt, 0}}, &kb)

	pos := sc.Get(playerID).Position()
	if !pos.ApproxEqualThreshold(mgl32.Vec3{0, 0, 10}, epsilon) {
		t.Fatalf("player position = %v, want movement along the old +Z facing", pos)
	}

	// The next frame moves along the new facing.
	ctrl.Update(dt, input.Sample{}, &kb)
	got := sc.Get(playerID).Position().Sub(pos)
	wantDir := mgl32.QuatRotate(-turn, mgl32.Vec3{0, 1, 0}).Rotate(mgl32.Vec3{0, 0, 1})
	if !got.Normalize().ApproxEqualThreshold(wantDir, 1e-3) {
		t.Fatalf("second frame moved along %v, want %v", got.Normalize(), wantDir)
	}
}

func TestUpdateCameraOrbitRadius(t *testing.T) {
	sc, _, cameraID, ctrl := testRig(t)

	samples := []input.Sample{
		{},
		{Zoom: 0.3},
		{Look: mgl32.Vec2{0, 2}},
		{Zoom: -4},
		{Look: mgl32.Vec2{1, -3}, Zoom: 0.7},
	}
	for i, sample := range samples {
		ctrl.Update(0.016, sample, nil)
		radius := sc.Get(cameraID).Position().Len()
		if !mgl32.FloatEqualThreshold(radius, ctrl.CameraDistance(), epsilon) {
			t.Fatalf("frame %d: camera radius %v != distance %v", i, radius, ctrl.CameraDistance())
		}
	}
}

func TestUpdateCameraLooksAtPlayer(t *testing.T) {
	sc, _, cameraID, ctrl := testRig(t)

	ctrl.Update(0.016, input.Sample{Look: mgl32.Vec2{0, 1.5}, Zoom: -0.2}, nil)

	cam := sc.Get(cameraID).Local()
	// The camera's view direction (-Z basis) points back at the local origin.
	viewDir := cam.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	wantDir := cam.Position.Normalize().Mul(-1)
	if !viewDir.ApproxEqualThreshold(wantDir, epsilon) {
		t.Fatalf("camera view direction = %v, want %v", viewDir, wantDir)
	}
	// World up stays up.
	camUp := cam.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
	if camUp.Y() <= 0 {
		t.Fatalf("camera up %v flipped below the horizon", camUp)
	}
}

func TestUpdateCameraFollowsPlayer(t *testing.T) {
	sc, playerID, cameraID, ctrl := testRig(t)
	var kb input.Keyboard
	kb.SetDown(common.KeyW)

	ctrl.Update(1, input.Sample{}, &kb)

	playerPos := sc.Get(playerID).Position()
	world, ok := sc.WorldTransform(cameraID)
	if !ok {
		t.Fatal("camera world transform missing")
	}
	want := playerPos.Add(sc.Get(cameraID).Position())
	if !world.Position.ApproxEqualThreshold(want, epsilon) {
		t.Fatalf("camera world position = %v, want %v", world.Position, want)
	}
}

func TestUpdateMissingCameraIsSilent(t *testing.T) {
	sc := scene.NewScene("rig")
	playerID := sc.Spawn(scene.NewEntity())
	ctrl := NewController(sc, playerID, WithCamera(777))

	ctrl.Update(1, input.Sample{Look: mgl32.Vec2{1, 1}, Zoom: 1}, nil)

	// Scalar state still advances while the camera is unresolved.
	if ctrl.Heading() == 0 {
		t.Fatal("expected heading to integrate without a camera")
	}

	// Once the entity appears under the bound ID, placement resumes.
	cam := scene.NewEntity()
	cam.SetID(777)
	sc.Spawn(cam)
	ctrl.Update(1, input.Sample{}, nil)

	radius := sc.Get(777).Position().Len()
	if !mgl32.FloatEqualThreshold(radius, ctrl.CameraDistance(), epsilon) {
		t.Fatalf("camera radius %v != distance %v after late spawn", radius, ctrl.CameraDistance())
	}
}

func TestUpdateUnboundCameraIsSilent(t *testing.T) {
	sc := scene.NewScene("rig")
	playerID := sc.Spawn(scene.NewEntity())
	cameraID := sc.Spawn(scene.NewEntity())
	ctrl := NewController(sc, playerID)

	ctrl.Update(1, input.Sample{Look: mgl32.Vec2{0.5, 0.5}}, nil)

	if pos := sc.Get(cameraID).Position(); pos != (mgl32.Vec3{}) {
		t.Fatalf("unbound camera was moved to %v", pos)
	}
}

func TestUpdateMissingPlayerSkipsTransforms(t *testing.T) {
	sc := scene.NewScene("rig")
	cameraID := sc.Spawn(scene.NewEntity())
	ctrl := NewController(sc, 555, WithCamera(cameraID))

	ctrl.Update(1, input.Sample{Look: mgl32.Vec2{2, 0}}, nil)

	if ctrl.Heading() != 2 {
		t.Fatalf("Heading = %v, want 2", ctrl.Heading())
	}
	if pos := sc.Get(cameraID).Position(); pos != (mgl32.Vec3{}) {
		t.Fatalf("camera moved to %v without a player", pos)
	}
}

func TestBindCameraOnce(t *testing.T) {
	sc := scene.NewScene("rig")
	playerID := sc.Spawn(scene.NewEntity())
	cameraID := sc.Spawn(scene.NewEntity())

	ctrl := NewController(sc, playerID)
	if _, bound := ctrl.CameraEntity(); bound {
		t.Fatal("fresh controller should have no camera")
	}

	if err := ctrl.BindCamera(cameraID); err != nil {
		t.Fatalf("BindCamera: %v", err)
	}
	if id, bound := ctrl.CameraEntity(); !bound || id != cameraID {
		t.Fatalf("CameraEntity = (%d, %v), want (%d, true)", id, bound, cameraID)
	}

	if err := ctrl.BindCamera(cameraID); !errors.Is(err, ErrCameraBound) {
		t.Fatalf("second BindCamera error = %v, want ErrCameraBound", err)
	}
}

func TestNewControllerClampsInitialState(t *testing.T) {
	sc := scene.NewScene("rig")
	playerID := sc.Spawn(scene.NewEntity())

	ctrl := NewController(sc, playerID,
		WithCameraPitch(mgl32.DegToRad(240)),
		WithCameraDistance(500),
	)

	if got, want := ctrl.CameraPitch(), mgl32.DegToRad(179); got != want {
		t.Errorf("CameraPitch = %v, want clamped %v", got, want)
	}
	if got := ctrl.CameraDistance(); got != 30 {
		t.Errorf("CameraDistance = %v, want clamped 30", got)
	}
}

func TestControllerSetterClamping(t *testing.T) {
	sc := scene.NewScene("rig")
	playerID := sc.Spawn(scene.NewEntity())
	ctrl := NewController(sc, playerID)

	ctrl.SetCameraDistance(1)
	if got := ctrl.CameraDistance(); got != 5 {
		t.Errorf("SetCameraDistance(1) -> %v, want 5", got)
	}
	ctrl.SetCameraPitch(0)
	if got, want := ctrl.CameraPitch(), mgl32.DegToRad(1); got != want {
		t.Errorf("SetCameraPitch(0) -> %v, want %v", got, want)
	}

	ctrl.SetMoveSpeed(3)
	if got := ctrl.MoveSpeed(); got != 3 {
		t.Errorf("MoveSpeed = %v, want 3", got)
	}
	ctrl.SetLookSensitivity(0.5)
	if got := ctrl.LookSensitivity(); got != 0.5 {
		t.Errorf("LookSensitivity = %v, want 0.5", got)
	}
	ctrl.SetZoomSensitivity(2)
	if got := ctrl.ZoomSensitivity(); got != 2 {
		t.Errorf("ZoomSensitivity = %v, want 2", got)
	}
}

// Drives the full per-frame pipeline the way a host does: window-style event
// pushes, aggregation, controller update, end-of-frame flush.
func TestFrameLoopIntegration(t *testing.T) {
	sc, playerID, cameraID, ctrl := testRig(t)
	src := input.NewSource()
	agg := input.NewAggregator()

	const dt = 0.1
	src.Keys.SetDown(common.KeyW)

	for frame := 0; frame < 10; frame++ {
		// Two motion events per frame; only the second may count.
		src.Motion.Send(input.MotionEvent{Delta: mgl32.Vec2{99, 99}})
		src.Motion.Send(input.MotionEvent{Delta: mgl32.Vec2{0.2, 0}})

		sample := agg.Sample(src)
		ctrl.Update(dt, sample, &src.Keys)
		src.EndFrame()
	}

	wantHeading := float32(0.2) * dt * 10
	if got := ctrl.Heading(); !mgl32.FloatEqualThreshold(got, wantHeading, 1e-3) {
		t.Errorf("Heading after 10 frames = %v, want %v", got, wantHeading)
	}

	// The player has been walking while turning, so it left the origin.
	if pos := sc.Get(playerID).Position(); pos.Len() == 0 {
		t.Error("expected the player to move over 10 frames")
	}

	radius := sc.Get(cameraID).Position().Len()
	if !mgl32.FloatEqualThreshold(radius, ctrl.CameraDistance(), epsilon) {
		t.Errorf("camera radius %v != distance %v", radius, ctrl.CameraDistance())
	}
}

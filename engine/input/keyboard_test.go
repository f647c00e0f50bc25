package input

import "testing"

func TestKeyboardPressedState(t *testing.T) {
	var kb Keyboard

	if kb.Pressed(87) {
		t.Fatal("expected key 87 released on a fresh keyboard")
	}

	kb.SetDown(87)
	if !kb.Pressed(87) {
		t.Fatal("expected key 87 pressed after SetDown")
	}
	if kb.Pressed(65) {
		t.Fatal("expected key 65 unaffected")
	}

	kb.SetUp(87)
	if kb.Pressed(87) {
		t.Fatal("expected key 87 released after SetUp")
	}
}

func TestKeyboardReset(t *testing.T) {
	var kb Keyboard
	kb.SetDown(87)
	kb.SetDown(65)

	kb.Reset()

	if kb.Pressed(87) || kb.Pressed(65) {
		t.Fatal("expected all keys released after Reset")
	}
}

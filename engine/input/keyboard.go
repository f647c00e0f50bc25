package input

import "sync"

// KeyState answers immediate pressed/released queries for virtual key codes.
// Consumers poll it during their update rather than draining a queue, so a
// key held across many frames reads as pressed on every one of them.
type KeyState interface {
	// Pressed reports whether the key is currently held down.
	//
	// Parameters:
	//   - keyCode: the virtual key code to query
	//
	// Returns:
	//   - bool: true while the key is held
	Pressed(keyCode uint32) bool
}

// Keyboard tracks live pressed state for virtual key codes. The device layer
// drives SetDown/SetUp from its key callbacks; consumers query Pressed.
// The zero value is ready to use.
type Keyboard struct {
	mu   sync.RWMutex
	down map[uint32]bool
}

var _ KeyState = &Keyboard{}

// SetDown marks a key as held.
//
// Parameters:
//   - keyCode: the virtual key code that was pressed
func (k *Keyboard) SetDown(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.down == nil {
		k.down = make(map[uint32]bool)
	}
	k.down[keyCode] = true
}

// SetUp marks a key as released.
//
// Parameters:
//   - keyCode: the virtual key code that was released
func (k *Keyboard) SetUp(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.down, keyCode)
}

// Pressed reports whether the key is currently held down.
func (k *Keyboard) Pressed(keyCode uint32) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.down[keyCode]
}

// Reset releases every key. Useful when the window loses focus and release
// events can no longer be trusted to arrive.
func (k *Keyboard) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.down)
}

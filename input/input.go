// Package input exposes the point-in-time keyboard state the game reads each
// frame. Key codes follow the DOM KeyboardEvent.code names.
package input

const (
	ArrowRight = "ArrowRight"
	ArrowLeft  = "ArrowLeft"
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	Enter      = "Enter"
	Space      = "Space"
)

// KeyState answers whether a key is held during the current frame.
type KeyState interface {
	IsPressed(code string) bool
}

// Keys is a KeyState built from press and release events. Events are
// applied between frames, so a frame always sees one consistent snapshot.
type Keys struct {
	pressed map[string]struct{}
}

func NewKeys() *Keys {
	return &Keys{pressed: make(map[string]struct{})}
}

func (k *Keys) IsPressed(code string) bool {
	if k == nil {
		return false
	}
	_, ok := k.pressed[code]
	return ok
}

func (k *Keys) SetPressed(code string) {
	if k.pressed == nil {
		k.pressed = make(map[string]struct{})
	}
	k.pressed[code] = struct{}{}
}

func (k *Keys) SetReleased(code string) {
	delete(k.pressed, code)
}

// Clear releases every key.
func (k *Keys) Clear() {
	for code := range k.pressed {
		delete(k.pressed, code)
	}
}

// Press is a key event.
type Press struct {
	Code string
	Down bool
}

// Drain applies every queued event without blocking and returns how many it
// applied.
func (k *Keys) Drain(events <-chan Press) int {
	n := 0
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return n
			}
			if ev.Down {
				k.SetPressed(ev.Code)
			} else {
				k.SetReleased(ev.Code)
			}
			n++
		default:
			return n
		}
	}
}

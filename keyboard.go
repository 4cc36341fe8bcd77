package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/walkthedog/input"
)

var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowRight: input.ArrowRight,
	ebiten.KeyArrowLeft:  input.ArrowLeft,
	ebiten.KeyArrowUp:    input.ArrowUp,
	ebiten.KeyArrowDown:  input.ArrowDown,
	ebiten.KeyEnter:      input.Enter,
	ebiten.KeySpace:      input.Space,
}

// keyboard turns ebiten's per-tick key edges into press events.
type keyboard struct {
	events chan input.Press
	buf    []ebiten.Key
}

func newKeyboard() *keyboard {
	return &keyboard{events: make(chan input.Press, 32)}
}

func (k *keyboard) poll() {
	k.buf = inpututil.AppendJustPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		k.emit(key, true)
	}
	k.buf = inpututil.AppendJustReleasedKeys(k.buf[:0])
	for _, key := range k.buf {
		k.emit(key, false)
	}
}

func (k *keyboard) emit(key ebiten.Key, down bool) {
	code, ok := keyCodes[key]
	if !ok {
		return
	}
	select {
	case k.events <- input.Press{Code: code, Down: down}:
	default:
	}
}

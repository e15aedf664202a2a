//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyPageUp, KeyPageUp},
	{ebiten.KeyPageDown, KeyPageDown},
	{ebiten.KeyHome, KeyHome},
}

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	// Arrows repeat while held so orbiting stays smooth.
	for _, hk := range hostKeys {
		switch {
		case inpututil.IsKeyJustPressed(hk.key):
			emit(KeyEvent{Code: hk.code, Press: true})
		case inpututil.IsKeyJustReleased(hk.key):
			emit(KeyEvent{Code: hk.code, Press: false})
		case hk.code <= KeyRight && ebiten.IsKeyPressed(hk.key):
			emit(KeyEvent{Code: hk.code, Press: true})
		}
	}
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	p.set(PointerState{
		X:      x,
		Y:      y,
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Shift:  ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		WheelX: wx,
		WheelY: wy,
	})
}

package app

import (
	"helix/hal"
	"helix/quarkgl"
)

const (
	keyRotateStep  = 0.05
	keyZoomStep    = 2
	dragRotateRate = 0.01
	wheelZoomRate  = 2
)

// handleInput drains pending key events and applies pointer motion.
func (v *viewer) handleInput() error {
	in := v.h.Input()
	if in == nil {
		return nil
	}
	if kbd := in.Keyboard(); kbd != nil {
		if err := v.drainKeys(kbd.Events()); err != nil {
			return err
		}
	}
	if p := in.Pointer(); p != nil {
		v.handlePointer(p.State())
	}
	return nil
}

func (v *viewer) drainKeys(ch <-chan hal.KeyEvent) error {
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if !ev.Press {
				continue
			}
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) error {
	o := &v.scene.Orbit
	switch ev.Code {
	case hal.KeyEscape:
		return ErrQuit
	case hal.KeyLeft:
		o.Rotate(keyRotateStep, 0)
	case hal.KeyRight:
		o.Rotate(-keyRotateStep, 0)
	case hal.KeyUp:
		o.Rotate(0, -keyRotateStep)
	case hal.KeyDown:
		o.Rotate(0, keyRotateStep)
	case hal.KeyPageUp:
		o.Zoom(-keyZoomStep)
	case hal.KeyPageDown:
		o.Zoom(keyZoomStep)
	case hal.KeyHome:
		v.scene.ResetView()
	case hal.KeyUnknown:
		return v.handleRune(ev.Rune)
	}
	return nil
}

func (v *viewer) handleRune(r rune) error {
	o := &v.scene.Orbit
	switch r {
	case 'q', 'Q':
		return ErrQuit
	case 'w', 'W':
		if v.r.Mode == quarkgl.RenderWireframe {
			v.r.Mode = quarkgl.RenderSolidFlat
		} else {
			v.r.Mode = quarkgl.RenderWireframe
		}
	case 'h', 'H':
		v.hud = !v.hud
	case 'r', 'R':
		v.scene.ToggleRibbons()
	case 'p', 'P':
		v.scene.ToggleProjection()
	case 'a', 'A':
		if o.AutoRotate != 0 {
			o.AutoRotate = 0
		} else {
			o.AutoRotate = v.autoRotate
			if o.AutoRotate == 0 {
				o.AutoRotate = 0.01
			}
		}
	case '+', '=':
		o.Zoom(-keyZoomStep)
	case '-', '_':
		o.Zoom(keyZoomStep)
	}
	return nil
}

// handlePointer rotates on left drag and pans on shift or right drag.
func (v *viewer) handlePointer(st hal.PointerState) {
	prev := v.ptr
	v.ptr = st

	o := &v.scene.Orbit
	if st.WheelY != 0 {
		o.Zoom(quarkgl.Scalar(-st.WheelY * wheelZoomRate))
	}

	down := st.Left || st.Right
	if !down {
		v.drag = false
		return
	}
	if !v.drag {
		v.drag = true
		return
	}
	dx := quarkgl.Scalar(st.X - prev.X)
	dy := quarkgl.Scalar(st.Y - prev.Y)
	if dx == 0 && dy == 0 {
		return
	}
	if st.Right || st.Shift {
		o.Pan(v.scene.World.Camera, dx*o.Radius/quarkgl.Scalar(v.target.H), dy*o.Radius/quarkgl.Scalar(v.target.H))
		return
	}
	o.Rotate(-dx*dragRotateRate, -dy*dragRotateRate)
}

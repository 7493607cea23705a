//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var pointerButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		p.emit(PointerEvent{Kind: PointerWheel, X: x, Y: y, DX: dx, DY: dy})
	}

	for i, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			p.emit(PointerEvent{Kind: PointerPress, X: x, Y: y, Button: uint8(i + 1)})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			p.emit(PointerEvent{Kind: PointerRelease, X: x, Y: y, Button: uint8(i + 1)})
		}
	}
}

//go:build !cgo

package hal

func (p *hostPointer) poll() {
	// No pointer support without the window backend.
}

package render

import (
	"fmt"

	"gpgpu-life/pkg/core"
)

// EncodeRGBA writes tex into buf as opaque RGBA texels: cells of at least
// core.AliveThreshold are white, the rest black. buf must hold 4*W*H bytes.
func EncodeRGBA(buf []byte, tex *core.StateTexture) error {
	cells := tex.Cells()
	if len(buf) != 4*len(cells) {
		return fmt.Errorf("render: buffer holds %d bytes, want %d", len(buf), 4*len(cells))
	}
	for i, c := range cells {
		base := i * 4
		v := uint8(0)
		if c >= core.AliveThreshold {
			v = 0xff
		}
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 0xff
	}
	return nil
}

// DecodeRGBA reads the primary (red) channel of buf back into tex. Any red
// value of at least half intensity is alive; the other channels are ignored.
func DecodeRGBA(tex *core.StateTexture, buf []byte) error {
	cells := tex.Cells()
	if len(buf) != 4*len(cells) {
		return fmt.Errorf("render: buffer holds %d bytes, want %d", len(buf), 4*len(cells))
	}
	for i := range cells {
		cells[i] = core.Dead
		if buf[i*4] >= 0x80 {
			cells[i] = core.Alive
		}
	}
	return nil
}

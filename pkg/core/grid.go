package core

// Cell values stored in the primary channel of a StateTexture.
const (
	Dead  float32 = 0
	Alive float32 = 1
)

// StateTexture stores one generation of the automaton in row-major order.
// Every cell holds exactly Dead or Alive.
type StateTexture struct {
	W, H int
	data []float32
}

// NewStateTexture allocates a dead texture with the given dimensions.
func NewStateTexture(w, h int) *StateTexture {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &StateTexture{W: w, H: h, data: make([]float32, w*h)}
}

// Size returns the texture dimensions.
func (t *StateTexture) Size() Size { return Size{W: t.W, H: t.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (t *StateTexture) Cells() []float32 { return t.data }

// Index returns the linear slice index for coordinates (x, y).
func (t *StateTexture) Index(x, y int) int { return y*t.W + x }

// In reports whether (x, y) lies inside the texture.
func (t *StateTexture) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < t.W && y < t.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (t *StateTexture) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Clamp pins the provided coordinates to the nearest edge texel.
func (t *StateTexture) Clamp(x, y int) (int, int) {
	return clampInt(x, 0, t.W-1), clampInt(y, 0, t.H-1)
}

// At returns the value at (x, y). Coordinates must be inside the texture.
func (t *StateTexture) At(x, y int) float32 { return t.data[t.Index(x, y)] }

// IsAlive reports whether the cell at (x, y) is alive. Out of range
// coordinates are dead.
func (t *StateTexture) IsAlive(x, y int) bool {
	return t.In(x, y) && t.data[t.Index(x, y)] == Alive
}

// Set marks the cell at (x, y). Out of range coordinates are ignored.
func (t *StateTexture) Set(x, y int, alive bool) {
	if !t.In(x, y) {
		return
	}
	v := Dead
	if alive {
		v = Alive
	}
	t.data[t.Index(x, y)] = v
}

// Toggle inverts the cell at (x, y) and reports its new state.
func (t *StateTexture) Toggle(x, y int) bool {
	if !t.In(x, y) {
		return false
	}
	alive := !t.IsAlive(x, y)
	t.Set(x, y, alive)
	return alive
}

// Clear fills the texture with dead cells.
func (t *StateTexture) Clear() {
	for i := range t.data {
		t.data[i] = Dead
	}
}

// AliveThreshold is the smallest value read as alive when converting
// arbitrary cell values to binary state.
const AliveThreshold float32 = 0.5

// Binarize forces every cell to Dead or Alive: values of at least
// AliveThreshold become Alive, everything else (NaN included) Dead.
func (t *StateTexture) Binarize() {
	for i, v := range t.data {
		if v >= AliveThreshold {
			t.data[i] = Alive
		} else {
			t.data[i] = Dead
		}
	}
}

// Population counts alive cells.
func (t *StateTexture) Population() int {
	n := 0
	for _, v := range t.data {
		if v == Alive {
			n++
		}
	}
	return n
}

// CopyFrom overwrites t with src. It reports false when the sizes differ.
func (t *StateTexture) CopyFrom(src *StateTexture) bool {
	if src == nil || src.W != t.W || src.H != t.H {
		return false
	}
	copy(t.data, src.data)
	return true
}

// Clone returns a deep copy of t.
func (t *StateTexture) Clone() *StateTexture {
	c := &StateTexture{W: t.W, H: t.H, data: make([]float32, len(t.data))}
	copy(c.data, t.data)
	return c
}

// Equal reports whether both textures have the same size and cells.
func (t *StateTexture) Equal(o *StateTexture) bool {
	if o == nil || t.W != o.W || t.H != o.H {
		return false
	}
	for i, v := range t.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

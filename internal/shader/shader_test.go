//go:build ebiten

package shader

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestShadersCompile(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
	}{
		{"compute", computeSource},
		{"render", renderSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ebiten.NewShader(tc.src)
			if err != nil {
				t.Fatalf("%s.kage: %v", tc.name, err)
			}
			if s == nil {
				t.Fatalf("%s.kage: nil shader", tc.name)
			}
		})
	}
}

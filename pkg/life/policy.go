package life

import (
	"fmt"
	"strings"
)

// BoundsPolicy selects how the Tile Mapper treats tiles beyond the grid.
type BoundsPolicy uint8

const (
	// BoundsChecked paints tiles outside the grid with SentinelColor.
	BoundsChecked BoundsPolicy = iota
	// BoundsUnchecked always samples and lets the EdgePolicy resolve the cell.
	BoundsUnchecked
)

func (p BoundsPolicy) String() string {
	switch p {
	case BoundsChecked:
		return "checked"
	case BoundsUnchecked:
		return "unchecked"
	default:
		return fmt.Sprintf("BoundsPolicy(%d)", uint8(p))
	}
}

// Valid reports whether p is a known policy.
func (p BoundsPolicy) Valid() bool { return p <= BoundsUnchecked }

// Set implements flag.Value.
func (p *BoundsPolicy) Set(s string) error {
	v, err := ParseBoundsPolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParseBoundsPolicy parses "checked" or "unchecked".
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checked":
		return BoundsChecked, nil
	case "unchecked":
		return BoundsUnchecked, nil
	}
	return 0, fmt.Errorf("%w: unknown bounds policy %q", ErrInvalidConfiguration, s)
}

// EdgePolicy selects how samples outside the grid are resolved. It applies to
// neighbour reads in the Rule Evaluator and to unchecked Tile Mapper reads.
type EdgePolicy uint8

const (
	// EdgeClampToDead treats every cell outside the grid as dead.
	EdgeClampToDead EdgePolicy = iota
	// EdgeWrap treats the grid as a torus.
	EdgeWrap
	// EdgeClampToEdge repeats the nearest edge cell.
	EdgeClampToEdge
)

func (p EdgePolicy) String() string {
	switch p {
	case EdgeClampToDead:
		return "clamp-to-dead"
	case EdgeWrap:
		return "wrap"
	case EdgeClampToEdge:
		return "clamp-to-edge"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", uint8(p))
	}
}

// Valid reports whether p is a known policy.
func (p EdgePolicy) Valid() bool { return p <= EdgeClampToEdge }

// Set implements flag.Value.
func (p *EdgePolicy) Set(s string) error {
	v, err := ParseEdgePolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParseEdgePolicy parses "wrap", "clamp-to-dead" or "clamp-to-edge".
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return EdgeWrap, nil
	case "clamp-to-dead", "dead":
		return EdgeClampToDead, nil
	case "clamp-to-edge", "edge":
		return EdgeClampToEdge, nil
	}
	return 0, fmt.Errorf("%w: unknown edge policy %q", ErrInvalidConfiguration, s)
}

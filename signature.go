package wangtile

import (
	"fmt"
	"strconv"
	"strings"
)

// CornerClass is the terrain class ("wang color") at one tile corner.
// Zero doubles as Tiled's "no color" value.
type CornerClass uint8

const (
	Empty  CornerClass = 0
	Filled CornerClass = 1
)

func (c CornerClass) String() string {
	switch c {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	}
	return strconv.Itoa(int(c))
}

// Corner indexes a CornerSignature.
type Corner int

const (
	NE Corner = iota
	SE
	SW
	NW
)

// WangIDLen is the number of slots in a Tiled wangid.
const WangIDLen = 8

// CornerSignature holds the classes at a tile's NE, SE, SW and NW corners,
// in that order.
type CornerSignature [4]CornerClass

// Sig builds a signature from its corners in NE, SE, SW, NW order.
func Sig(ne, se, sw, nw CornerClass) CornerSignature {
	return CornerSignature{ne, se, sw, nw}
}

// Uniform returns a signature with every corner set to c.
func Uniform(c CornerClass) CornerSignature {
	return CornerSignature{c, c, c, c}
}

// Key packs the signature into a single integer, 8 bits per corner with
// NE in the low byte.
func (s CornerSignature) Key() uint32 {
	return uint32(s[NE]) | uint32(s[SE])<<8 | uint32(s[SW])<<16 | uint32(s[NW])<<24
}

// SignatureFromKey is the inverse of Key.
func SignatureFromKey(k uint32) CornerSignature {
	return CornerSignature{
		CornerClass(k),
		CornerClass(k >> 8),
		CornerClass(k >> 16),
		CornerClass(k >> 24),
	}
}

// Complement swaps Empty and Filled on every corner. Any other class is
// left as is, so Complement(Complement(s)) == s always holds.
func (s CornerSignature) Complement() CornerSignature {
	var out CornerSignature
	for i, c := range s {
		switch c {
		case Empty:
			out[i] = Filled
		case Filled:
			out[i] = Empty
		default:
			out[i] = c
		}
	}
	return out
}

// WangID expands the signature into Tiled's 8 slot wangid
// (top, top-right, right, bottom-right, bottom, bottom-left, left, top-left).
// Edge slots are always 0.
func (s CornerSignature) WangID() [WangIDLen]uint8 {
	var w [WangIDLen]uint8
	w[1] = uint8(s[NE])
	w[3] = uint8(s[SE])
	w[5] = uint8(s[SW])
	w[7] = uint8(s[NW])
	return w
}

// SignatureFromWangID reads the corner slots of a Tiled wangid.
// Non-zero edge slots are rejected: only corner sets are supported.
func SignatureFromWangID(w [WangIDLen]uint8) (CornerSignature, error) {
	for _, i := range []int{0, 2, 4, 6} {
		if w[i] != 0 {
			return CornerSignature{}, fmt.Errorf("%w: edge slot %d set to %d", ErrUnsupportedWangSet, i, w[i])
		}
	}
	return CornerSignature{
		CornerClass(w[1]),
		CornerClass(w[3]),
		CornerClass(w[5]),
		CornerClass(w[7]),
	}, nil
}

// String renders the signature as "NE,SE,SW,NW".
func (s CornerSignature) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// ParseSignature reads the form written by String. Each corner is either
// "empty", "filled" or a class number.
func ParseSignature(in string) (CornerSignature, error) {
	parts := strings.Split(in, ",")
	if len(parts) != 4 {
		return CornerSignature{}, fmt.Errorf("signature %q: want 4 corners, got %d", in, len(parts))
	}

	var s CornerSignature
	for i, p := range parts {
		c, err := ParseCornerClass(p)
		if err != nil {
			return CornerSignature{}, fmt.Errorf("signature %q: %w", in, err)
		}
		s[i] = c
	}
	return s, nil
}

// ParseCornerClass reads "empty", "filled" or a class number (0-254).
func ParseCornerClass(in string) (CornerClass, error) {
	in = strings.ToLower(strings.TrimSpace(in))
	switch in {
	case "empty", "e":
		return Empty, nil
	case "filled", "f":
		return Filled, nil
	}
	v, err := strconv.ParseUint(in, 10, 8)
	if err != nil || v > 254 {
		return 0, fmt.Errorf("invalid corner class %q", in)
	}
	return CornerClass(v), nil
}

// parseWangID reads Tiled's comma separated wangid attribute.
func parseWangID(in string) ([WangIDLen]uint8, error) {
	var w [WangIDLen]uint8
	parts := strings.Split(in, ",")
	if len(parts) != WangIDLen {
		return w, fmt.Errorf("wangid %q: want %d slots, got %d", in, WangIDLen, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return w, fmt.Errorf("wangid %q: %w", in, err)
		}
		w[i] = uint8(v)
	}
	return w, nil
}

// formatWangID is the inverse of parseWangID.
func formatWangID(w [WangIDLen]uint8) string {
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

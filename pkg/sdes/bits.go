package sdes

import "strings"

const (
	// KeySize is the length of a master key in bits
	KeySize = 10
	// BlockSize is the length of a plaintext or ciphertext block in bits
	BlockSize = 8
	// SubkeySize is the length of each round subkey in bits
	SubkeySize = 8
	// HalfBlockSize is the length of each Feistel half
	HalfBlockSize = BlockSize / 2
	// KeySpace is the number of distinct master keys
	KeySpace = 1 << KeySize
)

// Bits is an ordered bit vector, most significant bit first. Its length is
// part of its meaning: callers validate it, nothing here pads or truncates.
type Bits []bool

// BitsFromUint returns the low n bits of v, most significant first
func BitsFromUint(v uint, n int) Bits {
	out := make(Bits, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = v&1 == 1
		v >>= 1
	}
	return out
}

// Uint reads the vector as an unsigned big-endian number
func (b Bits) Uint() uint {
	var v uint
	for _, bit := range b {
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v
}

// String renders the vector as a string of '0' and '1'
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Equal reports whether both vectors have the same length and bits
func (b Bits) Equal(other Bits) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no memory with b
func (b Bits) Clone() Bits {
	if b == nil {
		return nil
	}
	out := make(Bits, len(b))
	copy(out, b)
	return out
}

func xor(a, b Bits) Bits {
	out := make(Bits, len(a))
	for i := range a {
		out[i] = a[i] != b[i]
	}
	return out
}

func concat(parts ...Bits) Bits {
	n := 0
	for _, part := range parts {
		n += len(part)
	}
	out := make(Bits, 0, n)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}

// rotateLeft is a circular left shift
func rotateLeft(b Bits, n int) Bits {
	out := make(Bits, len(b))
	shift := n % len(b)
	for i := range b {
		out[i] = b[(i+shift)%len(b)]
	}
	return out
}

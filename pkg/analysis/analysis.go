// Package analysis measures how the keyspace collapses onto the ciphertext
// space for a fixed plaintext.
package analysis

import (
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/samber/lo"
)

// CiphertextSpace is the number of distinct 8-bit ciphertexts
const CiphertextSpace = 1 << sdes.BlockSize

// Report counts, for one plaintext, how many keys produce each ciphertext.
// Field names double as StatPaths for graphing.
type Report struct {
	Plaintext string

	// KeysPerCiphertext is indexed by ciphertext value
	KeysPerCiphertext []int

	// CollidingKeysPerCiphertext only keeps entries where two or more keys collide
	CollidingKeysPerCiphertext []int

	DistinctCiphertexts int
	Unreached           int
	MaxCollisions       int
	MinCollisions       int

	// MostCollided is the ciphertext reached by the most keys, lowest value first
	MostCollided string
}

// Analyze encrypts plaintext under every key
func Analyze(plaintext sdes.Bits) (*Report, error) {
	if len(plaintext) != sdes.BlockSize {
		return nil, sdes.NewComplexError(sdes.InvalidBlockLength, "plaintext must be %d bits, got %d", sdes.BlockSize, len(plaintext))
	}

	counts := make([]int, CiphertextSpace)
	for k := uint(0); k < sdes.KeySpace; k++ {
		keys, err := sdes.DeriveSubkeys(sdes.BitsFromUint(k, sdes.KeySize))
		if err != nil {
			return nil, err
		}
		ciphertext, err := sdes.EncryptBlock(plaintext, keys)
		if err != nil {
			return nil, err
		}
		counts[ciphertext.Uint()]++
	}

	reached := lo.Filter(counts, func(count int, _ int) bool {
		return count > 0
	})

	report := &Report{
		Plaintext:         plaintext.String(),
		KeysPerCiphertext: counts,
		CollidingKeysPerCiphertext: lo.Filter(counts, func(count int, _ int) bool {
			return count > 1
		}),
		DistinctCiphertexts: len(reached),
		Unreached:           CiphertextSpace - len(reached),
		MaxCollisions:       lo.Max(counts),
		MinCollisions:       lo.Min(reached),
	}

	for value, count := range counts {
		if count == report.MaxCollisions {
			report.MostCollided = sdes.BitsFromUint(uint(value), sdes.BlockSize).String()
			break
		}
	}

	return report, nil
}

// Package codec converts between the human facing representations the CLI
// accepts (strings of '0'/'1', ASCII text) and the bit vectors the cipher
// works on. The cipher itself never sees text.
package codec

import (
	"strings"

	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/spkg/bom"
)

// ParseBits parses a string of '0' and '1' characters. Surrounding whitespace
// and a leading byte order mark are ignored; anything else is rejected.
func ParseBits(s string) (sdes.Bits, error) {
	s = strings.TrimSpace(Clean(s))
	out := make(sdes.Bits, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			out = append(out, false)
		case '1':
			out = append(out, true)
		default:
			return nil, sdes.NewComplexError(sdes.InvalidBitCharacter, "invalid bit character %q at position %d", c, i)
		}
	}
	return out, nil
}

// ParseKey parses a 10-bit key
func ParseKey(s string) (sdes.Bits, error) {
	key, err := ParseBits(s)
	if err != nil {
		return nil, err
	}
	if len(key) != sdes.KeySize {
		return nil, sdes.NewComplexError(sdes.InvalidKeyLength, "key must be %d bits, got %d", sdes.KeySize, len(key))
	}
	return key, nil
}

// ParseBlock parses a single 8-bit block
func ParseBlock(s string) (sdes.Bits, error) {
	block, err := ParseBits(s)
	if err != nil {
		return nil, err
	}
	if len(block) != sdes.BlockSize {
		return nil, sdes.NewComplexError(sdes.InvalidBlockLength, "block must be %d bits, got %d", sdes.BlockSize, len(block))
	}
	return block, nil
}

// ParseBinaryMessage parses a bit string whose length is a positive multiple
// of the block size and splits it into blocks. Whitespace between blocks is
// allowed, e.g. "11010100 01000001".
func ParseBinaryMessage(s string) ([]sdes.Bits, error) {
	all, err := ParseBits(strings.Join(strings.Fields(Clean(s)), ""))
	if err != nil {
		return nil, err
	}
	if len(all) == 0 || len(all)%sdes.BlockSize != 0 {
		return nil, sdes.NewComplexError(sdes.InvalidBlockLength, "binary message must be a non-empty multiple of %d bits, got %d", sdes.BlockSize, len(all))
	}

	blocks := make([]sdes.Bits, 0, len(all)/sdes.BlockSize)
	for i := 0; i < len(all); i += sdes.BlockSize {
		blocks = append(blocks, all[i:i+sdes.BlockSize].Clone())
	}
	return blocks, nil
}

// TextToBlocks turns every ASCII character into one 8-bit block
func TextToBlocks(s string) ([]sdes.Bits, error) {
	s = Clean(s)
	blocks := make([]sdes.Bits, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return nil, sdes.NewComplexError(sdes.InvalidBitCharacter, "non-ASCII byte 0x%02x at position %d", s[i], i)
		}
		blocks = append(blocks, sdes.BitsFromUint(uint(s[i]), sdes.BlockSize))
	}
	return blocks, nil
}

// BlocksToText turns every block back into one character. Ciphertext blocks
// usually produce unprintable characters.
func BlocksToText(blocks []sdes.Bits) (string, error) {
	var sb strings.Builder
	for i, block := range blocks {
		if len(block) != sdes.BlockSize {
			return "", sdes.NewComplexError(sdes.InvalidBlockLength, "block %d must be %d bits, got %d", i, sdes.BlockSize, len(block))
		}
		sb.WriteByte(byte(block.Uint()))
	}
	return sb.String(), nil
}

// JoinBlocks renders blocks as one continuous bit string
func JoinBlocks(blocks []sdes.Bits) string {
	var sb strings.Builder
	for _, block := range blocks {
		sb.WriteString(block.String())
	}
	return sb.String()
}

// Clean strips a UTF-8 byte order mark, which editors on windows like to put
// at the start of files passed in as input
func Clean(s string) string {
	return string(bom.Clean([]byte(s)))
}

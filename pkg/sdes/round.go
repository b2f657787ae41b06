package sdes

// RoundFunction is F(R, SK): expand the 4-bit right half to 8 bits, mix in
// the subkey, substitute each nibble through its S-box and permute the
// result with P4.
func RoundFunction(right Bits, subkey Bits) (Bits, error) {
	if len(right) != HalfBlockSize {
		return nil, NewComplexError(InvalidBlockLength, "half block must be %d bits, got %d", HalfBlockSize, len(right))
	}
	if len(subkey) != SubkeySize {
		return nil, NewComplexError(InvalidKeyLength, "subkey must be %d bits, got %d", SubkeySize, len(subkey))
	}
	return roundFunction(right, subkey), nil
}

func roundFunction(right Bits, subkey Bits) Bits {
	mixed := xor(ep.Apply(right), subkey)
	substituted := concat(
		sBoxes[0].Lookup(mixed[:4]),
		sBoxes[1].Lookup(mixed[4:]),
	)
	return p4.Apply(substituted)
}

// feistelRound is fK: the left half absorbs F of the right half, the right
// half passes through unchanged
func feistelRound(block Bits, subkey Bits) Bits {
	left, right := block[:HalfBlockSize], block[HalfBlockSize:]
	return concat(xor(left, roundFunction(right, subkey)), right)
}

func swapHalves(block Bits) Bits {
	return concat(block[HalfBlockSize:], block[:HalfBlockSize])
}

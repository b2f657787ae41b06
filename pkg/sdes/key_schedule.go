package sdes

// SubkeyPair holds the two round subkeys derived from one master key. It is
// immutable once derived: accessors hand out copies.
type SubkeyPair struct {
	k1 Bits
	k2 Bits
}

// K1 returns the first round subkey
func (p SubkeyPair) K1() Bits {
	return p.k1.Clone()
}

// K2 returns the second round subkey
func (p SubkeyPair) K2() Bits {
	return p.k2.Clone()
}

func (p SubkeyPair) valid() bool {
	return len(p.k1) == SubkeySize && len(p.k2) == SubkeySize
}

// DeriveSubkeys runs the key schedule:
//
//	K1 = P8(LS-1(P10(key)))
//	K2 = P8(LS-2(LS-1(P10(key))))
//
// The second shift is applied to the already shifted halves.
func DeriveSubkeys(key Bits) (SubkeyPair, error) {
	if len(key) != KeySize {
		return SubkeyPair{}, errKeyLength(len(key))
	}

	permuted := p10.Apply(key)
	left, right := permuted[:KeySize/2], permuted[KeySize/2:]

	left, right = rotateLeft(left, 1), rotateLeft(right, 1)
	k1 := p8.Apply(concat(left, right))

	left, right = rotateLeft(left, 2), rotateLeft(right, 2)
	k2 := p8.Apply(concat(left, right))

	return SubkeyPair{k1: k1, k2: k2}, nil
}

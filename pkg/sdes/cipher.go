package sdes

// EncryptBlock encrypts one 8-bit block:
// IP, fK with K1, swap, fK with K2, IP^-1.
func EncryptBlock(plaintext Bits, keys SubkeyPair) (Bits, error) {
	if err := validate(plaintext, keys); err != nil {
		return nil, err
	}
	return transform(plaintext, keys.k1, keys.k2), nil
}

// DecryptBlock is EncryptBlock with the subkeys applied in reverse order
func DecryptBlock(ciphertext Bits, keys SubkeyPair) (Bits, error) {
	if err := validate(ciphertext, keys); err != nil {
		return nil, err
	}
	return transform(ciphertext, keys.k2, keys.k1), nil
}

func validate(block Bits, keys SubkeyPair) error {
	if len(block) != BlockSize {
		return errBlockLength(len(block))
	}
	if !keys.valid() {
		return NewComplexError(InvalidKeyLength, "subkey pair was not derived from a %d bit key", KeySize)
	}
	return nil
}

func transform(block Bits, first, second Bits) Bits {
	state := ip.Apply(block)
	state = feistelRound(state, first)
	state = swapHalves(state)
	state = feistelRound(state, second)
	return ipInverse.Apply(state)
}

// Cipher binds one master key to its derived subkeys. It holds no other
// state, so a single Cipher can serve any number of goroutines.
type Cipher struct {
	key  Bits
	keys SubkeyPair
}

// NewCipher derives the subkeys for key
func NewCipher(key Bits) (*Cipher, error) {
	keys, err := DeriveSubkeys(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{key: key.Clone(), keys: keys}, nil
}

// Key returns a copy of the master key
func (c *Cipher) Key() Bits {
	return c.key.Clone()
}

// Subkeys returns the subkey pair this cipher was built with
func (c *Cipher) Subkeys() SubkeyPair {
	return c.keys
}

// Encrypt encrypts a single block
func (c *Cipher) Encrypt(block Bits) (Bits, error) {
	return EncryptBlock(block, c.keys)
}

// Decrypt decrypts a single block
func (c *Cipher) Decrypt(block Bits) (Bits, error) {
	return DecryptBlock(block, c.keys)
}

// EncryptBlocks encrypts each block independently; there is no chaining
func (c *Cipher) EncryptBlocks(blocks []Bits) ([]Bits, error) {
	return c.each(blocks, c.Encrypt)
}

// DecryptBlocks decrypts each block independently
func (c *Cipher) DecryptBlocks(blocks []Bits) ([]Bits, error) {
	return c.each(blocks, c.Decrypt)
}

func (c *Cipher) each(blocks []Bits, f func(Bits) (Bits, error)) ([]Bits, error) {
	out := make([]Bits, len(blocks))
	for i, block := range blocks {
		result, err := f(block)
		if err != nil {
			return nil, err
		}
		out[i] = result
	}
	return out, nil
}

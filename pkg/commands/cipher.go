package commands

import (
	"strings"

	"github.com/christophe-duc/lazysdes/pkg/codec"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/go-errors/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// CipherCommand encrypts and decrypts whole messages, one block at a time,
// under a single key
type CipherCommand struct {
	Log    *logrus.Entry
	Tr     *i18n.TranslationSet
	Config *config.AppConfig
}

// CipherResult is the output of an encryption or decryption
type CipherResult struct {
	Key    sdes.Bits
	Mode   string
	Blocks []sdes.Bits
	Binary string

	// Text is the output read back as characters. Only set in ascii mode
	Text string

	// Garbled is true when Text holds ciphertext, which is rarely printable
	Garbled bool
}

// NewCipherCommand it runs encryptions and decryptions
func NewCipherCommand(log *logrus.Entry, tr *i18n.TranslationSet, config *config.AppConfig) *CipherCommand {
	return &CipherCommand{
		Log:    log,
		Tr:     tr,
		Config: config,
	}
}

// ResolveKey parses the given key, falling back to the configured default key
func (c *CipherCommand) ResolveKey(raw string) (sdes.Bits, error) {
	if strings.TrimSpace(raw) == "" {
		raw = c.Config.UserConfig.Cipher.DefaultKey
	}
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New(c.Tr.MissingKeyError)
	}
	return codec.ParseKey(raw)
}

// Subkeys derives the two round subkeys of a key
func (c *CipherCommand) Subkeys(rawKey string) (sdes.Bits, sdes.SubkeyPair, error) {
	key, err := c.ResolveKey(rawKey)
	if err != nil {
		return nil, sdes.SubkeyPair{}, err
	}
	keys, err := sdes.DeriveSubkeys(key)
	if err != nil {
		return nil, sdes.SubkeyPair{}, err
	}
	return key, keys, nil
}

// Encrypt encrypts input, which is a binary message in binary mode or plain
// text in ascii mode
func (c *CipherCommand) Encrypt(rawKey, mode, input string) (*CipherResult, error) {
	mode, err := resolveCipherMode(c.Config, c.Tr, mode)
	if err != nil {
		return nil, err
	}
	cipher, err := c.newCipher(rawKey)
	if err != nil {
		return nil, err
	}
	if input == "" {
		return nil, errors.New(c.Tr.MissingInputError)
	}

	var blocks []sdes.Bits
	if mode == config.CipherModeASCII {
		blocks, err = codec.TextToBlocks(input)
	} else {
		blocks, err = codec.ParseBinaryMessage(input)
	}
	if err != nil {
		return nil, err
	}

	out, err := cipher.EncryptBlocks(blocks)
	if err != nil {
		return nil, err
	}

	result := c.newResult(cipher, mode, out)
	if mode == config.CipherModeASCII {
		result.Garbled = true
	}

	c.Log.WithFields(logrus.Fields{
		"mode":   mode,
		"blocks": len(out),
	}).Info("encrypted message")

	return result, nil
}

// Decrypt decrypts a binary ciphertext. In ascii mode the output is also
// read back as text.
func (c *CipherCommand) Decrypt(rawKey, mode, input string) (*CipherResult, error) {
	mode, err := resolveCipherMode(c.Config, c.Tr, mode)
	if err != nil {
		return nil, err
	}
	cipher, err := c.newCipher(rawKey)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input) == "" {
		return nil, errors.New(c.Tr.MissingInputError)
	}

	blocks, err := codec.ParseBinaryMessage(input)
	if err != nil {
		return nil, err
	}

	out, err := cipher.DecryptBlocks(blocks)
	if err != nil {
		return nil, err
	}

	c.Log.WithFields(logrus.Fields{
		"mode":   mode,
		"blocks": len(out),
	}).Info("decrypted message")

	return c.newResult(cipher, mode, out), nil
}

func (c *CipherCommand) newCipher(rawKey string) (*sdes.Cipher, error) {
	key, err := c.ResolveKey(rawKey)
	if err != nil {
		return nil, err
	}
	return sdes.NewCipher(key)
}

func (c *CipherCommand) newResult(cipher *sdes.Cipher, mode string, out []sdes.Bits) *CipherResult {
	result := &CipherResult{
		Key:    cipher.Key(),
		Mode:   mode,
		Blocks: out,
		Binary: codec.JoinBlocks(out),
	}
	if mode == config.CipherModeASCII {
		// every block is BlockSize bits here, so this cannot fail
		result.Text, _ = codec.BlocksToText(out)
	}
	return result
}

// resolveCipherMode falls back to the configured mode when none is given
func resolveCipherMode(appConfig *config.AppConfig, tr *i18n.TranslationSet, mode string) (string, error) {
	if mode == "" {
		mode = appConfig.UserConfig.Cipher.Mode
	}
	if mode == "" {
		mode = config.CipherModeBinary
	}
	if !lo.Contains([]string{config.CipherModeBinary, config.CipherModeASCII}, mode) {
		return "", errors.New(tr.UnrecognisedCipherMode)
	}
	return mode, nil
}

// parsePlaintextBlock reads a single block, either as bits or, in ascii mode,
// as one character
func parsePlaintextBlock(mode, raw string) (sdes.Bits, error) {
	if mode != config.CipherModeASCII {
		return codec.ParseBlock(raw)
	}
	blocks, err := codec.TextToBlocks(raw)
	if err != nil {
		return nil, err
	}
	if len(blocks) != 1 {
		return nil, sdes.NewComplexError(sdes.InvalidBlockLength, "expected exactly one character, got %d", len(blocks))
	}
	return blocks[0], nil
}

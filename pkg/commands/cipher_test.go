package commands

import (
	"testing"

	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/stretchr/testify/assert"
)

func TestCipherCommandEncrypt(t *testing.T) {
	type scenario struct {
		testName string
		key      string
		mode     string
		input    string
		test     func(*CipherResult, error)
	}

	tr := NewDummyTranslationSet()

	scenarios := []scenario{
		{
			"single binary block",
			"1010000010",
			config.CipherModeBinary,
			"11010100",
			func(result *CipherResult, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "10100100", result.Binary)
				assert.EqualValues(t, "", result.Text)
				assert.False(t, result.Garbled)
			},
		},
		{
			"binary message split by whitespace",
			"1010000010",
			"",
			"11010100 01000001",
			func(result *CipherResult, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "1010010000010101", result.Binary)
				assert.Len(t, result.Blocks, 2)
			},
		},
		{
			"ascii text",
			"1010000010",
			config.CipherModeASCII,
			"Hi",
			func(result *CipherResult, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "1100010011000111", result.Binary)
				assert.EqualValues(t, "\xc4\xc7", result.Text)
				assert.True(t, result.Garbled)
			},
		},
		{
			"short key",
			"101",
			config.CipherModeBinary,
			"11010100",
			func(result *CipherResult, err error) {
				assert.Nil(t, result)
				assert.True(t, sdes.HasErrorCode(err, sdes.InvalidKeyLength))
			},
		},
		{
			"missing key",
			"",
			config.CipherModeBinary,
			"11010100",
			func(result *CipherResult, err error) {
				assert.EqualError(t, err, tr.MissingKeyError)
			},
		},
		{
			"unknown mode",
			"1010000010",
			"hex",
			"11010100",
			func(result *CipherResult, err error) {
				assert.EqualError(t, err, tr.UnrecognisedCipherMode)
			},
		},
		{
			"empty input",
			"1010000010",
			config.CipherModeASCII,
			"",
			func(result *CipherResult, err error) {
				assert.EqualError(t, err, tr.MissingInputError)
			},
		},
		{
			"partial block",
			"1010000010",
			config.CipherModeBinary,
			"110101001",
			func(result *CipherResult, err error) {
				assert.True(t, sdes.HasErrorCode(err, sdes.InvalidBlockLength))
			},
		},
		{
			"not binary",
			"1010000010",
			config.CipherModeBinary,
			"1101010x",
			func(result *CipherResult, err error) {
				assert.True(t, sdes.HasErrorCode(err, sdes.InvalidBitCharacter))
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.testName, func(t *testing.T) {
			s.test(NewDummyCipherCommand().Encrypt(s.key, s.mode, s.input))
		})
	}
}

func TestCipherCommandDecrypt(t *testing.T) {
	command := NewDummyCipherCommand()

	result, err := command.Decrypt("1010000010", config.CipherModeBinary, "10100100")
	assert.NoError(t, err)
	assert.EqualValues(t, "11010100", result.Binary)

	result, err = command.Decrypt("1010000010", config.CipherModeASCII, "11000100 11000111")
	assert.NoError(t, err)
	assert.EqualValues(t, "Hi", result.Text)
	assert.False(t, result.Garbled)

	_, err = command.Decrypt("1010000010", config.CipherModeBinary, "  ")
	assert.EqualError(t, err, command.Tr.MissingInputError)
}

func TestCipherCommandRoundTripText(t *testing.T) {
	command := NewDummyCipherCommand()

	encrypted, err := command.Encrypt("0111111101", config.CipherModeASCII, "Feistel!")
	assert.NoError(t, err)

	decrypted, err := command.Decrypt("0111111101", config.CipherModeASCII, encrypted.Binary)
	assert.NoError(t, err)
	assert.EqualValues(t, "Feistel!", decrypted.Text)
}

func TestCipherCommandDefaultKey(t *testing.T) {
	command := NewDummyCipherCommand()
	command.Config.UserConfig.Cipher.DefaultKey = "1010000010"

	result, err := command.Encrypt("", config.CipherModeBinary, "11010100")
	assert.NoError(t, err)
	assert.EqualValues(t, "10100100", result.Binary)
	assert.EqualValues(t, "1010000010", result.Key.String())

	// an explicit key wins over the default
	result, err = command.Encrypt("0000000000", config.CipherModeBinary, "00000000")
	assert.NoError(t, err)
	assert.EqualValues(t, "11110000", result.Binary)
}

func TestCipherCommandConfiguredMode(t *testing.T) {
	command := NewDummyCipherCommand()
	command.Config.UserConfig.Cipher.Mode = config.CipherModeASCII

	result, err := command.Encrypt("1010000010", "", "A")
	assert.NoError(t, err)
	assert.EqualValues(t, "00010101", result.Binary)
	assert.EqualValues(t, config.CipherModeASCII, result.Mode)
}

func TestCipherCommandSubkeys(t *testing.T) {
	key, keys, err := NewDummyCipherCommand().Subkeys("0111111101")
	assert.NoError(t, err)
	assert.EqualValues(t, "0111111101", key.String())
	assert.EqualValues(t, "01011111", keys.K1().String())
	assert.EqualValues(t, "11111100", keys.K2().String())

	_, _, err = NewDummyCipherCommand().Subkeys("01111111011")
	assert.True(t, sdes.HasErrorCode(err, sdes.InvalidKeyLength))
}

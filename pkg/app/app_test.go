package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/christophe-duc/lazysdes/pkg/commands"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/christophe-duc/lazysdes/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	app := &App{
		Config: commands.NewDummyAppConfig(),
		Log:    commands.NewDummyLog(),
		Tr:     commands.NewDummyTranslationSet(),
		Out:    out,
		ErrOut: errOut,
	}
	app.setup()
	return app, out, errOut
}

func newTestAppConfig(t *testing.T, content string) *config.AppConfig {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o666))
	}
	appConfig, err := config.NewAppConfig("lazysdes", "test-version", "test-commit", "test-date", "test-build-source", false)
	require.NoError(t, err)
	return appConfig
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(newTestAppConfig(t, "language: en\n"))
	require.NoError(t, err)

	assert.NotNil(t, app.CipherCommand)
	assert.NotNil(t, app.CrackCommand)
	assert.NotNil(t, app.AnalysisCommand)
	assert.EqualValues(t, "Key", app.Tr.Key)
	assert.NoError(t, app.Close())
}

func TestNewAppUnsupportedLanguage(t *testing.T) {
	app, err := NewApp(newTestAppConfig(t, "language: fr\n"))
	require.Error(t, err)

	message, known := app.KnownError(err)
	assert.True(t, known)
	assert.EqualValues(t, "Language not found: fr", message)
}

func TestAppSubkeys(t *testing.T) {
	app, out, _ := newTestApp()

	assert.NoError(t, app.Subkeys("1010000010"))
	assert.EqualValues(t, "Key 1010000010\nK1  10100100\nK2  01000011\n", utils.Decolorise(out.String()))
}

func TestAppEncryptDecrypt(t *testing.T) {
	app, out, _ := newTestApp()

	assert.NoError(t, app.Encrypt("1010000010", config.CipherModeBinary, "11010100"))
	assert.Contains(t, utils.Decolorise(out.String()), "Binary 10100100")

	out.Reset()
	assert.NoError(t, app.Decrypt("1010000010", config.CipherModeASCII, "11000100 11000111"))
	assert.Contains(t, out.String(), `"Hi"`)

	err := app.Encrypt("10100000", config.CipherModeBinary, "11010100")
	assert.True(t, sdes.HasErrorCode(err, sdes.InvalidKeyLength))
}

func TestAppCrack(t *testing.T) {
	app, out, errOut := newTestApp()
	app.ShowProgress = true

	err := app.Crack(context.Background(), commands.CrackOptions{Plaintext: "11010100", Ciphertext: "10100100"})
	assert.NoError(t, err)

	output := utils.Decolorise(out.String())
	assert.Contains(t, output, "Found 5 matching key(s)")
	assert.Contains(t, output, "1010000010")
	assert.Contains(t, output, "1024/1024")
	assert.Contains(t, errOut.String(), app.Tr.Searching)
}

func TestAppCrackTimeoutStillPrintsResult(t *testing.T) {
	app, out, _ := newTestApp()

	err := app.Crack(context.Background(), commands.CrackOptions{
		Plaintext:  "11010100",
		Ciphertext: "10100100",
		Timeout:    time.Nanosecond,
	})
	assert.True(t, sdes.HasErrorCode(err, sdes.SearchTimedOut))
	assert.Contains(t, utils.Decolorise(out.String()), "Search timed out")

	message, known := app.KnownError(err)
	assert.True(t, known)
	assert.Contains(t, message, app.Tr.SearchTimedOutError)
}

func TestAppAnalyze(t *testing.T) {
	app, out, _ := newTestApp()

	assert.NoError(t, app.Analyze("00000000", config.CipherModeBinary, 60))
	output := utils.Decolorise(out.String())
	assert.Contains(t, output, "Key collisions for plaintext 00000000")
	assert.Contains(t, output, "11101011")
}

func TestKnownError(t *testing.T) {
	type scenario struct {
		testName string
		err      error
		expected string
		known    bool
	}

	app, _, _ := newTestApp()

	scenarios := []scenario{
		{
			"missing key",
			errors.New(app.Tr.MissingKeyError),
			app.Tr.MissingKeyError,
			true,
		},
		{
			"coded error",
			sdes.NewComplexError(sdes.InvalidBitCharacter, "unexpected character 'x'"),
			app.Tr.InvalidBitCharacterError + " (unexpected character 'x')",
			true,
		},
		{
			"wrapped coded error",
			commands.WrapError(sdes.NewComplexError(sdes.InvalidBlockLength, "block must be 8 bits, got 3")),
			app.Tr.InvalidBlockLengthError + " (block must be 8 bits, got 3)",
			true,
		},
		{
			"unknown error",
			errors.New("disk on fire"),
			"",
			false,
		},
	}

	for _, s := range scenarios {
		t.Run(s.testName, func(t *testing.T) {
			message, known := app.KnownError(s.err)
			assert.EqualValues(t, s.expected, message)
			assert.EqualValues(t, s.known, known)
		})
	}
}

package commands

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/christophe-duc/lazysdes/pkg/bruteforce"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyStrings(keys []sdes.Bits) []string {
	return lo.Map(keys, func(key sdes.Bits, _ int) string {
		return key.String()
	})
}

func TestCrackCommandCrack(t *testing.T) {
	type scenario struct {
		testName string
		options  CrackOptions
		test     func(*CrackResult, error)
	}

	tr := NewDummyTranslationSet()

	scenarios := []scenario{
		{
			"all matching keys",
			CrackOptions{Plaintext: "11010100", Ciphertext: "10100100", Workers: 4},
			func(result *CrackResult, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, []string{"0000100101", "0001101101", "1010000010", "1010010110", "1100100111"}, keyStrings(result.Keys))
				assert.EqualValues(t, sdes.KeySpace, result.Checked)
				assert.False(t, result.TimedOut)
				assert.EqualValues(t, 4, result.Workers)
				assert.EqualValues(t, config.SearchModeAll, result.SearchMode)
			},
		},
		{
			"ascii plaintext",
			CrackOptions{Plaintext: "A", Ciphertext: "00010101", InputMode: config.CipherModeASCII},
			func(result *CrackResult, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "01000001", result.Plaintext.String())
				assert.Len(t, result.Keys, 8)
				assert.Contains(t, keyStrings(result.Keys), "1010000010")
			},
		},
		{
			"first match on one worker is the lowest key",
			CrackOptions{Plaintext: "11010100", Ciphertext: "10100100", SearchMode: config.SearchModeFirst, Workers: 1},
			func(result *CrackResult, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, []string{"0000100101"}, keyStrings(result.Keys))
				assert.False(t, result.TimedOut)
			},
		},
		{
			"unreachable ciphertext",
			CrackOptions{Plaintext: "11010100", Ciphertext: "00010110"},
			func(result *CrackResult, err error) {
				assert.NoError(t, err)
				assert.Empty(t, result.Keys)
				assert.EqualValues(t, sdes.KeySpace, result.Checked)
			},
		},
		{
			"timed out",
			CrackOptions{Plaintext: "11010100", Ciphertext: "10100100", Timeout: time.Nanosecond},
			func(result *CrackResult, err error) {
				assert.True(t, sdes.HasErrorCode(err, sdes.SearchTimedOut))
				require.NotNil(t, result)
				assert.True(t, result.TimedOut)
				assert.Less(t, result.Checked, sdes.KeySpace)
			},
		},
		{
			"more than one character",
			CrackOptions{Plaintext: "AB", Ciphertext: "00010101", InputMode: config.CipherModeASCII},
			func(result *CrackResult, err error) {
				assert.True(t, sdes.HasErrorCode(err, sdes.InvalidBlockLength))
			},
		},
		{
			"bad ciphertext",
			CrackOptions{Plaintext: "11010100", Ciphertext: "1010010"},
			func(result *CrackResult, err error) {
				assert.True(t, sdes.HasErrorCode(err, sdes.InvalidBlockLength))
			},
		},
		{
			"unknown search mode",
			CrackOptions{Plaintext: "11010100", Ciphertext: "10100100", SearchMode: "some"},
			func(result *CrackResult, err error) {
				assert.EqualError(t, err, tr.UnrecognisedSearchMode)
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.testName, func(t *testing.T) {
			s.test(NewDummyCrackCommand().Crack(context.Background(), s.options))
		})
	}
}

func TestCrackCommandUsesConfiguredMode(t *testing.T) {
	command := NewDummyCrackCommand()
	command.Config.UserConfig.Search.Mode = config.SearchModeFirst
	command.Config.UserConfig.Search.Workers = 1

	result, err := command.Crack(context.Background(), CrackOptions{Plaintext: "11010100", Ciphertext: "10100100"})
	assert.NoError(t, err)
	assert.EqualValues(t, config.SearchModeFirst, result.SearchMode)
	assert.EqualValues(t, 1, result.Workers)
	assert.Len(t, result.Keys, 1)
}

func TestCrackCommandReportsProgress(t *testing.T) {
	var mutex sync.Mutex
	highest := 0
	options := CrackOptions{
		Plaintext:  "11010100",
		Ciphertext: "10100100",
		OnProgress: func(progress bruteforce.Progress) {
			mutex.Lock()
			defer mutex.Unlock()
			highest = max(highest, progress.Checked)
		},
	}

	_, err := NewDummyCrackCommand().Crack(context.Background(), options)
	assert.NoError(t, err)

	mutex.Lock()
	defer mutex.Unlock()
	assert.EqualValues(t, sdes.KeySpace, highest)
}

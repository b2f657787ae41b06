package commands

import (
	"context"
	"time"

	"github.com/christophe-duc/lazysdes/pkg/bruteforce"
	"github.com/christophe-duc/lazysdes/pkg/codec"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/go-errors/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// CrackCommand recovers the keys that map a known plaintext to a known
// ciphertext
type CrackCommand struct {
	Log    *logrus.Entry
	Tr     *i18n.TranslationSet
	Config *config.AppConfig
}

// CrackOptions overrides the configured search settings for one run. Zero
// values fall back to the config.
type CrackOptions struct {
	Plaintext  string
	Ciphertext string

	// InputMode "ascii" reads Plaintext as a single character. Ciphertext is
	// always binary since it is rarely printable
	InputMode string

	// SearchMode is "all" or "first"
	SearchMode string

	Timeout    time.Duration
	Workers    int
	OnProgress func(bruteforce.Progress)
}

// CrackResult is the outcome of either search mode. In first mode Keys holds
// at most one key.
type CrackResult struct {
	Plaintext  sdes.Bits
	Ciphertext sdes.Bits
	SearchMode string
	Keys       []sdes.Bits
	Checked    int
	Elapsed    time.Duration
	TimedOut   bool
	Workers    int
}

// NewCrackCommand it runs key searches
func NewCrackCommand(log *logrus.Entry, tr *i18n.TranslationSet, config *config.AppConfig) *CrackCommand {
	return &CrackCommand{
		Log:    log,
		Tr:     tr,
		Config: config,
	}
}

// Crack runs the search. When the search is cut short the partial result is
// returned together with an error carrying the SearchTimedOut code.
func (c *CrackCommand) Crack(ctx context.Context, options CrackOptions) (*CrackResult, error) {
	inputMode, err := resolveCipherMode(c.Config, c.Tr, options.InputMode)
	if err != nil {
		return nil, err
	}
	searchMode, err := c.resolveSearchMode(options.SearchMode)
	if err != nil {
		return nil, err
	}

	plaintext, err := parsePlaintextBlock(inputMode, options.Plaintext)
	if err != nil {
		return nil, err
	}
	ciphertext, err := codec.ParseBlock(options.Ciphertext)
	if err != nil {
		return nil, err
	}

	searcher := c.newSearcher(options)
	result := &CrackResult{
		Plaintext:  plaintext,
		Ciphertext: ciphertext,
		SearchMode: searchMode,
		Workers:    searcher.Workers(),
	}

	c.Log.WithFields(logrus.Fields{
		"mode":    searchMode,
		"workers": searcher.Workers(),
		"timeout": searcher.Timeout().String(),
	}).Info("starting key search")

	if searchMode == config.SearchModeFirst {
		first, err := searcher.FindFirst(ctx, plaintext, ciphertext)
		if first.Found {
			result.Keys = []sdes.Bits{first.Key}
		}
		result.Checked = first.Checked
		result.Elapsed = first.Elapsed
		result.TimedOut = first.TimedOut
		return result, err
	}

	all, err := searcher.FindAll(ctx, plaintext, ciphertext)
	result.Keys = all.Keys
	result.Checked = all.Checked
	result.Elapsed = all.Elapsed
	result.TimedOut = all.TimedOut
	return result, err
}

func (c *CrackCommand) newSearcher(options CrackOptions) *bruteforce.Searcher {
	searchConfig := c.Config.UserConfig.Search

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = searchConfig.Timeout
	}
	if timeout <= 0 {
		timeout = bruteforce.DefaultTimeout
	}

	workers := options.Workers
	if workers <= 0 {
		workers = searchConfig.Workers
	}

	searchOptions := []bruteforce.Option{
		bruteforce.WithTimeout(timeout),
		bruteforce.WithWorkers(workers),
		bruteforce.WithBatchSize(searchConfig.BatchSize),
	}
	if options.OnProgress != nil {
		searchOptions = append(searchOptions, bruteforce.WithProgress(searchConfig.ProgressInterval, options.OnProgress))
	}

	return bruteforce.NewSearcher(c.Log, searchOptions...)
}

func (c *CrackCommand) resolveSearchMode(mode string) (string, error) {
	if mode == "" {
		mode = c.Config.UserConfig.Search.Mode
	}
	if mode == "" {
		mode = config.SearchModeAll
	}
	if !lo.Contains([]string{config.SearchModeAll, config.SearchModeFirst}, mode) {
		return "", errors.New(c.Tr.UnrecognisedSearchMode)
	}
	return mode, nil
}

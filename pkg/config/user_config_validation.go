package config

import (
	"fmt"

	"github.com/christophe-duc/lazysdes/pkg/analysis"
	"github.com/christophe-duc/lazysdes/pkg/codec"
	"github.com/mcuadros/go-lookup"
	"github.com/samber/lo"
)

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if err := validateSearch(config.Search); err != nil {
		return err
	}

	if err := validateCipher(config.Cipher); err != nil {
		return err
	}

	if err := validateGraphs(config.Analysis.Graphs); err != nil {
		return err
	}

	return nil
}

func validateSearch(search SearchConfig) error {
	if search.Timeout <= 0 {
		return fmt.Errorf("search.timeout must be positive, got '%s'", search.Timeout)
	}
	if search.Workers < 0 {
		return fmt.Errorf("search.workers must not be negative, got %d", search.Workers)
	}
	if search.BatchSize < 0 {
		return fmt.Errorf("search.batchSize must not be negative, got %d", search.BatchSize)
	}
	if !lo.Contains([]string{SearchModeAll, SearchModeFirst}, search.Mode) {
		return fmt.Errorf("Unrecognized search.mode '%s'. Permitted values are '%s' and '%s'", search.Mode, SearchModeAll, SearchModeFirst)
	}
	return nil
}

func validateCipher(cipher CipherConfig) error {
	if !lo.Contains([]string{CipherModeBinary, CipherModeASCII}, cipher.Mode) {
		return fmt.Errorf("Unrecognized cipher.mode '%s'. Permitted values are '%s' and '%s'", cipher.Mode, CipherModeBinary, CipherModeASCII)
	}
	if cipher.DefaultKey != "" {
		if _, err := codec.ParseKey(cipher.DefaultKey); err != nil {
			return fmt.Errorf("cipher.defaultKey is invalid: %s", err)
		}
	}
	return nil
}

// validateGraphs checks that every graph points at a series that exists on
// the collision report
func validateGraphs(graphs []GraphConfig) error {
	for i, graph := range graphs {
		if _, err := lookup.LookupString(analysis.Report{}, graph.StatPath); err != nil {
			return fmt.Errorf("Unrecognized statPath '%s' for analysis.graphs[%d]", graph.StatPath, i)
		}
		for _, kind := range []string{graph.MinType, graph.MaxType} {
			if kind != "" && kind != "static" {
				return fmt.Errorf("Unrecognized minType/maxType '%s' for analysis.graphs[%d]. Permitted values are '' and 'static'", kind, i)
			}
		}
	}
	return nil
}

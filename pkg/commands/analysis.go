package commands

import (
	"github.com/christophe-duc/lazysdes/pkg/analysis"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/sirupsen/logrus"
)

// AnalysisCommand builds collision reports
type AnalysisCommand struct {
	Log    *logrus.Entry
	Tr     *i18n.TranslationSet
	Config *config.AppConfig
}

// NewAnalysisCommand it builds collision reports
func NewAnalysisCommand(log *logrus.Entry, tr *i18n.TranslationSet, config *config.AppConfig) *AnalysisCommand {
	return &AnalysisCommand{
		Log:    log,
		Tr:     tr,
		Config: config,
	}
}

// Analyze counts how many keys land on each ciphertext for the plaintext
func (c *AnalysisCommand) Analyze(rawPlaintext, mode string) (*analysis.Report, error) {
	mode, err := resolveCipherMode(c.Config, c.Tr, mode)
	if err != nil {
		return nil, err
	}
	plaintext, err := parsePlaintextBlock(mode, rawPlaintext)
	if err != nil {
		return nil, err
	}

	report, err := analysis.Analyze(plaintext)
	if err != nil {
		return nil, err
	}

	c.Log.WithFields(logrus.Fields{
		"plaintext":   report.Plaintext,
		"distinct":    report.DistinctCiphertexts,
		"maxPerBlock": report.MaxCollisions,
	}).Info("built collision report")

	return report, nil
}

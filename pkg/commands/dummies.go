package commands

import (
	"io"

	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/sirupsen/logrus"
)

// This file exports dummy constructors for use by tests in other packages

// NewDummyAppConfig creates a new dummy AppConfig for testing
func NewDummyAppConfig() *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	userConfig.Language = "en"
	appConfig := &config.AppConfig{
		Name:        "lazysdes",
		Version:     "unversioned",
		Commit:      "",
		BuildDate:   "",
		Debug:       false,
		BuildSource: "",
		UserConfig:  &userConfig,
	}
	return appConfig
}

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummyTranslationSet creates a new english TranslationSet for testing
func NewDummyTranslationSet() *i18n.TranslationSet {
	return i18n.NewTranslationSet(NewDummyLog(), "en")
}

// NewDummyCipherCommand creates a new dummy CipherCommand for testing
func NewDummyCipherCommand() *CipherCommand {
	return NewCipherCommand(NewDummyLog(), NewDummyTranslationSet(), NewDummyAppConfig())
}

// NewDummyCrackCommand creates a new dummy CrackCommand for testing
func NewDummyCrackCommand() *CrackCommand {
	return NewCrackCommand(NewDummyLog(), NewDummyTranslationSet(), NewDummyAppConfig())
}

// NewDummyAnalysisCommand creates a new dummy AnalysisCommand for testing
func NewDummyAnalysisCommand() *AnalysisCommand {
	return NewAnalysisCommand(NewDummyLog(), NewDummyTranslationSet(), NewDummyAppConfig())
}

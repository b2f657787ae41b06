package main

import (
	"testing"

	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/stretchr/testify/assert"
)

func TestGetOutstandingTranslations(t *testing.T) {
	sets := map[string]i18n.TranslationSet{
		"en": {Key: "Key", Subkey1: "K1"},
		"zh": {Key: "密钥"},
	}

	output := getOutstandingTranslations(sets)
	assert.Regexp(t, `^en: \d+ missing\n`, output)
	assert.NotContains(t, output, "  Key\n")
	assert.Contains(t, output, "  Subkey1\n")
}

func TestShippedTranslationsAreComplete(t *testing.T) {
	assert.Equal(t, "en: complete\nzh: complete\n", getOutstandingTranslations(i18n.GetTranslationSets()))
}

package i18n

import (
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func getDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

func TestDetectLanguage(t *testing.T) {
	type scenario struct {
		langDetector func() (string, error)
		expected     string
	}

	scenarios := []scenario{
		{
			func() (string, error) {
				return "", fmt.Errorf("An error occurred")
			},
			"C",
		},
		{
			func() (string, error) {
				return "zh", nil
			},
			"zh",
		},
		{
			func() (string, error) {
				return "en-GB", nil
			},
			"en",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, detectLanguage(s.langDetector))
	}
}

func TestNewTranslationSetFromConfig(t *testing.T) {
	set, err := NewTranslationSetFromConfig(getDummyLog(), "zh")
	assert.NoError(t, err)
	assert.Equal(t, "密钥", set.Key)

	set, err = NewTranslationSetFromConfig(getDummyLog(), "en")
	assert.NoError(t, err)
	assert.Equal(t, "Key", set.Key)

	set, err = NewTranslationSetFromConfig(getDummyLog(), "klingon")
	assert.EqualError(t, err, "Language not found: klingon")
	assert.Equal(t, "Key", set.Key)
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	set := NewTranslationSet(getDummyLog(), "C")
	assert.Equal(t, englishSet(), *set)
}

// every language must translate every string, otherwise the english one
// silently shows through
func TestTranslationSetsAreComplete(t *testing.T) {
	for language, set := range GetTranslationSets() {
		value := reflect.ValueOf(set)
		for i := 0; i < value.NumField(); i++ {
			assert.NotEmpty(t, value.Field(i).String(), "%s is missing %s", language, value.Type().Field(i).Name)
		}
	}
}

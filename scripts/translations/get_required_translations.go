// This script lists, per language, the translation keys that are still
// empty. Run it with:
//
//	go run scripts/translations/get_required_translations.go
package main

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/samber/lo"
)

func main() {
	fmt.Print(getOutstandingTranslations(i18n.GetTranslationSets()))
}

// adapted from https://github.com/a8m/reflect-examples#read-struct-tags
func getOutstandingTranslations(sets map[string]i18n.TranslationSet) string {
	languages := lo.Keys(sets)
	sort.Strings(languages)

	output := ""
	for _, languageCode := range languages {
		v := reflect.ValueOf(sets[languageCode])

		missing := []string{}
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				missing = append(missing, v.Type().Field(i).Name)
			}
		}

		if len(missing) == 0 {
			output += languageCode + ": complete\n"
			continue
		}
		output += fmt.Sprintf("%s: %d missing\n", languageCode, len(missing))
		for _, name := range missing {
			output += "  " + name + "\n"
		}
	}
	return output
}

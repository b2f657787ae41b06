package presentation

import (
	"strconv"

	"github.com/christophe-duc/lazysdes/pkg/commands"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/christophe-duc/lazysdes/pkg/utils"
	"github.com/fatih/color"
)

// RenderSubkeys lists a key alongside the two round subkeys derived from it
func RenderSubkeys(tr *i18n.TranslationSet, key sdes.Bits, keys sdes.SubkeyPair) (string, error) {
	return utils.RenderTable([][]string{
		{tr.Key, utils.ColoredString(key.String(), color.FgCyan)},
		{tr.Subkey1, keys.K1().String()},
		{tr.Subkey2, keys.K2().String()},
	})
}

// RenderCipherResult shows the output as bits, and as text in ascii mode
func RenderCipherResult(tr *i18n.TranslationSet, result *commands.CipherResult) (string, error) {
	rows := [][]string{
		{tr.Key, result.Key.String()},
		{tr.Binary, utils.ColoredString(result.Binary, color.FgGreen)},
	}
	if result.Mode == config.CipherModeASCII {
		label := tr.Text
		if result.Garbled {
			label = tr.GarbledText
		}
		rows = append(rows, []string{label, strconv.Quote(result.Text)})
	}
	return utils.RenderTable(rows)
}

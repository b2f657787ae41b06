package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/christophe-duc/lazysdes/pkg/commands"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/christophe-duc/lazysdes/pkg/utils"
	"github.com/fatih/color"
	"github.com/samber/lo"
)

type keyRow struct {
	index int
	key   sdes.Bits
}

// GetDisplayStrings returns the display string of a matching key
func (r keyRow) GetDisplayStrings() []string {
	return []string{
		strconv.Itoa(r.index + 1),
		utils.ColoredString(r.key.String(), color.FgGreen),
		utils.ColoredString(strconv.FormatUint(uint64(r.key.Uint()), 10), color.FgHiBlack),
	}
}

// RenderCrackResult shows a status line, the matching keys and how the search
// went. A timed out search is never presented as having found nothing.
func RenderCrackResult(tr *i18n.TranslationSet, result *commands.CrackResult) (string, error) {
	sections := []string{renderStatus(tr, result)}

	if len(result.Keys) > 0 {
		rows := lo.Map(result.Keys, func(key sdes.Bits, i int) keyRow {
			return keyRow{index: i, key: key}
		})
		list, err := utils.RenderList(rows, utils.WithHeader([]string{"#", tr.Key, ""}))
		if err != nil {
			return "", err
		}
		sections = append(sections, list)
	}

	summary, err := utils.RenderTable([][]string{
		{tr.Plaintext, result.Plaintext.String()},
		{tr.Ciphertext, result.Ciphertext.String()},
		{tr.Mode, result.SearchMode},
		{tr.Checked, fmt.Sprintf("%d/%d", result.Checked, sdes.KeySpace)},
		{tr.Workers, strconv.Itoa(result.Workers)},
		{tr.Elapsed, result.Elapsed.String()},
	})
	if err != nil {
		return "", err
	}
	sections = append(sections, summary)

	if note := renderNote(tr, result); note != "" {
		sections = append(sections, note)
	}

	return strings.Join(sections, "\n\n") + "\n", nil
}

func renderStatus(tr *i18n.TranslationSet, result *commands.CrackResult) string {
	switch {
	case result.TimedOut:
		return utils.MultiColoredString(utils.ResolvePlaceholderString(tr.SearchTimedOut, map[string]string{
			"checked": strconv.Itoa(result.Checked),
			"total":   strconv.Itoa(sdes.KeySpace),
		}), color.FgRed, color.Bold)
	case len(result.Keys) == 0:
		return utils.ColoredString(utils.ResolvePlaceholderString(tr.NoKeysFound, map[string]string{
			"total": strconv.Itoa(sdes.KeySpace),
		}), color.FgYellow)
	case result.SearchMode == config.SearchModeFirst:
		return utils.ColoredString(tr.FoundFirstKey, color.FgGreen)
	default:
		return utils.ColoredString(utils.ResolvePlaceholderString(tr.FoundKeys, map[string]string{
			"count": strconv.Itoa(len(result.Keys)),
		}), color.FgGreen)
	}
}

func renderNote(tr *i18n.TranslationSet, result *commands.CrackResult) string {
	if result.SearchMode == config.SearchModeFirst && len(result.Keys) > 0 {
		return tr.FirstMatchNote
	}
	if len(result.Keys) > 1 {
		return tr.CollisionNote
	}
	return ""
}

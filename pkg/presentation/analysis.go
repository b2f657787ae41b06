package presentation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/christophe-duc/lazysdes/pkg/analysis"
	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/christophe-duc/lazysdes/pkg/i18n"
	"github.com/christophe-duc/lazysdes/pkg/utils"
	"github.com/fatih/color"
	"github.com/jesseduffield/asciigraph"
	"github.com/mcuadros/go-lookup"
	"github.com/samber/lo"
)

// RenderAnalysis draws one graph per configured series followed by the
// summary numbers of the report
func RenderAnalysis(userConfig *config.UserConfig, tr *i18n.TranslationSet, report *analysis.Report, width int) (string, error) {
	graphConfigs := userConfig.Analysis.Graphs
	graphs := make([]string, len(graphConfigs))
	for i, graphConfig := range graphConfigs {
		graph, err := plotGraph(tr, report, graphConfig, width-10)
		if err != nil {
			return "", err
		}
		graphs[i] = utils.ColoredString(graph, utils.GetColorAttribute(graphConfig.Color))
	}

	summary, err := utils.RenderTable([][]string{
		{tr.DistinctCiphertexts, strconv.Itoa(report.DistinctCiphertexts)},
		{tr.UnreachedCiphertexts, strconv.Itoa(report.Unreached)},
		{tr.MaxCollisions, strconv.Itoa(report.MaxCollisions)},
		{tr.MinCollisions, strconv.Itoa(report.MinCollisions)},
		{tr.MostCollided, report.MostCollided},
	})
	if err != nil {
		return "", err
	}

	title := utils.ResolvePlaceholderString(tr.AnalysisTitle, map[string]string{
		"plaintext": report.Plaintext,
	})

	return fmt.Sprintf("%s\n\n%s\n\n%s\n",
		utils.MultiColoredString(title, color.Bold, color.FgCyan),
		strings.Join(graphs, "\n\n"),
		summary,
	), nil
}

// plotGraph returns the plotted graph of the series found at the graph's
// StatPath. A scalar stat is drawn as a flat line.
func plotGraph(tr *i18n.TranslationSet, report *analysis.Report, graph config.GraphConfig, width int) (string, error) {
	value, err := lookup.LookupString(*report, graph.StatPath)
	if err != nil {
		return tr.CouldNotFindStatPath + graph.StatPath, nil
	}

	data, err := getSeries(value)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		data = []float64{0}
	}

	max := graph.Max
	if graph.MaxType == "" {
		max = lo.Max(data)
	}

	min := graph.Min
	if graph.MinType == "" {
		min = lo.Min(data)
	}

	height := 10
	if graph.Height > 0 {
		height = graph.Height
	}

	options := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Min(min),
		asciigraph.Max(max),
		asciigraph.Caption(fmt.Sprintf("%s (%d)", graph.Caption, len(data))),
	}
	if width > 0 {
		options = append(options, asciigraph.Width(width))
	}

	return asciigraph.Plot(data, options...), nil
}

func getSeries(value reflect.Value) ([]float64, error) {
	value = reflect.Indirect(value)
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		floatValue, err := getFloat(value.Interface())
		if err != nil {
			return nil, err
		}
		return []float64{floatValue}, nil
	}

	data := make([]float64, value.Len())
	for i := 0; i < value.Len(); i++ {
		floatValue, err := getFloat(value.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		data[i] = floatValue
	}
	return data, nil
}

// from Dave C's answer at https://stackoverflow.com/questions/20767724/converting-unknown-interface-to-float64-in-golang
func getFloat(unk interface{}) (float64, error) {
	floatType := reflect.TypeOf(float64(0))
	stringType := reflect.TypeOf("")

	switch i := unk.(type) {
	case float64:
		return i, nil
	case float32:
		return float64(i), nil
	case int64:
		return float64(i), nil
	case int32:
		return float64(i), nil
	case int:
		return float64(i), nil
	case uint64:
		return float64(i), nil
	case uint32:
		return float64(i), nil
	case uint:
		return float64(i), nil
	case string:
		return strconv.ParseFloat(i, 64)
	default:
		v := reflect.ValueOf(unk)
		v = reflect.Indirect(v)
		if v.Type().ConvertibleTo(floatType) {
			fv := v.Convert(floatType)
			return fv.Float(), nil
		} else if v.Type().ConvertibleTo(stringType) {
			sv := v.Convert(stringType)
			s := sv.String()
			return strconv.ParseFloat(s, 64)
		} else {
			return math.NaN(), fmt.Errorf("Can't convert %v to float64", v.Type())
		}
	}
}

package classify

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart"
)

// WriteComparisonChart renders a bar chart of test-set accuracy per back
// end to a PNG at path.
func WriteComparisonChart(path string, evals []Evaluation) error {
	if len(evals) == 0 {
		return errors.New("no evaluations to chart")
	}

	bars := make([]chart.Value, 0, len(evals))
	for _, ev := range evals {
		bars = append(bars, chart.Value{
			Label: ev.Backend,
			Value: ev.Accuracy,
		})
	}

	bc := chart.BarChart{
		Title:      "Test-set accuracy by back end",
		TitleStyle: chart.StyleShow(),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Height:   512,
		BarWidth: 80,
		XAxis:    chart.StyleShow(),
		YAxis: chart.YAxis{
			Style: chart.StyleShow(),
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: bars,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating chart dir for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := bc.Render(chart.PNG, f); err != nil {
		return errors.Wrapf(err, "rendering chart to %s", path)
	}
	return nil
}

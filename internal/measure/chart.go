package measure

import "fmt"

// ChartData is the line-chart input: one label per measurement and one
// dataset per field.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is a single named series.
type Dataset struct {
	Label       string    `json:"label"`
	BorderColor string    `json:"borderColor"`
	Data        []float64 `json:"data"`
	Fill        bool      `json:"fill"`
}

// SeriesColors holds the line colour per field, indexed like Fields.
var SeriesColors = []string{
	"rgb(255, 99, 132)",
	"rgb(75, 192, 192)",
	"rgb(54, 162, 235)",
}

// DeriveChart projects the list into chart series. It is recomputed in full
// on every call.
func DeriveChart(measurements []Measurement) ChartData {
	labels := make([]string, len(measurements))
	for i := range measurements {
		labels[i] = fmt.Sprintf("Measurement %d", i+1)
	}

	datasets := make([]Dataset, 0, len(Fields))
	for i, f := range Fields {
		data := make([]float64, len(measurements))
		for j, m := range measurements {
			data[j] = m.Get(f)
		}
		datasets = append(datasets, Dataset{
			Label:       f.Label(),
			BorderColor: SeriesColors[i],
			Data:        data,
			Fill:        false,
		})
	}

	return ChartData{Labels: labels, Datasets: datasets}
}

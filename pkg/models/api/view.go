package api

type Parameters struct {
	Rate      float64 `json:"rate"`
	Principal float64 `json:"principal"`
	Periods   int     `json:"periods"`
	Years     int     `json:"years"`
}

type Summary struct {
	Empty       bool   `json:"empty"`
	Placeholder string `json:"placeholder,omitempty"`
	FutureValue string `json:"future_value,omitempty"`
	Principal   string `json:"principal,omitempty"`
	Gain        string `json:"gain,omitempty"`
}

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Fill  bool      `json:"fill"`
}

// ChartData matches the data argument of a Chart.js line chart.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type TableRow struct {
	Year        int    `json:"year"`
	Label       string `json:"label"`
	Principal   string `json:"principal"`
	Gain        string `json:"gain"`
	FutureValue string `json:"future_value"`
}

type Rejection struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Error string `json:"error"`
}

type View struct {
	Parameters  Parameters  `json:"parameters"`
	Description string      `json:"description"`
	Summary     Summary     `json:"summary"`
	Chart       *ChartData  `json:"chart"`
	Table       []TableRow  `json:"table"`
	Rejected    []Rejection `json:"rejected"`
}

type Field struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Placeholder string  `json:"placeholder"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Step        float64 `json:"step"`
}

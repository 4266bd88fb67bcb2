package domain

// View is everything the front ends render for one set of parameters.
type View struct {
	Parameters  Parameters
	Description string
	Summary     Summary
	Chart       *ChartData // nil when there is nothing to plot
	Table       []TableRow
	Records     []YearRecord
}

// Summary holds the headline totals of the final year.
type Summary struct {
	Empty       bool
	Placeholder string
	FutureValue string
	Principal   string
	Gain        string
}

// ChartData is the input of a line chart widget.
type ChartData struct {
	Labels   []string
	Datasets []Dataset
}

type Dataset struct {
	Label string
	Data  []float64
	Fill  bool
}

// TableRow is one formatted line of the year-by-year table.
type TableRow struct {
	Year        int
	Label       string
	Principal   string
	Gain        string
	FutureValue string
}

package autocorr

// Point is one entry of an autocorrelation curve: the estimate at a single
// separation radius.
type Point struct {
	SeparationM float64 `json:"separation_m"`
	Value       float64 `json:"autocorrelation"`
	StdErr      float64 `json:"std_err"`
	Samples     int     `json:"samples"`
}

// Curve is an ordered sequence of autocorrelation estimates, one per
// separation radius, radius ascending. The first entry is always the
// radius-0 point with Value pinned at exactly 1.0 by convention.
type Curve []Point

// Separations returns the separation radii of the curve in order.
func (c Curve) Separations() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.SeparationM
	}
	return out
}

// Values returns the autocorrelation values of the curve in order.
func (c Curve) Values() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Value
	}
	return out
}

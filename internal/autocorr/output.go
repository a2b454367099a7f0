package autocorr

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// WriteCSV writes the curve as CSV with a header row. Separations use full
// float precision so curves survive a round trip through text.
func (c Curve) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"separation_m", "autocorrelation", "std_err", "samples"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range c {
		row := []string{
			fmt.Sprintf("%.12g", p.SeparationM),
			fmt.Sprintf("%.12g", p.Value),
			fmt.Sprintf("%.12g", p.StdErr),
			fmt.Sprintf("%d", p.Samples),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the curve as an indented JSON array.
func (c Curve) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode curve: %w", err)
	}
	return nil
}

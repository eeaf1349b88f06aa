package runner

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Report writes one aligned line per result: label, expected, actual, and
// Ok or Failed.
func Report(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, r := range results {
		status := "Ok"
		if !r.OK {
			status = "Failed"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Label, r.Expected, r.Actual, status); err != nil {
			return fmt.Errorf("write report line for %q: %w", r.Label, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

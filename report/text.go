package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteText renders rep as plain-text tables: one block per route with its
// segments, then the pairwise and average diversity tables.
func WriteText(w io.Writer, rep *Report) error {
	tw := &errWriter{w: w}
	if b := rep.Baseline; b != nil {
		tw.printf("Shortest: %s\n", strings.Join(b.Nodes, " -> "))
		tw.printf("(Distance: %s, Travel Time: %.2f, Search Cost: %s)\n\n",
			num(b.Distance), b.TravelTime, num(b.Cost))
	}
	for _, r := range rep.Routes {
		tw.printf("Path %d: %s\n", r.Number, strings.Join(r.Nodes, " -> "))
		tw.printf("(Distance: %s, Travel Time: %.2f, Search Cost: %s, Stretch: %.2f)\n\n",
			num(r.Distance), r.TravelTime, num(r.Cost), r.Stretch)
		rows := make([][]string, 0, len(r.Segments))
		for _, s := range r.Segments {
			rows = append(rows, []string{
				s.From + " to " + s.To,
				num(s.Weight), num(s.CumulativeWeight),
				fmt.Sprintf("%.2f", s.TravelTime), fmt.Sprintf("%.2f", s.CumulativeTravelTime),
			})
		}
		tw.table([]string{"Segment", "Distance", "Cumulative", "Travel Time", "Cumulative"}, rows)
		tw.printf("\n")
	}
	if rep.Notice != "" {
		tw.printf("%s\n\n", rep.Notice)
	}

	if len(rep.Pairwise) > 0 {
		rows := make([][]string, 0, len(rep.Pairwise))
		for _, m := range rep.Pairwise {
			rows = append(rows, metricRow(m.Label(), m.CostDiffPct, m.OverlapPct, m.TravelTimeDiffPct, m.DetourFactor))
		}
		tw.table(metricHeaders("Comparison"), rows)
		tw.printf("\n")
	}
	if len(rep.Averages) > 0 {
		rows := make([][]string, 0, len(rep.Averages))
		for _, m := range rep.Averages {
			rows = append(rows, metricRow(m.Label(), m.CostDiffPct, m.OverlapPct, m.TravelTimeDiffPct, m.DetourFactor))
		}
		tw.table(metricHeaders("Path"), rows)
	}

	return tw.err
}

func metricHeaders(first string) []string {
	return []string{first, "Cost Diff %", "Overlap %", "Travel Time Diff %", "Detour Factor"}
}

func metricRow(label string, cd, po, tt, df float64) []string {
	return []string{label, fmt.Sprintf("%.2f", cd), fmt.Sprintf("%.2f", po), fmt.Sprintf("%.2f", tt), fmt.Sprintf("%.2f", df)}
}

// num prints integral values without a fraction, others with two decimals.
func num(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%.2f", v)
}

// errWriter remembers the first write error so rendering code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		e.printf("%s\n", strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

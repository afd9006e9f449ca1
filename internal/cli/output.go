package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/orienteer/run"
	"github.com/katalvlaran/orienteer/store"
)

var (
	headline = color.New(color.FgGreen, color.Bold)
	warning  = color.New(color.FgYellow)
	faint    = color.New(color.FgHiBlack)
)

func printResult(w io.Writer, p run.Params, res run.Result, s run.Summary) {
	headline.Fprintf(w, "interest %d  time %d/%d\n", res.Interest, res.Time, p.Budget)
	fmt.Fprintf(w, "path      %s\n", strings.Join(res.Vertices, " → "))
	faint.Fprintf(w, "roads %d  iterations %d  elapsed %s  parallel %v\n",
		len(res.Edges), s.Iterations, s.Elapsed, p.Parallel)
	if s.Cancelled {
		warning.Fprintln(w, "search stopped before exhausting the map; result is the best found so far")
	}
	if s.Panics > 0 {
		warning.Fprintf(w, "%d search task(s) failed\n", s.Panics)
	}
}

func printMaps(w io.Writer, recs []store.MapRecord) {
	if len(recs) == 0 {
		faint.Fprintln(w, "no stored maps")
		return
	}
	for _, r := range recs {
		headline.Fprintf(w, "%-20s", r.Name)
		fmt.Fprintf(w, " %3d vertices %3d roads  interest %d\n", r.Vertices, r.Edges, r.Document.TotalInterest())
	}
}

func printRuns(w io.Writer, recs []store.RunRecord) {
	if len(recs) == 0 {
		faint.Fprintln(w, "no recorded runs")
		return
	}
	for _, r := range recs {
		c := headline
		if r.Cancelled {
			c = warning
		}
		c.Fprintf(w, "#%-4d %-16s", r.ID, r.Map)
		fmt.Fprintf(w, " budget %-5d interest %-5d time %-5d %s\n", r.Budget, r.Interest, r.Time, strings.Join(r.Path, " → "))
	}
}

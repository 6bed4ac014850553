package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/neurlang/multiclass/trainer"
)

func render(w io.Writer, format string, rep *trainer.Report) error {
	if format == "yaml" {
		return rep.WriteYAML(w)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"round", "rows", "positive", "duration"})
	for _, r := range rep.Rounds {
		t.AppendRow(table.Row{r.Index, r.Rows, r.Positive, r.Duration})
	}
	t.AppendFooter(table.Row{"submodels", rep.Submodels, "learned bytes", rep.Learned})
	t.Render()

	_, _ = fmt.Fprintf(w, "%s %s/%s on %s: %d samples, %d classes\n",
		rep.Machine, rep.Strategy, rep.Learner, rep.Dataset, rep.Samples, rep.Classes)
	_, _ = fmt.Fprintf(w, "accuracy %.2f%% over %d rows, trained in %s (run %s)\n",
		rep.Accuracy, rep.Evaluated, rep.Duration, rep.RunID)
	return nil
}

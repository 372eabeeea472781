package root

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/ui"
)

const chartWidth = 50

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Plot score over time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()

			records, err := svc.History(ctx)
			if err != nil {
				return err
			}
			days := tracker.Aggregate(records)
			if len(days) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing to plot yet."))
				return nil
			}

			sorted := make([]tracker.Day, 0, len(days))
			for d := range days {
				sorted = append(sorted, d)
			}
			sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Score Over Time"))
			for _, d := range sorted {
				score := days[d]
				fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render(d.String()), scoreBar(score), ui.ScoreText(score))
			}
			return nil
		},
	}

	return cmd
}

// scoreBar scales a score onto a fixed-width bar; scores above 100 are
// capped visually, the printed number stays exact.
func scoreBar(score float64) string {
	n := int(score / tracker.PerfectScore * chartWidth)
	if n > chartWidth {
		n = chartWidth
	}
	if n < 0 {
		n = 0
	}
	bar := strings.Repeat("█", n) + strings.Repeat(" ", chartWidth-n)
	return ui.Key.Render(bar)
}

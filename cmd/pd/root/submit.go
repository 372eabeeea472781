package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/ui"
)

func newSubmitCmd() *cobra.Command {
	var done []string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit today's checklist",
		Long: `Submit today's completion and record the day's score.

Tasks named with --done are marked complete; every other catalog task
counts as not done. Submitting the same day again overwrites the
previous row.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			completion, err := completionFromFlags(done, svc.Catalog())
			if err != nil {
				return err
			}

			res, err := svc.SubmitDay(ctx, completion)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Day submitted"), ui.Muted.Render(res.Day.String()))
			fmt.Fprintln(out, ui.LabelValue("Score", ui.ScoreText(res.Score)))
			fmt.Fprintln(out, ui.StreakText(res.Streak))
			for _, name := range res.NewlyUnlocked {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Unlocked: "+name))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&done, "done", "d", nil, "task completed today (repeatable)")
	return cmd
}

func completionFromFlags(done []string, catalog []tracker.TaskDefinition) (map[string]bool, error) {
	known := map[string]bool{}
	for _, t := range catalog {
		known[t.Name] = true
	}

	completion := map[string]bool{}
	for _, name := range done {
		name = strings.TrimSpace(name)
		if !known[name] {
			return nil, fmt.Errorf("unknown task %q (catalog: %s)", name, strings.Join(tracker.TaskNames(catalog), ", "))
		}
		completion[name] = true
	}
	return completion, nil
}

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

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "List submitted days, newest first",
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
			if len(records) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No days submitted yet."))
				return nil
			}
			sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })

			catalog := svc.Catalog()
			for _, rec := range records {
				marks := make([]string, 0, len(catalog))
				for _, t := range catalog {
					if rec.Completion[t.Name] {
						marks = append(marks, ui.TaskColor(t.Color).Render("✓"))
					} else {
						marks = append(marks, ui.Muted.Render("·"))
					}
				}
				fmt.Fprintf(out, "%s  %s  %s\n", ui.Key.Render(rec.Date), strings.Join(marks, " "), ui.ScoreText(rec.Score))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("columns: "+strings.Join(taskInitials(catalog), " ")))
			return nil
		},
	}

	return cmd
}

func taskInitials(catalog []tracker.TaskDefinition) []string {
	initials := make([]string, len(catalog))
	for i, t := range catalog {
		r := []rune(t.Name)
		initials[i] = string(r[0])
	}
	return initials
}

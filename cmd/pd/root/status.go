package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's score, streak and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconStar, "Perfect Day Status"))

			today, err := svc.TodayRecord(ctx)
			if err != nil {
				return err
			}
			if today != nil {
				fmt.Fprintln(out, ui.LabelValue("Today", ui.ScoreText(today.Score)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Today", ui.Warn.Render("not submitted yet")))
			}

			streak, err := svc.CurrentStreak(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.StreakText(streak))
			fmt.Fprintln(out, "")

			unlocked, err := svc.Unlocked(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			for _, def := range tracker.Definitions() {
				if a, ok := unlocked[def.Name]; ok {
					fmt.Fprintf(out, "%s %s %s %s\n", ui.IconDone, def.Icon, def.Name, ui.Muted.Render("("+a.UnlockedOn.String()+")"))
				} else {
					fmt.Fprintf(out, "%s %s %s %s\n", ui.IconMiss, def.Icon, def.Name, ui.Muted.Render("— "+def.Description))
				}
			}
			return nil
		},
	}

	return cmd
}

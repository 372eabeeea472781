package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/ui"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the task catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconForm, "Daily Checklist"))
			var total float64
			for _, t := range svc.Catalog() {
				fmt.Fprintf(out, "%s %s\n", ui.TaskColor(t.Color).Render("■"), fmt.Sprintf("%s %s", t.Name, ui.Muted.Render(fmt.Sprintf("(%.0f%%)", t.Weight))))
				total += t.Weight
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Total weight", fmt.Sprintf("%.0f", total)))
			return nil
		},
	}

	return cmd
}

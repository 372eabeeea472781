package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/ui"
)

const Version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "pd",
	Short:         "Perfect Day Tracker — weighted daily checklist with streaks and achievements",
	Long:          "Perfect Day Tracker scores each day from a weighted task checklist, keeps a consecutive-day streak, and unlocks one-time achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity to stderr")

	rootCmd.AddCommand(
		newSubmitCmd(),
		newStatusCmd(),
		newLogCmd(),
		newChartCmd(),
		newTasksCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

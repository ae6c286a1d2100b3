package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/taskframe/taskframe/animate"
	"github.com/taskframe/taskframe/config"
	"github.com/taskframe/taskframe/frame"
	"github.com/taskframe/taskframe/log"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("title", "t", "Tasks", "Title of the panel printed before the tasks")
	runCmd.SetOut(os.Stdout)
}

// runCmd animates the given task labels one exec delay apart.
var runCmd = &cobra.Command{
	Use:     "run [task]...",
	Short:   "Print each task label one exec delay apart",
	Args:    cobra.MinimumNArgs(1),
	Example: "  taskframe run fetch build deploy --delay 250",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		handleErr(err)

		title, _ := cmd.Flags().GetString("title")
		handleErr(frame.New(settings.Palette()).Render(cmd.OutOrStdout(), title, args...))

		log.Infof("running %d tasks with %s delay", len(args), settings.ExecDelay())
		handleErr(animate.New(cmd.OutOrStdout(), settings).Run(cmd.Context(), args))
	},
}

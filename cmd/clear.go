package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/taskframe/taskframe/filesystem"
	"github.com/taskframe/taskframe/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"config file", "config", mo.None[string](), where.ConfigFile},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
	clearCmd.SetOut(os.Stdout)
}

// clearCmd removes files the CLI has written.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove log files or the config file",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if lo.Must(cmd.Flags().GetBool(target.argLong)) {
				anyCleared = true
				handleErr(filesystem.Delete(target.location()))
				success(cmd, "%s cleared", target.name)
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}

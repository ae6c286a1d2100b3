// Package cmd implements the command-line interface for taskframe.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taskframe/taskframe/config"
	"github.com/taskframe/taskframe/constant"
	"github.com/taskframe/taskframe/key"
	"github.com/taskframe/taskframe/log"
	"github.com/taskframe/taskframe/style"
)

const (
	iconSuccess = "✔"
	iconFail    = "✖"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().Bool("color", config.Default[key.ColorEnable].Value.(bool), "Enable ANSI colors in frames and task output")
	lo.Must0(viper.BindPFlag(key.ColorEnable, rootCmd.PersistentFlags().Lookup("color")))

	rootCmd.PersistentFlags().IntP("delay", "d", config.Default[key.ExecDelayMs].Value.(int), "Delay between animated task steps, in milliseconds")
	lo.Must0(viper.BindPFlag(key.ExecDelayMs, rootCmd.PersistentFlags().Lookup("delay")))
}

// rootCmd defines the entry point for the taskframe application.
var rootCmd = &cobra.Command{
	Use:   constant.Taskframe,
	Short: "Render framed terminal panels and pace task output",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !viper.GetBool(key.ColorEnable) {
			style.Disable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the root command until it returns or the process is interrupted.
func Execute() {
	if viper.GetBool(key.ColorEnable) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.Red)(iconFail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func success(cmd *cobra.Command, format string, args ...any) {
	cmd.Printf("%s %s\n", style.Fg(style.Green)(iconSuccess), fmt.Sprintf(format, args...))
}

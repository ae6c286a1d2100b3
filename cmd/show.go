package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/taskframe/taskframe/color"
	"github.com/taskframe/taskframe/config"
	"github.com/taskframe/taskframe/constant"
	"github.com/taskframe/taskframe/frame"
	"github.com/taskframe/taskframe/log"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.SetOut(os.Stdout)
}

// showCmd renders the resolved output settings inside a frame.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the resolved output settings and color palette in a frame",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		handleErr(err)

		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width < constant.UIWidth+2 {
			log.Warnf("terminal is %d columns wide, frames need %d", width, constant.UIWidth+2)
		}

		palette := settings.Palette()
		body := []string{
			fmt.Sprintf("%-10s %d columns", "width", constant.UIWidth),
			fmt.Sprintf("%-10s %d columns", "frame", len(constant.UIBorder)),
			fmt.Sprintf("%-10s %s", "delay", settings.ExecDelay()),
			fmt.Sprintf("%-10s %t", "color", settings.ColorEnabled),
		}

		swatches := color.Swatches(palette)
		if len(swatches) > 0 {
			body = append(body, "")
		}
		p, _ := palette.Get()
		for _, s := range swatches {
			body = append(body, fmt.Sprintf("%s%-10s%s %s", s.Code, s.Name, p.Reset, strconv.QuoteToASCII(s.Code)))
		}

		handleErr(frame.New(palette).Render(cmd.OutOrStdout(), constant.Taskframe+" settings", body...))
	},
}

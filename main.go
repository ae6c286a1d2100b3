// Package main is the entry point for the taskframe CLI.
package main

import (
	"github.com/samber/lo"
	"github.com/taskframe/taskframe/cmd"
	"github.com/taskframe/taskframe/config"
	"github.com/taskframe/taskframe/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

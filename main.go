// Package main is the entry point for the dashbridge command-line application.
package main

import (
	"github.com/dashbridge/dashbridge/cmd"
	"github.com/dashbridge/dashbridge/config"
	"github.com/dashbridge/dashbridge/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

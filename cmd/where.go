// Package cmd implements the command-line interface for dashbridge.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dashbridge/dashbridge/constant"
	"github.com/dashbridge/dashbridge/style"
	"github.com/dashbridge/dashbridge/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// configPath resolves the location of the configuration file written by config set/reset.
func configPath() string {
	return filepath.Join(where.Config(), constant.Dashbridge+".toml")
}

// whereTarget encapsulates a localized filesystem resource and its CLI representation.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

// wherePaths registry of all application resources with resolvable filesystem paths.
var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Hooks", where.Hooks, "hooks", mo.Some("k"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Prefs", where.Prefs, "prefs", mo.None[string](), true},
	{"Temp", where.Temp, "temp", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if n.argShort.IsPresent() {
			whereCmd.Flags().BoolP(n.argLong, n.argShort.MustGet(), false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}

		if n.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(n.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)
}

// whereCmd displays the resolved filesystem locations of application resources.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the resolved paths of application resources",
	Run: func(cmd *cobra.Command, args []string) {
		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				fmt.Println(n.where())
				return
			}
		}

		for _, n := range wherePaths {
			if n.hidden {
				continue
			}
			fmt.Printf("%s %s\n", style.Fg(style.AccentColor)(n.name+":"), n.where())
		}
	},
}

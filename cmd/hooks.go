// Package cmd implements the command-line interface for dashbridge.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dashbridge/dashbridge/filesystem"
	"github.com/dashbridge/dashbridge/hooks"
	"github.com/dashbridge/dashbridge/host"
	"github.com/dashbridge/dashbridge/icon"
	"github.com/dashbridge/dashbridge/style"
	"github.com/dashbridge/dashbridge/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(hooksCmd)
}

// hooksCmd serves as the parent command for managing Lua hook scripts.
var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage the Lua hook scripts extending source attachment",
}

func init() {
	hooksCmd.AddCommand(hooksListCmd)
}

// hooksListCmd displays the hook scripts present in the hooks directory.
var hooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the hook scripts in the hooks directory",
	Run: func(cmd *cobra.Command, args []string) {
		files, err := filesystem.API().ReadDir(where.Hooks())
		handleErr(err)

		var count int
		for _, f := range files {
			if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
				continue
			}
			count++
			fmt.Printf("%s %s\n", icon.Get(icon.Lua), style.Bold(f.Name()))
		}

		if count == 0 {
			fmt.Println(style.Faint("no hook scripts in " + where.Hooks()))
		}
	},
}

func init() {
	hooksCmd.AddCommand(hooksCheckCmd)

	hooksCheckCmd.Flags().StringP("source", "s", "https://cdn.example/stream.mpd", "Source URL to run the scripts against")
	hooksCheckCmd.Flags().StringP("mime", "m", "application/dash+xml", "MIME type to run the scripts against")
}

// hooksCheckCmd loads every hook script and shows how it rewrites a sample source.
var hooksCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every hook script and show the rewritten source descriptor",
	Run: func(cmd *cobra.Command, args []string) {
		registry := hooks.New()
		handleErr(hooks.LoadScripts(registry))

		src := host.Source{
			URL:      lo.Must(cmd.Flags().GetString("source")),
			MimeType: lo.Must(cmd.Flags().GetString("mime")),
		}

		out, _ := registry.Run(hooks.UpdateSource, src).(host.Source)

		fmt.Printf("%s %s\n", style.Faint("scripts:"), style.Bold(fmt.Sprint(registry.Len(hooks.UpdateSource))))
		fmt.Printf("%s %s %s\n", style.Faint("url:"), src.URL, style.Fg(style.AccentColor)("→ "+out.URL))
		fmt.Printf("%s %s %s\n", style.Faint("mime:"), src.MimeType, style.Fg(style.AccentColor)("→ "+out.MimeType))
	},
}

// Package cmd implements the command-line interface for dashbridge.
package cmd

import (
	"os"
	"runtime"
	"text/template"

	"github.com/dashbridge/dashbridge/constant"
	"github.com/dashbridge/dashbridge/style"
	"github.com/dashbridge/dashbridge/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display exhaustive version and build metadata",
	Long:  "Display the current application version, platform architecture, and related metadata.",
	Run: func(cmd *cobra.Command, args []string) {
		defer version.Notify()

		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		versionInfo := struct {
			Version string
			OS      string
			Arch    string
			App     string
		}{
			Version: constant.Version,
			App:     constant.Dashbridge,
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint":   style.Faint,
			"bold":    style.Bold,
			"magenta": style.Fg(style.AccentColor),
		}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}   {{ bold .Version }}
  {{ faint "Platform" }}  {{ bold .OS }}/{{ bold .Arch }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}

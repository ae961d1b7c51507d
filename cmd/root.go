// Package cmd implements the command-line interface for dashbridge.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dashbridge/dashbridge/constant"
	"github.com/dashbridge/dashbridge/icon"
	"github.com/dashbridge/dashbridge/key"
	"github.com/dashbridge/dashbridge/log"
	"github.com/dashbridge/dashbridge/style"
	"github.com/dashbridge/dashbridge/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("ui-language", "L", "", "UI language tag used when deriving track labels")
	lo.Must0(viper.BindPFlag(key.CliUILanguage, rootCmd.PersistentFlags().Lookup("ui-language")))
}

// rootCmd defines the entry point for the dashbridge application.
var rootCmd = &cobra.Command{
	Use:   constant.Dashbridge,
	Short: "A bridge between an adaptive streaming engine and a host media-player framework",
	Long: style.Fg(style.AccentColor)(constant.Dashbridge) + "\n" +
		style.Italic("    - mirrors engine tracks, reconciles selections and translates errors"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		version.Notify()
		lo.Must0(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
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

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.ErrorColor)(icon.Get(icon.Cross)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// Package cmd implements the command-line interface for dashbridge.
package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/dashbridge/dashbridge/bridge"
	"github.com/dashbridge/dashbridge/constant"
	"github.com/dashbridge/dashbridge/host"
	"github.com/dashbridge/dashbridge/network"
	"github.com/dashbridge/dashbridge/style"
	"github.com/dashbridge/dashbridge/util"
	"github.com/invopop/jsonschema"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// probeReport is the structured result of a source compatibility probe.
type probeReport struct {
	Source     string       `json:"source" jsonschema:"description=The probed source URL or path"`
	MimeType   string       `json:"mimeType" jsonschema:"description=The MIME type used for the probe"`
	Result     host.CanPlay `json:"result" jsonschema:"description=Tri-state compatibility answer: probably, maybe or empty"`
	Handleable bool         `json:"handleable" jsonschema:"description=Whether the source handler would accept the source"`
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.SetOut(os.Stdout)

	probeCmd.Flags().StringP("mime", "m", "", "Explicit MIME type to probe with")
	probeCmd.Flags().StringSliceP("key-system", "K", []string{}, "Key systems the source would request")
	probeCmd.Flags().Bool("no-encrypted-media", false, "Probe as if the runtime lacked encrypted-media support")
	probeCmd.Flags().BoolP("remote", "r", false, "Resolve the MIME type from the remote Content-Type header")
	probeCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	probeCmd.Flags().Bool("schema", false, "Print the JSON schema of the probe report and exit")
}

// probeCmd answers whether a source descriptor can be handled by the bridge.
var probeCmd = &cobra.Command{
	Use:   "probe [source]",
	Short: "Answer whether a source can be handled by the bridge",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(jsonschema.Reflect(&probeReport{})))
			return
		}

		if len(args) == 0 {
			handleErr(fmt.Errorf("source argument is required"))
		}
		source := args[0]

		mime := lo.Must(cmd.Flags().GetString("mime"))
		if lo.Must(cmd.Flags().GetBool("remote")) && mime == "" {
			mime = remoteMimeType(source)
		}

		src := host.Source{
			URL:      source,
			MimeType: mime,
			KeySystemOptions: lo.Map(
				lo.Must(cmd.Flags().GetStringSlice("key-system")),
				func(name string, _ int) host.KeySystemOption {
					return host.KeySystemOption{Name: name}
				},
			),
		}

		caps := host.Capabilities{
			MediaSource:    true,
			EncryptedMedia: !lo.Must(cmd.Flags().GetBool("no-encrypted-media")),
		}

		result := bridge.CanHandleSource(src, caps)
		report := probeReport{
			Source:     source,
			MimeType:   mime,
			Result:     result,
			Handleable: result != host.CanPlayNo,
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(report))
			return
		}

		printReport(cmd, report)
	},
}

// remoteMimeType resolves the Content-Type of a remote source via a HEAD request.
func remoteMimeType(source string) string {
	req, err := http.NewRequest(http.MethodHead, source, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return ""
	}
	defer util.Ignore(resp.Body.Close)

	return resp.Header.Get("Content-Type")
}

// printReport renders a human-readable probe verdict, wrapped to the terminal width.
func printReport(cmd *cobra.Command, report probeReport) {
	verdict := style.Fg(style.ErrorColor)("no")
	explanation := "the source matches neither the standardized MIME type nor a recognized manifest extension"

	switch report.Result {
	case host.CanPlayProbably:
		verdict = style.Fg(style.SuccessColor)(string(report.Result))
		explanation = "the MIME type is an exact match for the standardized adaptive manifest type"
	case host.CanPlayMaybe:
		verdict = style.Fg(style.WarningColor)(string(report.Result))
		explanation = "the file extension is recognized but the MIME type does not match"
	}

	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		width = 80
	}

	cmd.Printf("%s %s\n", style.Bold(report.Source+":"), verdict)
	cmd.Println(wordwrap.String(style.Faint(explanation), width))
}

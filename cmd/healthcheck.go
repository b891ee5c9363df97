package cmd

import (
	"io"
	"time"

	"devsecops-app/core/config"
	"devsecops-app/core/probe"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var probeOpts probe.Options

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe /healthz of a running instance",
	Long: `Sends one GET request to /healthz and exits with status 1 when the request
fails or the status is not 200. The port defaults to the configured PORT.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := probeOpts
		if !cmd.Flags().Changed("port") {
			if cfg, err := config.LoadConfig("."); err == nil {
				opts.Port = cfg.Server.Port
			}
		}
		return runHealthcheck(cmd, opts)
	},
}

func runHealthcheck(cmd *cobra.Command, opts probe.Options) error {
	res, err := probe.Check(cmd.Context(), opts)
	if err != nil {
		printFailure(cmd.ErrOrStderr(), res, err)
		return err
	}
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ Unit test passed (%s in %s)\n", res.URL, res.Duration.Round(time.Millisecond))
	return nil
}

func printFailure(w io.Writer, res probe.Result, err error) {
	red := color.New(color.FgRed)
	if res.Status != 0 {
		red.Fprintf(w, "❌ Health check failed: status %d, body %q\n", res.Status, res.Body)
		return
	}
	red.Fprintln(w, "❌ Health check failed:", err)
}

func init() {
	healthcheckCmd.Flags().StringVar(&probeOpts.Host, "host", "localhost", "host of the running instance")
	healthcheckCmd.Flags().StringVar(&probeOpts.Port, "port", "3000", "port of the running instance")
	healthcheckCmd.Flags().StringVar(&probeOpts.Path, "path", "/healthz", "route to probe")
	healthcheckCmd.Flags().DurationVar(&probeOpts.Timeout, "timeout", 5*time.Second, "request timeout")
	RootCmd.AddCommand(healthcheckCmd)
}

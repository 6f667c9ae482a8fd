package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/TheusHen/primkit/primkit/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Run JSON lines requests from a file or stdin",
		Long: `Run one operation per input line and write one JSON response per line, in
input order.

Request:  {"id": 1, "op": "ecdsa-sign", "args": ["<digest>", "<key>"], "options": {}}
Response: {"id": 1, "op": "ecdsa-sign", "ok": true, "result": {"signature": "..."}}

Options set in a request ("strict_low_s", "cipher", "hash") override the
configured defaults for that request only.

A failed request is reported in its response. Malformed JSON stops the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open requests")
				}
				defer f.Close()
				in = f
			}

			config := batch.DefaultConfig()
			config.Workers = a.cfg.Workers
			config.Options = a.options()
			runner := batch.NewRunner(config, &a.log)

			err := runner.Run(cmd.Context(), in, cmd.OutOrStdout())
			stats := runner.Stats()
			a.log.Info().
				Int64("requests", stats.Requests.Load()).
				Int64("failed", stats.Failed.Load()).
				Msg("batch finished")
			return err
		},
	}
	cmd.Flags().IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "concurrent requests")
	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TheusHen/primkit/primkit/ops"
)

func newOpCmd(a *app, op ops.Op) *cobra.Command {
	return &cobra.Command{
		Use:   op.Name + " " + strings.Join(argPlaceholders(op.Args), " "),
		Short: op.Summary,
		Args:  cobra.ExactArgs(len(op.Args)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug().Str("op", op.Name).Int("args", len(args)).Msg("running operation")
			res, err := ops.Run(op.Name, a.options(), args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.String())
			return err
		},
	}
}

func argPlaceholders(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "<" + n + ">"
	}
	return out
}

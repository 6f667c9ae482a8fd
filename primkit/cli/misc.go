package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go-simpler.org/env"

	"github.com/TheusHen/primkit/primkit/internal/curve"
	"github.com/TheusHen/primkit/primkit/selftest"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

func newSelftestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in known-answer tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return selftest.Run(selftest.Checks(), func(name string, err error) {
				if err != nil {
					a.log.Error().Str("check", name).Err(err).Msg("self test failed")
					fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
					return
				}
				fmt.Fprintf(out, "ok   %s\n", name)
			})
		},
	}
}

func newEnvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables primkit reads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			env.Usage(&a.cfg, cmd.OutOrStdout(), nil)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			timing := "variable time"
			if curve.ConstantTime {
				timing = "constant time"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "primkit %s %s/%s %s curve=%s (%s)\n",
				Version, runtime.GOOS, runtime.GOARCH, runtime.Version(), curve.Backend, timing)
		},
	}
}

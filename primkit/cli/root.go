// Package cli is the primkit command line: one subcommand per operation plus
// batch, selftest, env and version.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/TheusHen/primkit/primkit/aead"
	"github.com/TheusHen/primkit/primkit/ecdsa"
	"github.com/TheusHen/primkit/primkit/ops"
)

// app is the state shared by every subcommand.
type app struct {
	cfg Config
	log zerolog.Logger
}

func (a *app) options() ops.Options {
	return ops.Options{
		StrictLowS: ops.Bool(a.cfg.StrictLowS),
		Cipher:     aead.Suite(a.cfg.Cipher),
		Hash:       ecdsa.HashFunc(a.cfg.MessageHash),
	}
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "primkit",
		Short: "secp256k1, Keccak-256 and AEAD primitives",
		Long: `primkit exposes secp256k1 key derivation, ECDSA signing and verification,
Keccak-256 hashing and authenticated encryption as commands.

Binary inputs and outputs are hex encoded.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogJSON)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	addFlags(root.PersistentFlags(), &a.cfg)

	for _, op := range ops.All() {
		root.AddCommand(newOpCmd(a, op))
	}
	root.AddCommand(
		newBatchCmd(a),
		newSelftestCmd(a),
		newEnvCmd(a),
		newVersionCmd(),
	)
	return root
}

// addFlags binds the global flags to cfg. Each flag defaults to the value
// already loaded from the environment.
func addFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace debug info warn error")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "write logs as JSON lines")
	fs.BoolVar(&cfg.StrictLowS, "strict-low-s", cfg.StrictLowS, "reject signatures whose s is above half the group order")
	fs.StringVar(&cfg.Cipher, "cipher", cfg.Cipher, "AEAD suite: aes-256-gcm or chacha20-poly1305")
	fs.StringVar(&cfg.MessageHash, "hash", cfg.MessageHash, "message prehash: sha256 or keccak256")
}

// Execute runs the command line against the process arguments and returns
// the exit code.
func Execute() int {
	cfg, err := LoadConfig(nil)
	if err != nil {
		printError(os.Stderr, err)
		return 1
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, newRootCmd(cfg), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

var errorPrefix = color.New(color.FgRed, color.Bold)

func printError(w io.Writer, err error) {
	errorPrefix.Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}

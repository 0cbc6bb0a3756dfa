package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/pass-vault/internal/clipboard"
	"github.com/MKhiriev/pass-vault/internal/config"
	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/internal/service"
	"github.com/MKhiriev/pass-vault/models"
)

// annotationNoConfig marks commands that run without loading configuration.
const annotationNoConfig = "vault/no-config"

// Options configures the command tree. Zero fields get production defaults.
type Options struct {
	BuildInfo models.AppBuildInfo

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Services replaces the services built from configuration.
	Services *service.Services
	KeyChain crypto.KeyChainService
	Copier   clipboard.Copier
	Prompter Prompter
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand(opts Options) *cobra.Command {
	root, _ := newRootCommand(opts)
	return root
}

func newRootCommand(opts Options) (*cobra.Command, *runtime) {
	rt := newRuntime(opts)

	root := &cobra.Command{
		Use:   "vault [flags] command [flags]",
		Short: "Local password vault",
		Long: `Generates strong passwords and keeps credentials encrypted with AES-CBC
under a key taken from VAULT_CRYPTO_ENCRYPTION_KEY.`,
		Version:       opts.BuildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoConfig] == "true" {
				return nil
			}
			return rt.setup(cmd)
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	if opts.In != nil {
		root.SetIn(opts.In)
	}
	if opts.Out != nil {
		root.SetOut(opts.Out)
	}
	if opts.Err != nil {
		root.SetErr(opts.Err)
	}

	root.AddCommand(
		newGenerateCommand(rt),
		newEncryptCommand(rt),
		newDecryptCommand(rt),
		newKeygenCommand(rt),
		newItemCommand(rt),
		newVersionCommand(opts.BuildInfo),
	)

	return root, rt
}

// Execute runs the command line with args and returns the process exit code.
// Errors are printed to the error writer in a human-readable form.
func Execute(ctx context.Context, args []string, opts Options) int {
	root, rt := newRootCommand(opts)
	defer rt.close()

	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintln(root.ErrOrStderr(), renderError(humanizeError(err)))
	return 1
}

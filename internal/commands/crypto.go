package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/pass-vault/models"
)

const stdinArg = "-"

func newEncryptCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [text|-]",
		Aliases: []string{"enc"},
		Short:   "Encrypt a secret with the configured key",
		Long: `Prints Base64(IV || AES-CBC ciphertext) of the secret. Without an argument,
or with "-", the secret is read from the terminal without echo or from the
first line of stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := argOrSecret(rt, cmd, args, "Secret: ")
			if err != nil {
				return err
			}

			blob, err := rt.basicServices().CryptoService.Encrypt(cmd.Context(), plaintext)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), blob)
			return nil
		},
	}
}

func newDecryptCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt <blob|->",
		Aliases: []string{"dec"},
		Short:   "Decrypt a blob produced by encrypt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := argOrSecret(rt, cmd, args, "Blob: ")
			if err != nil {
				return err
			}

			plaintext, err := rt.basicServices().CryptoService.Decrypt(cmd.Context(), models.CipherBlob(blob))
			if err != nil {
				return err
			}

			if copyToClipboard, _ := cmd.Flags().GetBool(flagCopy); copyToClipboard {
				return rt.copyWithNotice(cmd, plaintext)
			}

			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}

	cmd.Flags().Bool(flagCopy, false, "Copy the secret to the clipboard instead of printing it")

	return cmd
}

// argOrSecret returns the first argument, or prompts when there is none or it
// is "-".
func argOrSecret(rt *runtime, cmd *cobra.Command, args []string, label string) (string, error) {
	if len(args) > 0 && args[0] != stdinArg {
		return args[0], nil
	}
	return rt.prompter(cmd).ReadSecret(label)
}

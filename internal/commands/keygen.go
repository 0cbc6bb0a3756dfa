package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/pass-vault/internal/config"
	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/models"
)

const flagPassphrase = "passphrase"

func newKeygenCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Create key material for VAULT_CRYPTO_* variables",
		Long: `Prints environment assignments for a new random AES-256 key. With
--passphrase it prints a fresh KDF salt instead; the passphrase itself then
goes into VAULT_CRYPTO_ENCRYPTION_KEY and is stretched with Argon2id.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			keyChain := rt.keyChain()
			out := cmd.OutOrStdout()

			if usePassphrase, _ := cmd.Flags().GetBool(flagPassphrase); usePassphrase {
				salt, err := keyChain.GenerateSalt()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%sCRYPTO_KEY_ENCODING=%s\n", config.EnvPrefix, config.KeyEncodingPassphrase)
				fmt.Fprintf(out, "%sCRYPTO_KDF_SALT=%s\n", config.EnvPrefix, base64.StdEncoding.EncodeToString(salt))
				return nil
			}

			key, err := keyChain.GenerateKey()
			if err != nil {
				return err
			}
			defer crypto.Zero(key)

			fmt.Fprintf(out, "%sCRYPTO_KEY_ENCODING=%s\n", config.EnvPrefix, config.KeyEncodingBase64)
			fmt.Fprintf(out, "%sCRYPTO_ENCRYPTION_KEY=%s\n", config.EnvPrefix, base64.StdEncoding.EncodeToString(key))
			return nil
		},
	}

	cmd.Flags().Bool(flagPassphrase, false, "Prepare passphrase based key derivation")

	return cmd
}

func newVersionCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), renderBuildInfo(info))
		},
	}
}

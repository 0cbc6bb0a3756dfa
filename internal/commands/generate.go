// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/pass-vault/models"
)

const (
	flagLength            = "length"
	flagUpper             = "upper"
	flagLower             = "lower"
	flagNumbers           = "numbers"
	flagSymbols           = "symbols"
	flagExcludeLookAlikes = "exclude-look-alikes"
	flagCount             = "count"
	flagCopy              = "copy"
)

var errCopyNeedsOne = errors.New("--copy works with a single password")

func newGenerateCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [flags]",
		Aliases: []string{"gen"},
		Short:   "Generate random passwords",
		Long: `Generates passwords from a cryptographically secure source. Every
selected character type appears at least once. By default all four types are
used and look-alike characters (i l 1 L o 0 O) are left out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			generators := rt.basicServices().GeneratorService

			policy, err := policyFromFlags(cmd.Flags(), generators.DefaultPolicy())
			if err != nil {
				return err
			}

			count, _ := cmd.Flags().GetInt(flagCount)
			copyToClipboard, _ := cmd.Flags().GetBool(flagCopy)
			if copyToClipboard && count != 1 {
				return errCopyNeedsOne
			}

			if copyToClipboard {
				password, err := generators.Generate(ctx, policy)
				if err != nil {
					return err
				}
				return rt.copyWithNotice(cmd, password)
			}

			passwords, err := generators.GenerateBatch(ctx, policy, count)
			if err != nil {
				return err
			}
			for _, password := range passwords {
				fmt.Fprintln(cmd.OutOrStdout(), password)
			}
			return nil
		},
	}

	cmd.Flags().IntP(flagLength, "l", 0, "Password length (default from configuration)")
	cmd.Flags().Bool(flagUpper, true, "Include uppercase letters")
	cmd.Flags().Bool(flagLower, true, "Include lowercase letters")
	cmd.Flags().Bool(flagNumbers, true, "Include numbers")
	cmd.Flags().Bool(flagSymbols, true, "Include symbols")
	cmd.Flags().Bool(flagExcludeLookAlikes, true, "Leave out look-alike characters")
	cmd.Flags().IntP(flagCount, "n", 1, "Number of passwords to generate")
	cmd.Flags().Bool(flagCopy, false, "Copy the password to the clipboard instead of printing it")

	return cmd
}

// policyFromFlags starts from base and applies the flags the user set.
func policyFromFlags(fs *pflag.FlagSet, base models.PasswordPolicy) (models.PasswordPolicy, error) {
	policy := base

	if fs.Changed(flagLength) {
		length, err := fs.GetInt(flagLength)
		if err != nil {
			return models.PasswordPolicy{}, err
		}
		policy.Length = length
	}

	for name, field := range map[string]*bool{
		flagUpper:             &policy.IncludeUppercase,
		flagLower:             &policy.IncludeLowercase,
		flagNumbers:           &policy.IncludeNumbers,
		flagSymbols:           &policy.IncludeSymbols,
		flagExcludeLookAlikes: &policy.ExcludeLookAlikes,
	} {
		if !fs.Changed(name) {
			continue
		}
		value, err := fs.GetBool(name)
		if err != nil {
			return models.PasswordPolicy{}, err
		}
		*field = value
	}

	return policy, nil
}

// copyWithNotice copies secret and waits until the clipboard is cleared,
// telling the user on stderr.
func (r *runtime) copyWithNotice(cmd *cobra.Command, secret string) error {
	ttl := r.config().Generator.ClipboardTTL

	fmt.Fprintln(cmd.ErrOrStderr(), renderHint(fmt.Sprintf("copying to clipboard, it is cleared after %s (Ctrl+C clears it now)", ttl)))
	if err := r.copier().Copy(cmd.Context(), secret, ttl); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), renderHint("clipboard cleared"))

	return nil
}

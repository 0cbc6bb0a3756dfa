// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/pass-vault/models"
)

const (
	flagTitle    = "title"
	flagUsername = "username"
	flagURL      = "url"
	flagNotes    = "notes"
	flagPassword = "password"
	flagGenerate = "generate"
	flagReveal   = "reveal"
	flagJSON     = "json"
)

func newItemCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage stored credentials",
	}

	cmd.AddCommand(
		newItemAddCommand(rt),
		newItemListCommand(rt),
		newItemShowCommand(rt),
		newItemUpdateCommand(rt),
		newItemRemoveCommand(rt),
	)

	return cmd
}

func newItemAddCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add --title <title> [flags]",
		Short: "Store a new credential",
		Long: `Stores a credential. The password is read from the terminal without echo,
from the first line of stdin, or generated with --generate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			vault, err := rt.vaultService(ctx)
			if err != nil {
				return err
			}

			password, err := rt.newPassword(cmd)
			if err != nil {
				return err
			}

			title, _ := cmd.Flags().GetString(flagTitle)
			username, _ := cmd.Flags().GetString(flagUsername)
			url, _ := cmd.Flags().GetString(flagURL)
			notes, _ := cmd.Flags().GetString(flagNotes)

			item, err := vault.AddItem(ctx, models.NewVaultItem{
				Title:    title,
				Username: username,
				Password: password,
				URL:      url,
				Notes:    notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderItem(item, "", false))
			return nil
		},
	}

	cmd.Flags().StringP(flagTitle, "t", "", "Title of the entry")
	cmd.Flags().StringP(flagUsername, "u", "", "Login used with the password")
	cmd.Flags().String(flagURL, "", "Site or service the credential belongs to")
	cmd.Flags().String(flagNotes, "", "Free-form notes")
	cmd.Flags().Bool(flagGenerate, false, "Generate the password with the default policy")
	_ = cmd.MarkFlagRequired(flagTitle)

	return cmd
}

func newItemListCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [search]",
		Aliases: []string{"ls"},
		Short:   "List credentials, newest first",
		Long: `Lists the stored credentials without passwords. The optional search is
matched against title, username and url, ignoring case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			vault, err := rt.vaultService(ctx)
			if err != nil {
				return err
			}

			var search string
			if len(args) > 0 {
				search = args[0]
			}

			items, err := vault.ListItems(ctx, search)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
				return writeJSON(cmd, itemsForJSON(items))
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderItemTable(items))
			return nil
		},
	}

	cmd.Flags().Bool(flagJSON, false, "Print JSON instead of a table")

	return cmd
}

func newItemShowCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			vault, err := rt.vaultService(ctx)
			if err != nil {
				return err
			}

			item, err := vault.RevealItem(ctx, args[0])
			if err != nil {
				return err
			}

			reveal, _ := cmd.Flags().GetBool(flagReveal)
			fmt.Fprintln(cmd.OutOrStdout(), renderItem(item.VaultItem, item.Password, reveal))

			if copyToClipboard, _ := cmd.Flags().GetBool(flagCopy); copyToClipboard {
				return rt.copyWithNotice(cmd, item.Password)
			}
			return nil
		},
	}

	cmd.Flags().Bool(flagReveal, false, "Print the password in the clear")
	cmd.Flags().Bool(flagCopy, false, "Copy the password to the clipboard")

	return cmd
}

func newItemUpdateCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> [flags]",
		Short: "Change fields of a credential",
		Long: `Changes only the fields given as flags. --password asks for a new password
and --generate creates one; either way it is encrypted with a fresh IV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			vault, err := rt.vaultService(ctx)
			if err != nil {
				return err
			}

			var update models.VaultItemUpdate
			for name, field := range map[string]**string{
				flagTitle:    &update.Title,
				flagUsername: &update.Username,
				flagURL:      &update.URL,
				flagNotes:    &update.Notes,
			} {
				if !cmd.Flags().Changed(name) {
					continue
				}
				value, _ := cmd.Flags().GetString(name)
				*field = &value
			}

			changePassword, _ := cmd.Flags().GetBool(flagPassword)
			generate, _ := cmd.Flags().GetBool(flagGenerate)
			if changePassword || generate {
				password, err := rt.newPassword(cmd)
				if err != nil {
					return err
				}
				update.Password = &password
			}

			item, err := vault.UpdateItem(ctx, args[0], update)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderItem(item, "", false))
			return nil
		},
	}

	cmd.Flags().StringP(flagTitle, "t", "", "New title")
	cmd.Flags().StringP(flagUsername, "u", "", "New username")
	cmd.Flags().String(flagURL, "", "New url")
	cmd.Flags().String(flagNotes, "", "New notes")
	cmd.Flags().Bool(flagPassword, false, "Ask for a new password")
	cmd.Flags().Bool(flagGenerate, false, "Generate a new password with the default policy")
	cmd.MarkFlagsMutuallyExclusive(flagPassword, flagGenerate)

	return cmd
}

func newItemRemoveCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a credential",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			vault, err := rt.vaultService(ctx)
			if err != nil {
				return err
			}

			if err = vault.DeleteItem(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), renderHint("deleted "+args[0]))
			return nil
		},
	}
}

// newPassword generates a password when --generate is set and prompts for
// one otherwise.
func (r *runtime) newPassword(cmd *cobra.Command) (string, error) {
	if generate, _ := cmd.Flags().GetBool(flagGenerate); generate {
		generators := r.basicServices().GeneratorService
		return generators.Generate(cmd.Context(), generators.DefaultPolicy())
	}
	return r.prompter(cmd).ReadSecret("Password: ")
}

type itemJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Username  string `json:"username,omitempty"`
	URL       string `json:"url,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// itemsForJSON drops owner and ciphertext from the listing.
func itemsForJSON(items []models.VaultItem) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for _, item := range items {
		out = append(out, itemJSON{
			ID:        item.ID,
			Title:     item.Title,
			Username:  item.Username,
			URL:       item.URL,
			Notes:     item.Notes,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
			UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/pass-vault/models"
)

const vaultItemsTable = "vault_items"

// vaultItemColumns is the column order every SELECT returns and scanVaultItem
// reads.
var vaultItemColumns = []string{
	"id",
	"owner_id",
	"title",
	"username",
	"encrypted_password",
	"url",
	"notes",
	"created_at",
	"updated_at",
}

// searchableColumns are matched by the list search filter.
var searchableColumns = []string{"title", "username", "url"}

func buildInsertVaultItemQuery(b sq.StatementBuilderType, item models.VaultItem) (string, []any, error) {
	return b.Insert(vaultItemsTable).
		Columns(vaultItemColumns...).
		Values(
			item.ID,
			item.OwnerID,
			item.Title,
			item.Username,
			item.EncryptedPassword.String(),
			item.URL,
			item.Notes,
			item.CreatedAt,
			item.UpdatedAt,
		).
		ToSql()
}

func buildSelectVaultItemQuery(b sq.StatementBuilderType, ownerID, id string) (string, []any, error) {
	return b.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

func buildListVaultItemsQuery(b sq.StatementBuilderType, ownerID, search string) (string, []any, error) {
	query := b.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"owner_id": ownerID})

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"

		matches := make(sq.Or, 0, len(searchableColumns))
		for _, column := range searchableColumns {
			matches = append(matches, sq.Expr("LOWER("+column+`) LIKE ? ESCAPE '\'`, pattern))
		}
		query = query.Where(matches)
	}

	return query.OrderBy("created_at DESC", "id DESC").ToSql()
}

func buildUpdateVaultItemQuery(b sq.StatementBuilderType, item models.VaultItem) (string, []any, error) {
	return b.Update(vaultItemsTable).
		Set("title", item.Title).
		Set("username", item.Username).
		Set("encrypted_password", item.EncryptedPassword.String()).
		Set("url", item.URL).
		Set("notes", item.Notes).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID, "owner_id": item.OwnerID}).
		ToSql()
}

func buildDeleteVaultItemQuery(b sq.StatementBuilderType, ownerID, id string) (string, []any, error) {
	return b.Delete(vaultItemsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// escapeLike makes LIKE wildcards in s match literally under ESCAPE '\'.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

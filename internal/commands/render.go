// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/pass-vault/models"
)

const (
	timeLayout    = "2006-01-02 15:04"
	maskedSecret  = "••••••••"
	notApplicable = "N/A"
)

func renderError(msg string) string {
	return errorStyle.Render("error:") + " " + msg
}

func renderHint(msg string) string {
	return helpStyle.Render(msg)
}

func renderItemTable(items []models.VaultItem) string {
	if len(items) == 0 {
		return renderHint("no items")
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			item.Title,
			item.Username,
			item.URL,
			item.UpdatedAt.Local().Format(timeLayout),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(helpStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "TITLE", "USERNAME", "URL", "UPDATED").
		Rows(rows...).
		String()
}

// renderItem shows one item. password is printed only when reveal is set.
func renderItem(item models.VaultItem, password string, reveal bool) string {
	secret := maskedSecret
	if reveal {
		secret = password
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(item.Title))
	b.WriteString("\n")
	writeField(&b, "id", item.ID)
	writeField(&b, "username", item.Username)
	writeField(&b, "password", secret)
	writeField(&b, "url", item.URL)
	writeField(&b, "notes", item.Notes)
	writeField(&b, "created", formatTime(item.CreatedAt))
	writeField(&b, "updated", formatTime(item.UpdatedAt))

	return strings.TrimRight(b.String(), "\n")
}

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("vault"))
	b.WriteString("\n")
	writeField(&b, "version", valueOrNA(info.BuildVersion()))
	writeField(&b, "date", valueOrNA(info.BuildDate()))
	writeField(&b, "commit", valueOrNA(info.BuildCommit()))
	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notApplicable
	}
	return v
}

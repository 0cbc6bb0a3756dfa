package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/pass-vault/internal/commands"
	"github.com/MKhiriev/pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// Ctrl+C still clears a pending clipboard copy before exiting
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := commands.Execute(ctx, os.Args[1:], commands.Options{
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	})

	stop()
	os.Exit(code)
}

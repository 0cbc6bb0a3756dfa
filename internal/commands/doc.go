// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands implements the `vault` command line on top of cobra.
//
// Every command shares one runtime: configuration is loaded from defaults,
// VAULT_* environment variables, the persistent flags and an optional JSON
// file before the command runs, and the services are built on first use.
// Secrets are written to stdout only when the user asks for them; logs and
// status lines go to stderr.
package commands

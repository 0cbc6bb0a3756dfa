// Package config provides configuration loading, merging, and validation
// facilities for the vault.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The encryption key itself is read from the environment only. It is never
// accepted as a flag (it would leak through the process list) and never read
// from the JSON file.
//
// The main entry point is [GetStructuredConfig].
package config

// Package config provides configuration loading, merging, and validation
// facilities for clio.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags (spf13/pflag)
//  2. Environment variables prefixed with CLIO_ (caarlos0/env)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the validated client configuration.
package config

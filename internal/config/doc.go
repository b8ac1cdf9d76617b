// Package config provides configuration loading, merging, and validation
// for the keylock client.
//
// Configuration is assembled from several sources. The first source that
// sets a field wins:
//  1. Command-line flags (bound with [BindFlags])
//  2. Environment variables
//  3. Config file, JSON or YAML (path from -c/--config or CONFIG)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config

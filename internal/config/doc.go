// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the sync daemon and the foreground CLI.
//
// Configuration is assembled from several sources. A field set by an
// earlier source wins over later ones:
//  1. Command-line flags (daemon only)
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetDaemonConfig] and [GetCtlConfig].
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the foreground sync CLI (syncctl).
//
// Every command is a thin message to the running daemon sent through the
// coordinator; the CLI keeps no sync state of its own. The watch command
// follows the daemon's status stream and renders it in the terminal.
package client

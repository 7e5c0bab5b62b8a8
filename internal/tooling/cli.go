// CLASSIFICATION: COMMUNITY
// Filename: cli.go v0.3
// Date Modified: 2026-10-14
// Author: Lukas Bower
// License: SPDX-License-Identifier: MIT OR Apache-2.0
//
// ─────────────────────────────────────────────────────────────
// adminer-static · Go CLI Scaffold
//
// Provides a minimal Cobra root command that binaries embed,
// adding their own sub‑commands before calling Execute.
//
// Example:
//
//   root := tooling.NewRoot("adminer-static", "Adminer asset server")
//   root.AddCommand(serveCmd)
//   tooling.Execute(root)
// ─────────────────────────────────────────────────────────────
package tooling

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "0.1.0"

// NewRoot returns a root command carrying the built‑in `version` sub‑command.
func NewRoot(use, short string) *cobra.Command {
	root := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", use, Version)
		},
	})
	return root
}

// Execute runs root.  Typically called from main().
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

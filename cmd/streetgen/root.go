// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "streetgen",
	Short: "streetgen is a procedural multi-modal transportation network generator",
	Long: `streetgen builds street-like planar networks from relaxed Voronoi
geometry, derives per-mode sub-graphs (Bike, Walk, Transit, Car, ...) and
emits them as JSON. All stochastic steps run off one seedable RNG, so a
fixed --seed reproduces the exact same network.`,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

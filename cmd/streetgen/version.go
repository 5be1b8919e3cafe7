// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urbanfabric/streetgen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the streetgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("streetgen version %s\n", streetgen.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

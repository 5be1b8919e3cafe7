// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urbanfabric/streetgen/graph"
)

// writeNetwork encodes the network as indented JSON to the given path, or
// to stdout when path is empty.
func writeNetwork(net *graph.Network, path string) error {
	raw, err := json.MarshalIndent(net, "", "  ")
	if err != nil {
		return fmt.Errorf("encode network: %w", err)
	}
	raw = append(raw, '\n')
	if path == "" {
		_, err = os.Stdout.Write(raw)

		return err
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// printStats reports per-mode node/edge/component counts to stderr, modes
// sorted for stable output.
func printStats(net *graph.Network) {
	modes := make([]string, 0, len(net.Graphs))
	for mode := range net.Graphs {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		mg := net.Graphs[mode]
		fmt.Fprintf(os.Stderr, "%-10s %4d nodes  %4d edges  %3d components\n",
			mode, len(mg.Nodes), len(mg.Edges), len(graph.Components(mg)))
	}
}

// parseModes splits a comma-separated mode list, trimming blanks.
func parseModes(s string) []string {
	parts := strings.Split(s, ",")
	modes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			modes = append(modes, p)
		}
	}

	return modes
}

// SPDX-License-Identifier: MIT
// Command streetgen generates multi-modal transportation networks and
// writes them as JSON. See `streetgen --help`.
package main

func main() {
	Execute()
}

// SPDX-License-Identifier: MIT
// Package: streetgen

package streetgen

// Version is the semantic version of the streetgen module.
const Version = "0.1.0"

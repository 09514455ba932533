// Package embedded holds data compiled into the binary.
package embedded

import (
	"embed"
)

// FS embeds the hand-authored catalog entries that are not discovered on the Hub.
//
//go:embed catalog/*
var FS embed.FS

// FixedEntriesPath is the location of the fixed entries inside FS.
const FixedEntriesPath = "catalog/fixed.yaml"

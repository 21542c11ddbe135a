// Package gamedata provides embedded player theme data and utilities for loading it.
package gamedata

import "embed"

// dataFS holds players.json and any other theme files in this directory.
//
//go:embed *.json
var dataFS embed.FS

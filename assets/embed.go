// Package assets carries the built-in dictionary so the solver runs without
// any files configured.
package assets

import (
	"embed"
	"io/fs"
)

// DictionaryName is the embedded dictionary's file name.
const DictionaryName = "dictionary.txt"

//go:embed dictionary.txt
var FS embed.FS

// Dictionary opens the embedded dictionary for reading.
func Dictionary() (fs.File, error) {
	return FS.Open(DictionaryName)
}

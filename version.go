package cdnf

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionRaw string

// Version reports the library version embedded from the VERSION file.
func Version() string {
	return strings.TrimSpace(versionRaw)
}

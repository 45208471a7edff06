// Package useragent extracts browser name and version from a User-Agent
// string for the bug report footer.
package useragent

import (
	"fmt"

	"github.com/mssola/useragent"
)

// Unknown is substituted whenever the User-Agent yields no usable browser
// name or version. The footer never interpolates empty strings.
const Unknown = "unknown"

// Browser identifies the reporting browser.
type Browser struct {
	Name    string
	Version string
}

// Parse extracts the browser from a raw User-Agent header. Unrecognizable
// input yields Unknown for both parts rather than empty strings. The parser
// reports arbitrary tokens as a name with no version, so a missing version
// means the input was not a browser we recognize.
func Parse(ua string) Browser {
	name, version := useragent.New(ua).Browser()
	if name == "" || version == "" {
		return Browser{Name: Unknown, Version: Unknown}
	}
	return Browser{Name: name, Version: version}
}

// String renders the browser as "Name (Version)".
func (b Browser) String() string {
	name := b.Name
	if name == "" {
		name = Unknown
	}
	version := b.Version
	if version == "" {
		version = Unknown
	}
	return fmt.Sprintf("%s (%s)", name, version)
}

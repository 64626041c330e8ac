package app

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Settings holds the options layered from the config file, MINIGREP_* env
// and flags. They are folded into a Config and a run, not stored in it.
type Settings struct {
	// Encoding of the target file. Empty means UTF-8.
	Encoding string
	// IgnoreCase forces case-insensitive matching in addition to CASE_INSENSITIVE.
	IgnoreCase bool
	Verbose    bool
}

// ValidateSettings rejects settings the run could not honour.
func ValidateSettings(s Settings) error {
	enc := strings.ToLower(strings.TrimSpace(s.Encoding))
	if enc == "" || enc == "utf-8" || enc == "utf8" {
		return nil
	}
	if _, err := htmlindex.Get(enc); err != nil {
		return fmt.Errorf("config: unknown encoding %q", s.Encoding)
	}
	return nil
}

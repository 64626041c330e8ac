package app

import (
	"os"
	"strings"
)

// CaseInsensitiveEnv is the variable whose presence, with any value, turns
// off case-sensitive matching.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// CaseInsensitiveFromEnv reports whether CASE_INSENSITIVE is set. Only
// presence matters; an empty value counts.
func CaseInsensitiveFromEnv(lookup func(string) (string, bool)) bool {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	_, ok := lookup(CaseInsensitiveEnv)
	return ok
}

// ApplyEnvOverrides overrides settings from MINIGREP_* environment variables
// when they are set. Flags are applied after this and win.
func ApplyEnvOverrides(s *Settings) {
	if s == nil {
		return
	}
	if v := strings.TrimSpace(os.Getenv("MINIGREP_ENCODING")); v != "" {
		s.Encoding = v
	}
	setBool(&s.Verbose, "MINIGREP_VERBOSE")
	setBool(&s.IgnoreCase, "MINIGREP_IGNORE_CASE")
}

// setBool overrides dst when envKey holds a recognised truthy or falsey value.
func setBool(dst *bool, envKey string) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	}
}

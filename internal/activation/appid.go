package activation

import (
	"strings"

	"focus-launcher/pkg/config"
)

// Separator splits a package family name from its application entry point.
const Separator = "!"

// AppID is a normalized application user model id such as
// "Microsoft.WindowsNotepad_8wekyb3d8bbwe!App".
type AppID string

// Normalize strips whitespace, surrounding quotes and the shell:AppsFolder\
// prefix. It is idempotent.
func Normalize(raw string) AppID {
	return NormalizePrefix(raw, config.DefaultShellPrefix)
}

// NormalizePrefix is Normalize with a custom shell namespace prefix.
func NormalizePrefix(raw, prefix string) AppID {
	s := raw
	for {
		next := strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
		if prefix != "" && len(next) >= len(prefix) && strings.EqualFold(next[:len(prefix)], prefix) {
			next = next[len(prefix):]
		}
		if next == s {
			return AppID(s)
		}
		s = next
	}
}

// HasEntry reports whether the id already names an entry point.
func (id AppID) HasEntry() bool {
	return strings.Contains(string(id), Separator)
}

// WithEntry appends "!entry".
func (id AppID) WithEntry(entry string) AppID {
	return AppID(string(id) + Separator + entry)
}

func (id AppID) String() string {
	return string(id)
}

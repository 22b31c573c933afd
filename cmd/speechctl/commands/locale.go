package commands

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

var localeEnvKeys = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// environmentLocale returns the user's locale from the POSIX locale
// variables as a "lang" or "lang-REGION" identifier.
func environmentLocale() string {
	for _, key := range localeEnvKeys {
		if l := normalizeLocale(os.Getenv(key)); l != "" {
			return l
		}
	}
	return ""
}

// normalizeLocale turns values such as "en_GB.UTF-8" into "en-GB". Regions
// are only kept when written explicitly.
func normalizeLocale(s string) string {
	s, _, _ = strings.Cut(s, ".")
	s, _, _ = strings.Cut(s, "@")
	if s == "" || s == "C" || s == "POSIX" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return ""
	}

	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.Exact {
		return base.String() + "-" + region.String()
	}
	return base.String()
}

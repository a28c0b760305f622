package resorts

import (
	"net/url"
	"strings"
)

// DefaultSearchTemplate is the map search URL used when none is configured.
const DefaultSearchTemplate = "https://map.naver.com/p/search/%s"

// SearchLink replaces the first %s in template with the percent-encoded resort name.
// A template without %s gets the name appended.
func SearchLink(template, name string) string {
	if template == "" {
		template = DefaultSearchTemplate
	}
	escaped := url.PathEscape(strings.TrimSpace(name))
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}

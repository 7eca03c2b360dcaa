// Package i18n declares the locales this service can render.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the language tags this service renders.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the base locale.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value into a supported tag. It returns false when the
// value is blank, malformed, or matches no supported locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}

// MatchTags returns the best supported tag for an ordered preference list.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

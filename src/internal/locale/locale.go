// Package locale holds the static UI strings and picks the display language.
package locale

import (
	"golang.org/x/text/language"
)

type Lang string

const (
	Korean  Lang = "ko"
	English Lang = "en"
)

const Fallback = English

// PreferenceKey is the preference-store key holding the chosen language.
const PreferenceKey = "lang"

var matcher = language.NewMatcher([]language.Tag{language.English, language.Korean})

func Parse(s string) (Lang, bool) {
	switch Lang(s) {
	case Korean, English:
		return Lang(s), true
	}
	return "", false
}

// Negotiate picks a supported language from an Accept-Language header.
func Negotiate(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return Fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Fallback
	}
	if idx == 1 {
		return Korean
	}
	return English
}

// Resolve applies the precedence stored preference, then header, then English.
func Resolve(stored, acceptLanguage string) Lang {
	if l, ok := Parse(stored); ok {
		return l
	}
	return Negotiate(acceptLanguage)
}

// T looks up key for lang, falling back to English and then to the key.
func T(lang Lang, key string) string {
	if m, ok := resources[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := resources[Fallback][key]; ok {
		return v
	}
	return key
}

// Bundle returns a lookup closure bound to lang, handy for templates.
func Bundle(lang Lang) func(string) string {
	return func(key string) string { return T(lang, key) }
}

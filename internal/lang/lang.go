// Package lang defines the two content languages served by the site and how
// they are read from request URLs.
package lang

import (
	"net/url"

	"golang.org/x/text/language"
)

// Language selects which localized copy of a document is fetched.
type Language string

const (
	English  Language = "english"
	Hinglish Language = "hinglish"
)

// Default is used when the lang parameter is missing or unrecognized.
const Default = English

// QueryKey is the URL query parameter carrying the active language.
const QueryKey = "lang"

// Parse maps a raw parameter value to a Language. Anything other than an
// exact known value yields Default.
func Parse(s string) Language {
	switch Language(s) {
	case Hinglish:
		return Hinglish
	default:
		return Default
	}
}

// FromQuery reads the lang parameter from parsed query values.
func FromQuery(q url.Values) Language {
	return Parse(q.Get(QueryKey))
}

// Folder returns the path segment holding this language's documents.
func (l Language) Folder() string {
	return string(Parse(string(l)))
}

// Other returns the language the toggle button switches to.
func (l Language) Other() Language {
	if l == Hinglish {
		return English
	}
	return Hinglish
}

// ToggleLabel is the text shown on the language switch button while l is active.
func (l Language) ToggleLabel() string {
	if l == Hinglish {
		return "Switch to English"
	}
	return "Switch to Hinglish"
}

// tags maps each language to its BCP 47 tag; Hinglish is Hindi in Latin script.
var tags = map[Language]language.Tag{
	English:  language.English,
	Hinglish: language.MustParse("hi-Latn"),
}

// Tag returns the BCP 47 tag used for Content-Language and <html lang>.
func (l Language) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return language.English
}

func (l Language) String() string { return string(l) }

package utils

import (
	"strings"

	"golang.org/x/text/language"
)

type Lang string

const (
	EN Lang = "en"
	AR Lang = "ar"
)

var supported = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// Other returns the language the toggle switches to.
func (l Lang) Other() Lang {
	if l == AR {
		return EN
	}
	return AR
}

// Dir is the text direction for l.
func (l Lang) Dir() string {
	if l == AR {
		return "rtl"
	}
	return "ltr"
}

// Tag is the x/text tag used for collation.
func (l Lang) Tag() language.Tag {
	if l == AR {
		return language.Arabic
	}
	return language.English
}

func ParseLang(lang string) (Lang, bool) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en":
		return EN, true
	case "ar":
		return AR, true
	default:
		return "", false
	}
}

// MatchAcceptLanguage picks en or ar from an Accept-Language header, en when nothing matches.
func MatchAcceptLanguage(header string) Lang {
	if header == "" {
		return EN
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return EN
	}
	_, idx, conf := supported.Match(tags...)
	if conf == language.No || idx != 1 {
		return EN
	}
	return AR
}

// Localize returns secondary only for Arabic and only when it is non-empty.
func Localize(lang Lang, primary string, secondary *string) string {
	if lang != AR || secondary == nil || strings.TrimSpace(*secondary) == "" {
		return primary
	}
	return *secondary
}

// Language is a bilingual text pair for fixed UI strings.
type Language struct {
	EN string
	AR string
}

func (l Language) By(lang Lang) string {
	return Localize(lang, l.EN, &l.AR)
}

package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	slugStrip   = regexp.MustCompile(`[^a-z0-9\s\p{Zs}-]`)
	slugSpaces  = regexp.MustCompile(`[\s\p{Zs}]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// LegacySlug is the suffix-less branch slug. Only used to resolve links shared
// before ids became part of the slug.
func LegacySlug(name string, id int64) string {
	base := slugBase(name)
	if base == "" {
		return "branch-" + strconv.FormatInt(id, 10)
	}
	return base
}

// Slug maps a branch name and id to a stable URL segment. The id is always
// part of the result so two branches never share a slug, and slugging a slug
// returns it unchanged.
func Slug(name string, id int64) string {
	suffix := strconv.FormatInt(id, 10)
	base := slugBase(name)
	if base == "" {
		return "branch-" + suffix
	}
	if base == suffix || strings.HasSuffix(base, "-"+suffix) {
		return base
	}
	return base + "-" + suffix
}

func slugBase(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

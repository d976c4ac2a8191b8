// Package tags accumulates and cleans the search tags attached to each
// example entry in a manifest. Candidates come from three sources: the
// example title, the project module name, and explicit tag annotations
// in the example metadata. Cleanup runs once per example, after all
// sources have contributed.
package tags

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// moduleWordRe captures one capitalized word-run of a module identifier.
// The "3D" and "GL" suffixes belong to the preceding run, so the branch
// that consumes them is tried first: QtQuick3D -> qt, quick3d and
// QtOpenGL -> qt, opengl rather than splitting the suffix off.
var moduleWordRe = regexp.MustCompile(`[A-Z]+[a-z0-9]*?(?:3D|GL)|[A-Z]+[a-z0-9]*`)

// stopwords are common words excluded from the final tag set
var stopwords = map[string]struct{}{
	"qt":  {},
	"the": {},
	"and": {},
}

// Set is the candidate tag accumulator for a single example. Tags are
// stored lowercased and deduplicated. The zero value is not usable;
// call NewSet.
type Set struct {
	tags map[string]struct{}
}

// NewSet returns an empty candidate tag set
func NewSet() *Set {
	return &Set{tags: make(map[string]struct{})}
}

// Add inserts a single tag into the set, lowercased
func (s *Set) Add(tag string) {
	s.tags[strings.ToLower(tag)] = struct{}{}
}

// AddAll inserts every tag in the slice, lowercased
func (s *Set) AddAll(tags []string) {
	for _, tag := range tags {
		s.tags[strings.ToLower(tag)] = struct{}{}
	}
}

// Len returns the number of tags currently in the set
func (s *Set) Len() int {
	return len(s.tags)
}

// Contains reports whether the set holds the given tag
func (s *Set) Contains(tag string) bool {
	_, ok := s.tags[tag]
	return ok
}

// Clear empties the set for reuse by the next example
func (s *Set) Clear() {
	s.tags = make(map[string]struct{})
}

// Sorted returns the tags in lexicographic order
func (s *Set) Sorted() []string {
	out := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Clean removes noise tags from the set in place. A tag wrapped in
// parentheses loses one leading '(' and one trailing character; a
// trailing ':' is stripped. After that a tag is discarded when it is
// shorter than two characters, starts with a digit or '-', is a
// stopword, or starts with "example" or "chapter".
func (s *Set) Clean() {
	cleaned := make(map[string]struct{}, len(s.tags))

	for tag := range s.tags {
		if strings.HasPrefix(tag, "(") {
			tag = tag[1:]
			if _, size := utf8.DecodeLastRuneInString(tag); size > 0 {
				tag = tag[:len(tag)-size]
			}
		}
		tag = strings.TrimSuffix(tag, ":")

		// length and leading-character checks count runes, not bytes
		if utf8.RuneCountInString(tag) < 2 {
			continue
		}
		if first, _ := utf8.DecodeRuneInString(tag); unicode.IsDigit(first) || first == '-' {
			continue
		}
		if _, stop := stopwords[tag]; stop {
			continue
		}
		if strings.HasPrefix(tag, "example") || strings.HasPrefix(tag, "chapter") {
			continue
		}
		cleaned[tag] = struct{}{}
	}
	s.tags = cleaned
}

// FromTitle derives candidate tags from an example title: the title is
// lowercased and split on single spaces, each word verbatim. Cleanup is
// deferred to Clean.
func FromTitle(title string) []string {
	return strings.Split(strings.ToLower(title), " ")
}

// FromModuleName tokenizes a module identifier into one lowercase tag
// per capitalized word-run:
//
//	QtQuickControls -> qt, quick, controls
//	QtOpenGL        -> qt, opengl
//	QtQuick3D       -> qt, quick3d
//
// The module name is constant for a whole generation run, so callers
// compute this once and reuse the result for every example.
func FromModuleName(module string) []string {
	words := moduleWordRe.FindAllString(module, -1)
	out := make([]string, 0, len(words))
	for _, word := range words {
		out = append(out, strings.ToLower(word))
	}
	return out
}

// FromMetaTags derives candidate tags from explicit tag annotations.
// Each annotation value may carry several comma-separated tags.
func FromMetaTags(values []string) []string {
	var out []string
	for _, value := range values {
		out = append(out, strings.Split(strings.ToLower(value), ",")...)
	}
	return out
}

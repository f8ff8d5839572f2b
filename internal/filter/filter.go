// Package filter selects demonstration scenarios by name.
//
// Patterns are compiled with coregex, an accelerated RE2-compatible engine.
// Patterns that need Perl-only syntax (lookarounds, backreferences, atomic
// groups) are compiled with [regexp2] instead.
package filter

import (
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Filter matches scenario names against a compiled pattern. The zero value
// and a nil *Filter match everything.
type Filter struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses pattern. An empty pattern matches every name.
func Compile(pattern string) (*Filter, error) {
	if pattern == "" {
		return &Filter{}, nil
	}

	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
		return &Filter{pattern: pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Filter{pattern: pattern, core: re}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Filter {
	f, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Match reports whether name contains a match of the pattern.
func (f *Filter) Match(name string) bool {
	switch {
	case f == nil:
		return true
	case f.core != nil:
		return f.core.MatchString(name)
	case f.pcre != nil:
		matched, err := f.pcre.MatchString(name)
		return err == nil && matched
	default:
		return true
	}
}

// String returns the source pattern.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.pattern
}

// perlOnly lists constructs RE2 rejects but regexp2 accepts: lookarounds,
// atomic groups, conditionals, comments, recursion, named backreferences,
// Perl anchors and possessive quantifiers.
var perlOnly = []string{
	"(?=", "(?!", "(?<=", "(?<!",
	"(?>", "(?(", "(?#",
	"(?R)", "(?P>", "(?&",
	`\k<`, `\k'`, `\k{`, "(?P=",
	`\A`, `\Z`, `\G`, `\K`,
	"*+", "++", "?+",
}

func needsPCRE(pattern string) bool {
	for _, tok := range perlOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered backreferences: \1 .. \9 outside an escaped backslash.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}

		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// Go only understands (?P<name>...).
	return !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'"))
}

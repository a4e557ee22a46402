// Package pattern compiles path templates into anchored matchers.
//
// A template is read left to right: literal text matches itself (with "."
// and "-" escaped so they stay literal), ":name" captures one non-empty
// path segment, and "*name" captures the rest of the path greedily,
// slashes included. A bare "*" captures under the name "splat".
package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled path template. It matches whole paths only; there
// are no partial or prefix matches.
type Pattern struct {
	template string
	re       *regexp.Regexp
	names    []string
}

// Compile turns a path template into a Pattern and its ordered list of
// parameter names. Compiling the same template twice yields equivalent
// patterns. A ":" with no parameter name after it, or literal text that
// does not survive translation into a valid expression, returns an error.
func Compile(template string) (*Pattern, error) {
	var b strings.Builder
	b.WriteString(`\A`)

	var names []string
	for i := 0; i < len(template); {
		switch c := template[i]; c {
		case ':':
			name, rest := readName(template[i+1:])
			if name == "" {
				return nil, fmt.Errorf("missing parameter name after ':' in %q", template)
			}
			names = append(names, name)
			b.WriteString(`([^/]+)`)
			i = len(template) - len(rest)
		case '*':
			name, rest := readName(template[i+1:])
			if name == "" {
				name = "splat"
			}
			names = append(names, name)
			b.WriteString(`(.*)`)
			i = len(template) - len(rest)
		case '.', '-':
			b.WriteByte('\\')
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}

	b.WriteString(`\z`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, err
	}

	return &Pattern{template: template, re: re, names: names}, nil
}

// readName consumes the leading parameter-name characters of s and returns
// the name together with the unread remainder.
func readName(s string) (string, string) {
	i := 0
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}

// Match tests path against the pattern. On success it returns the captured
// parameter values keyed by name; a match with no
// captures returns an empty, non-nil map. On failure it returns (nil, false).
func (p *Pattern) Match(path string) (map[string]string, bool) {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}

	params := make(map[string]string, len(p.names))
	for i, name := range p.names {
		params[name] = m[i+1]
	}
	return params, true
}

// Names returns the parameter names in the order they appear in the
// template. The returned slice is shared; callers must not modify it.
func (p *Pattern) Names() []string {
	return p.names
}

// Template returns the original template string the pattern was compiled from.
func (p *Pattern) Template() string {
	return p.template
}

package sshconf

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// HostPattern is a single glob pattern from a Host declaration. A leading
// "!" in the source form marks the pattern as negated.
type HostPattern struct {
	Pattern string // the glob without the negation prefix
	Negated bool
}

// NewHostPattern parses a host pattern token in its source form, stripping a
// leading "!" into the Negated flag.
func NewHostPattern(token string) HostPattern {
	if strings.HasPrefix(token, "!") {
		return HostPattern{Pattern: token[1:], Negated: true}
	}
	return HostPattern{Pattern: token}
}

// String returns the pattern in its source form.
func (p HostPattern) String() string {
	if p.Negated {
		return "!" + p.Pattern
	}
	return p.Pattern
}

// Match reports whether hostname matches the glob. Matching is case
// sensitive and the negation flag is not consulted here.
func (p HostPattern) Match(hostname string) (bool, error) {
	return globMatch(hostname, p.Pattern)
}

// HostList is the ordered list of patterns attached to one Host declaration.
type HostList []HostPattern

// NewHostList builds a HostList from pattern tokens in their source form.
func NewHostList(tokens ...string) HostList {
	if len(tokens) == 0 {
		return nil
	}
	list := make(HostList, 0, len(tokens))
	for _, token := range tokens {
		list = append(list, NewHostPattern(token))
	}
	return list
}

// Matches reports whether hostname matches the list. All patterns are
// evaluated: a match by any negated pattern vetoes the whole list no matter
// where in the list it appears or what else matched. An empty list matches
// nothing. An empty hostname fails with [ErrInvalidArgument].
func (l HostList) Matches(hostname string) (bool, error) {
	if hostname == "" {
		return false, fmt.Errorf("%w: hostname cannot be empty", ErrInvalidArgument)
	}
	var anyPositive, anyNegative bool
	for _, pattern := range l {
		match, err := pattern.Match(hostname)
		if err != nil {
			return false, err
		}
		if !match {
			continue
		}
		if pattern.Negated {
			anyNegative = true
		} else {
			anyPositive = true
		}
	}
	if anyNegative {
		return false, nil
	}
	return anyPositive, nil
}

// String returns the space-joined source form of the list.
func (l HostList) String() string {
	tokens := make([]string, len(l))
	for i, pattern := range l {
		tokens[i] = pattern.String()
	}
	return strings.Join(tokens, " ")
}

// globMatch compares a hostname against a single glob pattern with the same
// semantics as fnmatch(3): "*" and "?" wildcards and "[...]" character
// classes, matched case-sensitively. Hostnames have no directory structure,
// so unlike filesystem globs "*" matches dots and everything else.
func globMatch(value, pattern string) (bool, error) {
	if pattern == "*" {
		return true, nil
	}

	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == value, nil
	}

	var sb strings.Builder
	sb.WriteString("^")
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch ch {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		case '[':
			end := closingBracket(runes, i)
			if end < 0 {
				// unterminated class, fnmatch treats the "[" as literal
				sb.WriteString(`\[`)
				continue
			}
			writeBracketClass(&sb, runes[i+1:end])
			i = end
		default:
			if !unicode.IsLetter(ch) && !unicode.IsNumber(ch) {
				sb.WriteRune('\\')
			}
			sb.WriteRune(ch)
		}
	}
	sb.WriteString("$")

	regex, err := regexp.Compile(sb.String())
	if err != nil {
		return false, fmt.Errorf("invalid host pattern %q: %w", pattern, err)
	}

	return regex.MatchString(value), nil
}

// closingBracket returns the index of the "]" that terminates the character
// class opening at position i, or -1 when the class is unterminated. A "]"
// right after the opening (or after the "!" negation) is a literal member
// and does not terminate the class.
func closingBracket(runes []rune, i int) int {
	j := i + 1
	if j < len(runes) && runes[j] == '!' {
		j++
	}
	if j < len(runes) && runes[j] == ']' {
		j++
	}
	for ; j < len(runes); j++ {
		if runes[j] == ']' {
			return j
		}
	}
	return -1
}

// writeBracketClass converts the contents of an fnmatch character class to
// its regexp form: a leading "!" becomes the "^" negation, ranges pass
// through and regexp metacharacters are neutralized.
func writeBracketClass(sb *strings.Builder, content []rune) {
	sb.WriteString("[")
	if len(content) > 0 && content[0] == '!' {
		sb.WriteString("^")
		content = content[1:]
	}
	for _, ch := range content {
		switch ch {
		case '\\', '^', '[', ']':
			sb.WriteRune('\\')
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
	}
	sb.WriteString("]")
}

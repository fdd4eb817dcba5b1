package sshconf

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/confkit/sshconf/log"
)

// Parse reads an OpenSSH client configuration from r. The whole input is
// consumed eagerly; a failed parse returns the error alone, never a partial
// configuration.
func Parse(r io.Reader) (*Config, error) {
	p := &parser{config: &Config{}, keywords: &KeywordSet{}}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.row++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	p.closeBlock()
	log.Trace(context.Background(), "ssh config parsed", "lines", p.row, "blocks", p.config.Len())
	return p.config, nil
}

// ParseString parses an OpenSSH client configuration from a string.
func ParseString(s string) (*Config, error) {
	return Parse(strings.NewReader(s))
}

// parser is the single-pass line scanner state. One host block is
// accumulated at a time and closed when the next Host line or the end of the
// input is reached.
type parser struct {
	config   *Config
	hosts    HostList // nil until the first explicit Host line
	keywords *KeywordSet
	row      int
}

func (p *parser) parseLine(line string) error {
	// a comment runs from the first "#" to the end of the line, no escaping
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if trimmed == "" {
		return nil
	}

	keyword, rest := splitKeyword(trimmed)
	switch strings.ToLower(keyword) {
	case fkHost:
		return p.parseHost(rest)
	case "match":
		return fmt.Errorf("%w: match directives are not supported (line %d)", ErrSyntax, p.row)
	default:
		return p.parseKeyword(keyword, rest, trimmed)
	}
}

// splitKeyword splits a left-trimmed line into its first token and the
// remainder with leading whitespace removed. Trailing whitespace stays part
// of the remainder; values are opaque and not trimmed further.
func splitKeyword(line string) (keyword, rest string) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
}

// parseHost closes the block under construction and opens a new one from the
// whitespace-separated pattern tokens following the Host keyword.
func (p *parser) parseHost(rest string) error {
	p.closeBlock()
	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return fmt.Errorf("%w: empty host list at line %d", ErrSyntax, p.row)
	}
	p.hosts = NewHostList(tokens...)
	return nil
}

// parseKeyword handles any line that is not blank, Host or Match.
func (p *parser) parseKeyword(keyword, value, line string) error {
	if value == "" {
		return fmt.Errorf("%w: invalid syntax at line %d: %s", ErrSyntax, p.row, strings.TrimSpace(line))
	}
	canonical, err := Normalize(keyword)
	if err != nil {
		return fmt.Errorf("%w: %w at line %d", ErrSyntax, err, p.row)
	}
	if p.keywords.Contains(canonical) {
		// first occurrence wins within a block
		return nil
	}
	p.keywords.put(canonical, value)
	return nil
}

// closeBlock finishes the block under construction. Keywords seen before any
// explicit Host line form an implicit block with the wildcard pattern; when
// the input starts straight with a Host line there is nothing to keep and
// the empty synthetic block is discarded.
func (p *parser) closeBlock() {
	if p.hosts == nil {
		if p.keywords.Len() == 0 {
			return
		}
		p.hosts = NewHostList("*")
	}
	log.Trace(context.Background(), "closing host block", "hosts", p.hosts.String(), "keywords", p.keywords.Len())
	p.config.Append(HostBlock{Hosts: p.hosts, Keywords: p.keywords})
	p.keywords = &KeywordSet{}
}

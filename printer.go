package sshconf

import (
	"fmt"
	"io"
	"strings"
)

const defaultIndent = "    "

// dumpOptions for rendering a configuration back to text.
type dumpOptions struct {
	indent     string
	blankLines int
}

// DumpOption is a function that sets a dump option.
type DumpOption func(*dumpOptions)

// WithIndent overrides the indentation prefix of keyword lines. The default
// is four spaces.
func WithIndent(indent string) DumpOption {
	return func(o *dumpOptions) {
		o.indent = indent
	}
}

// WithBlankLines overrides the number of blank lines emitted between host
// blocks. The default is one; there is never a separator after the last
// block.
func WithBlankLines(n int) DumpOption {
	return func(o *dumpOptions) {
		o.blankLines = max(0, n)
	}
}

// newDumpOptions returns dumpOptions with the given options applied.
func newDumpOptions(opts ...DumpOption) dumpOptions {
	options := dumpOptions{indent: defaultIndent, blankLines: 1}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Dump renders the configuration to w: a "Host <patterns>" line per block
// followed by one indented "<Keyword> <value>" line per pair in insertion
// order. For any configuration the parser produced, the output parses back
// to an equal configuration.
func Dump(w io.Writer, config *Config, opts ...DumpOption) error {
	options := newDumpOptions(opts...)
	sb := &strings.Builder{}
	for i, block := range config.Blocks() {
		if i > 0 {
			sb.WriteString(strings.Repeat("\n", options.blankLines))
		}
		sb.WriteString("Host ")
		sb.WriteString(block.Hosts.String())
		sb.WriteByte('\n')
		for _, key := range block.Keywords.Keys() {
			sb.WriteString(options.indent)
			sb.WriteString(key)
			sb.WriteByte(' ')
			sb.WriteString(block.Keywords.values[key])
			sb.WriteByte('\n')
		}
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DumpString renders the configuration to a string.
func DumpString(config *Config, opts ...DumpOption) string {
	sb := &strings.Builder{}
	// writing to a strings.Builder cannot fail
	_ = Dump(sb, config, opts...)
	return sb.String()
}

// Package sshconf parses, queries and re-serializes configuration files
// written in the OpenSSH client dialect: an ordered sequence of Host blocks,
// each carrying case-insensitive keyword/value pairs.
//
// A parsed [Config] keeps its blocks in file order, which is also precedence
// order. Querying a hostname with [Config.ForHost] folds the keyword sets of
// all matching blocks together so that the earliest declaration of each
// keyword wins, the same way the OpenSSH client resolves its options.
//
// Host patterns use shell glob syntax ("*", "?" and "[...]" classes, matched
// case-sensitively) and a pattern can be negated with a leading "!". A match
// by any negated pattern in a list vetoes the whole list, even when another
// pattern in the same list matched.
//
// Keyword values are opaque strings. The parser validates keyword names
// against the table of keywords known to the OpenSSH client and normalizes
// them to their canonical spelling, but it never interprets values.
//
// Match directives are not supported and fail the parse instead of being
// silently skipped. Include directives are parsed as plain keyword lines and
// are not expanded.
//
// # Usage
//
//	config, err := sshconf.ParseString(text)
//	if err != nil {
//		return err
//	}
//	keywords, err := config.ForHost("web1.example.com")
//	if err != nil {
//		return err
//	}
//	user, err := keywords.Get("user")
//
// [Dump] renders a configuration back to text. For any configuration the
// parser produced, parsing the dump yields an equal configuration.
package sshconf

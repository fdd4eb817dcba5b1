package sshconf

import "errors"

// Exported errors.
var (
	// ErrSyntax is returned when the configuration text cannot be parsed.
	// The error message carries the 1-based line number and the offending
	// token or line.
	ErrSyntax = errors.New("syntax error")

	// ErrInvalidKeyword is returned when a keyword is not one of the
	// keywords known to the OpenSSH client, or when Host or Match is used
	// where a data keyword is expected.
	ErrInvalidKeyword = errors.New("invalid keyword")

	// ErrKeyNotFound is returned when looking up a keyword that has no
	// value in a [KeywordSet].
	ErrKeyNotFound = errors.New("keyword not found")

	// ErrInvalidArgument is returned when a host matching operation is
	// given an empty hostname.
	ErrInvalidArgument = errors.New("invalid argument")
)

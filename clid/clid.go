// Package clid implements a prefixed ulid identifier, used to correlate everything a run produces.
package clid

import (
	"fmt"
	"io"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	// Separator between the prefix and the ulid.
	Separator = "-"
	// PrefixSize is the exact length of every prefix.
	PrefixSize = 3
	// ZeroPrefix is shown when a zero value is encoded, for recognizing that case easily.
	ZeroPrefix = "zzz"
)

// ID implements a prefixed ULID identifier.
type ID struct {
	p string
	d ulid.ULID
}

// New with default time and entropy sources and panic when it fails.
func New(prefix string) (id ID) {
	id, err := NewFromParts(prefix, ulid.Now(), ulid.DefaultEntropy())
	if err != nil {
		panic("clid: " + err.Error())
	}

	return
}

// NewFromParts creates an id from its parts.
func NewFromParts(prefix string, ms uint64, entr io.Reader) (id ID, err error) {
	if len(prefix) != PrefixSize {
		panic(fmt.Sprintf("clid: prefix size must be: %d", PrefixSize))
	}

	id.p = prefix

	id.d, err = ulid.New(ms, entr)
	if err != nil {
		return id, fmt.Errorf("unable to init ulid: %w", err)
	}

	return id, nil
}

// Prefix of the identifier.
func (id ID) Prefix() string {
	return id.p
}

// Time returns the millisecond timestamp the identifier was created at.
func (id ID) Time() uint64 {
	return id.d.Time()
}

// String implements the fmt.Stringer interface.
func (id ID) String() string {
	if id.p == "" {
		return strings.Join([]string{ZeroPrefix, id.d.String()}, Separator)
	}

	return strings.Join([]string{id.p, id.d.String()}, Separator)
}

// ParseError describes a failure to parse an ID.
type ParseError struct {
	v string
	m string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("clid: failed to parse '%s': %s", e.v, e.m)
}

// Parse the string encoding of an identifier.
func Parse(s string) (id ID, err error) {
	prefix, after, found := strings.Cut(s, Separator)
	if !found {
		return id, ParseError{v: s, m: "missing separator '" + Separator + "'"}
	}

	if len(prefix) != PrefixSize {
		return id, ParseError{v: s, m: fmt.Sprintf("prefix must be %d characters", PrefixSize)}
	}

	id.p = prefix

	id.d, err = ulid.ParseStrict(after)
	if err != nil {
		return ID{}, fmt.Errorf("clid: %w", err)
	}

	return id, nil
}

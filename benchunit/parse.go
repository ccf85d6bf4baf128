// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit manipulates the units of benchmark observations
// and formats numbers in those units for axis ticks and tables.
package benchunit

import (
	"fmt"
	"strings"
	"unicode"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled
	// by powers of 1000. Decimal units use the International
	// System of Units SI prefixes, such as "k", and "M".
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024. Binary units use the International
	// Electrotechnical Commission (IEC) binary prefixes, such as
	// "Ki" and "Mi".
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of unit. If unit measures memory in the
// numerator, this is Binary. Otherwise, it is Decimal.
func ClassOf(unit string) Class {
	p := newParser(unit)
	for p.next() {
		if p.denom {
			continue
		}
		switch strings.ToLower(p.tok) {
		case "b", "bytes", "kb", "kib", "mb", "mib":
			return Binary
		}
	}
	return Decimal
}

// parser tokenizes units such as "kb", "sec" or "req/sec".
type parser struct {
	rest string // unparsed unit
	rpos int    // byte consumed from original unit

	// Current token
	tok   string
	pos   int  // byte offset of tok in original unit
	denom bool // current token is in denominator
}

func newParser(unit string) *parser {
	return &parser{rest: unit}
}

func isSep(r rune) bool {
	return r == '*' || r == '/' || r == '-' || unicode.IsSpace(r)
}

func (p *parser) next() bool {
	// Consume separators.
	i := strings.IndexFunc(p.rest, func(r rune) bool { return !isSep(r) })
	if i < 0 {
		p.rest = ""
		return false
	}
	for _, r := range p.rest[:i] {
		switch r {
		case '*':
			p.denom = false
		case '/':
			p.denom = true
		}
	}
	p.rpos += i
	p.rest = p.rest[i:]

	end := strings.IndexFunc(p.rest, isSep)
	if end < 0 {
		end = len(p.rest)
	}
	p.tok = p.rest[:end]
	p.pos = p.rpos
	p.rpos += end
	p.rest = p.rest[end:]
	return true
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// Separators between operands.
const (
	sepComponent = ',' // between x and y of a pair
	sepPair      = ' ' // after the y of a pair
)

// ErrSyntax is the generic parse failure. Every error returned by this
// package matches it with errors.Is.
var ErrSyntax = errors.New("svgpath: syntax error")

// SyntaxError reports a malformed path.
type SyntaxError struct {
	// Offset is the byte position of the offending token or byte.
	Offset int

	// Command is the command byte being parsed when the error occurred.
	Command byte
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: malformed %q command at offset %d", e.Command, e.Offset)
}

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// scanner walks a path one byte at a time.
type scanner struct {
	src []byte
	pos int
	cmd byte
}

func (s *scanner) fail(offset int) error {
	return &SyntaxError{Offset: offset, Command: s.cmd}
}

// number reads one numeric token terminated by sep or by the end of input
// and advances past the separator.
//
// The token may hold only digits and a single '.', must be non-empty, and
// must contain at least one digit.
func (s *scanner) number(sep byte) (float64, error) {
	start := s.pos
	seenPoint := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == sep {
			break
		}
		switch {
		case c == '.':
			if seenPoint {
				return 0, s.fail(s.pos)
			}
			seenPoint = true
		case c < '0' || c > '9':
			return 0, s.fail(s.pos)
		}
		s.pos++
	}

	tok := s.src[start:s.pos]
	if s.pos < len(s.src) {
		s.pos++ // separator
	}

	// A trailing point ("5.") is accepted; "." alone is not.
	if n := len(tok); n > 0 && tok[n-1] == '.' {
		tok = tok[:n-1]
	}
	if len(tok) == 0 {
		return 0, s.fail(start)
	}

	v, n := strconv.ParseDecimal(tok)
	if n != len(tok) {
		return 0, s.fail(start)
	}
	return v, nil
}

// pair reads "x,y " into a Point.
func (s *scanner) pair() (Point, error) {
	x, err := s.number(sepComponent)
	if err != nil {
		return Point{}, err
	}
	y, err := s.number(sepPair)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// next scans the next command. It returns ok == false at the end of input.
func (s *scanner) next() (cmd Command, ok bool, err error) {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		s.pos++
		s.cmd = c

		switch c {
		case 'M':
			p, err := s.pair()
			if err != nil {
				return Command{}, false, err
			}
			return Command{Op: OpMoveTo, Points: [3]Point{p}}, true, nil

		case 'L':
			p, err := s.pair()
			if err != nil {
				return Command{}, false, err
			}
			return Command{Op: OpLineTo, Points: [3]Point{p}}, true, nil

		case 'C':
			var pts [3]Point
			for i := range pts {
				p, err := s.pair()
				if err != nil {
					return Command{}, false, err
				}
				pts[i] = p
			}
			return Command{Op: OpCubicTo, Points: pts}, true, nil

		case 'Z':
			if s.pos != len(s.src) && s.src[s.pos] != sepPair {
				return Command{}, false, s.fail(s.pos)
			}
			return Command{Op: OpFill}, true, nil
		}
	}
	return Command{}, false, nil
}

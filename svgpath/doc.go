// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svgpath interprets a compact, SVG-like path language and replays
// it against a vector drawing sink.
//
// # Language
//
// A path is a sequence of single-byte commands with absolute, unsigned
// decimal operands:
//
//	M x,y         move to (x, y)
//	L x,y         line to (x, y)
//	C x1,y1 x2,y2 x,y
//	              cubic Bézier with control points (x1, y1), (x2, y2)
//	              ending at (x, y)
//	Z             close the current subpath and fill it
//
// The x component of a pair is terminated by a comma and the y component by
// a single space (or the end of input). Numbers consist of the digits 0-9
// and at most one decimal point; signs and exponents are not accepted.
// Z must be followed by a space or the end of input. Any other byte found
// where a command is expected is skipped.
//
// Example (a filled triangle):
//
//	M10,20 L30,40 L10,40 Z
//
// # Streaming and transactional use
//
// [Draw] emits sink calls while scanning. On a syntax error, calls already
// emitted stay emitted; nothing is rolled back. [Parse] scans the whole path
// first and returns either every command or an error, so callers that need
// all-or-nothing behavior can [Replay] the result afterwards.
//
// # Errors
//
// Every failure wraps [ErrSyntax]. The concrete error is a [*SyntaxError]
// carrying the byte offset of the problem.
package svgpath

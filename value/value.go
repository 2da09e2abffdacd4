// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package value

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Kind tags which variant of the value algebra a Value holds.
type Kind uint8

const (
	// KindInt holds a 64-bit signed integer.
	KindInt Kind = iota
	// KindChar holds a single Unicode scalar.
	KindChar
	// KindStr holds a shareable immutable text string, either free text or
	// a numeric-shaped string that overflowed int64 range.
	KindStr
)

// Value is the oil runtime's tagged sum type: Int, Char or Str. The zero
// Value is Int(0).
//
// Go strings are already immutable and share their backing array on copy,
// so unlike the Rc<String>-based reference implementation, Str needs no
// extra reference-counted container: plain string assignment already gives
// clone-free sharing.
type Value struct {
	kind Kind
	i    int64
	c    rune
	s    string
}

// Zero is the canonical Int(0) value, also the value read from any absent
// tape cell.
var Zero = Value{kind: KindInt}

// Int constructs a canonical Int value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Char constructs a Value from a rune, canonicalising ASCII digits to Int
// per the rule "a character in '0'..'9' becomes Int of its digit value".
func Char(r rune) Value {
	if r >= '0' && r <= '9' {
		return Int(int64(r - '0'))
	}
	return Value{kind: KindChar, c: r}
}

// FromString constructs a canonical Value from text: a well-formed decimal
// integer in int64 range becomes Int, one that overflows stays Str (the
// big-integer fallback form), a single non-digit rune becomes Char, and
// everything else stays Str.
func FromString(s string) Value {
	if isNumeric(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(n)
		}
		return Value{kind: KindStr, s: s}
	}
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && size > 0 {
		return Char(r)
	}
	return Value{kind: KindStr, s: s}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsInt reports whether v holds an Int.
func (v Value) IsInt() bool { return v.kind == KindInt }

// IntValue returns the underlying int64 and true if v holds an Int.
func (v Value) IntValue() (int64, bool) {
	if v.kind == KindInt {
		return v.i, true
	}
	return 0, false
}

// Display renders v the way opcode 4 (output) and implode/chr do: the
// decimal image of an Int, the scalar of a Char, or the text of a Str.
func (v Value) Display() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindChar:
		return string(v.c)
	default:
		return v.s
	}
}

// isNumeric reports whether s is "0" or matches -?[1-9][0-9]*.
func isNumeric(s string) bool {
	if s == "0" {
		return true
	}
	i := 0
	if len(s) > 0 && s[0] == '-' {
		i = 1
	}
	if i >= len(s) || s[i] < '1' || s[i] > '9' {
		return false
	}
	for i++; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isPositiveNumeric reports whether s matches [1-9][0-9]*.
func isPositiveNumeric(s string) bool {
	if len(s) == 0 || s[0] < '1' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsNumeric reports whether v is Int, or a Str holding an overflowed
// numeric-shaped string. Such values participate in arithmetic; every other
// Str and every Char do not.
func (v Value) IsNumeric() bool {
	switch v.kind {
	case KindInt:
		return true
	case KindStr:
		return isNumeric(v.s)
	default:
		return false
	}
}

// IsPositiveNumeric reports whether v is a positive Int or a Str matching
// [1-9][0-9]*, per §4.1 is_positive_numeric.
func (v Value) IsPositiveNumeric() bool {
	switch v.kind {
	case KindInt:
		return v.i > 0
	case KindStr:
		return isPositiveNumeric(v.s)
	default:
		return false
	}
}

// numeric returns the signed decimal digit string backing v and true, if v
// is Int or an overflowed numeric Str; otherwise ("", false).
func (v Value) numeric() (string, bool) {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindStr:
		if isNumeric(v.s) {
			return v.s, true
		}
	}
	return "", false
}

// normalizeNumeric re-canonicalises a signed decimal digit string: in range,
// it becomes Int; out of range, it stays the big-integer Str fallback.
func normalizeNumeric(s string) Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	return Value{kind: KindStr, s: s}
}

// Incr returns v advanced by one, per the arithmetic contract in §3.1/§4.1:
// Int overflow promotes to a big-integer Str, an in-range numeric Str
// re-normalises to Int, and Char/non-numeric Str (nothing like a number)
// produce Int(1).
func (v Value) Incr() Value {
	switch v.kind {
	case KindInt:
		if v.i == math.MaxInt64 {
			return Value{kind: KindStr, s: "9223372036854775808"}
		}
		return Int(v.i + 1)
	case KindStr:
		if isNumeric(v.s) {
			return normalizeNumeric(incrDigits(v.s))
		}
	}
	return Int(1)
}

// Decr is the mirror of Incr.
func (v Value) Decr() Value {
	switch v.kind {
	case KindInt:
		if v.i == math.MinInt64 {
			return Value{kind: KindStr, s: "-9223372036854775809"}
		}
		return Int(v.i - 1)
	case KindStr:
		if isNumeric(v.s) {
			return normalizeNumeric(decrDigits(v.s))
		}
	}
	return Int(-1)
}

// Advance increments v if dir is true, decrements it otherwise. Used by the
// cursor's step() and by explode/implode's direction-aware cell walk.
func (v Value) Advance(dir bool) Value {
	if dir {
		return v.Incr()
	}
	return v.Decr()
}

// Negate negates v: an Int negates normally (with MIN promoting to its
// big-integer Str image), a numeric Str has its leading '-' flipped (and is
// re-normalised, since flipping can bring an overflowed magnitude back in
// range), and any other value (Char, non-numeric Str) becomes Int(0).
func (v Value) Negate() Value {
	switch v.kind {
	case KindInt:
		if v.i == math.MinInt64 {
			return Value{kind: KindStr, s: "9223372036854775808"}
		}
		return Int(-v.i)
	case KindStr:
		if isNumeric(v.s) {
			if len(v.s) > 0 && v.s[0] == '-' {
				return normalizeNumeric(v.s[1:])
			}
			return normalizeNumeric("-" + v.s)
		}
	}
	return Zero
}

// Add implements the add(rhs) contract: numeric + numeric does checked,
// overflow-promoting big-decimal addition; a non-numeric operand (Char or
// free-text Str) behaves as the arithmetic identity 0, so the result is
// simply the other operand.
func Add(a, b Value) Value {
	as, aok := a.numeric()
	bs, bok := b.numeric()
	switch {
	case aok && bok:
		return normalizeNumeric(addDecimal(as, bs))
	case aok:
		return a
	case bok:
		return b
	default:
		return Zero
	}
}

// Sub implements the sub(rhs) contract: the mirror of Add, with a
// non-numeric b leaving a unchanged and a non-numeric a yielding -b.
func Sub(a, b Value) Value {
	as, aok := a.numeric()
	bs, bok := b.numeric()
	switch {
	case aok && bok:
		return normalizeNumeric(subDecimal(as, bs))
	case aok:
		return a
	case bok:
		return b.Negate()
	default:
		return Zero
	}
}

// Chars returns a lazy character sequence over v together with its
// precomputed length: the decimal digits (plus leading '-') for Int, the
// single scalar for Char, the Unicode scalars of the text for Str.
func (v Value) Chars() *Chars {
	switch v.kind {
	case KindInt:
		s := strconv.FormatInt(v.i, 10)
		return &Chars{kind: KindInt, s: s, length: len(s)}
	case KindChar:
		return &Chars{kind: KindChar, c: v.c, length: 1}
	default:
		return &Chars{kind: KindStr, s: v.s, length: utf8.RuneCountInString(v.s)}
	}
}

// Chars iterates the Unicode scalars of a Value without materialising a
// rune slice up front.
type Chars struct {
	kind     Kind
	s        string
	c        rune
	length   int
	pos      int
	consumed bool
}

// Len returns the total number of characters the sequence will yield.
func (it *Chars) Len() int { return it.length }

// Next returns the next rune and true, or (0, false) once exhausted.
func (it *Chars) Next() (rune, bool) {
	if it.kind == KindChar {
		if it.consumed {
			return 0, false
		}
		it.consumed = true
		return it.c, true
	}
	if it.pos >= len(it.s) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(it.s[it.pos:])
	it.pos += size
	return r, true
}

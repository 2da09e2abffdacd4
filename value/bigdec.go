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

// Decimal-digit-array arithmetic for the big-integer fallback. No big.Int:
// per design, the only operations ever needed on an overflowed numeric Str
// are ±1 (incr/decr) and binary add/sub, so plain digit slices suffice.
//
// Incr/Decr reach these routines only for a Str, i.e. a magnitude that has
// already overflowed int64. Add and Sub route every numeric pair through
// addDecimal/subDecimal, in-range Ints included (as their decimal image),
// so the routines handle any signed decimal string; normalizeNumeric folds
// an in-range result back to Int.

// incrDigits adds one to the signed decimal string s.
func incrDigits(s string) string {
	if len(s) > 0 && s[0] == '-' {
		mag := decrMagnitude(s[1:])
		if mag == "0" {
			return "0"
		}
		return "-" + mag
	}
	return incrMagnitude(s)
}

// decrDigits subtracts one from the signed decimal string s.
func decrDigits(s string) string {
	if len(s) > 0 && s[0] == '-' {
		return "-" + incrMagnitude(s[1:])
	}
	return decrMagnitude(s)
}

func incrMagnitude(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == '9' {
			b[i] = '0'
		} else {
			b[i]++
			return string(b)
		}
	}
	return "1" + string(b)
}

func decrMagnitude(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == '0' {
			b[i] = '9'
		} else {
			b[i]--
			break
		}
	}
	if len(b) > 1 && b[0] == '0' {
		b = b[1:]
	}
	return string(b)
}

// splitSign separates a signed decimal digit string into its sign and
// magnitude digits.
func splitSign(s string) (neg bool, digits string) {
	if len(s) > 0 && s[0] == '-' {
		return true, s[1:]
	}
	return false, s
}

// withSign reassembles a sign and magnitude, normalising "-0" to "0".
func withSign(neg bool, digits string) string {
	digits = trimLeadingZeros(digits)
	if digits == "0" || !neg {
		return digits
	}
	return "-" + digits
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// compareMagnitude compares two non-negative digit strings with no leading
// zeros, returning -1, 0 or 1.
func compareMagnitude(x, y string) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	return 0
}

// addMagnitude adds two non-negative digit strings.
func addMagnitude(x, y string) string {
	i, j := len(x)-1, len(y)-1
	var out []byte
	carry := byte(0)
	for i >= 0 || j >= 0 || carry != 0 {
		var dx, dy byte
		if i >= 0 {
			dx = x[i] - '0'
			i--
		}
		if j >= 0 {
			dy = y[j] - '0'
			j--
		}
		sum := dx + dy + carry
		if sum >= 10 {
			sum -= 10
			carry = 1
		} else {
			carry = 0
		}
		out = append(out, sum+'0')
	}
	reverse(out)
	return string(out)
}

// subMagnitude subtracts y from x, assuming x >= y in magnitude.
func subMagnitude(x, y string) string {
	i, j := len(x)-1, len(y)-1
	var out []byte
	borrow := byte(0)
	for i >= 0 {
		dx := x[i] - '0'
		var dy byte
		if j >= 0 {
			dy = y[j] - '0'
			j--
		}
		i--
		d := int8(dx) - int8(dy) - int8(borrow)
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out = append(out, byte(d)+'0')
	}
	reverse(out)
	return trimLeadingZeros(string(out))
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// addDecimal adds two arbitrary-precision signed decimal strings.
func addDecimal(a, b string) string {
	aneg, ad := splitSign(a)
	bneg, bd := splitSign(b)
	if aneg == bneg {
		return withSign(aneg, addMagnitude(ad, bd))
	}
	switch compareMagnitude(ad, bd) {
	case 0:
		return "0"
	case 1:
		return withSign(aneg, subMagnitude(ad, bd))
	default:
		return withSign(bneg, subMagnitude(bd, ad))
	}
}

// subDecimal subtracts b from a: a - b == a + (-b).
func subDecimal(a, b string) string {
	bneg, bd := splitSign(b)
	return addDecimal(a, withSign(!bneg, bd))
}

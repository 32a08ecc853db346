// numeric.go: Integer and float rendering into exact-length buffers
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

// The numeric formatters never build an intermediate decimal string: the
// digit count is computed analytically by repeated division, one buffer of
// exactly that length is acquired, and the digits are written most
// significant first via divide/modulo.

// digitCount returns the number of decimal digits of v. Zero counts as one
// digit.
func digitCount(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// writeDigits renders v most-significant-first into dst, which must hold
// exactly digitCount(v) bytes.
func writeDigits(dst []byte, v uint64) {
	pow := uint64(1)
	for v/pow >= 10 {
		pow *= 10
	}
	for i := 0; pow > 0; i++ {
		dst[i] = byte('0' + v/pow)
		v %= pow
		pow /= 10
	}
}

// writeDigitsPadded renders v into dst zero-padded to exactly width digits.
// Values wider than width are truncated to their lowest width digits; the
// caller sizes width so that cannot happen.
func writeDigitsPadded(dst []byte, v uint64, width int) {
	pow := uint64(1)
	for i := 1; i < width; i++ {
		pow *= 10
	}
	for i := 0; i < width; i++ {
		dst[i] = byte('0' + (v/pow)%10)
		pow /= 10
	}
}

// FormatInt renders v in decimal. The sign is written explicitly, followed
// by the absolute value's digits.
func (e *Engine) FormatInt(v int64) (*Buffer, error) {
	neg := v < 0
	var av uint64
	if neg {
		// Negate in uint64 space so math.MinInt64 survives.
		av = uint64(-(v + 1)) + 1
	} else {
		av = uint64(v)
	}

	length := digitCount(av)
	if neg {
		length++
	}
	out, err := e.Acquire(length)
	if err != nil {
		return nil, err
	}

	w := 0
	if neg {
		out.data[0] = '-'
		w = 1
	}
	writeDigits(out.data[w:], av)
	return out, nil
}

// FormatFloat renders v with a fixed number of fractional digits, the
// engine's configured decimal accuracy. The value is scaled by 10^accuracy
// and split into integer and fractional parts; precision is purely
// truncating, with no rounding-mode negotiation and no exponent notation.
// NaN and infinities are outside the contract.
func (e *Engine) FormatFloat(v float64) (*Buffer, error) {
	acc := e.config.DecimalAccuracy
	neg := v < 0
	av := v
	if neg {
		av = -v
	}

	scale := uint64(1)
	for i := 0; i < acc; i++ {
		scale *= 10
	}
	scaled := uint64(av * float64(scale))
	intPart := scaled / scale
	frac := scaled % scale

	length := digitCount(intPart)
	if neg {
		length++
	}
	if acc > 0 {
		length += 1 + acc
	}
	out, err := e.Acquire(length)
	if err != nil {
		return nil, err
	}

	w := 0
	if neg {
		out.data[0] = '-'
		w = 1
	}
	writeDigits(out.data[w:], intPart)
	if acc > 0 {
		w += digitCount(intPart)
		out.data[w] = '.'
		writeDigitsPadded(out.data[w+1:], frac, acc)
	}
	return out, nil
}

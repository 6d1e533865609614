package mini

import "math/big"

// durationLetters implements spec.md §4.1's rational duration suffixes.
var durationLetters = map[byte]*big.Rat{
	'w': big.NewRat(1, 1),
	'h': big.NewRat(1, 2),
	'q': big.NewRat(1, 4),
	'e': big.NewRat(1, 8),
	's': big.NewRat(1, 16),
	't': big.NewRat(1, 3),
	'f': big.NewRat(1, 5),
	'x': big.NewRat(1, 6),
}

// scanDigits consumes one or more ASCII digits, returning the consumed
// text and whether any digit was found.
func (s *state) scanDigits() (string, bool) {
	start := s.pos
	for !s.eof() && isDigit(s.peek()) {
		s.advance()
	}
	if s.pos == start {
		return "", false
	}
	return string(s.src[start:s.pos]), true
}

// scanUnsignedInt consumes a run of digits as an int.
func (s *state) scanUnsignedInt() (int, bool) {
	digits, ok := s.scanDigits()
	if !ok {
		return 0, false
	}
	return atoiDigits(digits), true
}

// scanSignedInt consumes an optional leading '-' then digits.
func (s *state) scanSignedInt() (int, bool) {
	m := s.mark()
	neg := false
	if s.peek() == '-' {
		neg = true
		s.advance()
	}
	n, ok := s.scanUnsignedInt()
	if !ok {
		s.reset(m)
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func atoiDigits(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}

// scanUnsignedRatLiteral consumes digits [ '.' digits ] and returns it as
// an exact big.Rat (no float round-trip).
func (s *state) scanUnsignedRatLiteral() (*big.Rat, bool) {
	intPart, ok := s.scanDigits()
	if !ok {
		return nil, false
	}
	r := new(big.Rat)
	r.SetString(intPart)
	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.advance() // '.'
		fracDigits, _ := s.scanDigits()
		num := new(big.Int)
		num.SetString(fracDigits, 10)
		den := new(big.Int).SetInt64(1)
		ten := big.NewInt(10)
		for i := 0; i < len(fracDigits); i++ {
			den.Mul(den, ten)
		}
		frac := new(big.Rat).SetFrac(num, den)
		r = new(big.Rat).Add(r, frac)
	}
	return r, true
}

// scanSignedRatLiteral consumes an optional leading '-' before a rational
// literal.
func (s *state) scanSignedRatLiteral() (*big.Rat, bool) {
	m := s.mark()
	neg := false
	if s.peek() == '-' {
		neg = true
		s.advance()
	}
	r, ok := s.scanUnsignedRatLiteral()
	if !ok {
		s.reset(m)
		return nil, false
	}
	if neg {
		r = new(big.Rat).Neg(r)
	}
	return r, true
}

// scanRational implements spec.md §4.1's Rational leaf: optional sign,
// numeric literal, optional '%denominator', optional duration letter,
// multiplicatively combined.
func (s *state) scanRational() (*big.Rat, bool) {
	m := s.mark()
	r, ok := s.scanSignedRatLiteral()
	if !ok {
		s.reset(m)
		return nil, false
	}
	if s.peek() == '%' && isDigit(s.peekAt(1)) {
		s.advance()
		den, _ := s.scanUnsignedInt()
		if den != 0 {
			r = new(big.Rat).Quo(r, big.NewRat(int64(den), 1))
		}
	}
	if letter, ok := durationLetters[s.peek()]; ok {
		// Only consume the letter as a duration suffix if it isn't the
		// start of a longer identifier (keeps "3x" from eating into a
		// following vocable in ambiguous contexts).
		if !isAlphaNum(s.peekAt(1)) {
			s.advance()
			r = new(big.Rat).Mul(r, letter)
		}
	}
	return r, true
}

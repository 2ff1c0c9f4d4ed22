package deque

import (
	"strconv"
	"strings"
)

// Load appends values to s front to back. On failure s is released, so the
// caller never holds a partially populated sequence.
func Load[E any](s Seq[E], values []E) error {
	for _, v := range values {
		if err := s.PushBack(v); err != nil {
			s.Release()
			return err
		}
	}
	return nil
}

// Render formats the elements of s front to back, separated by a single space,
// each with prec digits after the decimal point.
func Render(s Seq[float64], prec int) string {
	return FormatValues(s.Values(), prec)
}

// FormatValues is Render for values already copied out of a sequence. A negative
// prec selects two digits.
func FormatValues(values []float64, prec int) string {
	if prec < 0 {
		prec = 2
	}
	var b strings.Builder
	for i, v := range values {
		if i != 0 {
			_ = b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', prec, 64))
	}
	return b.String()
}

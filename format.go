package transform

import (
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Format writes primitives back as transform text, for example
// "translate(10 50) rotate(-45)".
//
// Numbers are rounded per kind: angles and translations to the float
// precision, scale factors and the linear part of a matrix to the transform
// precision. With leading-zero stripping on (the default) "0.5" is written
// ".5" and the space before a negative argument is dropped.
func Format(ps []Primitive, opts ...Option) string {
	o := resolveOptions(opts)
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatPrimitive(roundPrimitive(p, o), -1, o.leadingZero))
	}
	return b.String()
}

// roundPrimitive returns a copy of p with its data rounded for output.
func roundPrimitive(p Primitive, o options) Primitive {
	data := make([]float64, len(p.Data))
	for i, v := range p.Data {
		prec := o.floatPrecision
		switch p.Kind {
		case KindScale:
			prec = o.transformPrecision
		case KindMatrix:
			if i < 4 {
				prec = o.transformPrecision
			}
		}
		data[i] = Round(v, prec)
	}
	return Primitive{Kind: p.Kind, Data: data}
}

// formatPrimitive writes name(args). A negative precision keeps the
// shortest representation that round-trips.
func formatPrimitive(p Primitive, precision int, stripZero bool) string {
	var b strings.Builder
	b.WriteString(p.Kind.String())
	b.WriteByte('(')
	for i, v := range p.Data {
		s := formatNumber(v, precision, stripZero)
		if i > 0 && !(stripZero && s[0] == '-') {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	return b.String()
}

func formatNumber(v float64, precision int, stripZero bool) string {
	if precision >= 0 {
		v = Round(v, precision)
	}
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if stripZero {
		// 'f' output has no exponent, so Decimal only drops the leading zero.
		s = string(minify.Decimal([]byte(s), 0))
	}
	return s
}

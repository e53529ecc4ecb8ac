package transform

import (
	"math"
	"strconv"
)

// Angles in the transform syntax are always degrees. The helpers below take
// or return degrees; only the inverse functions round, since their results
// end up in output text.

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Cos returns the cosine of an angle given in degrees.
func Cos(deg float64) float64 {
	return math.Cos(Rad(deg))
}

// Sin returns the sine of an angle given in degrees.
func Sin(deg float64) float64 {
	return math.Sin(Rad(deg))
}

// Tan returns the tangent of an angle given in degrees.
func Tan(deg float64) float64 {
	return math.Tan(Rad(deg))
}

// Acos returns the arccosine of v in degrees, rounded to precision digits.
// Values outside [-1, 1] yield NaN.
func Acos(v float64, precision int) float64 {
	return Round(Deg(math.Acos(v)), precision)
}

// Asin returns the arcsine of v in degrees, rounded to precision digits.
// Values outside [-1, 1] yield NaN.
func Asin(v float64, precision int) float64 {
	return Round(Deg(math.Asin(v)), precision)
}

// Atan returns the arctangent of v in degrees, rounded to precision digits.
func Atan(v float64, precision int) float64 {
	return Round(Deg(math.Atan(v)), precision)
}

// Round rounds v to precision digits after the decimal point using the
// shortest correctly rounded fixed-point form. NaN and infinities are
// returned unchanged. A negative precision is treated as zero.
func Round(v float64, precision int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if precision < 0 {
		precision = 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		// Drop the sign of -0 so it never leaks into output text.
		return 0
	}
	return r
}

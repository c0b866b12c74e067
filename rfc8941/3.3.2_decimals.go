package rfc8941

// §  3.3.2.  Decimals
// §
// §     Decimals are numbers with an integer and a fractional component.  The
// §     integer component has at most 12 digits; the fractional component has
// §     at most three digits.
// §
// §       sf-decimal   = ["-"] 1*12DIGIT "." 1*3DIGIT
// §
// §     ... note that the sign is shared by both the integer and fractional
// §     components.

// MaxDecimalIntegerDigits is the maximum number of digits before the
// decimal point in an sf-decimal.
const MaxDecimalIntegerDigits = 12

// MaxDecimalFractionalDigits is the maximum number of digits after the
// decimal point in an sf-decimal.
const MaxDecimalFractionalDigits = 3

// MinDecimalIntegerPart and MaxDecimalIntegerPart are the inclusive bounds
// of the integer portion of a decimal once rounded to three fractional
// digits.
const (
	MinDecimalIntegerPart int64 = -999999999999
	MaxDecimalIntegerPart int64 = 999999999999
)

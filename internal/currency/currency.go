package currency

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits every Currency carries.
const Places = 2

// ErrNonFinite is returned when converting NaN or an infinity.
var ErrNonFinite = errors.New("amount is not a finite number")

// Currency is a decimal amount rounded half-to-even to two places.
// The zero value is 0.00.
type Currency struct {
	d decimal.Decimal
}

// Zero is 0.00.
var Zero = Currency{}

// FromDecimal rounds d to two places.
func FromDecimal(d decimal.Decimal) Currency {
	return Currency{d: d.RoundBank(Places)}
}

// FromFloat64 converts a decoded IEEE-754 double. The double is expanded to
// its exact decimal value before rounding, so 5.005 (stored as
// 5.00499999999999989...) becomes 5.00.
func FromFloat64(f float64) (Currency, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Currency{}, fmt.Errorf("%w: %v", ErrNonFinite, f)
	}
	return FromDecimal(exactDecimal(f)), nil
}

// exactDecimal returns the exact decimal value of a finite double:
// mant * 2^exp, and for exp < 0 that is mant * 5^-exp * 10^exp.
func exactDecimal(f float64) decimal.Decimal {
	bits := math.Float64bits(f)
	neg := bits>>63 != 0
	biased := int((bits >> 52) & 0x7ff)
	frac := bits & (1<<52 - 1)

	var mant uint64
	var exp int
	if biased == 0 {
		mant, exp = frac, -1074
	} else {
		mant, exp = frac|1<<52, biased-1075
	}

	m := new(big.Int).SetUint64(mant)
	if neg {
		m.Neg(m)
	}
	if exp >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(exp)), 0)
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(m.Mul(m, five), int32(exp))
}

// Parse reads a decimal string such as "19.99".
func Parse(s string) (Currency, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Currency{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// MustParse is Parse for constants and tests. Panics on bad input.
func MustParse(s string) Currency {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Add returns c + o.
func (c Currency) Add(o Currency) Currency {
	return FromDecimal(c.d.Add(o.d))
}

// Sub returns c - o.
func (c Currency) Sub(o Currency) Currency {
	return FromDecimal(c.d.Sub(o.d))
}

// Neg returns -c.
func (c Currency) Neg() Currency {
	return Currency{d: c.d.Neg()}
}

// Cmp compares c and o: -1, 0 or +1.
func (c Currency) Cmp(o Currency) int {
	return c.d.Cmp(o.d)
}

// Equal reports whether c and o are the same amount.
func (c Currency) Equal(o Currency) bool {
	return c.d.Equal(o.d)
}

// IsZero reports whether c is 0.00.
func (c Currency) IsZero() bool {
	return c.d.IsZero()
}

// Decimal returns the underlying decimal value.
func (c Currency) Decimal() decimal.Decimal {
	return c.d
}

// String formats c with exactly two fractional digits.
func (c Currency) String() string {
	return c.d.StringFixed(Places)
}

// MarshalText implements encoding.TextMarshaler.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Currency) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalJSON encodes c as a JSON number with two fractional digits.
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

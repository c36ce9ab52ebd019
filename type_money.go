package camdash

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// defaultCurrency is the reporting currency of the dashboard. Stored balances
// are plain JSON numbers with no currency attached, so it applies everywhere.
const defaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD is a shorthand to create a money value in the reporting currency.
func USD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return M(value, defaultCurrency)
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("unsupported decimal source %T", value))
	}
}

// currency returns the money's currency, defaulting to the reporting currency.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = defaultCurrency
	}
	// to get a never nil currency we need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Compact formats the value the way the dashboard stat cards do:
// $1.2M above a million, $250K above a thousand, plain below.
func (m Money) Compact() string {
	g := m.currency().Grapheme
	switch {
	case m.value.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return fmt.Sprintf("%s%sM", g, m.value.Div(decimal.NewFromInt(1_000_000)).StringFixed(1))
	case m.value.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return fmt.Sprintf("%s%sK", g, m.value.Div(decimal.NewFromInt(1_000)).StringFixed(0))
	default:
		return fmt.Sprintf("%s%s", g, m.value.String())
	}
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Cmp(n Money) int                 { return m.value.Cmp(n.value) }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Decimal returns the exact major-unit value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalJSON persists the value as a bare JSON number of major units, the
// shape the stored collections and the backup format use.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts a JSON number, or a numeric string for tolerance.
func (m *Money) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// tolerate a quoted number
		var s string
		if serr := json.Unmarshal(data, &s); serr != nil {
			return fmt.Errorf("invalid monetary amount %s: %w", string(data), err)
		}
		n = json.Number(s)
	}
	v, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("invalid monetary amount %q: %w", n.String(), err)
	}
	*m = Money{value: v, cur: defaultCurrency}
	return nil
}

var _ json.Marshaler = (*Money)(nil)
var _ json.Unmarshaler = (*Money)(nil)

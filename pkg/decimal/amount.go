package decimal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RoundingMode selects how a value is rounded to a fixed number of fractional digits
type RoundingMode int

const (
	// HalfEven rounds ties toward the even neighbour (banker's rounding)
	HalfEven RoundingMode = iota
	// HalfUp rounds ties away from zero
	HalfUp
	// Down truncates toward zero
	Down
)

func (m RoundingMode) String() string {
	switch m {
	case HalfEven:
		return "half-even"
	case HalfUp:
		return "half-up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

var two = decimal.NewFromInt(2)

// Amount represents a money amount or count with arbitrary precision
type Amount struct {
	decimal.Decimal
}

// NewAmount creates a new Amount from an int64
func NewAmount(value int64) Amount {
	return Amount{decimal.NewFromInt(value)}
}

// NewAmountFromDecimal creates a new Amount from a decimal.Decimal
func NewAmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// NewAmountFromString creates a new Amount from a string
func NewAmountFromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// RequireAmount is like NewAmountFromString but panics on malformed input.
// Meant for constants and tests.
func RequireAmount(value string) Amount {
	a, err := NewAmountFromString(value)
	if err != nil {
		panic(err)
	}
	return a
}

// Zero returns a zero Amount
func Zero() Amount {
	return Amount{decimal.Zero}
}

// Mul multiplies by another amount
func (a Amount) Mul(other Amount) Amount {
	return Amount{a.Decimal.Mul(other.Decimal)}
}

// Add adds another amount
func (a Amount) Add(other Amount) Amount {
	return Amount{a.Decimal.Add(other.Decimal)}
}

// Round rounds to places fractional digits using mode
func (a Amount) Round(places int32, mode RoundingMode) Amount {
	switch mode {
	case HalfUp:
		return Amount{a.Decimal.Round(places)}
	case Down:
		return Amount{a.Decimal.Truncate(places)}
	default:
		return Amount{a.Decimal.RoundBank(places)}
	}
}

// QuoRound divides a by divisor and rounds the exact quotient to places
// fractional digits using mode. The divisor must be non-zero.
func (a Amount) QuoRound(divisor Amount, places int32, mode RoundingMode) Amount {
	q, r := a.Decimal.QuoRem(divisor.Decimal, places)
	if r.IsZero() || mode == Down {
		return Amount{q}
	}

	// |r| < |divisor| * 10^-places, so comparing 2|r| against that bound
	// tells whether the discarded tail is below, at or above one half.
	tail := r.Abs().Mul(two).Cmp(divisor.Decimal.Abs().Shift(-places))

	step := decimal.New(1, -places)
	if a.Decimal.Sign()*divisor.Decimal.Sign() < 0 {
		step = step.Neg()
	}

	switch {
	case tail > 0:
		q = q.Add(step)
	case tail == 0 && mode == HalfUp:
		q = q.Add(step)
	case tail == 0 && isOddAt(q, places):
		q = q.Add(step)
	}
	return Amount{q}
}

// isOddAt reports whether the last digit of d at the given scale is odd.
func isOddAt(d decimal.Decimal, places int32) bool {
	return !d.Shift(places).Truncate(0).Mod(two).IsZero()
}

// Equal checks if this amount equals another regardless of scale
func (a Amount) Equal(other Amount) bool {
	return a.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero at any scale
func (a Amount) IsZero() bool {
	return a.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (a Amount) IsNegative() bool {
	return a.Decimal.IsNegative()
}

// Fixed returns the amount with exactly places fractional digits, rounded with mode
func (a Amount) Fixed(places int32, mode RoundingMode) string {
	return a.Round(places, mode).Decimal.StringFixed(places)
}

// UnmarshalYAML accepts both quoted strings and bare numbers.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("amount must be a scalar, got %s at line %d", kindName(node.Kind), node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("invalid amount %q at line %d: %w", node.Value, node.Line, err)
	}
	a.Decimal = d
	return nil
}

// MarshalYAML writes the amount as a string so no precision is lost.
func (a Amount) MarshalYAML() (interface{}, error) {
	return a.Decimal.String(), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return "scalar"
}

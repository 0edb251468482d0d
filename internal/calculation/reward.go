package calculation

import (
	"strconv"
	"strings"

	"github.com/lotto-precourse/reward-calculator/pkg/decimal"
)

// RateScale is the number of fractional digits a reward rate carries.
const RateScale int32 = 1

// Rounding applied when dividing prize by budget and when rendering a rate.
const (
	RateRounding    = decimal.HalfEven
	DisplayRounding = decimal.HalfEven
)

// Grouping rules shared by every formatter.
const (
	GroupSeparator   = ","
	DecimalSeparator = "."
	GroupSize        = 3
)

var hundred = decimal.NewAmount(100)

// CalculatePercent returns totalCashPrize as a percentage of ticketBudget,
// rounded half-even to RateScale digits. A zero budget yields zero, which
// callers display at RateScale as "0.0".
func CalculatePercent(totalCashPrize, ticketBudget decimal.Amount) decimal.Amount {
	if ticketBudget.IsZero() {
		return decimal.Zero()
	}
	return totalCashPrize.Mul(hundred).QuoRound(ticketBudget, RateScale, RateRounding)
}

// FormatRewardRate renders a rate with grouped thousands and exactly one
// fractional digit, e.g. 324329209.35823 -> "324,329,209.4".
func FormatRewardRate(rewardRate decimal.Amount) string {
	return GroupThousands(rewardRate.Fixed(RateScale, DisplayRounding))
}

// FormatCashPrize renders a whole prize amount with grouped thousands.
func FormatCashPrize(cashPrize int64) string {
	return GroupThousands(strconv.FormatInt(cashPrize, 10))
}

// GroupThousands inserts GroupSeparator between every GroupSize digits of the
// integer part of a plain decimal string. A leading sign and any fractional
// part are passed through untouched.
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, DecimalSeparator)
	if len(intPart) <= GroupSize {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(intPart)/GroupSize)
	b.WriteString(sign)

	lead := len(intPart) % GroupSize
	if lead == 0 {
		lead = GroupSize
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += GroupSize {
		b.WriteString(GroupSeparator)
		b.WriteString(intPart[i : i+GroupSize])
	}

	if hasFrac {
		b.WriteString(DecimalSeparator)
		b.WriteString(frac)
	}
	return b.String()
}

package main

import (
	"fmt"

	"github.com/lotto-precourse/reward-calculator/internal/calculation"
	"github.com/lotto-precourse/reward-calculator/pkg/decimal"
)

// Prints the reference values for the three reward formatters.
func main() {
	rate := calculation.CalculatePercent(decimal.NewAmount(500000), decimal.NewAmount(8000))
	fmt.Println(rate.StringFixed(calculation.RateScale)) // 6250.0

	fmt.Println(calculation.FormatRewardRate(decimal.RequireAmount("324329209.35823"))) // 324,329,209.4

	fmt.Println(calculation.FormatCashPrize(12345)) // 12,345
}

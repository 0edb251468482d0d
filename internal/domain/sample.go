package domain

import (
	"fmt"
	"math"

	"github.com/lotto-precourse/reward-calculator/pkg/decimal"
)

// MaxSampleCount bounds the functional demo list so a typo cannot allocate gigabytes.
const MaxSampleCount = 10000

// Configuration holds the sample inputs for a demo run
type Configuration struct {
	Reward     RewardSample     `yaml:"reward" json:"reward"`
	PrizeTally map[int64]int    `yaml:"prize_tally" json:"prize_tally"`
	Equality   EqualitySample   `yaml:"equality" json:"equality"`
	Functional FunctionalSample `yaml:"functional" json:"functional"`
}

// RewardSample holds the amounts fed to the reward formatter
type RewardSample struct {
	TotalCashPrize decimal.Amount `yaml:"total_cash_prize" json:"total_cash_prize"`
	TicketBudget   decimal.Amount `yaml:"ticket_budget" json:"ticket_budget"`
	RewardRate     decimal.Amount `yaml:"reward_rate" json:"reward_rate"`
	CashPrize      int64          `yaml:"cash_prize" json:"cash_prize"`
}

// EqualitySample is a pair of name lists compared both as lists and as sets
type EqualitySample struct {
	Left  []string `yaml:"left" json:"left"`
	Right []string `yaml:"right" json:"right"`
}

// FunctionalSample controls the random list used by the functional demo
type FunctionalSample struct {
	Count int   `yaml:"count" json:"count"`
	Min   int   `yaml:"min" json:"min"`
	Max   int   `yaml:"max" json:"max"`
	Seed  int64 `yaml:"seed" json:"seed"` // 0 means seed from the clock
}

// Validate checks the count bound and that [Min, Max] is a non-empty range
// narrow enough to draw from.
func (fn FunctionalSample) Validate() error {
	if fn.Count < 0 || fn.Count > MaxSampleCount {
		return fmt.Errorf("count must be between 0 and %d", MaxSampleCount)
	}
	if fn.Max < fn.Min {
		return fmt.Errorf("max (%d) cannot be less than min (%d)", fn.Max, fn.Min)
	}
	// Max >= Min, so the unsigned difference is the exact span.
	if uint64(fn.Max)-uint64(fn.Min) >= math.MaxInt {
		return fmt.Errorf("range [%d, %d] is too wide", fn.Min, fn.Max)
	}
	return nil
}

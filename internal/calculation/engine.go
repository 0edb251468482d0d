package calculation

import (
	"context"
	"fmt"

	"github.com/lotto-precourse/reward-calculator/internal/demo"
	"github.com/lotto-precourse/reward-calculator/internal/domain"
)

// SupplierFactory builds the number source for the functional demo.
type SupplierFactory func(lo, hi int, seed int64) demo.Supplier[int]

// Engine runs the reward formatter and the demo sections over a sample configuration
type Engine struct {
	NewSupplier SupplierFactory
	Logger      Logger
}

// NewEngine creates an engine backed by a seeded random supplier
func NewEngine() *Engine {
	return &Engine{
		NewSupplier: demo.RandomIntSupplier,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run evaluates every section of the sample and collects the results
func (e *Engine) Run(ctx context.Context, config *domain.Configuration) (*domain.Report, error) {
	if config == nil {
		return nil, fmt.Errorf("no configuration provided")
	}

	report := &domain.Report{
		PrizeTally: demo.SortedTally(config.PrizeTally),
	}
	e.Logger.Debugf("prize tally has %d tiers", len(report.PrizeTally))

	reward := config.Reward
	if reward.TicketBudget.IsZero() {
		e.Logger.Debugf("ticket budget is zero, reward rate defaults to 0")
	}
	rate := CalculatePercent(reward.TotalCashPrize, reward.TicketBudget)
	report.RewardRate = rate.StringFixed(RateScale)
	report.FormattedRewardRate = FormatRewardRate(reward.RewardRate)
	report.FormattedCashPrize = FormatCashPrize(reward.CashPrize)
	e.Logger.Debugf("reward rate %s%% from prize %s over budget %s", report.RewardRate, reward.TotalCashPrize, reward.TicketBudget)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run interrupted: %w", err)
	}

	report.ListsEqual = demo.ListsEqual(config.Equality.Left, config.Equality.Right)
	report.SetsEqual = demo.SetsEqual(config.Equality.Left, config.Equality.Right)

	fn := config.Functional
	if err := fn.Validate(); err != nil {
		return nil, fmt.Errorf("functional sample: %w", err)
	}
	result := demo.RunFunctional(fn.Count, e.NewSupplier(fn.Min, fn.Max, fn.Seed))
	report.Numbers = result.Numbers
	report.EvenNumbers = result.Evens
	report.FlooredNumbers = result.Floored

	e.Logger.Infof("sample run complete: rate=%s cash=%s", report.FormattedRewardRate, report.FormattedCashPrize)
	return report, nil
}

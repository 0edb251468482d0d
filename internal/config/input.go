package config

import (
	"fmt"
	"os"

	"github.com/lotto-precourse/reward-calculator/internal/domain"
	"github.com/lotto-precourse/reward-calculator/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// MaxSampleCount bounds the functional demo list.
const MaxSampleCount = domain.MaxSampleCount

// InputParser handles parsing of sample configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultConfiguration returns the built-in sample inputs
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Reward: domain.RewardSample{
			TotalCashPrize: decimal.NewAmount(500000),
			TicketBudget:   decimal.NewAmount(8000),
			RewardRate:     decimal.RequireAmount("324329209.35823"),
			CashPrize:      12345,
		},
		PrizeTally: map[int64]int{
			100: 1,
			200: 2,
		},
		Equality: domain.EqualitySample{
			Left:  []string{"은기", "지훈"},
			Right: []string{"지훈", "은기"},
		},
		Functional: defaultFunctional(),
	}
}

func defaultFunctional() domain.FunctionalSample {
	return domain.FunctionalSample{Count: 10, Min: 1, Max: 100}
}

// LoadFromFile loads a sample configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates a YAML sample configuration
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// An omitted functional section falls back to the built-in one.
	if fn := config.Functional; fn.Count == 0 && fn.Min == 0 && fn.Max == 0 {
		config.Functional = defaultFunctional()
		config.Functional.Seed = fn.Seed
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateReward(&config.Reward); err != nil {
		return fmt.Errorf("reward validation failed: %w", err)
	}

	for prize, count := range config.PrizeTally {
		if prize < 0 {
			return fmt.Errorf("prize tally: prize %d cannot be negative", prize)
		}
		if count < 0 {
			return fmt.Errorf("prize tally: count for prize %d cannot be negative", prize)
		}
	}

	if err := config.Functional.Validate(); err != nil {
		return fmt.Errorf("functional validation failed: %w", err)
	}

	return nil
}

func (ip *InputParser) validateReward(reward *domain.RewardSample) error {
	if reward.TotalCashPrize.IsNegative() {
		return fmt.Errorf("total cash prize cannot be negative")
	}
	if reward.TicketBudget.IsNegative() {
		return fmt.Errorf("ticket budget cannot be negative")
	}
	if reward.RewardRate.IsNegative() {
		return fmt.Errorf("reward rate cannot be negative")
	}
	if reward.CashPrize < 0 {
		return fmt.Errorf("cash prize cannot be negative")
	}
	return nil
}

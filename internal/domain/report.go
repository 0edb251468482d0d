package domain

// PrizeCount is one prize tier and the number of tickets that won it
type PrizeCount struct {
	Prize int64 `yaml:"prize" json:"prize"`
	Count int   `yaml:"count" json:"count"`
}

// Report is the result of a demo run. Decimal results are kept as their
// display strings so every formatter prints the same digits.
type Report struct {
	PrizeTally []PrizeCount `yaml:"prize_tally" json:"prize_tally"`

	RewardRate          string `yaml:"reward_rate" json:"reward_rate"`
	FormattedRewardRate string `yaml:"formatted_reward_rate" json:"formatted_reward_rate"`
	FormattedCashPrize  string `yaml:"formatted_cash_prize" json:"formatted_cash_prize"`

	ListsEqual bool `yaml:"lists_equal" json:"lists_equal"`
	SetsEqual  bool `yaml:"sets_equal" json:"sets_equal"`

	Numbers        []int `yaml:"numbers" json:"numbers"`
	EvenNumbers    []int `yaml:"even_numbers" json:"even_numbers"`
	FlooredNumbers []int `yaml:"floored_numbers" json:"floored_numbers"`
}

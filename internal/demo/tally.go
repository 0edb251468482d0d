package demo

import (
	"fmt"
	"sort"

	"github.com/lotto-precourse/reward-calculator/internal/domain"
)

// PrizeLineFormat renders one tally entry: prize in won, then ticket count.
const PrizeLineFormat = "%d원 - %d개"

// SortedTally flattens a prize -> count map into entries ordered by prize.
func SortedTally(tally map[int64]int) []domain.PrizeCount {
	out := make([]domain.PrizeCount, 0, len(tally))
	for prize, count := range tally {
		out = append(out, domain.PrizeCount{Prize: prize, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prize < out[j].Prize })
	return out
}

// FormatPrizeLine renders a single tally entry.
func FormatPrizeLine(pc domain.PrizeCount) string {
	return fmt.Sprintf(PrizeLineFormat, pc.Prize, pc.Count)
}

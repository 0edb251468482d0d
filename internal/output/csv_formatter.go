package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/lotto-precourse/reward-calculator/internal/domain"
)

// CSVFormatter writes the report as field,value rows. List values are
// space separated so each stays in a single cell.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	rows := [][]string{{"field", "value"}}
	for _, pc := range report.PrizeTally {
		rows = append(rows, []string{"prize_" + strconv.FormatInt(pc.Prize, 10), strconv.Itoa(pc.Count)})
	}
	rows = append(rows,
		[]string{"reward_rate", report.RewardRate},
		[]string{"formatted_reward_rate", report.FormattedRewardRate},
		[]string{"formatted_cash_prize", report.FormattedCashPrize},
		[]string{"lists_equal", strconv.FormatBool(report.ListsEqual)},
		[]string{"sets_equal", strconv.FormatBool(report.SetsEqual)},
		[]string{"numbers", joinInts(report.Numbers)},
		[]string{"even_numbers", joinInts(report.EvenNumbers)},
		[]string{"floored_numbers", joinInts(report.FlooredNumbers)},
	)

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/lotto-precourse/reward-calculator/internal/demo"
	"github.com/lotto-precourse/reward-calculator/internal/domain"
)

// ConsoleFormatter prints one result per line in section order.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, pc := range report.PrizeTally {
		fmt.Fprintln(&buf, demo.FormatPrizeLine(pc))
	}

	fmt.Fprintln(&buf, report.RewardRate)
	fmt.Fprintln(&buf, report.FormattedRewardRate)
	fmt.Fprintln(&buf, report.FormattedCashPrize)

	fmt.Fprintln(&buf, report.ListsEqual)
	fmt.Fprintln(&buf, report.SetsEqual)

	fmt.Fprintln(&buf, bracketList(report.Numbers))
	for _, n := range report.EvenNumbers {
		fmt.Fprintf(&buf, "%d, ", n)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, bracketList(report.FlooredNumbers))
	return buf.Bytes(), nil
}

// bracketList renders ints as "[1, 2, 3]".
func bracketList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

package report

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var weekIDRe = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// WeekID formats t's ISO week as YYYY-Www, the label every report
// artifact is named by.
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ParseWeekID splits a YYYY-Www label into its year and week.
func ParseWeekID(s string) (year, week int, err error) {
	m := weekIDRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid week id %q", s)
	}
	year, _ = strconv.Atoi(m[1])
	week, _ = strconv.Atoi(m[2])
	if week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("invalid week id %q", s)
	}
	return year, week, nil
}

package parse

import (
	"regexp"
	"strings"
	"time"
)

// offsetSuffixRe matches the vestigial UTC-offset minutes the agent appends
// to the time field, e.g. "14:22:01.500-300".
var offsetSuffixRe = regexp.MustCompile(`[+-]\d+$`)

// stampLayouts is the ordered list of accepted date+time layouts. The agent
// is inconsistent about zero-padding across versions, so both padded and
// unpadded forms are tried, first match wins.
var stampLayouts = []string{
	"01-02-2006 15:04:05.000",
	"01-02-2006 15:04:05",
	"1-2-2006 15:04:05.000",
	"1-2-2006 15:04:05",
}

// Timestamp reconstructs a local instant from the split date and time fields
// of a log line. The trailing offset suffix on the time field is stripped and
// discarded, not applied: the agent writes wall-clock local time and the
// offset field is unreliable, so the value is interpreted in the local zone
// of the observing machine. Returns nil when no accepted layout matches.
func Timestamp(date, clock string) *time.Time {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return nil
	}
	clock = offsetSuffixRe.ReplaceAllString(clock, "")

	joined := date + " " + clock
	for _, layout := range stampLayouts {
		if t, err := time.ParseInLocation(layout, joined, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

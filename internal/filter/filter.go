// Package filter applies severity, time-window, and component criteria to
// parsed records. Criteria combine with AND semantics and never error per
// record; an invalid component pattern is rejected when the criteria are
// built, before any line flows.
package filter

import (
	"fmt"
	"regexp"
	"time"

	"cmtail/internal/record"
)

// Criteria is a stateless record predicate. The zero value passes everything.
type Criteria struct {
	minLevel  record.Level
	since     *time.Time
	component string
	pattern   *regexp.Regexp
}

// New builds criteria from the caller-supplied options. When isPattern is
// set, component is compiled as an unanchored regular expression; a bad
// pattern is a configuration error surfaced here rather than per record.
func New(minLevel record.Level, since *time.Time, component string, isPattern bool) (*Criteria, error) {
	c := &Criteria{since: since}

	if minLevel.Valid() {
		c.minLevel = minLevel
	} else {
		c.minLevel = record.LevelInfo
	}

	if component != "" {
		if isPattern {
			re, err := regexp.Compile(component)
			if err != nil {
				return nil, fmt.Errorf("compile component pattern: %w", err)
			}
			c.pattern = re
		} else {
			c.component = component
		}
	}
	return c, nil
}

// Match reports whether rec satisfies every supplied criterion.
//
// A record without a reconstructed timestamp is never excluded by the since
// bound; missing data is not "too old". A record without a component fails
// any supplied component criterion, since an unparsed line cannot match a
// named subsystem.
func (c *Criteria) Match(rec record.Record) bool {
	if rec.Level < c.minLevel {
		return false
	}
	if c.since != nil && rec.TimestampLocal != nil && rec.TimestampLocal.Before(*c.since) {
		return false
	}
	switch {
	case c.pattern != nil:
		if rec.Component == "" || !c.pattern.MatchString(rec.Component) {
			return false
		}
	case c.component != "":
		if rec.Component != c.component {
			return false
		}
	}
	return true
}

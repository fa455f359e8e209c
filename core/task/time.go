package task

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

var (
	errEmptyTime    = errors.New("time is empty")
	errRelativeTime = errors.New("relative times are not accepted")
)

// ParseTime reads a date, a date time or an RFC 3339 timestamp. Values
// without a zone are read as UTC. Relative words such as "now" are
// rejected so a stored value never depends on when it was read.
func ParseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "0", "0000-00-00", "0000-00-00 00:00:00":
		return time.Time{}, errEmptyTime
	case "now", "yesterday", "tomorrow":
		return time.Time{}, errRelativeTime
	}

	c := carbon.ParseByLayout(raw, time.RFC3339, carbon.UTC)
	if c.Error != nil {
		c = carbon.Parse(raw, carbon.UTC)
	}
	if c.Error != nil {
		return time.Time{}, c.Error
	}
	return time.Unix(c.Timestamp(), 0).UTC(), nil
}

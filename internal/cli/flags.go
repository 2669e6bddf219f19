package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value for calendar dates. It accepts YYYY-MM-DD,
// "today" and "yesterday".
type dateValue struct {
	t   *time.Time
	now func() time.Time
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(domain.DateLayout)
}

func (d *dateValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "today":
		*d.t = domain.TruncateDate(d.now())
		return nil
	case "yesterday":
		*d.t = domain.TruncateDate(d.now()).AddDate(0, 0, -1)
		return nil
	}
	parsed, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD, today or yesterday")
	}
	*d.t = parsed
	return nil
}

func (d *dateValue) Type() string { return "date" }

// addDateFlag registers --date on fs. An unset flag leaves *p zero.
func addDateFlag(fs *pflag.FlagSet, p *time.Time, now func() time.Time, usage string) {
	fs.Var(&dateValue{t: p, now: now}, "date", usage)
}

// dateOr returns t truncated to a day, or today when t is zero.
func dateOr(t time.Time, now time.Time) time.Time {
	if t.IsZero() {
		return domain.TruncateDate(now)
	}
	return domain.TruncateDate(t)
}

// The flag* helpers return nil for flags the user did not pass, so partial
// logs keep "not logged" distinct from zero.

func flagFloat(fs *pflag.FlagSet, name string) *float64 {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetFloat64(name)
	if err != nil {
		return nil
	}
	return &v
}

func flagInt(fs *pflag.FlagSet, name string) *int {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

func flagBool(fs *pflag.FlagSet, name string) *bool {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

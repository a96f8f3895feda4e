package interval

import (
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Time is an absolute instant on the time axis,
// in nanoseconds since the Unix epoch.
type Time int64

// Duration is a span of time in nanoseconds.
type Duration int64

// TimeOf converts a time.Time to a Time.
func TimeOf(t time.Time) Time {
	return Time(t.UnixNano())
}

// Unix returns the Time for the given Unix time in whole seconds.
func Unix(sec int64) Time {
	return Time(sec * int64(time.Second))
}

// Time converts to a time.Time in UTC.
func (t Time) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

// Unix returns the Unix time in whole seconds.
func (t Time) Unix() int64 {
	return int64(t) / int64(time.Second)
}

func (t Time) String() string {
	return t.Time().Format(time.RFC3339Nano)
}

// UnmarshalText parses either a Unix timestamp in seconds or an
// RFC3339 timestamp. Fractional timestamps are read at millisecond
// resolution; float64 cannot carry epoch nanoseconds exactly.
func (t *Time) UnmarshalText(data []byte) error {
	str := string(data)
	if sec, err := strconv.ParseInt(str, 10, 64); err == nil {
		*t = Unix(sec)
		return nil
	}
	if sec, err := strconv.ParseFloat(str, 64); err == nil {
		*t = Time(int64(math.Round(sec*1e3)) * int64(time.Millisecond))
		return nil
	}
	abs, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return errors.Errorf("invalid timestamp %q", str)
	}
	*t = TimeOf(abs.UTC())
	return nil
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Duration converts to a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d *Duration) UnmarshalText(data []byte) error {
	dur, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

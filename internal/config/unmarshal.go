package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Duration is a config timeout written as a Go duration string ("10s") or a
// number of seconds. Zero is unset and replaced by the `default` tag;
// any negative value means "no bound".
type Duration time.Duration

// Unbounded is the canonical negative Duration.
const Unbounded = Duration(-1)

// Bounded returns the timeout and true, or false when d disables the bound.
func (d Duration) Bounded() (time.Duration, bool) {
	if d < 0 {
		return 0, false
	}

	return time.Duration(d), true
}

// ToDuration returns d as time.Duration, with 0 for an unbounded value.
func (d Duration) ToDuration() time.Duration {
	v, _ := d.Bounded()
	return v
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	if _, ok := d.Bounded(); !ok {
		return "unbounded"
	}

	return time.Duration(d).String()
}

// UnmarshalText parses "10s", "unbounded" or a bare number of seconds.
// It also serves creasty/defaults for `default` tags.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if s == "unbounded" {
		*d = Unbounded
		return nil
	}

	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		*d = Duration(secs * float64(time.Second))
		return nil
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(v)
	return nil
}

// UnmarshalJSON accepts a JSON string or number, see UnmarshalText.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return d.UnmarshalText([]byte(s))
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration %s", b)
	}

	return d.UnmarshalText([]byte(n.String()))
}

// MarshalJSON implements the json.Marshaler interface.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

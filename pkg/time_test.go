package pkg

import (
	"testing"
	"time"
)

func TestSmartDurationFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{42 * time.Nanosecond, "42ns"},
		{15 * time.Microsecond, "15μs"},
		{42 * time.Millisecond, "42ms"},
		{time.Second, "1s"},
		{90 * time.Second, "1m30s"},
		{time.Hour + 30*time.Minute, "1h30m"},
		// at most two units; the seconds are dropped
		{time.Hour + 30*time.Minute + 5*time.Second, "1h30m"},
		{25 * time.Hour, "1d1h"},
	}
	for _, tc := range cases {
		if got := SmartDurationFormat(tc.in); got != tc.want {
			t.Fatalf("%v: want %q, got %q", tc.in, tc.want, got)
		}
	}
}

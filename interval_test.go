package checkbook

import (
	"errors"
	"testing"
)

func TestParseInterval(t *testing.T) {
	testCases := []struct {
		in      string
		want    Interval
		wantErr error
	}{
		{in: "1 Week", want: Weekly(1)},
		{in: "2 Weeks", want: Weekly(2)},
		{in: "1 Month", want: Monthly(1)},
		{in: "6 Months", want: Monthly(6)},
		// Unit matching is case-insensitive.
		{in: "3 weeks", want: Weekly(3)},
		{in: "4 MONTHS", want: Monthly(4)},
		{in: "0 Weeks", want: Weekly(0)},
		// Extra whitespace is tolerated, extra tokens are not.
		{in: "  2   Weeks  ", want: Weekly(2)},
		{in: "2 Weeks extra", wantErr: ErrInvalidFormat},
		{in: "Weeks", wantErr: ErrInvalidFormat},
		{in: "", wantErr: ErrInvalidFormat},
		{in: "x Weeks", wantErr: ErrInvalidNumber},
		{in: "-1 Weeks", wantErr: ErrInvalidNumber},
		{in: "2.5 Weeks", wantErr: ErrInvalidNumber},
		{in: "2 Days", wantErr: ErrInvalidIntervalType},
		{in: "2 Years", wantErr: ErrInvalidIntervalType},
	}
	for _, tc := range testCases {
		got, err := ParseInterval(tc.in)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseInterval(%q) error = %v, want %v", tc.in, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInterval(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseInterval(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInterval_String(t *testing.T) {
	testCases := []struct {
		in   Interval
		want string
	}{
		// The unit is singular exactly at count 1, for both units.
		{in: Weekly(0), want: "0 Weeks"},
		{in: Weekly(1), want: "1 Week"},
		{in: Weekly(2), want: "2 Weeks"},
		{in: Monthly(0), want: "0 Months"},
		{in: Monthly(1), want: "1 Month"},
		{in: Monthly(12), want: "12 Months"},
		{in: Weekly(52000), want: "52000 Weeks"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInterval_RoundTrip(t *testing.T) {
	for _, unit := range []func(uint16) Interval{Weekly, Monthly} {
		for _, count := range []uint16{0, 1, 2, 52000} {
			i := unit(count)
			got, err := ParseInterval(i.String())
			if err != nil {
				t.Errorf("ParseInterval(%q) returned error: %v", i.String(), err)
				continue
			}
			if got != i {
				t.Errorf("round trip of %v = %v", i, got)
			}
		}
	}
}

package checkbook

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "7/4/2024", want: NewDate(2024, time.July, 4)},
		{in: "12/31/1999", want: NewDate(1999, time.December, 31)},
		// Zero-padded cells written by other tools parse too.
		{in: "07/04/2024", want: NewDate(2024, time.July, 4)},
		{in: "1/1/2024", want: NewDate(2024, time.January, 1)},
		{in: "2024-07-04", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_String(t *testing.T) {
	testCases := []struct {
		in   Date
		want string
	}{
		// No zero padding on single-digit months and days.
		{in: NewDate(2024, time.July, 4), want: "7/4/2024"},
		{in: NewDate(1999, time.December, 31), want: "12/31/1999"},
		{in: NewDate(2024, time.January, 1), want: "1/1/2024"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDate_RoundTrip(t *testing.T) {
	for _, s := range []string{"7/4/2024", "12/31/1999", "2/29/2024"} {
		d := MustParseDate(s)
		if got := d.String(); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestDate_IsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if MustParseDate("7/4/2024").IsZero() {
		t.Error("a real date should not report IsZero")
	}
}

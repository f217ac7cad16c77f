package dateutil

import (
	"errors"
	"testing"
)

func TestCalendarDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		timestamp string
		want      string
		wantErr   error
	}{
		{name: "RFC3339 UTC", timestamp: "2022-03-01T10:00:00Z", want: "2022-03-01"},
		{name: "offset and fraction", timestamp: "2019-12-31T23:59:59.123+02:00", want: "2019-12-31"},
		{name: "lowercase separator", timestamp: "2021-06-15t08:00:00z", want: "2021-06-15"},
		{name: "space separator", timestamp: "2021-06-15 08:00:00", want: "2021-06-15"},
		{name: "date only", timestamp: "2020-01-01", want: "2020-01-01"},
		{name: "surrounding whitespace", timestamp: "  2020-01-01T00:00:00Z\n", want: "2020-01-01"},
		{name: "empty", timestamp: "", wantErr: ErrInvalidDate},
		{name: "unpadded month", timestamp: "2022-3-01T10:00:00Z", wantErr: ErrInvalidDate},
		{name: "not a date", timestamp: "yesterday", wantErr: ErrInvalidDate},
		{name: "impossible day", timestamp: "2022-02-30T00:00:00Z", wantErr: ErrInvalidDate},
		{name: "slashes", timestamp: "2022/03/01", wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CalendarDate(tt.timestamp)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CalendarDate(%q) error = %v, want %v", tt.timestamp, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CalendarDate(%q) unexpected error: %v", tt.timestamp, err)
			}
			if got != tt.want {
				t.Errorf("CalendarDate(%q) = %q, want %q", tt.timestamp, got, tt.want)
			}
			if len(got) != 10 {
				t.Errorf("CalendarDate(%q) = %q, want 10 characters", tt.timestamp, got)
			}
		})
	}
}

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "ISO tokens", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "long month", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "short forms", format: "M/D/YY", want: "1/2/06"},
		{name: "short month name", format: "DD MMM YYYY", want: "02 Jan 2006"},
		{name: "bracket literal", format: "[Posted] YYYY", want: "Posted 2006"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[oops YYYY", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: "YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatCalendarDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		date    string
		format  string
		want    string
		wantErr error
	}{
		{name: "default is ISO", date: "2022-03-01", format: "", want: "2022-03-01"},
		{name: "iso preset", date: "2022-03-01", format: "iso", want: "2022-03-01"},
		{name: "long preset", date: "2022-03-01", format: "long", want: "March 1, 2022"},
		{name: "preset is case insensitive", date: "2022-03-01", format: "EUROPEAN", want: "01/03/2022"},
		{name: "us preset", date: "2022-03-01", format: "us", want: "03/01/2022"},
		{name: "custom tokens", date: "2021-06-15", format: "D MMM YYYY", want: "15 Jun 2021"},
		{name: "invalid format", date: "2022-03-01", format: "[bad", wantErr: ErrInvalidDateFormat},
		{name: "invalid date", date: "2022-13-01", format: "iso", wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatCalendarDate(tt.date, tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FormatCalendarDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatCalendarDate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatCalendarDate(%q, %q) = %q, want %q", tt.date, tt.format, got, tt.want)
			}
		})
	}
}

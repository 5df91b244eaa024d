package patients

import (
	"errors"
	"testing"
)

func TestNormalizeDate_AllMonths(t *testing.T) {
	months := map[string]string{
		"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
		"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
		"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
	}

	for abbr, want := range months {
		got, err := NormalizeDate("Mon " + abbr + " 04 1990")
		if err != nil {
			t.Fatalf("NormalizeDate(%s) error: %v", abbr, err)
		}
		if got != "1990-"+want+"-04" {
			t.Fatalf("NormalizeDate(%s) = %q, want 1990-%s-04", abbr, got, want)
		}
	}
}

func TestNormalizeDate_EmptyMeansAbsent(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		got, err := NormalizeDate(raw)
		if err != nil {
			t.Fatalf("NormalizeDate(%q) error: %v", raw, err)
		}
		if got != "" {
			t.Fatalf("NormalizeDate(%q) = %q, want empty (absent)", raw, got)
		}
	}
}

func TestNormalizeDate_UnknownMonthKeepsErrorSentinel(t *testing.T) {
	got, err := NormalizeDate("Mon Zzz 04 1990")
	if !errors.Is(err, ErrUnknownMonth) {
		t.Fatalf("expected ErrUnknownMonth, got %v", err)
	}
	// el valor igual sale con el segmento ERROR (compatibilidad)
	if got != "1990-ERROR-04" {
		t.Fatalf("got %q, want 1990-ERROR-04", got)
	}
}

func TestNormalizeDate_MalformedShape(t *testing.T) {
	for _, raw := range []string{"1990-03-04", "Mar 04", "Wed Mar 04"} {
		_, err := NormalizeDate(raw)
		if !errors.Is(err, ErrMalformedDate) {
			t.Fatalf("NormalizeDate(%q): expected ErrMalformedDate, got %v", raw, err)
		}
	}
}

func TestNormalizeDate_NoRangeValidation(t *testing.T) {
	// día 32 no se rechaza: día y año pasan tal cual
	got, err := NormalizeDate("Mon Jan 32 1990")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got != "1990-01-32" {
		t.Fatalf("got %q, want 1990-01-32", got)
	}
}

func TestNormalizeDate_ExtraTokensIgnored(t *testing.T) {
	// la forma completa de Date.toString() trae hora y zona detrás
	got, err := NormalizeDate("Wed Mar 04 1990 00:00:00 GMT-0600")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got != "1990-03-04" {
		t.Fatalf("got %q, want 1990-03-04", got)
	}
}

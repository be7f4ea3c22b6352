package lexical

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text string
		want Duration
	}{
		{"P1Y", Duration{Months: 12}},
		{"P1Y2M", Duration{Months: 14}},
		{"P3D", Duration{Seconds: 3 * 86400}},
		{"PT1H30M", Duration{Seconds: 5400}},
		{"PT0.5S", Duration{Seconds: 0.5}},
		{"P1DT2H", Duration{Seconds: 86400 + 7200}},
		{"-P2M", Duration{Months: -2}},
		{"-PT90S", Duration{Seconds: -90}},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.text)
		if err != nil {
			t.Fatalf("ParseDuration(%q) failed: %v", tt.text, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseDuration(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
	for _, text := range []string{"", "P", "PT", "P1DT", "1Y", "P1S", "P-1Y", "P1.5Y"} {
		if _, err := ParseDuration(text); err == nil {
			t.Errorf("ParseDuration(%q) accepted invalid input", text)
		}
	}
}

func TestFormatDuration_Canonical(t *testing.T) {
	tests := []struct {
		v    Duration
		want string
	}{
		{Duration{Months: 12}, "P1Y"},
		{Duration{Months: 14}, "P1Y2M"},
		{Duration{Seconds: 5400}, "PT1H30M"},
		{Duration{Seconds: 86400 + 7200}, "P1DT2H"},
		{Duration{Months: -2}, "-P2M"},
		{Duration{}, "PT0S"},
		{Duration{Seconds: 0.5}, "PT0.5S"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.v); got != tt.want {
			t.Errorf("FormatDuration(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestDurationRestrictions(t *testing.T) {
	if v, err := ParseYearMonthDuration("P1Y6M"); err != nil || v.Months != 18 {
		t.Errorf("ParseYearMonthDuration = %+v, %v", v, err)
	}
	if _, err := ParseYearMonthDuration("P1D"); err == nil {
		t.Error("yearMonthDuration accepted a day component")
	}
	if _, err := ParseYearMonthDuration("PT1M"); err == nil {
		t.Error("yearMonthDuration accepted a time component")
	}
	if v, err := ParseDayTimeDuration("P1DT2H"); err != nil || v.Seconds != 86400+7200 {
		t.Errorf("ParseDayTimeDuration = %+v, %v", v, err)
	}
	if v, err := ParseDayTimeDuration("PT1M"); err != nil || v.Seconds != 60 {
		t.Errorf("ParseDayTimeDuration(PT1M) = %+v, %v", v, err)
	}
	if _, err := ParseDayTimeDuration("P1M"); err == nil {
		t.Error("dayTimeDuration accepted a month component")
	}
	if _, err := ParseDayTimeDuration("P1Y"); err == nil {
		t.Error("dayTimeDuration accepted a year component")
	}
}

func TestParseDateTime(t *testing.T) {
	v, err := ParseDateTime("2002-10-10T12:00:00-05:00")
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if !v.Zoned {
		t.Error("expected a zoned dateTime")
	}
	if got := FormatDateTime(v); got != "2002-10-10T12:00:00-05:00" {
		t.Errorf("FormatDateTime = %q", got)
	}
	v, err = ParseDateTime("2002-10-10T12:00:00")
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if v.Zoned {
		t.Error("expected an unzoned dateTime")
	}
	if _, err := ParseDateTime("2002-10-10"); err == nil {
		t.Error("ParseDateTime accepted a date")
	}
}

func TestParseDateTimeStamp(t *testing.T) {
	if _, err := ParseDateTimeStamp("2002-10-10T12:00:00Z"); err != nil {
		t.Errorf("ParseDateTimeStamp failed: %v", err)
	}
	if _, err := ParseDateTimeStamp("2002-10-10T12:00:00"); err == nil {
		t.Error("dateTimeStamp accepted a missing timezone")
	}
}

func TestParseTimeAndDate(t *testing.T) {
	if v, err := ParseTime("13:20:00Z"); err != nil || !v.Zoned {
		t.Errorf("ParseTime(13:20:00Z) = %+v, %v", v, err)
	}
	if v, err := ParseTime("13:20:00"); err != nil || v.Zoned {
		t.Errorf("ParseTime(13:20:00) = %+v, %v", v, err)
	}
	if _, err := ParseTime("25:00:00"); err == nil {
		t.Error("ParseTime accepted hour 25")
	}
	if v, err := ParseDate("2002-10-10"); err != nil || FormatDate(v) != "2002-10-10" {
		t.Errorf("ParseDate = %+v, %v", v, err)
	}
	if _, err := ParseDate("2002-13-01"); err == nil {
		t.Error("ParseDate accepted month 13")
	}
}

// Negative years must come back zero-padded to four digits with the
// sign outside the padding, so the formatted form reparses.
func TestNegativeYears(t *testing.T) {
	y, err := ParseGYear("-0042")
	if err != nil {
		t.Fatalf("ParseGYear(-0042) failed: %v", err)
	}
	if y.Year != -42 {
		t.Fatalf("ParseGYear(-0042) = %+v", y)
	}
	if got := FormatGYear(y); got != "-0042" {
		t.Errorf("FormatGYear = %q, want %q", got, "-0042")
	}
	if _, err := ParseGYear(FormatGYear(y)); err != nil {
		t.Errorf("FormatGYear emitted a form ParseGYear rejects: %v", err)
	}

	ym, err := ParseGYearMonth("-0042-07")
	if err != nil {
		t.Fatalf("ParseGYearMonth(-0042-07) failed: %v", err)
	}
	if got := FormatGYearMonth(ym); got != "-0042-07" {
		t.Errorf("FormatGYearMonth = %q, want %q", got, "-0042-07")
	}
	if _, err := ParseGYearMonth(FormatGYearMonth(ym)); err != nil {
		t.Errorf("FormatGYearMonth emitted a form ParseGYearMonth rejects: %v", err)
	}
}

func TestGregorianFragments(t *testing.T) {
	if v, err := ParseGYearMonth("2001-10"); err != nil || FormatGYearMonth(v) != "2001-10" {
		t.Errorf("gYearMonth round trip = %+v, %v", v, err)
	}
	if _, err := ParseGYearMonth("2001-13"); err == nil {
		t.Error("gYearMonth accepted month 13")
	}
	if v, err := ParseGYear("2001"); err != nil || v.Year != 2001 {
		t.Errorf("gYear = %+v, %v", v, err)
	}
	if _, err := ParseGYear("85"); err == nil {
		t.Error("gYear accepted a two-digit year")
	}
	if v, err := ParseGMonthDay("--05-31"); err != nil || FormatGMonthDay(v) != "--05-31" {
		t.Errorf("gMonthDay round trip = %+v, %v", v, err)
	}
	if _, err := ParseGMonthDay("--05-32"); err == nil {
		t.Error("gMonthDay accepted day 32")
	}
	if v, err := ParseGDay("---09"); err != nil || FormatGDay(v) != "---09" {
		t.Errorf("gDay round trip = %+v, %v", v, err)
	}
	if _, err := ParseGDay("---00"); err == nil {
		t.Error("gDay accepted day 0")
	}
	if v, err := ParseGMonth("--12"); err != nil || FormatGMonth(v) != "--12" {
		t.Errorf("gMonth round trip = %+v, %v", v, err)
	}
	if _, err := ParseGMonth("-12"); err == nil {
		t.Error("gMonth accepted a malformed form")
	}
}

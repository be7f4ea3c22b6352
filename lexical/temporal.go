package lexical

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Duration holds an xsd:duration value as a month count plus a second
// count, both carrying the sign of the whole duration. The two
// components are kept apart because months have no fixed length in
// seconds.
type Duration struct {
	Months  int64
	Seconds float64
}

var durationRe = regexp.MustCompile(
	`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

func ParseDuration(text string) (Duration, error) {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return Duration{}, parseError("duration", text)
	}
	// "P" and "P...T" alone designate nothing.
	if m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "" && m[6] == "" && m[7] == "" {
		return Duration{}, parseError("duration", text)
	}
	if strings.HasSuffix(text, "T") {
		return Duration{}, parseError("duration", text)
	}
	var d Duration
	years, _ := strconv.ParseInt(zeroed(m[2]), 10, 64)
	months, _ := strconv.ParseInt(zeroed(m[3]), 10, 64)
	days, _ := strconv.ParseInt(zeroed(m[4]), 10, 64)
	hours, _ := strconv.ParseInt(zeroed(m[5]), 10, 64)
	mins, _ := strconv.ParseInt(zeroed(m[6]), 10, 64)
	secs, _ := strconv.ParseFloat(zeroed(m[7]), 64)
	d.Months = years*12 + months
	d.Seconds = float64(days*86400+hours*3600+mins*60) + secs
	if m[1] == "-" {
		d.Months = -d.Months
		d.Seconds = -d.Seconds
	}
	return d, nil
}

func zeroed(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func FormatDuration(v Duration) string {
	months, secs := v.Months, v.Seconds
	var b strings.Builder
	if months < 0 || secs < 0 {
		b.WriteByte('-')
		months, secs = -months, -secs
	}
	b.WriteByte('P')
	if y := months / 12; y > 0 {
		fmt.Fprintf(&b, "%dY", y)
	}
	if mo := months % 12; mo > 0 {
		fmt.Fprintf(&b, "%dM", mo)
	}
	days := int64(secs) / 86400
	rem := secs - float64(days*86400)
	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if rem > 0 || (months == 0 && days == 0) {
		b.WriteByte('T')
		h := int64(rem) / 3600
		rem -= float64(h * 3600)
		mi := int64(rem) / 60
		rem -= float64(mi * 60)
		if h > 0 {
			fmt.Fprintf(&b, "%dH", h)
		}
		if mi > 0 {
			fmt.Fprintf(&b, "%dM", mi)
		}
		if rem > 0 || (h == 0 && mi == 0) {
			b.WriteString(formatSeconds(rem))
			b.WriteByte('S')
		}
	}
	return b.String()
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// YearMonthDuration restricts xsd:duration to its month component.
type YearMonthDuration struct {
	Months int64
}

func ParseYearMonthDuration(text string) (YearMonthDuration, error) {
	// Only the Y and M designators are allowed in this restriction.
	if strings.ContainsAny(text, "DT") {
		return YearMonthDuration{}, parseError("yearMonthDuration", text)
	}
	d, err := ParseDuration(text)
	if err != nil {
		return YearMonthDuration{}, parseError("yearMonthDuration", text)
	}
	return YearMonthDuration{Months: d.Months}, nil
}

func FormatYearMonthDuration(v YearMonthDuration) string {
	return FormatDuration(Duration{Months: v.Months})
}

// DayTimeDuration restricts xsd:duration to its second component.
type DayTimeDuration struct {
	Seconds float64
}

func ParseDayTimeDuration(text string) (DayTimeDuration, error) {
	// No Y designator, and M is only legal after T (minutes, not
	// months) in this restriction.
	datePart, _, _ := strings.Cut(text, "T")
	if strings.ContainsAny(datePart, "YM") {
		return DayTimeDuration{}, parseError("dayTimeDuration", text)
	}
	d, err := ParseDuration(text)
	if err != nil {
		return DayTimeDuration{}, parseError("dayTimeDuration", text)
	}
	return DayTimeDuration{Seconds: d.Seconds}, nil
}

func FormatDayTimeDuration(v DayTimeDuration) string {
	return FormatDuration(Duration{Seconds: v.Seconds})
}

var zoneSuffixRe = regexp.MustCompile(`(Z|[+-]\d{2}:\d{2})$`)

// DateTime holds an xsd:dateTime value with an optional timezone.
type DateTime struct {
	T     time.Time
	Zoned bool
}

func ParseDateTime(text string) (DateTime, error) {
	if zoneSuffixRe.MatchString(text) {
		t, err := time.Parse("2006-01-02T15:04:05Z07:00", text)
		if err != nil {
			return DateTime{}, parseError("dateTime", text)
		}
		return DateTime{T: t, Zoned: true}, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", text)
	if err != nil {
		return DateTime{}, parseError("dateTime", text)
	}
	return DateTime{T: t}, nil
}

func FormatDateTime(v DateTime) string {
	if v.Zoned {
		return v.T.Format("2006-01-02T15:04:05.999999999Z07:00")
	}
	return v.T.Format("2006-01-02T15:04:05.999999999")
}

// DateTimeStamp is an xsd:dateTime whose timezone is required.
type DateTimeStamp struct {
	T time.Time
}

func ParseDateTimeStamp(text string) (DateTimeStamp, error) {
	if !zoneSuffixRe.MatchString(text) {
		return DateTimeStamp{}, parseError("dateTimeStamp", text)
	}
	t, err := time.Parse("2006-01-02T15:04:05Z07:00", text)
	if err != nil {
		return DateTimeStamp{}, parseError("dateTimeStamp", text)
	}
	return DateTimeStamp{T: t}, nil
}

func FormatDateTimeStamp(v DateTimeStamp) string {
	return v.T.Format("2006-01-02T15:04:05.999999999Z07:00")
}

// Time holds an xsd:time value with an optional timezone.
type Time struct {
	T     time.Time
	Zoned bool
}

func ParseTime(text string) (Time, error) {
	if zoneSuffixRe.MatchString(text) {
		t, err := time.Parse("15:04:05Z07:00", text)
		if err != nil {
			return Time{}, parseError("time", text)
		}
		return Time{T: t, Zoned: true}, nil
	}
	t, err := time.Parse("15:04:05", text)
	if err != nil {
		return Time{}, parseError("time", text)
	}
	return Time{T: t}, nil
}

func FormatTime(v Time) string {
	if v.Zoned {
		return v.T.Format("15:04:05.999999999Z07:00")
	}
	return v.T.Format("15:04:05.999999999")
}

// Date holds an xsd:date value with an optional timezone.
type Date struct {
	T     time.Time
	Zoned bool
}

func ParseDate(text string) (Date, error) {
	if zoneSuffixRe.MatchString(text) {
		t, err := time.Parse("2006-01-02Z07:00", text)
		if err != nil {
			return Date{}, parseError("date", text)
		}
		return Date{T: t, Zoned: true}, nil
	}
	t, err := time.Parse("2006-01-02", text)
	if err != nil {
		return Date{}, parseError("date", text)
	}
	return Date{T: t}, nil
}

func FormatDate(v Date) string {
	if v.Zoned {
		return v.T.Format("2006-01-02Z07:00")
	}
	return v.T.Format("2006-01-02")
}

// Gregorian fragments. Each holds the few calendar fields its datatype
// designates.

type GYearMonth struct {
	Year  int32
	Month uint8
}

var gYearMonthRe = regexp.MustCompile(`^(-?\d{4,})-(\d{2})$`)

func ParseGYearMonth(text string) (GYearMonth, error) {
	m := gYearMonthRe.FindStringSubmatch(text)
	if m == nil {
		return GYearMonth{}, parseError("gYearMonth", text)
	}
	year, err := strconv.ParseInt(m[1], 10, 32)
	if err != nil {
		return GYearMonth{}, parseError("gYearMonth", text)
	}
	month, _ := strconv.ParseUint(m[2], 10, 8)
	if month < 1 || month > 12 {
		return GYearMonth{}, parseError("gYearMonth", text)
	}
	return GYearMonth{Year: int32(year), Month: uint8(month)}, nil
}

func FormatGYearMonth(v GYearMonth) string {
	return fmt.Sprintf("%s-%02d", formatYear(v.Year), v.Month)
}

// formatYear pads the year to four digits. The sign must be prepended
// separately: %04d would count it toward the width and emit a form
// like -042 that the lexical space rejects.
func formatYear(y int32) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}

type GYear struct {
	Year int32
}

var gYearRe = regexp.MustCompile(`^-?\d{4,}$`)

func ParseGYear(text string) (GYear, error) {
	if !gYearRe.MatchString(text) {
		return GYear{}, parseError("gYear", text)
	}
	year, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return GYear{}, parseError("gYear", text)
	}
	return GYear{Year: int32(year)}, nil
}

func FormatGYear(v GYear) string { return formatYear(v.Year) }

type GMonthDay struct {
	Month uint8
	Day   uint8
}

var gMonthDayRe = regexp.MustCompile(`^--(\d{2})-(\d{2})$`)

func ParseGMonthDay(text string) (GMonthDay, error) {
	m := gMonthDayRe.FindStringSubmatch(text)
	if m == nil {
		return GMonthDay{}, parseError("gMonthDay", text)
	}
	month, _ := strconv.ParseUint(m[1], 10, 8)
	day, _ := strconv.ParseUint(m[2], 10, 8)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return GMonthDay{}, parseError("gMonthDay", text)
	}
	return GMonthDay{Month: uint8(month), Day: uint8(day)}, nil
}

func FormatGMonthDay(v GMonthDay) string {
	return fmt.Sprintf("--%02d-%02d", v.Month, v.Day)
}

type GDay struct {
	Day uint8
}

var gDayRe = regexp.MustCompile(`^---(\d{2})$`)

func ParseGDay(text string) (GDay, error) {
	m := gDayRe.FindStringSubmatch(text)
	if m == nil {
		return GDay{}, parseError("gDay", text)
	}
	day, _ := strconv.ParseUint(m[1], 10, 8)
	if day < 1 || day > 31 {
		return GDay{}, parseError("gDay", text)
	}
	return GDay{Day: uint8(day)}, nil
}

func FormatGDay(v GDay) string { return fmt.Sprintf("---%02d", v.Day) }

type GMonth struct {
	Month uint8
}

var gMonthRe = regexp.MustCompile(`^--(\d{2})$`)

func ParseGMonth(text string) (GMonth, error) {
	m := gMonthRe.FindStringSubmatch(text)
	if m == nil {
		return GMonth{}, parseError("gMonth", text)
	}
	month, _ := strconv.ParseUint(m[1], 10, 8)
	if month < 1 || month > 12 {
		return GMonth{}, parseError("gMonth", text)
	}
	return GMonth{Month: uint8(month)}, nil
}

func FormatGMonth(v GMonth) string { return fmt.Sprintf("--%02d", v.Month) }

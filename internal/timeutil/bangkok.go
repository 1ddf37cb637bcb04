package timeutil

import (
	"time"
)

// Bangkok is the dormitory's local timezone (UTC+7, no DST)
var Bangkok *time.Location

func init() {
	var err error
	Bangkok, err = time.LoadLocation("Asia/Bangkok")
	if err != nil {
		// Fallback: create fixed zone if Asia/Bangkok not available
		Bangkok = time.FixedZone("ICT", 7*60*60) // UTC+7
	}
}

// Now returns the current time in Bangkok time
func Now() time.Time {
	return time.Now().In(Bangkok)
}

// ToBangkok converts any time to Bangkok time
func ToBangkok(t time.Time) time.Time {
	return t.In(Bangkok)
}

// ParseLocal parses a time string in Bangkok time
func ParseLocal(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, Bangkok)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Common layouts used by the upstream API and the console pages
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02/01/2006"
)

// thaiMonths holds abbreviated Thai month names, indexed by time.Month-1.
var thaiMonths = [12]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// FormatThaiDate renders a date the way the dashboard shows due dates:
// DD/MM/YYYY with the year in the Buddhist era, e.g. "05/01/2568".
func FormatThaiDate(t time.Time) string {
	local := t.In(Bangkok)
	return local.Format("02/01/") + formatBuddhistYear(local)
}

// FormatThaiDateTime renders a timestamp with the abbreviated Thai month,
// e.g. "5 ม.ค. 2568 14:30".
func FormatThaiDateTime(t time.Time) string {
	local := t.In(Bangkok)
	return local.Format("2 ") + thaiMonths[local.Month()-1] + " " +
		formatBuddhistYear(local) + local.Format(" 15:04")
}

func formatBuddhistYear(t time.Time) string {
	// Buddhist era = Gregorian year + 543
	year := t.Year() + 543
	return itoa4(year)
}

func itoa4(n int) string {
	buf := [4]byte{}
	for i := 3; i >= 0; i-- {
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[:])
}

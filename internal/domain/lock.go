package domain

// DayLayout is the calendar-day format used in lock keys.
// Keys in this layout sort chronologically as plain strings.
const DayLayout = "2006-01-02"

// LockKey identifies one (quote, device, calendar day) triple.
// A device may perform one submit-or-skip per key.
type LockKey struct {
	QuoteID  string
	DeviceID string
	Day      string
}

// NewLockKey builds the key for a device acting on a quote on day.
func NewLockKey(quoteID, deviceID, day string) LockKey {
	return LockKey{QuoteID: quoteID, DeviceID: deviceID, Day: day}
}

// Before reports whether the key's day is strictly earlier than day.
func (k LockKey) Before(day string) bool {
	return k.Day < day
}

package utils

import "time"

const (
	ClockLayout  = "15:04"
	DateLayout   = "2006-01-02"
	PickupLayout = "2006-01-02 15:04"
)

// ParseClock validates a 24-hour HH:MM value and returns it zero-padded.
func ParseClock(field, value string) (string, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return "", InvalidFormat(field, "HH:MM")
	}
	return t.Format(ClockLayout), nil
}

// ParseDate validates a YYYY-MM-DD value.
func ParseDate(field, value string) (string, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return "", InvalidFormat(field, "YYYY-MM-DD")
	}
	return t.Format(DateLayout), nil
}

func ParsePickupTime(field, value string) (time.Time, error) {
	t, err := time.Parse(PickupLayout, value)
	if err != nil {
		return time.Time{}, InvalidFormat(field, "YYYY-MM-DD HH:MM")
	}
	return t, nil
}

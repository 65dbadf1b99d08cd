package utils

import "time"

// AgeFromDOB returns whole years between dob and now, calendar-aware:
// the year difference is reduced by one until the birthday has passed.
func AgeFromDOB(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

package goal

import (
	"fmt"
	"time"
)

// CadenceLabel derives the display text for a goal's repeat pattern.
// A nil cadence reads "None". Codes outside 0-14 return ErrUnknownCadence.
func CadenceLabel(cadence, frequency *int) (string, error) {
	if cadence == nil {
		return "None", nil
	}

	freq := 1
	if frequency != nil && *frequency > 0 {
		freq = *frequency
	}

	switch code := *cadence; {
	case code == CadenceOnce:
		return "Once", nil
	case code == CadenceMonthly:
		switch freq {
		case 1:
			return "Monthly", nil
		case 3:
			return "Quarterly", nil
		default:
			return fmt.Sprintf("%d Months", freq), nil
		}
	case code == CadenceWeekly:
		if freq == 1 {
			return "Weekly", nil
		}
		return fmt.Sprintf("%d Weeks", freq), nil
	case code >= CadenceEveryTwoMonths && code <= CadenceEveryElevenMonths:
		return fmt.Sprintf("%d Months", code-1), nil
	case code == CadenceYearly:
		if freq == 1 {
			return "Yearly", nil
		}
		return fmt.Sprintf("%d Years", freq), nil
	case code == CadenceEveryTwoYears:
		return "2 Years", nil
	default:
		return "", ErrUnknownCadence
	}
}

// DueDateLabel derives the display text for a goal's due date. When the
// cadence is weekly, day is a day of the week (0 = Sunday); otherwise it is
// a day of the month, with nil meaning the last day. A target month always
// wins over a day since the service never sets both.
func DueDateLabel(cadence, day *int, targetMonth *time.Time) string {
	if targetMonth != nil {
		return targetMonth.Format("Jan-02")
	}

	if cadence == nil || *cadence == CadenceOnce {
		return "None"
	}

	if *cadence == CadenceWeekly {
		if day == nil || *day < 0 || *day > 6 {
			return "None"
		}
		return time.Weekday(*day).String()
	}

	if day == nil {
		return "Last day of month"
	}
	return fmt.Sprintf("%d%s", *day, suffixForDay(*day))
}

func suffixForDay(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

package itinerary

import "fmt"

// DayLabels returns one display label per day. Primary days are numbered
// from 1; alternative days that follow a primary day reuse its number and
// get a letter suffix starting at B (the primary day is the implicit A).
// An alternative at index 0 is labelled against day 0 ("Day 0-B").
func DayLabels(days []DayRecord) []string {
	labels := make([]string, 0, len(days))
	dayNumber := 0
	altCount := 0

	for _, d := range days {
		if d.IsAlternative {
			altCount++
			labels = append(labels, fmt.Sprintf("Day %d-%c", dayNumber, rune(65+altCount)))
			continue
		}
		dayNumber++
		altCount = 0
		labels = append(labels, fmt.Sprintf("Day %d", dayNumber))
	}
	return labels
}

// DayStats counts primary and alternative days.
type DayStats struct {
	Total        int `json:"total"`
	Primary      int `json:"primary"`
	Alternatives int `json:"alternatives"`
}

func CountDays(days []DayRecord) DayStats {
	s := DayStats{Total: len(days)}
	for _, d := range days {
		if d.IsAlternative {
			s.Alternatives++
		} else {
			s.Primary++
		}
	}
	return s
}

package entity

import (
	"fmt"
	"time"
)

// Malaysia has no DST, a fixed zone avoids depending on tzdata.
var myt = time.FixedZone("MYT", 8*60*60)

type Event struct {
	Title    string    `json:"title"`
	Artists  string    `json:"artists"`
	Date     time.Time `json:"date"`
	Venue    string    `json:"venue"`
	Currency string    `json:"currency"`
}

func ConcertEvent() Event {
	return Event{
		Title:    "Anugerah Malaysia Live 2024",
		Artists:  "Siti Nurhaliza, Yuna, and Faizal Tahir",
		Date:     time.Date(2024, time.December, 25, 0, 0, 0, 0, myt),
		Venue:    "Bukit Jalil National Stadium",
		Currency: "RM",
	}
}

// DateLabel renders the date as "25th December 2024".
func (e Event) DateLabel() string {
	day := e.Date.Day()
	return fmt.Sprintf("%d%s %s %d", day, ordinalSuffix(day), e.Date.Month(), e.Date.Year())
}

// DaysLeft counts whole days until the event, never below zero.
func (e Event) DaysLeft(now time.Time) int {
	remaining := e.Date.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / (24 * time.Hour))
}

func (e Event) Started(now time.Time) bool {
	return !now.Before(e.Date)
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
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

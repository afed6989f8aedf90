package timeutil

import "time"

// Day is one column of the focus grid.
type Day struct {
	Date     time.Time    `json:"date"`
	Weekday  time.Weekday `json:"weekday"`
	IsToday  bool         `json:"isToday"`
	IsFocal  bool         `json:"isFocal"`
	IsPast   bool         `json:"isPast"`
	IsFuture bool         `json:"isFuture"`
}

// Key is the focus-log key of the day.
func (d Day) Key() string {
	return FormatDate(d.Date)
}

// Window is a run of consecutive days.
type Window []Day

// Focal returns the index of the focal day, or -1.
func (w Window) Focal() int {
	for i, d := range w {
		if d.IsFocal {
			return i
		}
	}
	return -1
}

// Today returns the index of today, or -1 when today is outside the window.
func (w Window) Today() int {
	for i, d := range w {
		if d.IsToday {
			return i
		}
	}
	return -1
}

// Generate lays out past+future+1 consecutive days with focal at index past.
// It never reads the clock: today is supplied by the caller once per render.
// Negative counts are treated as zero.
func Generate(focal time.Time, past, future int, today time.Time) Window {
	if past < 0 {
		past = 0
	}
	if future < 0 {
		future = 0
	}
	focal = Civil(focal)
	today = Civil(today)
	start := focal.AddDate(0, 0, -past)

	w := make(Window, 0, past+future+1)
	for i := 0; i < past+future+1; i++ {
		date := start.AddDate(0, 0, i)
		w = append(w, Day{
			Date:     date,
			Weekday:  date.Weekday(),
			IsToday:  SameDay(date, today),
			IsFocal:  SameDay(date, focal),
			IsPast:   date.Before(today),
			IsFuture: date.After(today),
		})
	}
	return w
}

package utils

import (
	"context"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

const (
	windowDays   = 28
	windowCount  = 12
	windowLayout = "Jan 2, 2006"
)

var nowFunc = time.Now

// MonthCount is the number of records created in one 28-day window,
// labelled with the window's end date.
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type MonthData struct {
	Last12Months []MonthCount `json:"last12Months"`
}

// Window is a half-open [Start, End) interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// Last12Windows returns twelve consecutive 28-day windows, oldest first,
// the last one ending at the start of tomorrow.
func Last12Windows(at time.Time) []Window {
	anchor := now.With(at).BeginningOfDay().AddDate(0, 0, 1)

	windows := make([]Window, 0, windowCount)
	for i := windowCount - 1; i >= 0; i-- {
		end := anchor.AddDate(0, 0, -i*windowDays)
		windows = append(windows, Window{Start: end.AddDate(0, 0, -windowDays), End: end})
	}
	return windows
}

// GenerateLast12MonthsData counts the rows of model created in each window.
func GenerateLast12MonthsData(ctx context.Context, db *gorm.DB, model any) (MonthData, error) {
	windows := Last12Windows(nowFunc())

	data := MonthData{Last12Months: make([]MonthCount, 0, len(windows))}
	for _, w := range windows {
		var count int64
		err := db.WithContext(ctx).Model(model).
			Where("created_at >= ? AND created_at < ?", w.Start, w.End).
			Count(&count).Error
		if err != nil {
			return MonthData{}, err
		}
		data.Last12Months = append(data.Last12Months, MonthCount{
			Month: w.End.Format(windowLayout),
			Count: count,
		})
	}
	return data, nil
}

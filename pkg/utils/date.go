package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DefaultDateRange aplica o período padrão (últimos 30 dias até hoje)
// quando uma das datas não foi informada.
func DefaultDateRange(from, to *time.Time) (time.Time, time.Time) {
	end := time.Now()
	if to != nil && !to.IsZero() {
		end = *to
	}

	start := end.AddDate(0, 0, -30)
	if from != nil && !from.IsZero() {
		start = *from
	}

	return start, end
}

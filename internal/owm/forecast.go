package owm

import "strings"

// maxForecastDays caps the reduction at five distinct calendar dates.
const maxForecastDays = 5

// sample is one 3-hour forecast interval.
type sample struct {
	dtTxt string // "2006-01-02 15:04:05"
	temp  float64
}

// reduceDaily folds 3-hour samples into per-date maximum temperatures. Dates
// keep the order of their first appearance and the output never exceeds
// maxForecastDays entries; samples beyond the fifth distinct date are ignored.
func reduceDaily(samples []sample) []DailyMax {
	var out []DailyMax
	index := make(map[string]int)

	for _, s := range samples {
		date := sampleDate(s.dtTxt)
		if date == "" {
			continue
		}
		if i, ok := index[date]; ok {
			if s.temp > out[i].MaxTemp {
				out[i].MaxTemp = s.temp
			}
			continue
		}
		if len(out) >= maxForecastDays {
			continue
		}
		index[date] = len(out)
		out = append(out, DailyMax{Date: date, MaxTemp: s.temp})
	}
	return out
}

// sampleDate extracts the calendar date from a "dt_txt" timestamp.
func sampleDate(dtTxt string) string {
	date, _, found := strings.Cut(dtTxt, " ")
	if !found || len(date) != 10 {
		return ""
	}
	return date
}

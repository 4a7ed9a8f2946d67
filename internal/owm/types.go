package owm

import (
	"errors"
	"strings"
)

// Reading is one successful current-weather fetch. Immutable once built.
type Reading struct {
	Temperature          float64
	FeelsLike            float64
	Humidity             int
	WindSpeed            float64
	ConditionMain        string
	ConditionDescription string
	IconID               string
}

// DailyMax is the maximum forecast temperature observed for one calendar date.
type DailyMax struct {
	Date    string // YYYY-MM-DD
	MaxTemp float64
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	Label string
}

// CityError reports an API-level failure, typically an unknown city. The
// message is the server-supplied one when present.
type CityError struct {
	Message string
}

func (e *CityError) Error() string { return "api error: " + e.Message }

// NetworkError reports a transport failure or timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// DefaultCityMessage is used when the server reports a failure without a message.
const DefaultCityMessage = "Unable to fetch weather data."

// Classify maps a fetch error to a dialog title and a status line.
func Classify(err error) (title, status string) {
	var cityErr *CityError
	var netErr *NetworkError
	switch {
	case errors.As(err, &cityErr):
		return "City Error", cityErr.Message
	case errors.As(err, &netErr):
		return "Network Error", "Network error, please check your connection and try again."
	default:
		return "Error", "Unexpected error occurred."
	}
}

// statusCode tolerates the API returning "cod" as either a number or a string.
type statusCode string

func (c *statusCode) UnmarshalJSON(b []byte) error {
	*c = statusCode(strings.Trim(string(b), `"`))
	return nil
}

func (c statusCode) OK() bool { return string(c) == "200" }

// currentResponse models /data/2.5/weather.
type currentResponse struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// forecastResponse models /data/2.5/forecast.
type forecastResponse struct {
	Cod  statusCode `json:"cod"`
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	} `json:"list"`
}

// geoResult models one /geo/1.0/direct entry.
type geoResult struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// label formats a geocoding result for display.
func (g geoResult) label() string {
	if strings.TrimSpace(g.State) != "" {
		return g.Name + ", " + g.State + ", " + g.Country
	}
	return g.Name + ", " + g.Country
}

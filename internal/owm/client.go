// Package owm talks to the OpenWeatherMap HTTP API: current weather,
// condition icons, the 5-day forecast, and geocoding suggestions.
package owm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png" // OWM icons are PNG
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mvanholt/breeze/internal/config"
	"github.com/mvanholt/breeze/internal/units"
)

// Fetcher is the surface the UI consumes. Implemented by *Client.
type Fetcher interface {
	CurrentWeather(ctx context.Context, city string, system units.System, apiKey string) (Reading, error)
	Icon(ctx context.Context, iconID string) (image.Image, error)
	Forecast(ctx context.Context, city string, system units.System, apiKey string) ([]DailyMax, error)
	Suggestions(ctx context.Context, prefix, apiKey string) []Suggestion
}

var _ Fetcher = (*Client)(nil)

// Client issues OpenWeatherMap requests. All calls share one rate limiter;
// weather, icon and forecast use the longer fetch timeout, geocoding the
// shorter one.
type Client struct {
	apiBase   *url.URL
	geoBase   *url.URL
	iconBase  string
	fetch     *http.Client
	geo       *http.Client
	limiter   *rate.Limiter
	userAgent string
	log       *zap.SugaredLogger
}

const (
	defaultUserAgent = "breeze/0.1"
	suggestionLimit  = 5
)

// NewClient builds a Client from the loaded config.
func NewClient(cfg config.Config, log *zap.SugaredLogger) (*Client, error) {
	apiBase, err := url.Parse(cfg.APIBase)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", cfg.APIBase, err)
	}
	geoBase, err := url.Parse(cfg.GeoBase)
	if err != nil {
		return nil, fmt.Errorf("parse geo_base %q: %w", cfg.GeoBase, err)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		apiBase:   apiBase,
		geoBase:   geoBase,
		iconBase:  cfg.IconBase,
		fetch:     &http.Client{Timeout: cfg.FetchTimeout},
		geo:       &http.Client{Timeout: cfg.GeoTimeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		userAgent: defaultUserAgent,
		log:       log,
	}, nil
}

// CurrentWeather fetches current conditions for a city. A non-200 transport
// status or a payload-embedded failure code yields *CityError carrying the
// server message; transport failures yield *NetworkError.
func (c *Client) CurrentWeather(ctx context.Context, city string, system units.System, apiKey string) (Reading, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", apiKey)
	values.Set("units", system.APIParam())

	body, status, err := c.get(ctx, c.fetch, c.apiBase, "/data/2.5/weather", values)
	if err != nil {
		return Reading{}, err
	}

	var payload currentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		if status != http.StatusOK {
			return Reading{}, &CityError{Message: DefaultCityMessage}
		}
		return Reading{}, fmt.Errorf("decode weather response: %w", err)
	}
	if status != http.StatusOK || !payload.Cod.OK() {
		msg := strings.TrimSpace(payload.Message)
		if msg == "" {
			msg = DefaultCityMessage
		}
		return Reading{}, &CityError{Message: msg}
	}

	reading := Reading{
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		reading.ConditionMain = payload.Weather[0].Main
		reading.ConditionDescription = titleCase(payload.Weather[0].Description)
		reading.IconID = payload.Weather[0].Icon
	}
	return reading, nil
}

// Icon fetches and decodes the condition icon. Callers treat any error as
// non-fatal; the weather display simply goes without an icon.
func (c *Client) Icon(ctx context.Context, iconID string) (image.Image, error) {
	iconURL := strings.ReplaceAll(c.iconBase, "{icon}", iconID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create icon request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &NetworkError{Err: err}
	}
	resp, err := c.fetch.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("icon %s returned status %d", iconID, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", iconID, err)
	}
	return img, nil
}

// Forecast fetches the 5-day/3-hour forecast and reduces it to at most five
// per-date maximum temperatures, in order of first appearance.
func (c *Client) Forecast(ctx context.Context, city string, system units.System, apiKey string) ([]DailyMax, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", apiKey)
	values.Set("units", system.APIParam())

	body, status, err := c.get(ctx, c.fetch, c.apiBase, "/data/2.5/forecast", values)
	if err != nil {
		return nil, err
	}

	var payload forecastResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &CityError{Message: "Forecast not available."}
	}
	if status != http.StatusOK || !payload.Cod.OK() {
		return nil, &CityError{Message: "Forecast not available."}
	}

	samples := make([]sample, 0, len(payload.List))
	for _, item := range payload.List {
		samples = append(samples, sample{dtTxt: item.DtTxt, temp: item.Main.Temp})
	}
	return reduceDaily(samples), nil
}

// Suggestions queries the geocoding endpoint for city-name completions.
// Failures of any kind degrade to an empty list, never an error.
func (c *Client) Suggestions(ctx context.Context, prefix, apiKey string) []Suggestion {
	values := url.Values{}
	values.Set("q", prefix)
	values.Set("limit", fmt.Sprintf("%d", suggestionLimit))
	values.Set("appid", apiKey)

	body, status, err := c.get(ctx, c.geo, c.geoBase, "/geo/1.0/direct", values)
	if err != nil || status != http.StatusOK {
		c.log.Debugw("suggestion fetch failed", "prefix", prefix, "error", err, "status", status)
		return nil
	}

	var results []geoResult
	if err := json.Unmarshal(body, &results); err != nil {
		c.log.Debugw("suggestion decode failed", "prefix", prefix, "error", err)
		return nil
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, r := range results {
		suggestions = append(suggestions, Suggestion{Label: r.label()})
	}
	return suggestions
}

func (c *Client) get(ctx context.Context, client *http.Client, base *url.URL, path string, values url.Values) ([]byte, int, error) {
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	reqURL := base.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, &NetworkError{Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Err: err}
	}
	return body, resp.StatusCode, nil
}

// titleCase capitalizes the first letter of each word, matching how the
// description is displayed ("scattered clouds" → "Scattered Clouds").
func titleCase(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(prev) {
			prev = r
			return unicode.ToUpper(r)
		}
		prev = r
		return r
	}, s)
}

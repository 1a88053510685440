package weather

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Reading is the part of a current-weather response the formatter needs.
type Reading struct {
	TemperatureC  int
	FeelsLikeC    *int
	ConditionCode string
	Location      string
	Description   string
}

// statusCode holds the provider's "cod" field, which is a number on success
// (200) and a string on errors ("404").
type statusCode string

func (c *statusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = statusCode(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = statusCode(n.String())
	return nil
}

func (c statusCode) ok() bool {
	n, err := strconv.Atoi(string(c))
	return err == nil && n == 200
}

// WeatherResponse mirrors the provider's JSON body.
type WeatherResponse struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Name    string     `json:"name"`
	Main    *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// ParseReading decodes a provider body. A non-success cod yields a
// *ProviderError; a malformed success body, or one without main.temp or a
// weather entry, yields a *DecodeError. An empty icon code is not an error.
func ParseReading(body []byte) (*Reading, error) {
	var resp WeatherResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Reason: "invalid JSON", Err: err}
	}

	if !resp.Cod.ok() {
		if resp.Cod == "" && resp.Message == "" {
			return nil, &DecodeError{Reason: "missing cod"}
		}
		return nil, &ProviderError{Code: string(resp.Cod), Message: resp.Message}
	}

	if resp.Main == nil || resp.Main.Temp == nil {
		return nil, &DecodeError{Reason: "missing main.temp"}
	}
	if len(resp.Weather) == 0 {
		return nil, &DecodeError{Reason: "missing weather[0]"}
	}

	current := resp.Weather[0]
	r := &Reading{
		TemperatureC:  roundCelsius(*resp.Main.Temp),
		ConditionCode: strings.TrimSpace(current.Icon),
		Location:      strings.TrimSpace(resp.Name),
		Description:   strings.TrimSpace(current.Description),
	}
	if r.Description == "" {
		r.Description = strings.TrimSpace(current.Main)
	}
	if resp.Main.FeelsLike != nil {
		feels := roundCelsius(*resp.Main.FeelsLike)
		r.FeelsLikeC = &feels
	}
	return r, nil
}

// roundCelsius rounds half away from zero.
func roundCelsius(v float64) int {
	return int(math.Round(v))
}

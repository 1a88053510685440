package weather

import "strings"

// glyphs maps OpenWeatherMap icon codes to Nerd Font glyphs.
var glyphs = map[string]string{
	"01d": "\U000f0599", // clear sky
	"01n": "\U000f0594",
	"02d": "\U000f0595", // few clouds
	"02n": "\U000f0f31",
	"03d": "\U000f0590", // scattered clouds
	"03n": "\U000f0590",
	"04d": "\U000f0590", // broken clouds
	"04n": "\U000f0590",
	"09d": "\U000f0596", // shower rain
	"09n": "\U000f0596",
	"10d": "\U000f0f33", // rain
	"10n": "\ue325",
	"11d": "\U000f0f32", // thunderstorm
	"11n": "\ue322",
	"13d": "\ue35f", // snow
	"13n": "\ue327",
	"50d": "\ue303", // mist
	"50n": "\ue346",
}

// Glyph returns the display glyph for an icon code, or "" for codes it does
// not know.
func Glyph(code string) string {
	return glyphs[strings.TrimSpace(code)]
}

// knownCodes returns the icon codes that have a glyph.
func knownCodes() []string {
	codes := make([]string, 0, len(glyphs))
	for code := range glyphs {
		codes = append(codes, code)
	}
	return codes
}

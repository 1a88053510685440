package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// OutputStyle selects how a Reading is rendered.
type OutputStyle string

const (
	// StylePlain prints only the text line.
	StylePlain OutputStyle = "plain"
	// StyleJSON prints {"text","tooltip"} with an empty tooltip.
	StyleJSON OutputStyle = "json"
	// StyleWaybar puts location, feels-like and description on separate
	// tooltip lines.
	StyleWaybar OutputStyle = "waybar"
	// StyleWaybarInline puts description, feels-like and location on one
	// tooltip line.
	StyleWaybarInline OutputStyle = "waybar-inline"
)

// Styles lists every supported style.
var Styles = []OutputStyle{StylePlain, StyleJSON, StyleWaybar, StyleWaybarInline}

// ParseStyle returns the OutputStyle named s.
func ParseStyle(s string) (OutputStyle, error) {
	style := OutputStyle(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Styles {
		if style == known {
			return style, nil
		}
	}
	return "", fmt.Errorf("unknown output style %q", s)
}

func (s OutputStyle) isJSON() bool {
	switch s {
	case StyleJSON, StyleWaybar, StyleWaybarInline:
		return true
	}
	return false
}

// SentinelText replaces the temperature when the provider cannot be reached
// and the caller asked for output instead of a failure.
const SentinelText = "ERR"

// Output is a rendered reading.
type Output struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
}

// Sentinel is the Output shown in place of a reading when offline.
func Sentinel() Output {
	return Output{Text: SentinelText}
}

// Format builds the Output for r in the given style.
func Format(r Reading, style OutputStyle) Output {
	out := Output{Text: formatText(Glyph(r.ConditionCode), r.TemperatureC)}

	switch style {
	case StyleWaybar:
		out.Tooltip = strings.Join(tooltipLines(r), "\n")
	case StyleWaybarInline:
		out.Tooltip = capitalize(strings.Join(tooltipInline(r), ", "))
	}
	return out
}

func formatText(glyph string, temp int) string {
	if glyph == "" {
		return fmt.Sprintf("%d°C", temp)
	}
	return fmt.Sprintf("%s %d°C", glyph, temp)
}

func tooltipLines(r Reading) []string {
	var lines []string
	if r.Location != "" {
		lines = append(lines, r.Location)
	}
	if r.FeelsLikeC != nil {
		lines = append(lines, fmt.Sprintf("Feels like %d°C", *r.FeelsLikeC))
	}
	if r.Description != "" {
		lines = append(lines, capitalize(r.Description))
	}
	return lines
}

func tooltipInline(r Reading) []string {
	var parts []string
	if r.Description != "" {
		parts = append(parts, r.Description)
	}
	if r.FeelsLikeC != nil {
		parts = append(parts, fmt.Sprintf("feels like %d°C", *r.FeelsLikeC))
	}
	if r.Location != "" {
		parts = append(parts, "in "+r.Location)
	}
	return parts
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}

// MarshalLine returns o as a single-line JSON object without a trailing
// newline. HTML characters are not escaped.
func (o Output) MarshalLine() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(o); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Render returns the line to print for style.
func (o Output) Render(style OutputStyle) (string, error) {
	if !style.isJSON() {
		return o.Text, nil
	}
	return o.MarshalLine()
}

package weather

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestGlyph_KnownCodes(t *testing.T) {
	codes := knownCodes()
	assert.Len(t, codes, 18)
	for _, code := range codes {
		assert.NotEmpty(t, Glyph(code), code)
	}
	assert.Equal(t, "\U000f0599", Glyph("01d"))
	assert.Equal(t, "\U000f0599", Glyph(" 01d "))
}

func TestGlyph_UnknownCodes(t *testing.T) {
	for _, code := range []string{"", "99x", "01", "09", "10n 11n", "01D", "☃"} {
		assert.Equal(t, "", Glyph(code), code)
	}
}

func TestFormat_Text(t *testing.T) {
	out := Format(Reading{TemperatureC: 20, ConditionCode: "01d"}, StylePlain)

	assert.Equal(t, Glyph("01d")+" 20°C", out.Text)
	assert.Empty(t, out.Tooltip)
}

func TestFormat_UnknownCodeHasNoGlyph(t *testing.T) {
	out := Format(Reading{TemperatureC: -4, ConditionCode: "zz"}, StyleWaybar)
	assert.Equal(t, "-4°C", out.Text)
}

func TestFormat_JSONStyleHasEmptyTooltip(t *testing.T) {
	r := Reading{TemperatureC: 5, ConditionCode: "04n", Location: "Oslo", FeelsLikeC: intPtr(2)}
	out := Format(r, StyleJSON)
	assert.Empty(t, out.Tooltip)
}

func TestFormat_WaybarTooltip(t *testing.T) {
	r := Reading{
		TemperatureC:  20,
		FeelsLikeC:    intPtr(19),
		ConditionCode: "01d",
		Location:      "Berlin",
		Description:   "clear sky",
	}

	out := Format(r, StyleWaybar)
	assert.Equal(t, "Berlin\nFeels like 19°C\nClear sky", out.Tooltip)

	out = Format(r, StyleWaybarInline)
	assert.Equal(t, "Clear sky, feels like 19°C, in Berlin", out.Tooltip)
}

func TestFormat_TooltipOmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name   string
		r      Reading
		style  OutputStyle
		expect string
	}{
		{"nothing", Reading{ConditionCode: "01d"}, StyleWaybar, ""},
		{"location only", Reading{Location: "Rome"}, StyleWaybar, "Rome"},
		{"feels only", Reading{FeelsLikeC: intPtr(0)}, StyleWaybar, "Feels like 0°C"},
		{"inline no description", Reading{FeelsLikeC: intPtr(3), Location: "Rome"}, StyleWaybarInline, "Feels like 3°C, in Rome"},
		{"inline location only", Reading{Location: "Rome"}, StyleWaybarInline, "In Rome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Format(tt.r, tt.style)
			assert.Equal(t, tt.expect, out.Tooltip)
			assert.NotContains(t, out.Tooltip, "<nil>")
		})
	}
}

func TestOutput_RenderRoundTrip(t *testing.T) {
	in := Output{Text: Glyph("10n") + " 7°C", Tooltip: "Zürich & <Bern>\nFeels like 5°C"}

	line, err := in.Render(StyleWaybar)
	require.NoError(t, err)
	assert.NotContains(t, line, "\n")
	assert.Contains(t, line, "<Bern>")

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &fields))
	assert.Len(t, fields, 2)

	var out Output
	require.NoError(t, json.Unmarshal([]byte(line), &out))
	assert.Equal(t, in, out)
}

func TestOutput_RenderPlainAndEmptyTooltip(t *testing.T) {
	o := Output{Text: "20°C"}

	line, err := o.Render(StylePlain)
	require.NoError(t, err)
	assert.Equal(t, "20°C", line)

	line, err = o.Render(StyleJSON)
	require.NoError(t, err)
	assert.Equal(t, `{"text":"20°C","tooltip":""}`, line)
}

func TestSentinel(t *testing.T) {
	line, err := Sentinel().Render(StyleWaybar)
	require.NoError(t, err)
	assert.Equal(t, `{"text":"ERR","tooltip":""}`, line)
}

func TestParseStyle(t *testing.T) {
	for _, s := range Styles {
		got, err := ParseStyle(strings.ToUpper(string(s)))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStyle("xml")
	assert.Error(t, err)
}

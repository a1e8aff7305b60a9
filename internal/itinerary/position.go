package itinerary

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Position is an image focal point in percent of the container, 0-100 on
// both axes.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var DefaultPosition = Position{X: 50, Y: 50}

// Rect is the on-screen box of the preview the pointer moved over.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// positionKeywords covers CSS background-position keywords in either word
// order plus the single-word forms.
var positionKeywords = map[string]Position{
	"center":        {50, 50},
	"center center": {50, 50},
	"top":           {50, 0},
	"bottom":        {50, 100},
	"left":          {0, 50},
	"right":         {100, 50},
	"center top":    {50, 0},
	"top center":    {50, 0},
	"center bottom": {50, 100},
	"bottom center": {50, 100},
	"left center":   {0, 50},
	"center left":   {0, 50},
	"right center":  {100, 50},
	"center right":  {100, 50},
	"left top":      {0, 0},
	"top left":      {0, 0},
	"right top":     {100, 0},
	"top right":     {100, 0},
	"left bottom":   {0, 100},
	"bottom left":   {0, 100},
	"right bottom":  {100, 100},
	"bottom right":  {100, 100},
}

var percentPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)%\s+(-?\d+(?:\.\d+)?)%$`)

// ParsePosition accepts a keyword, an "X% Y%" string, a JSON offset
// descriptor ({"x":..,"y":..}) or a legacy object-top/object-bottom class.
// Anything else is the default center.
func ParsePosition(value string) Position {
	v := strings.ToLower(strings.Join(strings.Fields(value), " "))
	if v == "" {
		return DefaultPosition
	}

	if p, ok := positionKeywords[v]; ok {
		return p
	}

	if m := percentPattern.FindStringSubmatch(v); m != nil {
		x, errX := strconv.ParseFloat(m[1], 64)
		y, errY := strconv.ParseFloat(m[2], 64)
		if errX == nil && errY == nil {
			return Position{X: clampPercent(x), Y: clampPercent(y)}
		}
	}

	if strings.HasPrefix(v, "{") {
		var raw struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		}
		if err := json.Unmarshal([]byte(value), &raw); err == nil {
			p := DefaultPosition
			if raw.X != nil {
				p.X = clampPercent(*raw.X)
			}
			if raw.Y != nil {
				p.Y = clampPercent(*raw.Y)
			}
			return p
		}
	}

	if strings.Contains(v, "object-top") {
		return Position{X: 50, Y: 0}
	}
	if strings.Contains(v, "object-bottom") {
		return Position{X: 50, Y: 100}
	}

	return DefaultPosition
}

// FormatPosition serializes to the "X% Y%" form with rounded integers.
// Keyword inputs come out as percentages once they have been edited.
func FormatPosition(p Position) string {
	return fmt.Sprintf("%d%% %d%%", int(math.Round(clampPercent(p.X))), int(math.Round(clampPercent(p.Y))))
}

// NormalizePosition is FormatPosition(ParsePosition(value)).
func NormalizePosition(value string) string {
	return FormatPosition(ParsePosition(value))
}

// PointerToPercent maps a pointer location to a position inside rect,
// clamped to the container.
func PointerToPercent(pointerX, pointerY float64, rect Rect) Position {
	p := DefaultPosition
	if rect.Width > 0 {
		p.X = clampPercent((pointerX - rect.Left) * 100 / rect.Width)
	}
	if rect.Height > 0 {
		p.Y = clampPercent((pointerY - rect.Top) * 100 / rect.Height)
	}
	return p
}

// Presets are the 3x3 grid the editor offers as one-click choices.
var Presets = []Position{
	{0, 0}, {50, 0}, {100, 0},
	{0, 50}, {50, 50}, {100, 50},
	{0, 100}, {50, 100}, {100, 100},
}

// SnapToPreset returns the nearest preset when it lies within threshold
// percentage points (euclidean), otherwise p unchanged.
func SnapToPreset(p Position, threshold float64) Position {
	best := p
	bestDist := math.Inf(1)
	for _, preset := range Presets {
		d := math.Hypot(preset.X-p.X, preset.Y-p.Y)
		if d < bestDist {
			best, bestDist = preset, d
		}
	}
	if bestDist <= threshold {
		return best
	}
	return p
}

// ObjectPosition is the CSS object-position value for a stored position.
func ObjectPosition(value string) string {
	if strings.TrimSpace(value) == "" {
		return DefaultImagePosition
	}
	return NormalizePosition(value)
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 50
	}
	return math.Max(0, math.Min(100, v))
}

package view

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/2beens/ironlog/internal/ironlog/api"
)

const (
	colorGreen  = "#c8f135"
	colorTeal   = "#3af5c8"
	colorOrange = "#ff6b4a"
	colorYellow = "#f5c83a"
	colorBlue   = "#60a5fa"
	colorPurple = "#a78bfa"
	colorGrid   = "rgba(255,255,255,0.05)"
)

var activityIcons = map[api.ActivityType]string{
	api.ActivityRunning:  "🏃",
	api.ActivityWalking:  "🚶",
	api.ActivityCycling:  "🚴",
	api.ActivityRowing:   "🚣",
	api.ActivitySwimming: "🏊",
	api.ActivityOther:    "⚡",
}

var activityColors = map[api.ActivityType]string{
	api.ActivityRunning:  colorGreen,
	api.ActivityWalking:  colorTeal,
	api.ActivityCycling:  colorYellow,
	api.ActivityRowing:   colorOrange,
	api.ActivitySwimming: colorBlue,
	api.ActivityOther:    colorPurple,
}

func ActivityIcon(at api.ActivityType) string {
	if icon, ok := activityIcons[at]; ok {
		return icon
	}
	return activityIcons[api.ActivityOther]
}

func ActivityColor(at api.ActivityType) string {
	if color, ok := activityColors[at]; ok {
		return color
	}
	return colorGreen
}

// ActivityTitle upper-cases the first letter: "running" -> "Running".
func ActivityTitle(at api.ActivityType) string {
	s := at.String()
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// hexAlpha turns "#c8f135" into "rgba(200,241,53,0.1)".
func hexAlpha(hex string, alpha float64) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return hex
	}
	rgb := make([]int64, 3)
	for i := range rgb {
		v, err := strconv.ParseInt(hex[i*2:i*2+2], 16, 64)
		if err != nil {
			return "#" + hex
		}
		rgb[i] = v
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", rgb[0], rgb[1], rgb[2], strconv.FormatFloat(alpha, 'f', -1, 64))
}

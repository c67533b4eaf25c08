package view

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/2beens/ironlog/internal/ironlog/format"
)

const NoDataText = "Log more data to unlock this chart ✦"

// paceTickStep is the pace axis step in decimal minutes (15 seconds).
const paceTickStep = 0.25

// ChartConfig is serialized as-is into a Chart.js constructor call.
type ChartConfig struct {
	Type    string         `json:"type"`
	Data    ChartData      `json:"data"`
	Options map[string]any `json:"options"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label                string     `json:"label"`
	Data                 []*float64 `json:"data"`
	BackgroundColor      string     `json:"backgroundColor,omitempty"`
	BorderColor          string     `json:"borderColor,omitempty"`
	BorderWidth          float64    `json:"borderWidth,omitempty"`
	BorderRadius         int        `json:"borderRadius,omitempty"`
	BorderSkipped        *bool      `json:"borderSkipped,omitempty"`
	BorderDash           []int      `json:"borderDash,omitempty"`
	PointRadius          int        `json:"pointRadius,omitempty"`
	PointBackgroundColor string     `json:"pointBackgroundColor,omitempty"`
	Fill                 bool       `json:"fill,omitempty"`
	Tension              float64    `json:"tension,omitempty"`
	YAxisID              string     `json:"yAxisID,omitempty"`
}

// Chart is one dashboard chart. Tooltips and TickLabels carry strings
// Chart.js would otherwise compute in callbacks: Tooltips[i][j] is the
// tooltip of point j in dataset i ("" keeps the default), TickLabels maps
// a y2 tick value to its label.
type Chart struct {
	ID         string
	Title      string
	NoData     bool
	Config     *ChartConfig
	Tooltips   [][]string
	TickLabels map[string]string
}

type chartExtras struct {
	Tooltips   [][]string        `json:"tooltips,omitempty"`
	TickLabels map[string]string `json:"tickLabels,omitempty"`
}

func noDataChart(id, title string) Chart {
	return Chart{ID: id, Title: title, NoData: true}
}

func (c Chart) ConfigJSON() (string, error) {
	if c.Config == nil {
		return "", nil
	}
	configJson, err := json.Marshal(c.Config)
	if err != nil {
		return "", fmt.Errorf("marshal chart %s config: %w", c.ID, err)
	}
	return string(configJson), nil
}

func (c Chart) ExtrasJSON() (string, error) {
	if len(c.Tooltips) == 0 && len(c.TickLabels) == 0 {
		return "", nil
	}
	extrasJson, err := json.Marshal(chartExtras{Tooltips: c.Tooltips, TickLabels: c.TickLabels})
	if err != nil {
		return "", fmt.Errorf("marshal chart %s extras: %w", c.ID, err)
	}
	return string(extrasJson), nil
}

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func tooltipStyle() map[string]any {
	return map[string]any{
		"backgroundColor": "#1e2026",
		"borderColor":     "#32323f",
		"borderWidth":     1,
		"titleColor":      "#ebebf0",
		"bodyColor":       "#a0a0b0",
		"padding":         10,
	}
}

func axis(title string) map[string]any {
	a := map[string]any{
		"grid":  map[string]any{"color": colorGrid},
		"ticks": map[string]any{"font": map[string]any{"size": 10}},
	}
	if title != "" {
		a["title"] = map[string]any{"display": true, "text": title, "font": map[string]any{"size": 10}}
	}
	return a
}

func baseOptions(yLabel string) map[string]any {
	return map[string]any{
		"responsive":          true,
		"maintainAspectRatio": false,
		"plugins": map[string]any{
			"legend":  map[string]any{"display": false},
			"tooltip": tooltipStyle(),
		},
		"scales": map[string]any{
			"x": axis(""),
			"y": axis(yLabel),
		},
	}
}

func dualAxisOptions(yLabel string, y2 map[string]any) map[string]any {
	return map[string]any{
		"responsive":          true,
		"maintainAspectRatio": false,
		"plugins": map[string]any{
			"legend": map[string]any{
				"display":  true,
				"position": "top",
				"labels":   map[string]any{"font": map[string]any{"size": 11}, "padding": 10},
			},
			"tooltip": tooltipStyle(),
		},
		"scales": map[string]any{
			"x":  axis(""),
			"y":  axis(yLabel),
			"y2": y2,
		},
	}
}

func secondaryAxis(title string) map[string]any {
	return map[string]any{
		"position": "right",
		"grid":     map[string]any{"display": false},
		"ticks":    map[string]any{"font": map[string]any{"size": 10}},
		"title":    map[string]any{"display": true, "text": title, "font": map[string]any{"size": 10}},
	}
}

// PaceTicks returns the pace axis bounds and a label per tick, stepping
// 15 seconds over the range of the given paces. ok is false without paces.
func PaceTicks(paces []*float64) (minPace, maxPace float64, labels map[string]string, ok bool) {
	minPace, maxPace = math.Inf(1), math.Inf(-1)
	for _, p := range paces {
		if p == nil {
			continue
		}
		minPace = math.Min(minPace, *p)
		maxPace = math.Max(maxPace, *p)
	}
	if math.IsInf(minPace, 1) {
		return 0, 0, nil, false
	}

	minPace = math.Floor(minPace/paceTickStep) * paceTickStep
	maxPace = math.Ceil(maxPace/paceTickStep) * paceTickStep
	if maxPace == minPace {
		maxPace += paceTickStep
	}

	labels = make(map[string]string)
	steps := int(math.Round((maxPace - minPace) / paceTickStep))
	for i := 0; i <= steps; i++ {
		v := minPace + float64(i)*paceTickStep
		labels[format.Number(v)] = format.PaceString(v)
	}
	return minPace, maxPace, labels, true
}

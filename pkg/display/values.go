package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matst80/diecast-finder/pkg/types"
)

const (
	Fallback     = "—"
	DefaultScale = "1:43"
	EmptyMessage = "No models match the selected filters."
)

var categoryColors = map[types.Category]string{
	types.CategoryRally:    "#D97706",
	types.CategoryRacing:   "#DC2626",
	types.CategorySupercar: "#2563EB",
	types.CategoryPremium:  "#7C3AED",
}

// Value formats v for display, nil and empty values become the fallback.
func Value(v any) string {
	return ValueOr(v, Fallback)
}

func ValueOr(v any, fallback string) string {
	switch t := v.(type) {
	case nil:
		return fallback
	case string:
		if t == "" {
			return fallback
		}
		return t
	case *int:
		if t == nil {
			return fallback
		}
		return strconv.Itoa(*t)
	case *string:
		if t == nil || *t == "" {
			return fallback
		}
		return *t
	case types.Category:
		if t == "" {
			return fallback
		}
		return string(t)
	case int:
		return strconv.Itoa(t)
	}
	return fmt.Sprint(v)
}

func Scale(scale string) string {
	return ValueOr(scale, DefaultScale)
}

// CategoryColor returns the label color of a category, empty for unknown ones.
func CategoryColor(category types.Category) string {
	return categoryColors[category]
}

// Swatch describes the color circle of a model. A single color is used as
// is, several colors split a conic gradient in equal slices.
func Swatch(hex []string) string {
	switch len(hex) {
	case 0:
		return ""
	case 1:
		return hex[0]
	}
	parts := make([]string, len(hex))
	n := float64(len(hex))
	for i, color := range hex {
		start := float64(i) / n * 100
		end := float64(i+1) / n * 100
		parts[i] = fmt.Sprintf("%s %s%% %s%%", color, formatPercent(start), formatPercent(end))
	}
	return "conic-gradient(" + strings.Join(parts, ", ") + ")"
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DetailColors moves the last color first, the rest keep their order.
func DetailColors(hex []string) []string {
	if len(hex) <= 1 {
		return append([]string{}, hex...)
	}
	ret := make([]string, 0, len(hex))
	ret = append(ret, hex[len(hex)-1])
	return append(ret, hex[:len(hex)-1]...)
}

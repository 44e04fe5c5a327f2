package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/tui/tuistyles"
)

// ParameterSlider is an integer slider with optional named presets
type ParameterSlider struct {
	Label     string
	Value     int
	Min       int
	Max       int
	Step      int
	Unit      string
	Width     int
	IsFocused bool
	Presets   []domain.LifeExpectancyOption
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(label string, value, min, max, step int) *ParameterSlider {
	p := &ParameterSlider{
		Label: label,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 40,
	}
	p.SetValue(value)
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// WithPresets attaches named values that CyclePreset steps through
func (p *ParameterSlider) WithPresets(presets []domain.LifeExpectancyOption) *ParameterSlider {
	p.Presets = presets
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment increases the value by step; reports whether it changed
func (p *ParameterSlider) Increment() bool {
	if p.Value+p.Step > p.Max {
		return false
	}
	p.Value += p.Step
	return true
}

// Decrement decreases the value by step; reports whether it changed
func (p *ParameterSlider) Decrement() bool {
	if p.Value-p.Step < p.Min {
		return false
	}
	p.Value -= p.Step
	return true
}

// SetValue sets the value directly, clamping to min/max
func (p *ParameterSlider) SetValue(value int) {
	p.Value = min(max(value, p.Min), p.Max)
}

// CyclePreset jumps to the first preset above the current value,
// wrapping to the lowest one.
func (p *ParameterSlider) CyclePreset() bool {
	if len(p.Presets) == 0 {
		return false
	}
	next := p.Presets[0].Years
	for _, opt := range p.Presets {
		if opt.Years > p.Value {
			next = opt.Years
			break
		}
	}
	if next == p.Value {
		return false
	}
	p.SetValue(next)
	return true
}

// Description returns the preset label matching the value, if any
func (p *ParameterSlider) Description() string {
	for _, opt := range p.Presets {
		if opt.Years == p.Value {
			return opt.Description
		}
	}
	return ""
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return float64(p.Value-p.Min) / float64(p.Max-p.Min)
}

// Render returns the styled parameter slider
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("\n")

	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	value := fmt.Sprintf("%d%s", p.Value, p.Unit)
	if desc := p.Description(); desc != "" {
		value += " (" + desc + ")"
	}
	content.WriteString(valueStyle.Render(value))
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%d%s  ─  %d%s", p.Min, p.Unit, p.Max, p.Unit)))

	if p.IsFocused {
		content.WriteString("\n")
		hint := "← → to adjust"
		if len(p.Presets) > 0 {
			hint += " • p for presets"
		}
		content.WriteString(tuistyles.InfoStyle.Render(hint))
	}

	return content.String()
}

// renderSliderBar creates the visual slider bar
func (p *ParameterSlider) renderSliderBar() string {
	filled := int(float64(p.Width)*p.Percentage() + 0.5)
	filled = min(max(filled, 0), p.Width)
	empty := max(p.Width-filled, 0)

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty > 1 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")

	return bar.String()
}

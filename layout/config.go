package layout

import (
	"errors"
	"fmt"

	"folio/common"
)

// ErrInvalidConfig is returned (wrapped) for configurations which would make
// pagination undefined.
var ErrInvalidConfig = errors.New("invalid layout configuration")

// Config holds page geometry and font metrics for a single pagination run.
// All values are in pixels unless noted otherwise.
type Config struct {
	PageWidth    float64 `yaml:"page_width" validate:"gt=0"`
	PageHeight   float64 `yaml:"page_height" validate:"gt=0"`
	MarginTop    float64 `yaml:"margin_top" validate:"gte=0"`
	MarginBottom float64 `yaml:"margin_bottom" validate:"gte=0"`
	MarginLeft   float64 `yaml:"margin_left" validate:"gte=0"`
	ContentWidth float64 `yaml:"content_width" validate:"gt=0"`

	// Body metrics are taken from Style.Typography (font size and line
	// height multiplier).
	CharsPerLine     int     `yaml:"chars_per_line" validate:"gt=0"`
	ParagraphPadding float64 `yaml:"paragraph_padding" validate:"gte=0"`
	ParagraphGap     float64 `yaml:"paragraph_gap" validate:"gte=0"`

	// Heights for heading levels 1..N, deeper levels use the last one.
	HeadingHeights  []float64 `yaml:"heading_heights" validate:"min=1,dive,gt=0"`
	HeadingGap      float64   `yaml:"heading_gap" validate:"gte=0"`
	Level2Threshold float64   `yaml:"level2_threshold" validate:"gte=0"`

	ImageHeight float64 `yaml:"image_height" validate:"gt=0"`
	ImageGap    float64 `yaml:"image_gap" validate:"gte=0"`

	MinSplitHeight     float64              `yaml:"min_split_height" validate:"gte=0"`
	SplitFallbackRatio float64              `yaml:"split_fallback_ratio" validate:"gte=0,lte=1"`
	SplitBoundary      common.SplitBoundary `yaml:"split_boundary"`

	// CheckpointEvery is number of processed units between cooperative
	// checkpoints, 0 disables unit based checkpoints.
	CheckpointEvery int `yaml:"checkpoint_every" validate:"gte=0"`

	MasterPage string      `yaml:"master_page" validate:"required"`
	Style      StyleConfig `yaml:"style"`
}

// DefaultConfig returns A4 sized configuration matching embedded program
// defaults.
func DefaultConfig() Config {
	return Config{
		PageWidth:          595,
		PageHeight:         842,
		MarginTop:          50,
		MarginBottom:       50,
		MarginLeft:         50,
		ContentWidth:       495,
		CharsPerLine:       75,
		ParagraphPadding:   20,
		ParagraphGap:       10,
		HeadingHeights:     []float64{60, 40, 32, 28, 24, 24},
		HeadingGap:         10,
		Level2Threshold:    200,
		ImageHeight:        280,
		ImageGap:           20,
		MinSplitHeight:     40,
		SplitFallbackRatio: 0.5,
		SplitBoundary:      common.SplitBoundaryWord,
		CheckpointEvery:    50,
		MasterPage:         "master-a",
		Style:              defaultStyleConfig(),
	}
}

// LineHeight returns body line height in pixels.
func (c *Config) LineHeight() float64 {
	return c.Style.Typography.FontSize * c.Style.Typography.LineHeight
}

// PageBottom returns lowest vertical position content may reach.
func (c *Config) PageBottom() float64 {
	return c.PageHeight - c.MarginBottom
}

// UsableHeight returns page height minus top and bottom margins.
func (c *Config) UsableHeight() float64 {
	return c.PageBottom() - c.MarginTop
}

// Validate checks preconditions pagination relies upon. Configuration loaded
// by the program is checked by struct tags as well, this is for library
// callers building Config by hand.
func (c *Config) Validate() error {
	// negated comparisons reject NaN as well
	switch {
	case c.CharsPerLine <= 0:
		return fmt.Errorf("%w: chars per line must be positive, got %d", ErrInvalidConfig, c.CharsPerLine)
	case !(c.LineHeight() > 0):
		return fmt.Errorf("%w: line height must be positive, got %g", ErrInvalidConfig, c.LineHeight())
	case !(c.PageHeight > 0) || !(c.UsableHeight() > 0):
		return fmt.Errorf("%w: no usable height on page (height %g, margins %g/%g)", ErrInvalidConfig, c.PageHeight, c.MarginTop, c.MarginBottom)
	case !(c.ContentWidth > 0):
		return fmt.Errorf("%w: content width must be positive, got %g", ErrInvalidConfig, c.ContentWidth)
	case len(c.HeadingHeights) == 0:
		return fmt.Errorf("%w: heading heights are not specified", ErrInvalidConfig)
	case !(c.ImageHeight > 0):
		return fmt.Errorf("%w: image height must be positive, got %g", ErrInvalidConfig, c.ImageHeight)
	case !(c.SplitFallbackRatio >= 0 && c.SplitFallbackRatio <= 1):
		return fmt.Errorf("%w: split fallback ratio must be within [0, 1], got %g", ErrInvalidConfig, c.SplitFallbackRatio)
	case c.CheckpointEvery < 0:
		return fmt.Errorf("%w: checkpoint period cannot be negative, got %d", ErrInvalidConfig, c.CheckpointEvery)
	case !c.SplitBoundary.IsValid():
		return fmt.Errorf("%w: unknown split boundary %s", ErrInvalidConfig, c.SplitBoundary)
	}
	for name, v := range map[string]float64{
		"margin top":        c.MarginTop,
		"margin bottom":     c.MarginBottom,
		"margin left":       c.MarginLeft,
		"paragraph padding": c.ParagraphPadding,
		"paragraph gap":     c.ParagraphGap,
		"heading gap":       c.HeadingGap,
		"level 2 threshold": c.Level2Threshold,
		"image gap":         c.ImageGap,
		"min split height":  c.MinSplitHeight,
	} {
		if !(v >= 0) {
			return fmt.Errorf("%w: %s cannot be negative, got %g", ErrInvalidConfig, name, v)
		}
	}
	for i, h := range c.HeadingHeights {
		if !(h > 0) {
			return fmt.Errorf("%w: heading height for level %d must be positive, got %g", ErrInvalidConfig, i+1, h)
		}
	}
	return nil
}

func (c *Config) headingHeight(level int) float64 {
	return c.HeadingHeights[min(max(level, 1), len(c.HeadingHeights))-1]
}

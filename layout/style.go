package layout

// Typography is the text part of element style snapshot.
type Typography struct {
	FontFamily        string  `json:"fontFamily" yaml:"font_family"`
	FontSize          float64 `json:"fontSize" yaml:"font_size"`
	FontSizeUnit      string  `json:"fontSizeUnit" yaml:"font_size_unit"`
	FontWeight        int     `json:"fontWeight" yaml:"font_weight"`
	FontStyle         string  `json:"fontStyle" yaml:"font_style"`
	LineHeight        float64 `json:"lineHeight" yaml:"line_height"` // multiplier
	LetterSpacing     float64 `json:"letterSpacing" yaml:"letter_spacing"`
	LetterSpacingUnit string  `json:"letterSpacingUnit" yaml:"letter_spacing_unit"`
	WordSpacing       float64 `json:"wordSpacing" yaml:"word_spacing"`
	WordSpacingUnit   string  `json:"wordSpacingUnit" yaml:"word_spacing_unit"`
	FontKerning       string  `json:"fontKerning" yaml:"font_kerning"`
	TextAlign         string  `json:"textAlign" yaml:"text_align"`
	Hyphens           string  `json:"hyphens" yaml:"hyphens"`
	Color             string  `json:"color" yaml:"color"`
	TextTransform     string  `json:"textTransform" yaml:"text_transform"`
	TextDecoration    string  `json:"textDecoration" yaml:"text_decoration"`
	Widows            int     `json:"widows" yaml:"widows"`
	Orphans           int     `json:"orphans" yaml:"orphans"`
}

// Box is the box model part of element style snapshot.
type Box struct {
	MarginTop       float64 `json:"marginTop" yaml:"margin_top"`
	MarginRight     float64 `json:"marginRight" yaml:"margin_right"`
	MarginBottom    float64 `json:"marginBottom" yaml:"margin_bottom"`
	MarginLeft      float64 `json:"marginLeft" yaml:"margin_left"`
	PaddingTop      float64 `json:"paddingTop" yaml:"padding_top"`
	PaddingRight    float64 `json:"paddingRight" yaml:"padding_right"`
	PaddingBottom   float64 `json:"paddingBottom" yaml:"padding_bottom"`
	PaddingLeft     float64 `json:"paddingLeft" yaml:"padding_left"`
	BorderWidth     float64 `json:"borderWidth" yaml:"border_width"`
	BorderColor     string  `json:"borderColor" yaml:"border_color"`
	BackgroundColor string  `json:"backgroundColor" yaml:"background_color"`
	Opacity         float64 `json:"opacity" yaml:"opacity"`
	Filter          string  `json:"filter" yaml:"filter"`
	ObjectFit       string  `json:"objectFit,omitempty" yaml:"object_fit,omitempty"`
}

// Style is a flat snapshot of typography and box defaults merged with unit
// specific overrides.
type Style struct {
	Typography `yaml:",inline"`
	Box        `yaml:",inline"`
}

// StyleConfig keeps defaults and per kind overrides used by element factory.
type StyleConfig struct {
	Typography Typography `yaml:"typography"`
	Box        Box        `yaml:"box"`

	HeadingFontSizes  []float64 `yaml:"heading_font_sizes" validate:"dive,gt=0"`
	HeadingFontWeight int       `yaml:"heading_font_weight" validate:"gte=0"`
	HeadingColor      string    `yaml:"heading_color"`
	BodyTextAlign     string    `yaml:"body_text_align" validate:"omitempty,oneof=left center right justify"`
	ImageObjectFit    string    `yaml:"image_object_fit" validate:"omitempty,oneof=fill contain cover none scale-down"`
}

func defaultTypography() Typography {
	return Typography{
		FontFamily:        "Merriweather",
		FontSize:          12,
		FontSizeUnit:      "pt",
		FontWeight:        400,
		FontStyle:         "normal",
		LineHeight:        1.5,
		LetterSpacingUnit: "em",
		WordSpacingUnit:   "em",
		FontKerning:       "normal",
		TextAlign:         "left",
		Hyphens:           "auto",
		Color:             "#1e293b",
		TextTransform:     "none",
		TextDecoration:    "none",
		Widows:            2,
		Orphans:           2,
	}
}

func defaultBox() Box {
	return Box{
		BorderColor:     "#000000",
		BackgroundColor: "transparent",
		Opacity:         1,
		Filter:          "none",
		ObjectFit:       "cover",
	}
}

func defaultStyleConfig() StyleConfig {
	return StyleConfig{
		Typography:        defaultTypography(),
		Box:               defaultBox(),
		HeadingFontSizes:  []float64{24, 18, 16, 14, 12, 12},
		HeadingFontWeight: 700,
		HeadingColor:      "#334155",
		BodyTextAlign:     "justify",
		ImageObjectFit:    "cover",
	}
}

func (sc *StyleConfig) base() Style {
	return Style{Typography: sc.Typography, Box: sc.Box}
}

func (sc *StyleConfig) heading(level int) Style {
	s := sc.base()
	if n := len(sc.HeadingFontSizes); n > 0 {
		s.FontSize = sc.HeadingFontSizes[min(max(level, 1), n)-1]
	}
	if sc.HeadingFontWeight > 0 {
		s.FontWeight = sc.HeadingFontWeight
	}
	if len(sc.HeadingColor) > 0 {
		s.Color = sc.HeadingColor
	}
	return s
}

func (sc *StyleConfig) body() Style {
	s := sc.base()
	if len(sc.BodyTextAlign) > 0 {
		s.TextAlign = sc.BodyTextAlign
	}
	return s
}

func (sc *StyleConfig) image() Style {
	s := sc.base()
	if len(sc.ImageObjectFit) > 0 {
		s.ObjectFit = sc.ImageObjectFit
	}
	return s
}

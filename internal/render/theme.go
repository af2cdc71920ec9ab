package render

// Theme holds the typography and styling of rendered CFG documents.
type Theme struct {
	FontName    string  `yaml:"font_name"`
	FontSize    float64 `yaml:"font_size"`
	HeaderColor string  `yaml:"header_color"` // block header row background
	MergeStyle  string  `yaml:"merge_style"`  // line style of structured merge edges
}

// Mono is the default theme: monospace text, gray block headers and dashed
// merge edges.
//
// 13.5pt sidesteps a Graphviz bug where the default 14pt is measured as
// 13.5 but drawn as 14, overflowing SVG table cells and diverging from PNG.
var Mono = Theme{
	FontName:    "monospace",
	FontSize:    13.5,
	HeaderColor: "gray",
	MergeStyle:  "dashed",
}

// withDefaults fills unset fields from Mono.
func (t Theme) withDefaults() Theme {
	if t.FontName == "" {
		t.FontName = Mono.FontName
	}
	if t.FontSize <= 0 {
		t.FontSize = Mono.FontSize
	}
	if t.HeaderColor == "" {
		t.HeaderColor = Mono.HeaderColor
	}
	if t.MergeStyle == "" {
		t.MergeStyle = Mono.MergeStyle
	}
	return t
}

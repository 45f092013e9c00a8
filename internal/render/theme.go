package render

// Theme holds the colors for one background style.
type Theme struct {
	Background string
	Grid       string
	Marker     string
	Text       string
}

var themes = map[string]Theme{
	"light": {
		Background: "#f8f9fa",
		Grid:       "#e9ecef",
		Marker:     "#d62728",
		Text:       "#212529",
	},
	"dark": {
		Background: "#1b1b1b",
		Grid:       "#2b2b2b",
		Marker:     "#ffbf00",
		Text:       "#f8f9fa",
	},
	"minimal": {
		Background: "#ffffff",
		Grid:       "#f2f2f2",
		Marker:     "#2ca02c",
		Text:       "#222222",
	},
}

// themeFor returns the named theme, falling back to light.
func themeFor(style string) Theme {
	if t, ok := themes[style]; ok {
		return t
	}
	return themes["light"]
}

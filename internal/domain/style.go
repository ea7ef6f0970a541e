package domain

// StyleAnalysis summarizes a user's fashion profile as percentage breakdowns.
type StyleAnalysis struct {
	DominantStyles []StyleShare    `json:"dominantStyles"`
	ColorPalette   []ColorShare    `json:"colorPalette"`
	Patterns       []PatternShare  `json:"patterns"`
	Occasions      []OccasionShare `json:"occasions"`
}

type StyleShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

type ColorShare struct {
	Name       string `json:"name"`
	Hex        string `json:"hex"`
	Percentage int    `json:"percentage"`
}

type PatternShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

type OccasionShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Items      int    `json:"items"`
}

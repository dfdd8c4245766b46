package domain

// Icon references a glyph in a named icon library.
type Icon struct {
	Name        string `json:"name"`
	IconLibrary string `json:"icon_library"`
}

package entities

// CharacterSummary is one character of a player's expedition as reported by the roster service
type CharacterSummary struct {
	Name      string  `json:"name"`
	ClassName string  `json:"class_name"`
	ItemLevel float64 `json:"item_level"`
}

package lostark

// Sibling is one character of the /characters/{name}/siblings response
type Sibling struct {
	ServerName         string `json:"ServerName"`
	CharacterName      string `json:"CharacterName"`
	CharacterLevel     int32  `json:"CharacterLevel"`
	CharacterClassName string `json:"CharacterClassName"`

	// Item levels are comma grouped decimal strings such as "1,620.83"
	ItemAvgLevel string `json:"ItemAvgLevel"`
	ItemMaxLevel string `json:"ItemMaxLevel"`
}

// APIError is the error body the developer API returns on failure
type APIError struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
}

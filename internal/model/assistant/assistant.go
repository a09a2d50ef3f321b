package assistant

import "strings"

// Language is one of the supported assistant languages.
type Language string

const (
	English Language = "English"
	Spanish Language = "Spanish"
	German  Language = "German"
	Dutch   Language = "Dutch"
)

// Languages lists the supported languages in their canonical order.
func Languages() []Language {
	return []Language{English, Spanish, German, Dutch}
}

// EnvKey is the environment variable holding the assistant id for l,
// e.g. CHLOE_ENGLISH_ASSISTANT_ID.
func (l Language) EnvKey() string {
	return "CHLOE_" + strings.ToUpper(string(l)) + "_ASSISTANT_ID"
}

// IDs maps every supported language to its assistant identifier.
type IDs struct {
	English string `json:"English"`
	Spanish string `json:"Spanish"`
	German  string `json:"German"`
	Dutch   string `json:"Dutch"`
}

// Set stores id under language l. Unknown languages are ignored.
func (ids *IDs) Set(l Language, id string) {
	switch l {
	case English:
		ids.English = id
	case Spanish:
		ids.Spanish = id
	case German:
		ids.German = id
	case Dutch:
		ids.Dutch = id
	}
}

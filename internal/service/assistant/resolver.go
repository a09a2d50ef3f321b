package assistant

import (
	"os"
	"strings"

	"github.com/chloe-app/backend/internal/model/assistant"
)

// LookupFunc reads one environment value. It matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// MissingError names every language whose assistant id is not configured.
type MissingError struct {
	Languages []assistant.Language
}

func (e *MissingError) Error() string {
	return "Missing assistant IDs for: " + joinLanguages(e.Languages)
}

// EnvKeys returns the environment variables that need to be set.
func (e *MissingError) EnvKeys() []string {
	keys := make([]string, 0, len(e.Languages))
	for _, lang := range e.Languages {
		keys = append(keys, lang.EnvKey())
	}
	return keys
}

// Resolver reads assistant identifiers from the environment on every call.
type Resolver struct {
	lookup LookupFunc
}

// NewResolver returns a Resolver backed by lookup, or os.LookupEnv when nil.
func NewResolver(lookup LookupFunc) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Resolver{lookup: lookup}
}

// Resolve checks all supported languages before answering. It returns a
// *MissingError listing each absent or blank value; there is no partial result.
func (r *Resolver) Resolve() (assistant.IDs, error) {
	var (
		ids     assistant.IDs
		missing []assistant.Language
	)
	for _, lang := range assistant.Languages() {
		value, ok := r.lookup(lang.EnvKey())
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			missing = append(missing, lang)
			continue
		}
		ids.Set(lang, value)
	}

	if len(missing) > 0 {
		return assistant.IDs{}, &MissingError{Languages: missing}
	}
	return ids, nil
}

func joinLanguages(langs []assistant.Language) string {
	names := make([]string, len(langs))
	for i, lang := range langs {
		names[i] = string(lang)
	}
	return strings.Join(names, ", ")
}

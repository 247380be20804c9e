package i18n

import "log"

// PreferenceStore persists the visitor's language choice across sessions.
// Over HTTP it is cookie-backed; tests use an in-memory store.
type PreferenceStore interface {
	Load() (string, bool)
	Save(code string)
}

// Resolver projects translation keys and entity fields into one active
// language. Instances are cheap and passed explicitly; there is no
// package-global language state.
type Resolver struct {
	lang  Lang
	store PreferenceStore
}

// NewResolver builds a resolver from the stored preference, falling back to
// DefaultLang when the preference is absent or not a supported code.
func NewResolver(store PreferenceStore) *Resolver {
	r := &Resolver{lang: DefaultLang, store: store}
	if store != nil {
		if code, ok := store.Load(); ok && IsSupported(code) {
			r.lang = Lang(code)
		}
	}
	return r
}

func (r *Resolver) Lang() Lang {
	return r.lang
}

// SetLanguage switches the active language and persists the choice.
// Unsupported codes are ignored.
func (r *Resolver) SetLanguage(code string) bool {
	if !IsSupported(code) {
		return false
	}
	r.lang = Lang(code)
	if r.store != nil {
		r.store.Save(code)
	}
	return true
}

// T resolves a static UI-copy key. A missing key logs a warning and returns
// the key literal so rendering never breaks on a gap in the table.
func (r *Resolver) T(key string) string {
	entry, ok := translations[key]
	if !ok {
		log.Printf("⚠️ missing translation for key: %s", key)
		return key
	}
	return entry.In(r.lang)
}

// Text projects an entity field into the active language.
func (r *Resolver) Text(t Text) string {
	return t.In(r.lang)
}

// Strings returns the whole table projected into the active language,
// keyed by translation key.
func (r *Resolver) Strings() map[string]string {
	out := make(map[string]string, len(translations))
	for key, entry := range translations {
		out[key] = entry.In(r.lang)
	}
	return out
}

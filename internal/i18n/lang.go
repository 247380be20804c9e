package i18n

// Lang is one of the four archive languages.
type Lang string

const (
	HU Lang = "hu"
	RO Lang = "ro"
	EN Lang = "en"
	DE Lang = "de"
)

// DefaultLang is used when no valid preference is stored.
const DefaultLang = HU

// Langs lists the supported languages in display order.
var Langs = []Lang{HU, RO, EN, DE}

func IsSupported(code string) bool {
	switch Lang(code) {
	case HU, RO, EN, DE:
		return true
	}
	return false
}

// Text carries one string per supported language. Entity fields use it so
// callers project into the active language without per-language branching.
type Text struct {
	HU string `json:"hu"`
	RO string `json:"ro"`
	EN string `json:"en"`
	DE string `json:"de"`
}

// textGetters maps each language to its field accessor. Built once; keeps
// projection free of string-keyed property lookups.
var textGetters = map[Lang]func(Text) string{
	HU: func(t Text) string { return t.HU },
	RO: func(t Text) string { return t.RO },
	EN: func(t Text) string { return t.EN },
	DE: func(t Text) string { return t.DE },
}

// In returns the string for lang, or "" for an unknown language.
func (t Text) In(lang Lang) string {
	get, ok := textGetters[lang]
	if !ok {
		return ""
	}
	return get(t)
}

// Each calls fn for every supported language with that language's value.
func (t Text) Each(fn func(lang Lang, value string)) {
	for _, lang := range Langs {
		fn(lang, t.In(lang))
	}
}

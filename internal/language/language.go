// Package language holds the fixed catalogs of native and target languages.
package language

import "strings"

// Language is an entry in a catalog. Values are immutable.
type Language struct {
	Name string

	// Flag is the emoji shown in the terminal; FlagURL is the equivalent
	// flag image for richer front-ends.
	Flag    string
	FlagURL string

	// Tag is the BCP 47 tag used for speech synthesis and recognition.
	Tag string
}

// ISO639 returns the two-letter language code of the tag ("fr" for fr-FR).
func (l Language) ISO639() string {
	code, _, _ := strings.Cut(l.Tag, "-")
	return code
}

func (l Language) String() string {
	if l.Flag == "" {
		return l.Name
	}
	return l.Flag + " " + l.Name
}

var natives = []Language{
	{Name: "English", Flag: "🇺🇸", FlagURL: "https://flagcdn.com/w80/us.png", Tag: "en-US"},
	{Name: "Portuguese", Flag: "🇵🇹", FlagURL: "https://flagcdn.com/w80/pt.png", Tag: "pt-PT"},
}

var targets = []Language{
	{Name: "English", Flag: "🇬🇧", FlagURL: "https://flagcdn.com/w80/gb.png", Tag: "en-GB"},
	{Name: "French", Flag: "🇫🇷", FlagURL: "https://flagcdn.com/w80/fr.png", Tag: "fr-FR"},
	{Name: "German", Flag: "🇩🇪", FlagURL: "https://flagcdn.com/w80/de.png", Tag: "de-DE"},
	{Name: "Italian", Flag: "🇮🇹", FlagURL: "https://flagcdn.com/w80/it.png", Tag: "it-IT"},
	{Name: "Japanese", Flag: "🇯🇵", FlagURL: "https://flagcdn.com/w80/jp.png", Tag: "ja-JP"},
	{Name: "Spanish", Flag: "🇪🇸", FlagURL: "https://flagcdn.com/w80/es.png", Tag: "es-ES"},
}

// Natives returns the languages a learner can declare as native, in
// display order.
func Natives() []Language {
	return append([]Language(nil), natives...)
}

// Targets returns the languages that can be learned, in display order.
func Targets() []Language {
	return append([]Language(nil), targets...)
}

// LookupNative finds a native language by case-insensitive name.
func LookupNative(name string) (Language, bool) {
	return lookup(natives, name)
}

// LookupTarget finds a target language by case-insensitive name.
func LookupTarget(name string) (Language, bool) {
	return lookup(targets, name)
}

func lookup(list []Language, name string) (Language, bool) {
	for _, l := range list {
		if strings.EqualFold(l.Name, strings.TrimSpace(name)) {
			return l, true
		}
	}
	return Language{}, false
}

// Names returns the names of the given languages.
func Names(list []Language) []string {
	out := make([]string, len(list))
	for i, l := range list {
		out[i] = l.Name
	}
	return out
}

package domain

import "slices"

// DefaultCategories is the built-in category vocabulary of the site.
var DefaultCategories = []string{
	"pernambuco",
	"politica",
	"economia",
	"esportes",
	"cultura",
	"educacao",
	"mobilidade",
	"mundo",
}

var categoryDisplayNames = map[string]string{
	"pernambuco": "Pernambuco",
	"politica":   "Política",
	"economia":   "Economia",
	"esportes":   "Esportes",
	"cultura":    "Cultura",
	"educacao":   "Educação",
	"mobilidade": "Mobilidade",
	"mundo":      "Mundo",
}

// Vocabulary is the set of category tags a reader may select.
type Vocabulary struct {
	tags StringSet
}

// NewVocabulary returns the default categories plus any extensions.
func NewVocabulary(extra ...string) Vocabulary {
	return Vocabulary{tags: NewStringSet(append(slices.Clone(DefaultCategories), extra...)...)}
}

func (v Vocabulary) Contains(tag string) bool {
	return v.tags.Contains(tag)
}

func (v Vocabulary) Tags() []string {
	return v.tags.Items()
}

// Unknown returns the members of set that are not in the vocabulary.
func (v Vocabulary) Unknown(set StringSet) []string {
	var unknown []string
	for _, tag := range set {
		if !v.Contains(tag) {
			unknown = append(unknown, tag)
		}
	}
	return unknown
}

// CategoryDisplayName returns the label shown for a tag, or the tag itself.
func CategoryDisplayName(tag string) string {
	if name, ok := categoryDisplayNames[tag]; ok {
		return name
	}
	return tag
}

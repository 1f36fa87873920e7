// services/translate_service.go
package services

import (
	"fmt"
	"strings"
)

// Per-language menu dictionaries. en is identity; unknown target codes
// fall back to an empty dictionary, so every token passes through.
var menuDictionaries = map[string]map[string]string{
	"en": {},
	"sq": {
		"salad": "sallatë", "cheese": "djathë", "grilled": "i pjekur",
		"chicken": "pulë", "fish": "peshk", "beef": "mish viçi", "bread": "bukë",
	},
	"it": {
		"salad": "insalata", "cheese": "formaggio", "grilled": "alla griglia",
		"chicken": "pollo", "fish": "pesce", "beef": "manzo", "bread": "pane",
	},
	"de": {
		"salad": "salat", "cheese": "käse", "grilled": "gegrillt",
		"chicken": "hähnchen", "fish": "fisch", "beef": "rindfleisch", "bread": "brot",
	},
	"fr": {
		"salad": "salade", "cheese": "fromage", "grilled": "grillé",
		"chicken": "poulet", "fish": "poisson", "beef": "boeuf", "bread": "pain",
	},
}

const tokenPunctuation = ",.!?;:"

// TranslateService substitutes menu text token by token against the
// fixed dictionaries. Stateless; no external service involved.
type TranslateService struct{}

func NewTranslateService() *TranslateService {
	return &TranslateService{}
}

// TranslateText replaces each whitespace-delimited token whose
// lowercased, punctuation-trimmed form is in the dictionary. A hit
// replaces the whole token, so the trimmed punctuation and the original
// casing are not restored. Tokens are re-joined with single spaces.
func (s *TranslateService) TranslateText(text, targetLang string) string {
	if text == "" {
		return text
	}
	dict := menuDictionaries[strings.ToLower(targetLang)]

	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		key := strings.Trim(strings.ToLower(token), tokenPunctuation)
		if trans, ok := dict[key]; ok && trans != "" {
			out = append(out, trans)
		} else {
			out = append(out, token)
		}
	}
	return strings.Join(out, " ")
}

// TranslateItems copies each item, translating name and description and
// stamping the (lowercased) target language onto the copy.
func (s *TranslateService) TranslateItems(items []map[string]any, targetLang string) ([]map[string]any, string) {
	lang := strings.ToLower(targetLang)

	translated := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out := make(map[string]any, len(item)+1)
		for k, v := range item {
			out[k] = v
		}
		out["name"] = s.TranslateText(stringField(item, "name"), lang)
		out["description"] = s.TranslateText(stringField(item, "description"), lang)
		out["lang"] = lang
		translated = append(translated, out)
	}
	return translated, lang
}

func stringField(item map[string]any, key string) string {
	v, ok := item[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

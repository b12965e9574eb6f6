// Package catalog provides the built-in snippet library.
package catalog

import "github.com/CHARAN123567888880/SyntaxRush/internal/model"

// Catalog holds immutable practice snippets grouped by language.
type Catalog struct {
	snippets map[model.Language][]model.Snippet
	order    []model.Language
}

// New returns a catalog populated with the built-in snippets.
func New() *Catalog {
	c := &Catalog{snippets: map[model.Language][]model.Snippet{}}
	for _, s := range builtinSnippets {
		if _, ok := c.snippets[s.Language]; !ok {
			c.order = append(c.order, s.Language)
		}
		c.snippets[s.Language] = append(c.snippets[s.Language], s)
	}
	return c
}

// Snippets returns the snippet list for a language. The second return
// value is false for unknown languages.
func (c *Catalog) Snippets(lang model.Language) ([]model.Snippet, bool) {
	list, ok := c.snippets[lang]
	if !ok {
		return nil, false
	}
	out := make([]model.Snippet, len(list))
	copy(out, list)
	return out, true
}

// Languages lists the supported languages in stable order.
func (c *Catalog) Languages() []model.Language {
	out := make([]model.Language, len(c.order))
	copy(out, c.order)
	return out
}

// AllCode returns every snippet body as a plain string.
func (c *Catalog) AllCode() []string {
	var out []string
	for _, lang := range c.order {
		for _, s := range c.snippets[lang] {
			out = append(out, s.Code)
		}
	}
	return out
}

// ParseLanguage validates a language name from user input.
func ParseLanguage(name string) (model.Language, bool) {
	switch model.Language(name) {
	case model.LangJavaScript, model.LangPython, model.LangJava, model.LangCpp:
		return model.Language(name), true
	}
	return "", false
}

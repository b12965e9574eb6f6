package catalog

import (
	"testing"

	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

func TestSnippetsKnownLanguage(t *testing.T) {
	cat := New()
	snippets, ok := cat.Snippets(model.LangJavaScript)
	if !ok {
		t.Fatalf("expected javascript snippets")
	}
	if len(snippets) != 4 {
		t.Fatalf("expected 4 javascript snippets, got %d", len(snippets))
	}
	if snippets[0].Title != "Array Methods" {
		t.Fatalf("unexpected first snippet: %q", snippets[0].Title)
	}
}

func TestSnippetsUnknownLanguage(t *testing.T) {
	cat := New()
	if _, ok := cat.Snippets(model.Language("rust")); ok {
		t.Fatalf("expected no snippets for unknown language")
	}
}

func TestLanguagesStableOrder(t *testing.T) {
	cat := New()
	langs := cat.Languages()
	want := []model.Language{model.LangJavaScript, model.LangPython, model.LangJava, model.LangCpp}
	if len(langs) != len(want) {
		t.Fatalf("expected %d languages, got %d", len(want), len(langs))
	}
	for i, lang := range want {
		if langs[i] != lang {
			t.Fatalf("unexpected language order: %v", langs)
		}
	}
}

func TestAllCodeCoversEverySnippet(t *testing.T) {
	cat := New()
	total := 0
	for _, lang := range cat.Languages() {
		snippets, _ := cat.Snippets(lang)
		total += len(snippets)
	}
	if got := len(cat.AllCode()); got != total {
		t.Fatalf("expected %d code strings, got %d", total, got)
	}
}

func TestParseLanguage(t *testing.T) {
	if _, ok := ParseLanguage("python"); !ok {
		t.Fatalf("expected python to parse")
	}
	if _, ok := ParseLanguage("cobol"); ok {
		t.Fatalf("expected cobol to fail")
	}
}

func TestSnippetsReturnsCopy(t *testing.T) {
	cat := New()
	first, _ := cat.Snippets(model.LangPython)
	first[0].Title = "mutated"
	second, _ := cat.Snippets(model.LangPython)
	if second[0].Title == "mutated" {
		t.Fatalf("catalog snippets must be immutable")
	}
}

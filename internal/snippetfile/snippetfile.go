// Package snippetfile loads practice snippets from user files.
package snippetfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

// extLanguages maps accepted file extensions to languages, matching the
// upload filter of the web UI (.js,.py,.java,.cpp).
var extLanguages = map[string]model.Language{
	".js":   model.LangJavaScript,
	".py":   model.LangPython,
	".java": model.LangJava,
	".cpp":  model.LangCpp,
}

// Load reads a snippet from a file, inferring the language from the
// extension.
func Load(path string) (model.Snippet, error) {
	lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return model.Snippet{}, fmt.Errorf("unsupported file extension %q (want .js, .py, .java or .cpp)", filepath.Ext(path))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Snippet{}, fmt.Errorf("failed to read snippet file: %w", err)
	}
	code := strings.TrimRight(string(raw), "\r\n")
	if strings.TrimSpace(code) == "" {
		return model.Snippet{}, fmt.Errorf("snippet file is empty: %s", path)
	}
	return model.Snippet{
		Title:    filepath.Base(path),
		Code:     code,
		Language: lang,
	}, nil
}

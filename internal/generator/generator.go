// Package generator builds practice snippets on demand.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/CHARAN123567888880/SyntaxRush/internal/catalog"
	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

// Line budgets per difficulty.
const (
	easyLines   = 4
	mediumLines = 8
	hardLines   = 14
)

// Generator produces randomized practice snippets.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSeed returns a deterministic Generator for tests.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate assembles a snippet from random lines of the language's
// catalog, sized by difficulty. Unknown languages yield the placeholder.
func (g *Generator) Generate(cat *catalog.Catalog, lang model.Language, difficulty model.Difficulty) model.Snippet {
	snippets, ok := cat.Snippets(lang)
	if !ok || len(snippets) == 0 {
		return Placeholder(lang)
	}
	var lines []string
	for _, s := range snippets {
		for _, line := range strings.Split(s.Code, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines = append(lines, strings.TrimRight(line, " \t"))
		}
	}
	budget := lineBudget(difficulty)
	if budget > len(lines) {
		budget = len(lines)
	}
	picked := make([]string, 0, budget)
	for i := 0; i < budget; i++ {
		picked = append(picked, lines[g.rnd.Intn(len(lines))])
	}
	return model.Snippet{
		Title:    fmt.Sprintf("Generated (%s)", difficulty),
		Code:     strings.Join(picked, "\n"),
		Language: lang,
	}
}

// Placeholder returns the canned snippet used when no real generator
// backend is wired up.
func Placeholder(lang model.Language) model.Snippet {
	return model.Snippet{
		Title:    "AI Generated Snippet",
		Code:     "// AI generated code would go here\n// This is a placeholder for the actual AI integration",
		Language: lang,
	}
}

func lineBudget(difficulty model.Difficulty) int {
	switch difficulty {
	case model.DifficultyHard:
		return hardLines
	case model.DifficultyMedium:
		return mediumLines
	default:
		return easyLines
	}
}

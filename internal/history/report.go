// Package history loads and reports practice history.
package history

import (
	"context"

	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
	"github.com/CHARAN123567888880/SyntaxRush/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Sessions []model.SessionAggregate
	Keys     []model.KeyAggregate
}

// BuildReport loads and prepares history data.
func BuildReport(ctx context.Context, st *store.Store, lang model.Language, keyWindow int) (Report, error) {
	sessions, err := st.ListSessions(ctx, lang)
	if err != nil {
		return Report{}, err
	}
	keys, err := st.AggregateKeys(ctx, keyWindow, lang)
	if err != nil {
		return Report{}, err
	}
	return Report{Sessions: sessions, Keys: keys}, nil
}

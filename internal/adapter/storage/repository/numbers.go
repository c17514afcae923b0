package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/ordermodule/internal/adapter/storage"
	"github.com/MikeRez0/ordermodule/internal/core/utils"
)

// NumberGenerator renders number templates with a per template counter kept
// in the number_sequences table. The upsert makes concurrent callers receive
// distinct values.
type NumberGenerator struct {
	db  *storage.DB
	now func() time.Time
}

func NewNumberGenerator(db *storage.DB) *NumberGenerator {
	return &NumberGenerator{db: db, now: time.Now}
}

func (g *NumberGenerator) GenerateNumber(ctx context.Context, template string) (string, error) {
	sql, args, err := g.db.QueryBuilder.
		Insert("number_sequences").
		Columns("template", "value").
		Values(template, 1).
		Suffix("ON CONFLICT (template) DO UPDATE SET value = number_sequences.value + 1 RETURNING value").
		ToSql()
	if err != nil {
		return "", err
	}

	var seq int64
	if err := g.db.QueryRow(ctx, sql, args...).Scan(&seq); err != nil {
		return "", fmt.Errorf("next sequence value: %w", err)
	}

	return utils.FormatNumberTemplate(template, g.now(), seq)
}

package insights

import (
	"context"
	"fmt"

	"github.com/iquadra-Harsh/wellness-wizard/internal/db"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const insightColumns = `id, user_id, type, title, content, data, is_read, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores all generated insights of the user in one transaction.
func (r *Repo) Add(ctx context.Context, userID int, generated []GeneratedInsight) (_ []Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("insights", len(generated)))

	added := make([]Insight, 0, len(generated))
	if len(generated) == 0 {
		return added, nil
	}

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, g := range generated {
			var data []byte
			if len(g.Data) > 0 {
				data = g.Data
			}
			insight, err := scanInsight(tx.QueryRow(
				ctx,
				`INSERT INTO insight (user_id, type, title, content, data)
					VALUES ($1, $2, $3, $4, $5)
				RETURNING `+insightColumns,
				userID, string(g.Type), g.Title, g.Content, data,
			))
			if err != nil {
				return fmt.Errorf("insert insight %q: %w", g.Title, err)
			}
			added = append(added, *insight)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// List returns the newest insights of the user first.
func (r *Repo) List(ctx context.Context, userID int, unreadOnly bool, limit int) (_ []Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Bool("unread_only", unreadOnly))

	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+insightColumns+`
			FROM insight
			WHERE user_id = $1 AND (NOT $2 OR NOT is_read)
			ORDER BY created_at DESC, id DESC
			LIMIT $3`,
		userID, unreadOnly, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	insights := make([]Insight, 0)
	for rows.Next() {
		insight, err := scanInsight(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		insights = append(insights, *insight)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return insights, nil
}

func (r *Repo) MarkRead(ctx context.Context, userID, id int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.markread")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("insight.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE insight SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("insight.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM insight WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func scanInsight(row pgx.Row) (*Insight, error) {
	var i Insight
	var insightType string
	var data []byte
	if err := row.Scan(
		&i.ID, &i.UserID, &insightType, &i.Title, &i.Content, &data, &i.IsRead, &i.CreatedAt,
	); err != nil {
		return nil, err
	}
	i.Type = Type(insightType)
	if len(data) > 0 {
		i.Data = data
	}
	return &i, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/vectorstore"
	"github.com/cleitonmarx/bomi/internal/common"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
)

// BackendPostgres selects the pgvector-backed emotion index.
const BackendPostgres = "postgres"

const insertBatchSize = 500

// topKOverfetch is how many extra candidates TopK reads past k, so rows whose
// float32 distance ties or misorders near the cutoff can still win the float64 rescore.
const topKOverfetch = 8

var emotionExampleFields = []string{
	"row_id",
	"text",
	"emotion",
	"intensity",
	"embedding",
}

// EmotionIndexRepository implements domain.EmotionIndex on a pgvector table.
// Writes run in a transaction holding an exclusive table lock so row ids stay dense.
type EmotionIndexRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewEmotionIndexRepository creates a new EmotionIndexRepository.
func NewEmotionIndexRepository(db *sql.DB) EmotionIndexRepository {
	return EmotionIndexRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Add implements domain.EmotionIndex.
func (r EmotionIndexRepository) Add(ctx context.Context, examples []domain.SeedExample, embeddings []domain.Embedding) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := vectorstore.ValidateBatch(nil, examples, embeddings)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err = r.inTx(spanCtx, func(tx *sql.Tx) error {
		var count, dim int
		err := r.sb.RunWith(tx).
			Select("COUNT(*)", "COALESCE(MAX(vector_dims(embedding)), 0)").
			From("emotion_examples").
			QueryRowContext(spanCtx).
			Scan(&count, &dim)
		if err != nil {
			return fmt.Errorf("failed to inspect emotion index: %w", err)
		}
		if dim != 0 && len(embeddings) > 0 && len(embeddings[0]) != dim {
			return domain.NewValidationErr(fmt.Sprintf("embedding dimension %d, expected %d", len(embeddings[0]), dim))
		}
		return r.insert(spanCtx, tx, count, examples, embeddings)
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Reset implements domain.EmotionIndex.
func (r EmotionIndexRepository) Reset(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.inTx(spanCtx, func(tx *sql.Tx) error {
		_, err := r.sb.RunWith(tx).Delete("emotion_examples").ExecContext(spanCtx)
		if err != nil {
			return fmt.Errorf("failed to reset emotion index: %w", err)
		}
		return nil
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Replace implements domain.EmotionIndex. Readers see either the previous or
// the new set.
func (r EmotionIndexRepository) Replace(ctx context.Context, examples []domain.SeedExample, embeddings []domain.Embedding) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := vectorstore.ValidateBatch(nil, examples, embeddings)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err = r.inTx(spanCtx, func(tx *sql.Tx) error {
		if _, err := r.sb.RunWith(tx).Delete("emotion_examples").ExecContext(spanCtx); err != nil {
			return fmt.Errorf("failed to clear emotion index: %w", err)
		}
		return r.insert(spanCtx, tx, 0, examples, embeddings)
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Count implements domain.EmotionIndex.
func (r EmotionIndexRepository) Count(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := r.sb.RunWith(r.db).
		Select("COUNT(*)").
		From("emotion_examples").
		QueryRowContext(spanCtx).
		Scan(&count)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to count emotion examples: %w", err)
	}
	return count, nil
}

// TopK implements domain.EmotionIndex. Up to k+topKOverfetch candidates are
// read in pgvector cosine distance order, rescored with the exact float64
// cosine, and truncated to k.
func (r EmotionIndexRepository) TopK(ctx context.Context, query domain.Embedding, k int) ([]domain.ScoredExample, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if k <= 0 {
		return []domain.ScoredExample{}, nil
	}

	rows, err := r.sb.RunWith(r.db).
		Select(emotionExampleFields...).
		From("emotion_examples").
		OrderByClause("embedding <=> ?", pgvector.NewVector(common.ToFloat32(query))).
		OrderBy("row_id").
		Limit(uint64(k + topKOverfetch)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to query emotion examples: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	results := []domain.ScoredExample{}
	for rows.Next() {
		var (
			e         domain.IndexedExample
			emotion   string
			embedding pgvector.Vector
		)
		if err := rows.Scan(&e.RowID, &e.Text, &emotion, &e.Intensity, &embedding); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return nil, fmt.Errorf("failed to scan emotion example: %w", err)
		}
		e.Emotion = domain.EmotionLabel(emotion)
		e.Embedding = common.ToFloat64(embedding.Slice())
		results = append(results, domain.ScoredExample{
			IndexedExample: e,
			Similarity:     common.CosineOrFloor(query, e.Embedding),
		})
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	vectorstore.SortScored(results)
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func (r EmotionIndexRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "LOCK TABLE emotion_examples IN EXCLUSIVE MODE"); err != nil {
		return rollback(tx, fmt.Errorf("failed to lock emotion index: %w", err))
	}
	if err := fn(tx); err != nil {
		return rollback(tx, err)
	}
	return tx.Commit()
}

func (r EmotionIndexRepository) insert(ctx context.Context, tx *sql.Tx, firstRowID int, examples []domain.SeedExample, embeddings []domain.Embedding) error {
	for start := 0; start < len(examples); start += insertBatchSize {
		end := min(start+insertBatchSize, len(examples))
		q := r.sb.RunWith(tx).Insert("emotion_examples").Columns(emotionExampleFields...)
		for i := start; i < end; i++ {
			q = q.Values(
				firstRowID+i,
				examples[i].Text,
				string(examples[i].Emotion),
				examples[i].Intensity,
				pgvector.NewVector(common.ToFloat32(embeddings[i])),
			)
		}
		if _, err := q.ExecContext(ctx); err != nil {
			return fmt.Errorf("failed to insert emotion examples: %w", err)
		}
	}
	return nil
}

func rollback(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		return fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
	}
	return err
}

// InitEmotionIndexRepository registers the pgvector index when the postgres backend is selected.
type InitEmotionIndexRepository struct {
	DB      *sql.DB `resolve:""`
	Backend string  `config:"EMOTION_INDEX_BACKEND" default:"memory"`
}

// Initialize registers the EmotionIndexRepository in the dependency container.
func (i InitEmotionIndexRepository) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != BackendPostgres {
		return ctx, nil
	}
	depend.Register[domain.EmotionIndex](NewEmotionIndexRepository(i.DB))
	return ctx, nil
}

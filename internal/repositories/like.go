package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/interviewshare/backend/internal/logger"
)

// LikeReadRepository handles like-relation read operations
type LikeReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLikeReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LikeReadRepository {
	return &LikeReadRepository{db: db, txGetter: txGetter}
}

func (r *LikeReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// CountByExperienceID returns the current like cardinality for an experience.
func (r *LikeReadRepository) CountByExperienceID(ctx context.Context, experienceID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM experience_likes
		WHERE experience_id = $1
	`

	var count int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, experienceID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{experienceID},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListByExperienceIDs returns the liker ids for each of the given
// experiences, keyed by experience id. Experiences without likes are
// absent from the map.
func (r *LikeReadRepository) ListByExperienceIDs(ctx context.Context, experienceIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	likers := make(map[uuid.UUID][]uuid.UUID, len(experienceIDs))
	if len(experienceIDs) == 0 {
		return likers, nil
	}

	query, args, err := sqlx.In(`
		SELECT user_id, experience_id
		FROM experience_likes
		WHERE experience_id IN (?)
		ORDER BY experience_id, user_id
	`, experienceIDs)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var pairs []struct {
		UserID       uuid.UUID `db:"user_id"`
		ExperienceID uuid.UUID `db:"experience_id"`
	}
	err = sqlx.SelectContext(ctx, r.executor(ctx), &pairs, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"count", len(pairs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	for _, p := range pairs {
		likers[p.ExperienceID] = append(likers[p.ExperienceID], p.UserID)
	}
	return likers, nil
}

// LikeWriteRepository handles like-relation write operations
type LikeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLikeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LikeWriteRepository {
	return &LikeWriteRepository{db: db, txGetter: txGetter}
}

func (r *LikeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Toggle flips the (user, experience) pair and reports whether it now
// exists. The conflict-target insert is the compare-and-swap: of two
// concurrent toggles for the same pair exactly one insert wins, the
// other observes the conflict and deletes.
func (r *LikeWriteRepository) Toggle(ctx context.Context, userID, experienceID uuid.UUID) (bool, error) {
	insertQuery := `
		INSERT INTO experience_likes (user_id, experience_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, experience_id) DO NOTHING
	`
	args := []any{userID, experienceID}

	executor := r.executor(ctx)

	res, err := executor.ExecContext(ctx, insertQuery, args...)
	var inserted int64
	if res != nil {
		inserted, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", args,
		"result", inserted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	if inserted > 0 {
		return true, nil
	}

	deleteQuery := `
		DELETE FROM experience_likes
		WHERE user_id = $1 AND experience_id = $2
	`

	res, err = executor.ExecContext(ctx, deleteQuery, args...)
	var deleted int64
	if res != nil {
		deleted, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(deleteQuery), " "),
		"args", args,
		"result", deleted,
		"error", err,
	)

	return false, err
}

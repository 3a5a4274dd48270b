package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/models"
)

// ExperienceReadRepository handles experience read operations.
// Reads take part in the per-request transaction so ownership checks
// and the mutation they guard see the same snapshot.
type ExperienceReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExperienceReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExperienceReadRepository {
	return &ExperienceReadRepository{db: db, txGetter: txGetter}
}

func (r *ExperienceReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

const experienceColumns = `
	e.experience_id, e.seq, e.title, e.company, e.role_title, e.content,
	e.author_id, u.email AS author_email, e.created_at
`

// GetByID returns the experience with the given id, or nil if absent.
func (r *ExperienceReadRepository) GetByID(ctx context.Context, experienceID uuid.UUID) (*models.ExperienceDB, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM experiences e
		JOIN users u ON u.user_id = e.author_id
		WHERE e.experience_id = $1
	`

	var exp models.ExperienceDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &exp, query, experienceID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{experienceID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// likePattern escapes LIKE metacharacters so a filter matches them
// literally instead of as wildcards.
var likePattern = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List returns all experiences newest first; the seq tiebreaker keeps
// the order stable when created_at collides. A non-empty filter matches
// company or role_title case-insensitively as a substring.
func (r *ExperienceReadRepository) List(ctx context.Context, filter string) ([]models.ExperienceDB, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM experiences e
		JOIN users u ON u.user_id = e.author_id
		WHERE $1 = '' OR e.company ILIKE '%' || $1 || '%' OR e.role_title ILIKE '%' || $1 || '%'
		ORDER BY e.created_at DESC, e.seq ASC
	`
	filter = likePattern.Replace(filter)

	var exps []models.ExperienceDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &exps, query, filter)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filter},
		"count", len(exps),
		"error", err,
	)

	return exps, err
}

// ListByAuthor returns the author's experiences newest first.
func (r *ExperienceReadRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.ExperienceDB, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM experiences e
		JOIN users u ON u.user_id = e.author_id
		WHERE e.author_id = $1
		ORDER BY e.created_at DESC, e.seq ASC
	`

	var exps []models.ExperienceDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &exps, query, authorID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID},
		"count", len(exps),
		"error", err,
	)

	return exps, err
}

// CountByDay groups experiences by the calendar date of created_at.
// Dates with no experiences are absent from the result.
func (r *ExperienceReadRepository) CountByDay(ctx context.Context) ([]models.DayCount, error) {
	const query = `
		SELECT TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS day, COUNT(*) AS count
		FROM experiences
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at)
	`

	var counts []models.DayCount
	err := sqlx.SelectContext(ctx, r.executor(ctx), &counts, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(counts),
		"error", err,
	)

	return counts, err
}

// ExperienceWriteRepository handles experience write operations
type ExperienceWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExperienceWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExperienceWriteRepository {
	return &ExperienceWriteRepository{db: db, txGetter: txGetter}
}

func (r *ExperienceWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new experience. The author and timestamp are fixed at
// insertion and never change afterwards.
func (r *ExperienceWriteRepository) Save(ctx context.Context, experienceID uuid.UUID, title, company, roleTitle, content string, authorID uuid.UUID) error {
	query := `
		INSERT INTO experiences (experience_id, title, company, role_title, content, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{experienceID, title, company, roleTitle, content, authorID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Update applies the non-nil fields, leaving the rest untouched.
// author_id and created_at are not updatable through this path.
func (r *ExperienceWriteRepository) Update(ctx context.Context, experienceID uuid.UUID, upd models.ExperienceUpdate) (int64, error) {
	query := `
		UPDATE experiences
		SET title = COALESCE($2, title),
		    company = COALESCE($3, company),
		    role_title = COALESCE($4, role_title),
		    content = COALESCE($5, content)
		WHERE experience_id = $1
	`
	args := []any{experienceID, upd.Title, upd.Company, upd.RoleTitle, upd.Content}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes the experience; like pairs referencing it go with it
// via the ON DELETE CASCADE on experience_likes.
func (r *ExperienceWriteRepository) Delete(ctx context.Context, experienceID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM experiences
		WHERE experience_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, experienceID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{experienceID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

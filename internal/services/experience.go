package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/models"
)

// ExperienceReader defines read operations for experiences.
type ExperienceReader interface {
	GetByID(ctx context.Context, experienceID uuid.UUID) (*models.ExperienceDB, error)
	List(ctx context.Context, filter string) ([]models.ExperienceDB, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.ExperienceDB, error)
}

// ExperienceWriter defines write operations for experiences.
type ExperienceWriter interface {
	Save(ctx context.Context, experienceID uuid.UUID, title, company, roleTitle, content string, authorID uuid.UUID) error
	Update(ctx context.Context, experienceID uuid.UUID, upd models.ExperienceUpdate) (int64, error)
	Delete(ctx context.Context, experienceID uuid.UUID) (int64, error)
}

// LikeReader defines read operations over the like relation.
type LikeReader interface {
	CountByExperienceID(ctx context.Context, experienceID uuid.UUID) (int64, error)
	ListByExperienceIDs(ctx context.Context, experienceIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ExperienceService handles experience CRUD, ownership checks, and
// event publishing.
type ExperienceService struct {
	readRepo    ExperienceReader
	writeRepo   ExperienceWriter
	likeRepo    LikeReader
	kafkaWriter KafkaWriter
}

// NewExperienceService creates a new ExperienceService instance.
func NewExperienceService(
	readRepo ExperienceReader,
	writeRepo ExperienceWriter,
	likeRepo LikeReader,
	kafkaWriter KafkaWriter,
) *ExperienceService {
	return &ExperienceService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		likeRepo:    likeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// CanModify reports whether the user owns the experience.
func CanModify(userID uuid.UUID, exp *models.ExperienceDB) bool {
	return exp != nil && exp.AuthorID == userID
}

// publishEvent publishes a domain event to Kafka.
func publishEvent(ctx context.Context, w KafkaWriter, event models.Event) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

// render assembles the outward view of a stored experience, deriving
// likes_count and liker_ids from the like relation.
func (s *ExperienceService) render(exp *models.ExperienceDB, likerIDs []uuid.UUID) *models.Experience {
	if likerIDs == nil {
		likerIDs = []uuid.UUID{}
	}
	return &models.Experience{
		ID:         exp.ExperienceID,
		Title:      exp.Title,
		Company:    exp.Company,
		RoleTitle:  exp.RoleTitle,
		Content:    exp.Content,
		CreatedAt:  exp.CreatedAt,
		Author:     exp.AuthorEmail,
		LikesCount: len(likerIDs),
		LikerIDs:   likerIDs,
	}
}

// renderAll assembles views for a list of stored experiences with one
// likes lookup for the whole batch.
func (s *ExperienceService) renderAll(ctx context.Context, exps []models.ExperienceDB) ([]models.Experience, error) {
	ids := make([]uuid.UUID, 0, len(exps))
	for _, exp := range exps {
		ids = append(ids, exp.ExperienceID)
	}

	likers, err := s.likeRepo.ListByExperienceIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to get likers", "error", err)
		return nil, err
	}

	out := make([]models.Experience, 0, len(exps))
	for i := range exps {
		out = append(out, *s.render(&exps[i], likers[exps[i].ExperienceID]))
	}
	return out, nil
}

// Create stores a new experience owned by the caller and returns its
// view with zero likes.
func (s *ExperienceService) Create(ctx context.Context, authorID uuid.UUID, title, company, roleTitle, content string) (*models.Experience, error) {
	if title == "" || content == "" {
		return nil, ErrMissingFields
	}

	experienceID := uuid.New()
	if err := s.writeRepo.Save(ctx, experienceID, title, company, roleTitle, content, authorID); err != nil {
		logger.Log.Errorw("failed to save experience", "authorID", authorID, "error", err)
		return nil, err
	}

	exp, err := s.readRepo.GetByID(ctx, experienceID)
	if err != nil {
		logger.Log.Errorw("failed to read back experience", "experienceID", experienceID, "error", err)
		return nil, err
	}
	if exp == nil {
		return nil, ErrExperienceNotFound
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		Type:         "experience_created",
		UserID:       authorID.String(),
		ExperienceID: experienceID.String(),
	})

	return s.render(exp, nil), nil
}

// Get returns the view of a single experience.
func (s *ExperienceService) Get(ctx context.Context, experienceID uuid.UUID) (*models.Experience, error) {
	exp, err := s.readRepo.GetByID(ctx, experienceID)
	if err != nil {
		logger.Log.Errorw("failed to get experience", "experienceID", experienceID, "error", err)
		return nil, err
	}
	if exp == nil {
		return nil, ErrExperienceNotFound
	}

	likers, err := s.likeRepo.ListByExperienceIDs(ctx, []uuid.UUID{experienceID})
	if err != nil {
		logger.Log.Errorw("failed to get likers", "experienceID", experienceID, "error", err)
		return nil, err
	}

	return s.render(exp, likers[experienceID]), nil
}

// Update applies a partial update after re-checking existence and
// ownership; both checks and the write run in the request transaction.
func (s *ExperienceService) Update(ctx context.Context, userID, experienceID uuid.UUID, upd models.ExperienceUpdate) (*models.Experience, error) {
	// An omitted field keeps its value, but title and content may never
	// be blanked.
	if (upd.Title != nil && *upd.Title == "") || (upd.Content != nil && *upd.Content == "") {
		return nil, ErrMissingFields
	}

	exp, err := s.readRepo.GetByID(ctx, experienceID)
	if err != nil {
		logger.Log.Errorw("failed to get experience", "experienceID", experienceID, "error", err)
		return nil, err
	}
	if exp == nil {
		return nil, ErrExperienceNotFound
	}
	if !CanModify(userID, exp) {
		logger.Log.Errorw("not the author", "userID", userID, "experienceID", experienceID)
		return nil, ErrNotOwner
	}

	if _, err := s.writeRepo.Update(ctx, experienceID, upd); err != nil {
		logger.Log.Errorw("failed to update experience", "experienceID", experienceID, "error", err)
		return nil, err
	}

	return s.Get(ctx, experienceID)
}

// Delete removes an experience after re-checking existence and
// ownership. Its like pairs are removed by cascade.
func (s *ExperienceService) Delete(ctx context.Context, userID, experienceID uuid.UUID) error {
	exp, err := s.readRepo.GetByID(ctx, experienceID)
	if err != nil {
		logger.Log.Errorw("failed to get experience", "experienceID", experienceID, "error", err)
		return err
	}
	if exp == nil {
		return ErrExperienceNotFound
	}
	if !CanModify(userID, exp) {
		logger.Log.Errorw("not the author", "userID", userID, "experienceID", experienceID)
		return ErrNotOwner
	}

	if _, err := s.writeRepo.Delete(ctx, experienceID); err != nil {
		logger.Log.Errorw("failed to delete experience", "experienceID", experienceID, "error", err)
		return err
	}

	return nil
}

// List returns all experiences newest first, optionally filtered by a
// case-insensitive substring match on company or role_title.
func (s *ExperienceService) List(ctx context.Context, filter string) ([]models.Experience, error) {
	exps, err := s.readRepo.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list experiences", "filter", filter, "error", err)
		return nil, err
	}
	return s.renderAll(ctx, exps)
}

// ListByAuthor returns the caller's experiences newest first.
func (s *ExperienceService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Experience, error) {
	exps, err := s.readRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to list experiences by author", "authorID", authorID, "error", err)
		return nil, err
	}
	return s.renderAll(ctx, exps)
}

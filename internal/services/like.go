package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/models"
)

// ExperienceChecker reports whether an experience exists.
type ExperienceChecker interface {
	GetByID(ctx context.Context, experienceID uuid.UUID) (*models.ExperienceDB, error)
}

// LikeToggler defines write operations over the like relation.
type LikeToggler interface {
	Toggle(ctx context.Context, userID, experienceID uuid.UUID) (bool, error)
}

// LikeService implements the like toggle protocol.
type LikeService struct {
	expRepo     ExperienceChecker
	writeRepo   LikeToggler
	readRepo    LikeReader
	kafkaWriter KafkaWriter
}

// NewLikeService creates a new LikeService instance.
func NewLikeService(
	expRepo ExperienceChecker,
	writeRepo LikeToggler,
	readRepo LikeReader,
	kafkaWriter KafkaWriter,
) *LikeService {
	return &LikeService{
		expRepo:     expRepo,
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Toggle flips the caller's like on an experience and returns the
// resulting action with the post-toggle count. Two consecutive toggles
// by the same user return the relation to its prior state.
func (s *LikeService) Toggle(ctx context.Context, userID, experienceID uuid.UUID) (string, int64, error) {
	exp, err := s.expRepo.GetByID(ctx, experienceID)
	if err != nil {
		logger.Log.Errorw("failed to get experience", "experienceID", experienceID, "error", err)
		return "", 0, err
	}
	if exp == nil {
		return "", 0, ErrExperienceNotFound
	}

	liked, err := s.writeRepo.Toggle(ctx, userID, experienceID)
	if err != nil {
		logger.Log.Errorw("failed to toggle like", "userID", userID, "experienceID", experienceID, "error", err)
		return "", 0, err
	}

	count, err := s.readRepo.CountByExperienceID(ctx, experienceID)
	if err != nil {
		logger.Log.Errorw("failed to count likes", "experienceID", experienceID, "error", err)
		return "", 0, err
	}

	action := models.ActionUnliked
	if liked {
		action = models.ActionLiked
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		Type:         "like_toggled",
		UserID:       userID.String(),
		ExperienceID: experienceID.String(),
		Action:       action,
	})

	return action, count, nil
}

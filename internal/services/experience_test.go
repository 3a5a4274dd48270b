package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/interviewshare/backend/internal/models"
	"github.com/interviewshare/backend/internal/services"
)

func newExperienceService(t *testing.T) (
	*services.ExperienceService,
	*services.MockExperienceReader,
	*services.MockExperienceWriter,
	*services.MockLikeReader,
	*services.MockKafkaWriter,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReader := services.NewMockExperienceReader(ctrl)
	mockWriter := services.NewMockExperienceWriter(ctrl)
	mockLikes := services.NewMockLikeReader(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewExperienceService(mockReader, mockWriter, mockLikes, mockKafka)
	return svc, mockReader, mockWriter, mockLikes, mockKafka
}

func TestCanModify(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	exp := &models.ExperienceDB{ExperienceID: uuid.New(), AuthorID: owner}

	assert.True(t, services.CanModify(owner, exp))
	assert.False(t, services.CanModify(other, exp))
	assert.False(t, services.CanModify(owner, nil))
}

func TestExperienceService_Create(t *testing.T) {
	authorID := uuid.New()
	now := time.Now()

	tests := []struct {
		name    string
		title   string
		content string
		saveErr error
		wantErr error
	}{
		{
			name:    "successful create",
			title:   "Software Engineer at Google",
			content: "Five rounds, mostly graphs and DP.",
		},
		{
			name:    "missing title",
			title:   "",
			content: "some content",
			wantErr: services.ErrMissingFields,
		},
		{
			name:    "missing content",
			title:   "some title",
			content: "",
			wantErr: services.ErrMissingFields,
		},
		{
			name:    "save error",
			title:   "some title",
			content: "some content",
			saveErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, mockWriter, _, mockKafka := newExperienceService(t)

			var savedID uuid.UUID
			if tt.title != "" && tt.content != "" {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any(), tt.title, "Google", "SWE", tt.content, authorID).
					DoAndReturn(func(_ context.Context, id uuid.UUID, _, _, _, _ string, _ uuid.UUID) error {
						savedID = id
						return tt.saveErr
					})

				if tt.saveErr == nil {
					mockReader.EXPECT().
						GetByID(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.ExperienceDB, error) {
							assert.Equal(t, savedID, id)
							return &models.ExperienceDB{
								ExperienceID: id,
								Title:        tt.title,
								Company:      "Google",
								RoleTitle:    "SWE",
								Content:      tt.content,
								AuthorID:     authorID,
								AuthorEmail:  "alice@example.com",
								CreatedAt:    now,
							}, nil
						})
					mockKafka.EXPECT().
						WriteMessages(gomock.Any(), gomock.Any()).
						Return(nil)
				}
			}

			exp, err := svc.Create(context.Background(), authorID, tt.title, "Google", "SWE", tt.content)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, exp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.title, exp.Title)
				assert.Equal(t, "alice@example.com", exp.Author)
				assert.Equal(t, 0, exp.LikesCount)
				assert.NotNil(t, exp.LikerIDs)
				assert.Empty(t, exp.LikerIDs)
			}
		})
	}
}

func TestExperienceService_Get(t *testing.T) {
	experienceID := uuid.New()
	likerA := uuid.New()
	likerB := uuid.New()

	stored := &models.ExperienceDB{
		ExperienceID: experienceID,
		Title:        "Frontend Developer at Amazon",
		Company:      "Amazon",
		RoleTitle:    "Frontend Engineer II",
		Content:      "CSS and React internals.",
		AuthorID:     uuid.New(),
		AuthorEmail:  "bob@example.com",
		CreatedAt:    time.Now(),
	}

	t.Run("found with likes", func(t *testing.T) {
		svc, mockReader, _, mockLikes, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(stored, nil)
		mockLikes.EXPECT().
			ListByExperienceIDs(gomock.Any(), []uuid.UUID{experienceID}).
			Return(map[uuid.UUID][]uuid.UUID{experienceID: {likerA, likerB}}, nil)

		exp, err := svc.Get(context.Background(), experienceID)
		assert.NoError(t, err)
		assert.Equal(t, experienceID, exp.ID)
		assert.Equal(t, 2, exp.LikesCount)
		assert.ElementsMatch(t, []uuid.UUID{likerA, likerB}, exp.LikerIDs)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(nil, nil)

		exp, err := svc.Get(context.Background(), experienceID)
		assert.ErrorIs(t, err, services.ErrExperienceNotFound)
		assert.Nil(t, exp)
	})

	t.Run("reader error", func(t *testing.T) {
		svc, mockReader, _, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(nil, errors.New("db error"))

		exp, err := svc.Get(context.Background(), experienceID)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, exp)
	})
}

func TestExperienceService_Update(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	experienceID := uuid.New()

	newTitle := "Updated title"
	upd := models.ExperienceUpdate{Title: &newTitle}

	stored := &models.ExperienceDB{
		ExperienceID: experienceID,
		Title:        "Old title",
		Content:      "content",
		AuthorID:     ownerID,
		AuthorEmail:  "alice@example.com",
		CreatedAt:    time.Now(),
	}

	t.Run("owner updates", func(t *testing.T) {
		svc, mockReader, mockWriter, mockLikes, _ := newExperienceService(t)

		updated := *stored
		updated.Title = newTitle

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(stored, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), experienceID, upd).
			Return(int64(1), nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(&updated, nil)
		mockLikes.EXPECT().
			ListByExperienceIDs(gomock.Any(), []uuid.UUID{experienceID}).
			Return(map[uuid.UUID][]uuid.UUID{}, nil)

		exp, err := svc.Update(context.Background(), ownerID, experienceID, upd)
		assert.NoError(t, err)
		assert.Equal(t, newTitle, exp.Title)
	})

	t.Run("non-owner is rejected before the write", func(t *testing.T) {
		svc, mockReader, _, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(stored, nil)

		exp, err := svc.Update(context.Background(), otherID, experienceID, upd)
		assert.ErrorIs(t, err, services.ErrNotOwner)
		assert.Nil(t, exp)
	})

	t.Run("empty title is rejected before any read or write", func(t *testing.T) {
		svc, _, _, _, _ := newExperienceService(t)

		empty := ""
		exp, err := svc.Update(context.Background(), ownerID, experienceID, models.ExperienceUpdate{Title: &empty})
		assert.ErrorIs(t, err, services.ErrMissingFields)
		assert.Nil(t, exp)
	})

	t.Run("empty content is rejected before any read or write", func(t *testing.T) {
		svc, _, _, _, _ := newExperienceService(t)

		empty := ""
		exp, err := svc.Update(context.Background(), ownerID, experienceID, models.ExperienceUpdate{Content: &empty})
		assert.ErrorIs(t, err, services.ErrMissingFields)
		assert.Nil(t, exp)
	})

	t.Run("omitted fields keep their values", func(t *testing.T) {
		svc, mockReader, mockWriter, mockLikes, _ := newExperienceService(t)

		partial := models.ExperienceUpdate{Title: &newTitle}
		updated := *stored
		updated.Title = newTitle

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(stored, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), experienceID, partial).
			Return(int64(1), nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(&updated, nil)
		mockLikes.EXPECT().
			ListByExperienceIDs(gomock.Any(), []uuid.UUID{experienceID}).
			Return(map[uuid.UUID][]uuid.UUID{}, nil)

		exp, err := svc.Update(context.Background(), ownerID, experienceID, partial)
		assert.NoError(t, err)
		assert.Equal(t, newTitle, exp.Title)
		assert.Equal(t, stored.Content, exp.Content)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(nil, nil)

		exp, err := svc.Update(context.Background(), ownerID, experienceID, upd)
		assert.ErrorIs(t, err, services.ErrExperienceNotFound)
		assert.Nil(t, exp)
	})

	t.Run("write error", func(t *testing.T) {
		svc, mockReader, mockWriter, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(stored, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), experienceID, upd).
			Return(int64(0), errors.New("db error"))

		exp, err := svc.Update(context.Background(), ownerID, experienceID, upd)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, exp)
	})
}

func TestExperienceService_Delete(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	experienceID := uuid.New()

	stored := &models.ExperienceDB{
		ExperienceID: experienceID,
		AuthorID:     ownerID,
	}

	t.Run("owner deletes", func(t *testing.T) {
		svc, mockReader, mockWriter, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(stored, nil)
		mockWriter.EXPECT().
			Delete(gomock.Any(), experienceID).
			Return(int64(1), nil)

		err := svc.Delete(context.Background(), ownerID, experienceID)
		assert.NoError(t, err)
	})

	t.Run("non-owner is rejected before the write", func(t *testing.T) {
		svc, mockReader, _, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(stored, nil)

		err := svc.Delete(context.Background(), otherID, experienceID)
		assert.ErrorIs(t, err, services.ErrNotOwner)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockReader, _, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			GetByID(gomock.Any(), experienceID).
			Return(nil, nil)

		err := svc.Delete(context.Background(), ownerID, experienceID)
		assert.ErrorIs(t, err, services.ErrExperienceNotFound)
	})
}

func TestExperienceService_List(t *testing.T) {
	first := models.ExperienceDB{
		ExperienceID: uuid.New(),
		Title:        "newest",
		AuthorID:     uuid.New(),
		AuthorEmail:  "alice@example.com",
		CreatedAt:    time.Now(),
	}
	second := models.ExperienceDB{
		ExperienceID: uuid.New(),
		Title:        "older",
		AuthorID:     uuid.New(),
		AuthorEmail:  "bob@example.com",
		CreatedAt:    time.Now().Add(-time.Hour),
	}
	liker := uuid.New()

	t.Run("list preserves order and derives likes", func(t *testing.T) {
		svc, mockReader, _, mockLikes, _ := newExperienceService(t)

		mockReader.EXPECT().
			List(gomock.Any(), "google").
			Return([]models.ExperienceDB{first, second}, nil)
		mockLikes.EXPECT().
			ListByExperienceIDs(gomock.Any(), []uuid.UUID{first.ExperienceID, second.ExperienceID}).
			Return(map[uuid.UUID][]uuid.UUID{second.ExperienceID: {liker}}, nil)

		exps, err := svc.List(context.Background(), "google")
		assert.NoError(t, err)
		assert.Len(t, exps, 2)
		assert.Equal(t, "newest", exps[0].Title)
		assert.Equal(t, 0, exps[0].LikesCount)
		assert.NotNil(t, exps[0].LikerIDs)
		assert.Equal(t, "older", exps[1].Title)
		assert.Equal(t, 1, exps[1].LikesCount)
		assert.Equal(t, []uuid.UUID{liker}, exps[1].LikerIDs)
	})

	t.Run("empty result", func(t *testing.T) {
		svc, mockReader, _, mockLikes, _ := newExperienceService(t)

		mockReader.EXPECT().
			List(gomock.Any(), "").
			Return(nil, nil)
		mockLikes.EXPECT().
			ListByExperienceIDs(gomock.Any(), []uuid.UUID{}).
			Return(map[uuid.UUID][]uuid.UUID{}, nil)

		exps, err := svc.List(context.Background(), "")
		assert.NoError(t, err)
		assert.NotNil(t, exps)
		assert.Empty(t, exps)
	})

	t.Run("reader error", func(t *testing.T) {
		svc, mockReader, _, _, _ := newExperienceService(t)

		mockReader.EXPECT().
			List(gomock.Any(), "").
			Return(nil, errors.New("db error"))

		exps, err := svc.List(context.Background(), "")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, exps)
	})
}

func TestExperienceService_ListByAuthor(t *testing.T) {
	authorID := uuid.New()
	mine := models.ExperienceDB{
		ExperienceID: uuid.New(),
		Title:        "mine",
		AuthorID:     authorID,
		AuthorEmail:  "alice@example.com",
		CreatedAt:    time.Now(),
	}

	svc, mockReader, _, mockLikes, _ := newExperienceService(t)

	mockReader.EXPECT().
		ListByAuthor(gomock.Any(), authorID).
		Return([]models.ExperienceDB{mine}, nil)
	mockLikes.EXPECT().
		ListByExperienceIDs(gomock.Any(), []uuid.UUID{mine.ExperienceID}).
		Return(map[uuid.UUID][]uuid.UUID{}, nil)

	exps, err := svc.ListByAuthor(context.Background(), authorID)
	assert.NoError(t, err)
	assert.Len(t, exps, 1)
	assert.Equal(t, "mine", exps[0].Title)
}

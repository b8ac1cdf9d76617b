package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/mock"
	"github.com/MKhiriev/keylock/internal/validators"
	"github.com/MKhiriev/keylock/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientHistoryService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockShareHistoryRepository(ctrl)
	svc := NewClientHistoryService(repo, logger.Nop())

	result := models.ShareResult{
		ID:            "srv",
		URL:           "https://host/secret/abc",
		Reference:     "abc",
		ExpireMinutes: 10,
		MaxViews:      3,
		CreatedAt:     fixedNow,
		ExpiresAt:     fixedNow.Add(10 * time.Minute),
	}

	repo.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e models.ShareHistoryEntry) error {
		parsed, err := uuid.Parse(e.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		assert.Equal(t, models.ShareHistoryEntry{
			ID:            e.ID,
			ExpireMinutes: 10,
			MaxViews:      3,
			CreatedAt:     fixedNow,
			ExpiresAt:     fixedNow.Add(10 * time.Minute),
		}, e, "only the link lifetime is recorded")
		return nil
	})

	require.NoError(t, svc.Record(context.Background(), result))
}

func TestClientHistoryService_Record_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockShareHistoryRepository(ctrl)
	svc := NewClientHistoryService(repo, logger.Nop())

	repo.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).Return(errors.New("locked"))

	err := svc.Record(context.Background(), models.ShareResult{
		URL:           "https://host/secret/abc",
		Reference:     "abc",
		ExpireMinutes: 10,
		MaxViews:      3,
		CreatedAt:     fixedNow,
		ExpiresAt:     fixedNow.Add(10 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrHistoryNotRecorded)
}

func TestClientHistoryService_Record_InvalidEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockShareHistoryRepository(ctrl)
	svc := NewClientHistoryService(repo, logger.Nop())

	repo.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Record(context.Background(), models.ShareResult{URL: "https://host/secret/abc", Reference: "abc"})
	assert.ErrorIs(t, err, ErrHistoryNotRecorded)
	assert.ErrorIs(t, err, validators.ErrInvalidExpireMinutes)
}

func TestClientHistoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockShareHistoryRepository(ctrl)
	svc := NewClientHistoryService(repo, logger.Nop())

	entries := []models.ShareHistoryEntry{{ID: "1"}, {ID: "2"}}
	repo.EXPECT().ListEntries(gomock.Any()).Return(entries, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	repo.EXPECT().ListEntries(gomock.Any()).Return(nil, errors.New("locked"))
	_, err = svc.List(context.Background())
	assert.Error(t, err)
}

func TestClientHistoryService_Prune(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockShareHistoryRepository(ctrl)
	svc := NewClientHistoryService(repo, logger.Nop())

	repo.EXPECT().DeleteExpired(gomock.Any(), fixedNow).Return(int64(2), nil)
	removed, err := svc.Prune(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	repo.EXPECT().DeleteExpired(gomock.Any(), fixedNow).Return(int64(0), errors.New("locked"))
	_, err = svc.Prune(context.Background(), fixedNow)
	assert.Error(t, err)
}

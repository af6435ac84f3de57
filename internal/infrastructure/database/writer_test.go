package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"fotkaj/internal/domain/model"
	repository "fotkaj/internal/domain/repository/database"
)

func validMedia(id, hash string) *model.Media {
	return &model.Media{
		ID:          id,
		StorageKey:  "event/wedding2025/wedding/" + id + ".jpg",
		Uploader:    "385991234567",
		Mime:        "image/jpeg",
		Size:        50000,
		ContentHash: hash,
		EventSlug:   "wedding2025",
		AlbumSlug:   "wedding",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t)

	writer := NewMediaWriter(db)

	baseMedia := validMedia("media-1", strings.Repeat("a", 64))

	tests := []struct {
		name        string
		modify      func(m *model.Media)
		expectError string
	}{
		{
			name:        "valid media",
			modify:      func(_ *model.Media) {},
			expectError: "",
		},
		{
			name: "missing required uploader",
			modify: func(m *model.Media) {
				m.ID = "media-2"
				m.ContentHash = strings.Repeat("b", 64)
				m.Uploader = ""
			},
			expectError: "Document failed validation",
		},
		{
			name: "content hash not a sha256 digest",
			modify: func(m *model.Media) {
				m.ID = "media-3"
				m.ContentHash = "short"
			},
			expectError: "Document failed validation",
		},
		{
			name: "uppercase hex rejected",
			modify: func(m *model.Media) {
				m.ID = "media-4"
				m.ContentHash = strings.Repeat("A", 64)
			},
			expectError: "Document failed validation",
		},
		{
			name: "duplicate content hash",
			modify: func(m *model.Media) {
				m.ID = "media-5"
			},
			expectError: "duplicate key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copyMedia := *baseMedia
			tt.modify(&copyMedia)

			err := writer.Write(context.Background(), &copyMedia)

			if tt.expectError == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectError)
			}
		})
	}

	t.Run("duplicate insert is a duplicate key error", func(t *testing.T) {
		dup := validMedia("media-6", strings.Repeat("a", 64))
		err := writer.Write(context.Background(), dup)
		require.Error(t, err)
		require.True(t, mongo.IsDuplicateKeyError(err))
	})
}

func TestGetByHash(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t)

	writer := NewMediaWriter(db)
	retriever := NewMediaRetriever(db)

	hash := strings.Repeat("c", 64)
	stored := validMedia("media-10", hash)
	require.NoError(t, writer.Write(context.Background(), stored))

	t.Run("existing hash", func(t *testing.T) {
		got, err := retriever.GetByHash(context.Background(), hash)
		require.NoError(t, err)
		require.Equal(t, stored.ID, got.ID)
		require.Equal(t, stored.StorageKey, got.StorageKey)
		require.Equal(t, stored.Size, got.Size)
	})

	t.Run("unknown hash", func(t *testing.T) {
		_, err := retriever.GetByHash(context.Background(), strings.Repeat("d", 64))
		require.ErrorIs(t, err, repository.ErrMediaNotFound)
	})
}

func TestRemoveByID(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t)

	writer := NewMediaWriter(db)
	retriever := NewMediaRetriever(db)
	remover := NewMediaRemover(db)

	hash := strings.Repeat("e", 64)
	stored := validMedia("media-20", hash)
	require.NoError(t, writer.Write(context.Background(), stored))

	require.NoError(t, remover.RemoveByID(context.Background(), stored.ID))

	_, err := retriever.GetByHash(context.Background(), hash)
	require.ErrorIs(t, err, repository.ErrMediaNotFound)

	t.Run("removing a missing id is not an error", func(t *testing.T) {
		require.NoError(t, remover.RemoveByID(context.Background(), "media-404"))
	})
}

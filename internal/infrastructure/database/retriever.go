package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fotkaj/internal/domain/model"
	repository "fotkaj/internal/domain/repository/database"
)

type MediaRetriever struct {
	db *Database
}

func NewMediaRetriever(db *Database) *MediaRetriever {
	return &MediaRetriever{db: db}
}

func (r *MediaRetriever) GetByHash(ctx context.Context, contentHash string) (*model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(MediaCollection)

	var media model.Media
	if err := coll.FindOne(ctx, bson.M{"content_hash": contentHash}).Decode(&media); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, err
	}

	return &media, nil
}

package database

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fotkaj/internal/domain/model"
	repository "fotkaj/internal/domain/repository/database"
)

type AlbumDirectory struct {
	db *Database
}

func NewAlbumDirectory(db *Database) *AlbumDirectory {
	return &AlbumDirectory{db: db}
}

// GetByCode is case-insensitive: codes are stored uppercase and lookups
// canonicalize before querying.
func (d *AlbumDirectory) GetByCode(ctx context.Context, code string) (*model.Album, error) {
	return d.findOne(ctx, bson.M{"code": strings.ToUpper(code)})
}

func (d *AlbumDirectory) GetByID(ctx context.Context, id string) (*model.Album, error) {
	return d.findOne(ctx, bson.M{"_id": id})
}

func (d *AlbumDirectory) findOne(ctx context.Context, filter bson.M) (*model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, d.db.QueryTimeout)
	defer cancel()

	coll := d.db.Client.Database(d.db.DBName).Collection(AlbumCollection)

	var album model.Album
	if err := coll.FindOne(ctx, filter).Decode(&album); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAlbumNotFound
		}

		return nil, err
	}

	return &album, nil
}

package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type MediaRemover struct {
	db *Database
}

func NewMediaRemover(db *Database) *MediaRemover {
	return &MediaRemover{db: db}
}

func (r *MediaRemover) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(MediaCollection)
	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})

	return err
}

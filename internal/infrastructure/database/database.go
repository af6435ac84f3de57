package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AlbumCollection = "albums"
	MediaCollection = "media"
)

type Config struct {
	URI               string
	DBName            string `yaml:"db_name"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"`
}

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initAlbumCollection(db); err != nil {
		return nil, err
	}

	if err := initMediaCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initAlbumCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	coll := db.Client.Database(db.DBName).Collection(AlbumCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func initMediaCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": MediaCollection})
	if err != nil {
		return err
	}

	if len(collections) == 0 {
		collOpts := options.CreateCollection().SetValidator(bson.M{
			"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"_id", "storage_key", "uploader_msisdn", "mime", "content_hash", "event_slug", "album_slug"},
				"properties": bson.M{
					"_id":             bson.M{"bsonType": "string"},
					"storage_key": bson.M{"bsonType": "string"},
					"uploader_msisdn": bson.M{
						"bsonType":    "string",
						"pattern":     "^[0-9]{6,15}$",
						"description": "must be a digits-only MSISDN",
					},
					"mime":            bson.M{"bsonType": "string"},
					"bytes":           bson.M{"bsonType": "long"},
					"content_hash": bson.M{
						"bsonType":    "string",
						"pattern":     "^[a-f0-9]{64}$",
						"description": "must be a 64-character hex SHA-256 digest",
					},
					"event_slug": bson.M{"bsonType": "string"},
					"album_slug": bson.M{"bsonType": "string"},
					"created_at": bson.M{"bsonType": "date"},
				},
			},
		})

		if err := db.Client.Database(db.DBName).CreateCollection(ctx, MediaCollection, collOpts); err != nil {
			return err
		}
	}

	coll := db.Client.Database(db.DBName).Collection(MediaCollection)

	// Global dedup across albums hangs off this unique index.
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "content_hash", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event_slug", Value: 1}, {Key: "album_slug", Value: 1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cois1702/trio-homework-app/app/models"
)

// settingsDocID is the fixed _id of the singleton settings document.
const settingsDocID = "school"

// NewMongo returns a Store backed by a MongoDB database, one collection per
// record type, documents keyed by _id. An unreachable server is a hard
// error; backend selection happens once at startup, never as a fallback.
func NewMongo(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to reach mongodb: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		Teachers:      mongoCollection[models.Teacher]{coll: db.Collection("teachers")},
		Tasks:         mongoCollection[models.Task]{coll: db.Collection("tasks")},
		Announcements: mongoCollection[models.Announcement]{coll: db.Collection("announcements")},
		Uploads:       mongoCollection[models.Upload]{coll: db.Collection("uploads")},
		Settings:      mongoSettings{coll: db.Collection("settings")},
		Backend:       "mongo",
		closeFn:       client.Disconnect,
	}, nil
}

type mongoCollection[T Doc] struct {
	coll *mongo.Collection
}

func (m mongoCollection[T]) List(ctx context.Context) ([]T, error) {
	cur, err := m.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var items []T
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m mongoCollection[T]) Insert(ctx context.Context, item T) error {
	_, err := m.coll.InsertOne(ctx, item)
	return err
}

func (m mongoCollection[T]) Replace(ctx context.Context, id string, item T) error {
	// MatchedCount 0 means the record is gone; that is a silent no-op.
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": id}, item)
	return err
}

func (m mongoCollection[T]) Delete(ctx context.Context, id string) error {
	// DeletedCount 0 is fine; only an operation failure surfaces.
	_, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

type mongoSettings struct {
	coll *mongo.Collection
}

func (m mongoSettings) Get(ctx context.Context) (models.SchoolSettings, error) {
	var doc struct {
		ID                    string `bson:"_id"`
		models.SchoolSettings `bson:",inline"`
	}
	err := m.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Upsert with $setOnInsert so two concurrent first reads cannot
		// race a bare insert into a duplicate-key error on the fixed _id,
		// and so the loser cannot clobber a write that landed in between.
		defaults := models.DefaultSettings()
		_, err := m.coll.UpdateOne(ctx, bson.M{"_id": settingsDocID}, bson.M{
			"$setOnInsert": bson.M{
				"schoolName": defaults.SchoolName,
				"schoolLogo": defaults.SchoolLogo,
			},
		}, options.Update().SetUpsert(true))
		if err != nil {
			return models.SchoolSettings{}, err
		}
		return defaults, nil
	}
	if err != nil {
		return models.SchoolSettings{}, err
	}
	return doc.SchoolSettings, nil
}

func (m mongoSettings) Update(ctx context.Context, patch models.SettingsPatch) (models.SchoolSettings, error) {
	current, err := m.Get(ctx)
	if err != nil {
		return models.SchoolSettings{}, err
	}
	merged := current.Apply(patch)
	_, err = m.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, bson.M{
		"_id":        settingsDocID,
		"schoolName": merged.SchoolName,
		"schoolLogo": merged.SchoolLogo,
	}, options.Replace().SetUpsert(true))
	if err != nil {
		return models.SchoolSettings{}, err
	}
	return merged, nil
}

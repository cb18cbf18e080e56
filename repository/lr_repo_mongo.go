package repository

import (
	"context"
	"errors"
	"time"

	"sskcargo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "sskcargo"

type MongoLRRepo struct {
	DB *mongo.Client
}

func NewMongoLRRepo(db *mongo.Client) *MongoLRRepo {
	return &MongoLRRepo{DB: db}
}

func (r *MongoLRRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("lorry_receipt")
}

func (r *MongoLRRepo) Save(lr *models.LorryReceipt) error {
	ctx := context.Background()

	if lr.CreatedAt.IsZero() {
		lr.CreatedAt = time.Now().UTC()
	}
	// No sequences in Mongo; a fresh receipt gets a time-based id so the
	// document keeps the same numeric _id shape as the Postgres rows.
	if lr.ID == 0 {
		lr.ID = time.Now().UnixNano()
	}

	var existing models.LorryReceipt
	err := r.collection().
		FindOne(ctx, bson.M{"owner_id": lr.OwnerID, "lr_no": lr.LRNo}).
		Decode(&existing)
	switch {
	case err == nil:
		lr.ID = existing.ID
		lr.CreatedAt = existing.CreatedAt
		now := time.Now().UTC()
		lr.UpdatedAt = &now
		if lr.PODURL == nil {
			lr.PODURL = existing.PODURL
		}
		if lr.StatusUpdatedAt == nil {
			lr.StatusUpdatedAt = existing.StatusUpdatedAt
		}
	case errors.Is(err, mongo.ErrNoDocuments):
		// fresh insert
	default:
		return err
	}

	_, err = r.collection().ReplaceOne(ctx,
		bson.M{"owner_id": lr.OwnerID, "lr_no": lr.LRNo},
		lr,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoLRRepo) List(ownerID int64) ([]*models.LorryReceipt, error) {
	ctx := context.Background()

	cur, err := r.collection().Find(ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.LorryReceipt
	for cur.Next(ctx) {
		var lr models.LorryReceipt
		if err := cur.Decode(&lr); err != nil {
			return nil, err
		}
		out = append(out, &lr)
	}
	return out, cur.Err()
}

func (r *MongoLRRepo) GetByNo(ownerID int64, lrNo string) (*models.LorryReceipt, error) {
	ctx := context.Background()

	var lr models.LorryReceipt
	err := r.collection().
		FindOne(ctx, bson.M{"owner_id": ownerID, "lr_no": lrNo}).
		Decode(&lr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *MongoLRRepo) ListNos(ownerID int64) ([]string, error) {
	ctx := context.Background()

	cur, err := r.collection().Find(ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetProjection(bson.M{"lr_no": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var nos []string
	for cur.Next(ctx) {
		var doc struct {
			LRNo string `bson:"lr_no"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		nos = append(nos, doc.LRNo)
	}
	return nos, cur.Err()
}

func (r *MongoLRRepo) Delete(ownerID int64, lrNo string) (string, error) {
	ctx := context.Background()

	var lr models.LorryReceipt
	err := r.collection().
		FindOneAndDelete(ctx, bson.M{"owner_id": ownerID, "lr_no": lrNo}).
		Decode(&lr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if lr.PODURL != nil {
		return *lr.PODURL, nil
	}
	return "", nil
}

func (r *MongoLRRepo) UpdateStatus(ownerID int64, lrNo, status string, at time.Time) error {
	ctx := context.Background()

	_, err := r.collection().UpdateOne(ctx,
		bson.M{"owner_id": ownerID, "lr_no": lrNo},
		bson.M{"$set": bson.M{
			"status":            status,
			"status_updated_at": at,
			"updated_at":        at,
		}},
	)
	return err
}

func (r *MongoLRRepo) UpdatePOD(ownerID int64, lrNo string, url *string) error {
	ctx := context.Background()

	set := bson.M{"updated_at": time.Now().UTC()}
	if url != nil {
		set["pod_url"] = *url
	}
	update := bson.M{"$set": set}
	if url == nil {
		update["$unset"] = bson.M{"pod_url": ""}
	}

	_, err := r.collection().UpdateOne(ctx,
		bson.M{"owner_id": ownerID, "lr_no": lrNo},
		update,
	)
	return err
}

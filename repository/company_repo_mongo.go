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

type MongoCompanyRepo struct {
	DB *mongo.Client
}

func NewMongoCompanyRepo(db *mongo.Client) *MongoCompanyRepo {
	return &MongoCompanyRepo{DB: db}
}

func (r *MongoCompanyRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("company_details")
}

func (r *MongoCompanyRepo) Save(details *models.CompanyDetails) error {
	ctx := context.Background()

	if details.CreatedAt.IsZero() {
		details.CreatedAt = time.Now().UTC()
	}
	if details.ID == 0 {
		details.ID = details.OwnerID
	}

	_, err := r.collection().ReplaceOne(ctx,
		bson.M{"owner_id": details.OwnerID},
		details,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoCompanyRepo) Get(ownerID int64) (*models.CompanyDetails, error) {
	ctx := context.Background()

	var details models.CompanyDetails
	err := r.collection().
		FindOne(ctx, bson.M{"owner_id": ownerID}).
		Decode(&details)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &details, nil
}

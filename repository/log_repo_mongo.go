package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"geetafreight/models"
)

type MongoLogRepo struct {
	DB *mongo.Client
}

func NewMongoLogRepo(db *mongo.Client) *MongoLogRepo {
	return &MongoLogRepo{DB: db}
}

func (r *MongoLogRepo) collection() *mongo.Collection {
	return r.DB.Database("geetafreight").Collection("processing_log")
}

func (r *MongoLogRepo) Append(entries []models.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	ctx := context.Background()
	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		if e.ProcessedAt.IsZero() {
			e.ProcessedAt = time.Now().UTC()
		}
		docs = append(docs, bson.M{
			"job_no":       e.JobNo,
			"be_no":        e.BENo,
			"vehicle_no":   e.VehicleNo,
			"processed_at": e.ProcessedAt,
		})
	}

	_, err := r.collection().InsertMany(ctx, docs)
	return err
}

func (r *MongoLogRepo) QueryByDate(date time.Time) ([]models.LogEntry, error) {
	ctx := context.Background()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := bson.M{"processed_at": bson.M{"$gte": dayStart, "$lt": dayEnd}}
	cur, err := r.collection().Find(ctx, filter, options.Find().SetSort(bson.M{"processed_at": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.LogEntry{}
	for cur.Next(ctx) {
		var doc struct {
			JobNo       string    `bson:"job_no"`
			BENo        string    `bson:"be_no"`
			VehicleNo   string    `bson:"vehicle_no"`
			ProcessedAt time.Time `bson:"processed_at"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, models.LogEntry{
			JobNo:       doc.JobNo,
			BENo:        doc.BENo,
			VehicleNo:   doc.VehicleNo,
			ProcessedAt: doc.ProcessedAt,
		})
	}
	return out, cur.Err()
}

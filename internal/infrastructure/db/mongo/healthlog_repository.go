package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/breatheright/health-system/internal/core/domain"
)

const (
	logsCollection     = "health_logs"
	countersCollection = "counters"
	logCounterKey      = "health_log_id"
)

// HealthLogRepository is the Mongo-backed symptom log store. Sequential
// integer ids are allocated from a counters collection so the wire contract
// matches the in-memory driver.
type HealthLogRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewHealthLogRepository(db *mongo.Database) *HealthLogRepository {
	return &HealthLogRepository{
		coll:     db.Collection(logsCollection),
		counters: db.Collection(countersCollection),
	}
}

func (r *HealthLogRepository) Create(ctx context.Context, log *domain.HealthLog) (*domain.HealthLog, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	clone := *log
	clone.ID = id
	if _, err := r.coll.InsertOne(ctx, clone); err != nil {
		return nil, fmt.Errorf("insert health log: %w", err)
	}
	return &clone, nil
}

// ListByPatient returns the patient's logs newest-first.
func (r *HealthLogRepository) ListByPatient(ctx context.Context, patientID int64) ([]*domain.HealthLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list health logs: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.HealthLog, 0)
	for cur.Next(ctx) {
		var l domain.HealthLog
		if err := cur.Decode(&l); err != nil {
			return nil, fmt.Errorf("decode health log: %w", err)
		}
		out = append(out, &l)
	}
	return out, cur.Err()
}

// nextID atomically increments and returns the log id counter.
func (r *HealthLogRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": logCounterKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next health log id: %w", err)
	}
	return doc.Seq, nil
}

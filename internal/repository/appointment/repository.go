package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// ListScheduled returns scheduled and confirmed appointments with
// from <= scheduled_date < to, ordered by date, time slot and id.
func (r *repository) ListScheduled(ctx context.Context, from, to time.Time) ([]model.Appointment, error) {
	const op = "repository.ListScheduled"

	filter := bson.M{
		"scheduled_date": bson.M{"$gte": from, "$lt": to},
		"status": bson.M{"$in": lo.Map(model.SyncableAppointmentStatuses,
			func(s model.AppointmentStatus, _ int) string { return string(s) })},
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "scheduled_date", Value: 1},
		{Key: "time_slot", Value: 1},
		{Key: "_id", Value: 1},
	})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]model.Appointment, 0)
	for cur.Next(ctx) {
		var ent AppointmentEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, *EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

// EnsureIndexes creates the index used by ListScheduled.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "scheduled_date", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("repository.EnsureIndexes: %w", err)
	}
	return nil
}

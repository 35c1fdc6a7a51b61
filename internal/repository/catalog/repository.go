package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/platform/logger"
)

type repository struct {
	products *mongo.Collection
	units    *mongo.Collection
}

func NewCatalogRepository(products, units *mongo.Collection) *repository {
	return &repository{products: products, units: units}
}

// ProductsByIDs returns the found products keyed by id; missing ids are absent.
func (r *repository) ProductsByIDs(ctx context.Context, ids []string) (map[string]*model.Product, error) {
	const op = "repository.ProductsByIDs"

	ents, err := findAll[ProductEntity](ctx, r.products, bson.M{"_id": bson.M{"$in": lo.Uniq(ids)}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[string]*model.Product, len(ents))
	for i := range ents {
		out[ents[i].ID] = ProductToModel(&ents[i])
	}
	return out, nil
}

// UnitsByIDs returns the found units keyed by id with their product attached.
func (r *repository) UnitsByIDs(ctx context.Context, ids []string) (map[string]*model.InventoryUnit, error) {
	const op = "repository.UnitsByIDs"

	ents, err := findAll[UnitEntity](ctx, r.units, bson.M{"_id": bson.M{"$in": lo.Uniq(ids)}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	productIDs := lo.Uniq(lo.FilterMap(ents, func(e UnitEntity, _ int) (string, bool) {
		return e.ProductID, e.ProductID != ""
	}))

	products := map[string]*model.Product{}
	if len(productIDs) > 0 {
		if products, err = r.ProductsByIDs(ctx, productIDs); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	out := make(map[string]*model.InventoryUnit, len(ents))
	for i := range ents {
		u := UnitToModel(&ents[i])
		u.Product = products[u.ProductID]
		out[u.ID] = u
	}
	return out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor",
				logger.String("collection", coll.Name()),
				logger.ErrorF(cerr),
			)
		}
	}()

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

package repository

import (
	"time"

	catalog "github.com/ANGELZzz6/Hako-sub000/internal/repository/catalog"
)

type AppointmentEntity struct {
	ID            string       `bson:"_id"`
	UserID        string       `bson:"user_id"`
	ScheduledDate time.Time    `bson:"scheduled_date"`
	TimeSlot      string       `bson:"time_slot"`
	Status        string       `bson:"status"`
	Items         []ItemEntity `bson:"items_to_pickup"`
}

type ItemEntity struct {
	ID        string `bson:"item_id"`
	ProductID string `bson:"product_id,omitempty"`
	UnitID    string `bson:"unit_id,omitempty"`
	Name      string `bson:"name,omitempty"`
	Quantity  int    `bson:"quantity"`
	// Variants arrive as an ordered document or a list of name/value pairs.
	Variants any `bson:"variants,omitempty"`

	Dimensions         *catalog.DimensionsEntity `bson:"dimensions,omitempty"`
	ComputedDimensions *catalog.DimensionsEntity `bson:"computed_dimensions,omitempty"`
	Snapshot           *SnapshotEntity           `bson:"product_snapshot,omitempty"`
	OriginalProduct    *catalog.ProductEntity    `bson:"original_product,omitempty"`
}

type SnapshotEntity struct {
	ProductID  string                    `bson:"product_id"`
	Name       string                    `bson:"name"`
	Dimensions *catalog.DimensionsEntity `bson:"dimensions,omitempty"`
}

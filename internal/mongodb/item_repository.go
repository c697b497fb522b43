package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gustavuu/venice-orders/internal/domain"
	"github.com/Gustavuu/venice-orders/internal/port"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "order_items"

// orderItemsDocument is the one-per-order record holding the full item list.
type orderItemsDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	OrderID string             `bson:"order_id"`
	Items   []itemRecord       `bson:"items"`
}

type itemRecord struct {
	ProductID   string `bson:"product_id"`
	Description string `bson:"description"`
	Quantity    int    `bson:"quantity"`
	UnitPrice   string `bson:"unit_price"`
}

type itemRepository struct {
	collection *mongo.Collection
}

func NewItemStore(db *mongo.Database) port.ItemStore {
	return &itemRepository{collection: db.Collection(CollectionName)}
}

// SaveItems writes a single document with the full list. An empty list
// writes nothing: an order without items has no record here at all.
func (r *itemRepository) SaveItems(ctx context.Context, orderID uuid.UUID, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	doc := mapItemsToDocument(orderID, items)

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return &domain.PersistenceError{Store: "mongo", Op: "insert order items", Err: err}
	}

	return nil
}

// GetItemsByOrderID treats a missing document as zero items, not an error.
func (r *itemRepository) GetItemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	filter := bson.M{"order_id": orderID.String()}

	var doc orderItemsDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Store: "mongo", Op: "find order items", Err: err}
	}

	items, err := mapDocumentToItems(doc)
	if err != nil {
		return nil, fmt.Errorf("mapDocumentToItems: %w", err)
	}

	return items, nil
}

func mapItemsToDocument(orderID uuid.UUID, items []domain.OrderItem) orderItemsDocument {
	records := make([]itemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, itemRecord{
			ProductID:   item.ProductID.String(),
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
		})
	}

	return orderItemsDocument{
		OrderID: orderID.String(),
		Items:   records,
	}
}

func mapDocumentToItems(doc orderItemsDocument) ([]domain.OrderItem, error) {
	var items []domain.OrderItem

	for _, record := range doc.Items {
		item, err := mapRecordToItem(record)
		if err != nil {
			return nil, fmt.Errorf("mapRecordToItem: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func mapRecordToItem(record itemRecord) (domain.OrderItem, error) {
	productID, err := uuid.Parse(record.ProductID)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("uuid.Parse[%s]: %w", record.ProductID, err)
	}

	unitPrice, err := decimal.NewFromString(record.UnitPrice)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("decimal.NewFromString[%s]: %w", record.UnitPrice, err)
	}

	return domain.OrderItem{
		ProductID:   productID,
		Description: record.Description,
		Quantity:    record.Quantity,
		UnitPrice:   unitPrice,
	}, nil
}

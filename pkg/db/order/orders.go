package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storelane/store-backend/pkg/db"
)

func (dbService *OrderDBService) CreateOrder(order *Order) (*Order, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = ORDER_STATUS_PENDING
	}
	order.ComputeTotals()

	res, err := dbService.collectionOrders().InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (dbService *OrderDBService) GetOrderByID(id string) (*Order, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var order Order
	err = dbService.collectionOrders().FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// get paginated set of orders, newest first
func (dbService *OrderDBService) GetOrders(filter bson.M, page int64, limit int64) (orders []Order, paginationInfo *db.PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	count, err := dbService.collectionOrders().CountDocuments(ctx, filter)
	if err != nil {
		return orders, paginationInfo, err
	}

	paginationInfo = db.PrepPaginationInfos(
		count,
		page,
		limit,
	)

	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find()
	opts.SetSort(bson.M{"createdAt": -1})
	opts.SetSkip(skip)
	opts.SetLimit(paginationInfo.PageSize)

	cursor, err := dbService.collectionOrders().Find(ctx, filter, opts)
	if err != nil {
		return orders, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &orders)
	return orders, paginationInfo, err
}

// UpdateOrderStatus applies a status change after checking it is a legal
// transition from the currently stored status.
func (dbService *OrderDBService) UpdateOrderStatus(id string, newStatus string) (*Order, error) {
	current, err := dbService.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransitionStatus(current.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	var updated Order
	err = dbService.collectionOrders().FindOneAndUpdate(
		ctx,
		bson.M{"_id": current.ID, "status": current.Status},
		bson.M{"$set": bson.M{
			"status":    newStatus,
			"updatedAt": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

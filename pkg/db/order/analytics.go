package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DailyRevenue struct {
	Date       string `bson:"_id" json:"date"`
	Revenue    int64  `bson:"revenue" json:"revenue"`
	OrderCount int64  `bson:"orderCount" json:"orderCount"`
}

type TopProduct struct {
	ProductID    primitive.ObjectID `bson:"_id" json:"productId"`
	ProductName  string             `bson:"productName" json:"productName"`
	UnitsSold    int64              `bson:"unitsSold" json:"unitsSold"`
	TotalRevenue int64              `bson:"totalRevenue" json:"totalRevenue"`
}

// statuses that count towards revenue, cancelled and still pending orders
// are excluded
var revenueStatuses = []string{
	ORDER_STATUS_PAID,
	ORDER_STATUS_SHIPPED,
	ORDER_STATUS_DELIVERED,
}

func (dbService *OrderDBService) GetDailyRevenue(from time.Time, until time.Time) (results []DailyRevenue, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    bson.M{"$in": revenueStatuses},
			"createdAt": bson.M{"$gte": from, "$lt": until},
		}},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$createdAt",
			}},
			"revenue":    bson.M{"$sum": "$total"},
			"orderCount": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := dbService.collectionOrders().Aggregate(ctx, pipeline)
	if err != nil {
		return results, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &results)
	return results, err
}

func (dbService *OrderDBService) GetTopProducts(from time.Time, until time.Time, limit int64) (results []TopProduct, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if limit < 1 {
		limit = 10
	}

	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    bson.M{"$in": revenueStatuses},
			"createdAt": bson.M{"$gte": from, "$lt": until},
		}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":          "$items.productId",
			"productName":  bson.M{"$first": "$items.productName"},
			"unitsSold":    bson.M{"$sum": "$items.quantity"},
			"totalRevenue": bson.M{"$sum": "$items.subtotal"},
		}},
		{"$sort": bson.M{"unitsSold": -1}},
		{"$limit": limit},
	}

	cursor, err := dbService.collectionOrders().Aggregate(ctx, pipeline)
	if err != nil {
		return results, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &results)
	return results, err
}

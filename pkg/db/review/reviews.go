package review

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storelane/store-backend/pkg/db"
)

// CreateReview stores a new review, it always starts out pending so it never
// shows up publicly before moderation.
func (dbService *ReviewDBService) CreateReview(review *Review) (*Review, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if !IsValidRating(review.Rating) {
		return nil, errors.New("rating must be between 1 and 5")
	}

	review.Status = REVIEW_STATUS_PENDING
	review.CreatedAt = time.Now()
	review.ModeratedAt = time.Time{}

	res, err := dbService.collectionReviews().InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return review, nil
}

func (dbService *ReviewDBService) GetReviewByID(id string) (*Review, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var review Review
	err = dbService.collectionReviews().FindOne(ctx, bson.M{"_id": objID}).Decode(&review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// get paginated set of reviews, newest first
func (dbService *ReviewDBService) GetReviews(filter bson.M, page int64, limit int64) (reviews []Review, paginationInfo *db.PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	count, err := dbService.collectionReviews().CountDocuments(ctx, filter)
	if err != nil {
		return reviews, paginationInfo, err
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

	cursor, err := dbService.collectionReviews().Find(ctx, filter, opts)
	if err != nil {
		return reviews, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &reviews)
	return reviews, paginationInfo, err
}

func (dbService *ReviewDBService) ModerateReview(id string, newStatus string) (*Review, error) {
	if newStatus != REVIEW_STATUS_APPROVED && newStatus != REVIEW_STATUS_REJECTED {
		return nil, errors.New("moderation status must be approved or rejected")
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var updated Review
	err = dbService.collectionReviews().FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"status":      newStatus,
			"moderatedAt": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (dbService *ReviewDBService) DeleteReview(id string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = dbService.collectionReviews().DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

// GetProductRating aggregates the approved reviews of one product.
func (dbService *ReviewDBService) GetProductRating(productID primitive.ObjectID) (*ProductRating, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"productId": productID,
			"status":    REVIEW_STATUS_APPROVED,
		}},
		{"$group": bson.M{
			"_id":           "$productId",
			"averageRating": bson.M{"$avg": "$rating"},
			"reviewCount":   bson.M{"$sum": 1},
		}},
	}

	cursor, err := dbService.collectionReviews().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []ProductRating
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) < 1 {
		return &ProductRating{ProductID: productID}, nil
	}
	return &results[0], nil
}

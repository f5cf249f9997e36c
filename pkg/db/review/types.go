package review

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	REVIEW_STATUS_PENDING  = "pending"
	REVIEW_STATUS_APPROVED = "approved"
	REVIEW_STATUS_REJECTED = "rejected"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`

	AuthorName string `bson:"authorName" json:"authorName"`
	// rating between 1 and 5
	Rating int    `bson:"rating" json:"rating"`
	Text   string `bson:"text,omitempty" json:"text,omitempty"`

	Status string `bson:"status" json:"status"`

	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	ModeratedAt time.Time `bson:"moderatedAt,omitempty" json:"moderatedAt,omitempty"`
}

type ProductRating struct {
	ProductID     primitive.ObjectID `bson:"_id" json:"productId"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
	ReviewCount   int64              `bson:"reviewCount" json:"reviewCount"`
}

func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func IsValidReviewStatus(status string) bool {
	switch status {
	case REVIEW_STATUS_PENDING, REVIEW_STATUS_APPROVED, REVIEW_STATUS_REJECTED:
		return true
	}
	return false
}

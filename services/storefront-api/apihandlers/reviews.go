package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/storelane/store-backend/pkg/apihelpers"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
	reviewDB "github.com/storelane/store-backend/pkg/db/review"
)

const (
	MAX_REVIEW_TEXT_LEN = 5000
	MAX_AUTHOR_NAME_LEN = 100
)

func (h *HttpEndpoints) AddReviewAPI(rg *gin.RouterGroup) {
	reviewsGroup := rg.Group("/catalog/products/:slug/reviews")
	{
		reviewsGroup.GET("", h.getApprovedReviews)
		reviewsGroup.POST("", mw.RequirePayload(), h.submitReview)
	}
}

func (h *HttpEndpoints) getApprovedReviews(c *gin.Context) {
	product, err := h.catalogDBConn.GetProductBySlug(c.Param("slug"))
	if err != nil || !product.IsPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := bson.M{
		"productId": product.ID,
		"status":    reviewDB.REVIEW_STATUS_APPROVED,
	}
	reviews, paginationInfo, err := h.reviewDBConn.GetReviews(filter, query.Page, query.Limit)
	if err != nil {
		slog.Error("failed to fetch reviews", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":    reviews,
		"pagination": paginationInfo,
	})
}

type SubmitReviewReq struct {
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
}

func (h *HttpEndpoints) submitReview(c *gin.Context) {
	product, err := h.catalogDBConn.GetProductBySlug(c.Param("slug"))
	if err != nil || !product.IsPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	var req SubmitReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.AuthorName = strings.TrimSpace(req.AuthorName)
	if req.AuthorName == "" || len(req.AuthorName) > MAX_AUTHOR_NAME_LEN {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid author name"})
		return
	}
	if !reviewDB.IsValidRating(req.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	if len(req.Text) > MAX_REVIEW_TEXT_LEN {
		c.JSON(http.StatusBadRequest, gin.H{"error": "review text too long"})
		return
	}

	created, err := h.reviewDBConn.CreateReview(&reviewDB.Review{
		ProductID:  product.ID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Text:       req.Text,
	})
	if err != nil {
		slog.Error("failed to create review", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	slog.Info("review submitted", slog.String("reviewID", created.ID.Hex()), slog.String("productID", product.ID.Hex()))
	c.JSON(http.StatusCreated, gin.H{"review": created})
}

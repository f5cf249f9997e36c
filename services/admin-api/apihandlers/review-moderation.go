package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	"github.com/storelane/store-backend/pkg/apihelpers"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
	reviewDB "github.com/storelane/store-backend/pkg/db/review"
)

func (h *HttpEndpoints) AddReviewModerationAPI(rg *gin.RouterGroup) {
	reviewsGroup := rg.Group("/reviews")
	reviewsGroup.Use(mw.AdminAuthMiddleware(h.guard))
	reviewsGroup.Use(mw.RequirePermission(adminuser.PERMISSION_REVIEWS_MODERATE))
	{
		reviewsGroup.GET("", h.getReviewsForModeration)
		reviewsGroup.PUT("/:reviewID/status", mw.RequirePayload(), h.moderateReview)
		reviewsGroup.DELETE("/:reviewID", h.deleteReview)
	}
}

func (h *HttpEndpoints) getReviewsForModeration(c *gin.Context) {
	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("failed to parse query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := c.DefaultQuery("status", reviewDB.REVIEW_STATUS_PENDING)
	if !reviewDB.IsValidReviewStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review status"})
		return
	}

	reviews, paginationInfo, err := h.reviewDBConn.GetReviews(bson.M{"status": status}, query.Page, query.Limit)
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

type ModerateReviewReq struct {
	Status string `json:"status"`
}

func (h *HttpEndpoints) moderateReview(c *gin.Context) {
	reviewID := c.Param("reviewID")

	var req ModerateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.reviewDBConn.ModerateReview(reviewID, req.Status)
	if err != nil {
		slog.Error("failed to moderate review", slog.String("reviewID", reviewID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to moderate review"})
		return
	}

	slog.Info("review moderated", slog.String("reviewID", reviewID), slog.String("status", updated.Status))
	c.JSON(http.StatusOK, gin.H{"review": updated})
}

func (h *HttpEndpoints) deleteReview(c *gin.Context) {
	reviewID := c.Param("reviewID")
	if err := h.reviewDBConn.DeleteReview(reviewID); err != nil {
		slog.Error("failed to delete review", slog.String("reviewID", reviewID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}
	slog.Info("review deleted", slog.String("reviewID", reviewID))
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

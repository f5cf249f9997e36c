package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/storelane/store-backend/pkg/apihelpers"
)

func (h *HttpEndpoints) AddCatalogAPI(rg *gin.RouterGroup) {
	catalogGroup := rg.Group("/catalog")
	{
		catalogGroup.GET("/products", h.getPublishedProducts)
		catalogGroup.GET("/products/:slug", h.getPublishedProduct)
		catalogGroup.GET("/categories", h.getCategories)
	}
}

// getPublishedProducts lists published products only, optionally filtered by
// category slug.
func (h *HttpEndpoints) getPublishedProducts(c *gin.Context) {
	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("failed to parse query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := bson.M{"isPublished": true}
	if categorySlug := c.DefaultQuery("category", ""); categorySlug != "" {
		category, err := h.catalogDBConn.GetCategoryBySlug(categorySlug)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		filter["categoryId"] = category.ID
	}

	sort := bson.M{"createdAt": -1}
	if len(query.Sort) > 0 {
		sort = query.Sort
	}

	products, paginationInfo, err := h.catalogDBConn.GetProducts(filter, sort, query.Page, query.Limit)
	if err != nil {
		slog.Error("failed to fetch products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": paginationInfo,
	})
}

func (h *HttpEndpoints) getPublishedProduct(c *gin.Context) {
	product, err := h.catalogDBConn.GetProductBySlug(c.Param("slug"))
	if err != nil || !product.IsPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	rating, err := h.reviewDBConn.GetProductRating(product.ID)
	if err != nil {
		slog.Error("failed to fetch product rating", slog.String("productID", product.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"rating":  rating,
	})
}

func (h *HttpEndpoints) getCategories(c *gin.Context) {
	categories, err := h.catalogDBConn.GetAllCategories()
	if err != nil {
		slog.Error("failed to fetch categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

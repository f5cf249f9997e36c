package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	"github.com/storelane/store-backend/pkg/apihelpers"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
	catalogDB "github.com/storelane/store-backend/pkg/db/catalog"
	"github.com/storelane/store-backend/pkg/slug"
)

func (h *HttpEndpoints) AddCatalogManagementAPI(rg *gin.RouterGroup) {
	catalogGroup := rg.Group("/catalog")
	catalogGroup.Use(mw.AdminAuthMiddleware(h.guard))

	productsGroup := catalogGroup.Group("/products")
	{
		productsGroup.GET("", mw.RequirePermission(adminuser.PERMISSION_PRODUCTS_READ), h.getProducts)
		productsGroup.GET("/:productID", mw.RequirePermission(adminuser.PERMISSION_PRODUCTS_READ), h.getProduct)
		productsGroup.POST("", mw.RequirePermission(adminuser.PERMISSION_PRODUCTS_UPDATE), mw.RequirePayload(), h.createProduct)
		productsGroup.PUT("/:productID", mw.RequirePermission(adminuser.PERMISSION_PRODUCTS_UPDATE), mw.RequirePayload(), h.updateProduct)
		productsGroup.DELETE("/:productID", mw.RequirePermission(adminuser.PERMISSION_PRODUCTS_UPDATE), h.deleteProduct)
	}

	categoriesGroup := catalogGroup.Group("/categories")
	{
		categoriesGroup.GET("", mw.RequirePermission(adminuser.PERMISSION_PRODUCTS_READ), h.getCategories)
		categoriesGroup.POST("", mw.RequirePermission(adminuser.PERMISSION_CATEGORIES_UPDATE), mw.RequirePayload(), h.createCategory)
		categoriesGroup.PUT("/:categoryID", mw.RequirePermission(adminuser.PERMISSION_CATEGORIES_UPDATE), mw.RequirePayload(), h.updateCategory)
		categoriesGroup.DELETE("/:categoryID", mw.RequirePermission(adminuser.PERMISSION_CATEGORIES_UPDATE), h.deleteCategory)
	}
}

func (h *HttpEndpoints) getProducts(c *gin.Context) {
	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("failed to parse query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, paginationInfo, err := h.catalogDBConn.GetProducts(query.Filter, query.Sort, query.Page, query.Limit)
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

func (h *HttpEndpoints) getProduct(c *gin.Context) {
	product, err := h.catalogDBConn.GetProductByID(c.Param("productID"))
	if err != nil {
		slog.Warn("product not found", slog.String("productID", c.Param("productID")))
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

type ProductReq struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Stock       int64    `json:"stock"`
	CategoryID  string   `json:"categoryId"`
	Images      []string `json:"images"`
	IsPublished bool     `json:"isPublished"`
}

func (r ProductReq) toProduct() (*catalogDB.Product, error) {
	product := &catalogDB.Product{
		Name:        r.Name,
		Slug:        slug.From(r.Name),
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Images:      r.Images,
		IsPublished: r.IsPublished,
	}
	if r.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(r.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
	}
	return product, nil
}

func (r ProductReq) validate() string {
	if r.Name == "" {
		return "missing product name"
	}
	if slug.From(r.Name) == "" {
		return "product name cannot be converted into a slug"
	}
	if r.Price < 0 {
		return "price cannot be negative"
	}
	if r.Stock < 0 {
		return "stock cannot be negative"
	}
	return ""
}

func (h *HttpEndpoints) createProduct(c *gin.Context) {
	var req ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product, err := req.toProduct()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	created, err := h.catalogDBConn.CreateProduct(product)
	if err != nil {
		slog.Error("failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	slog.Info("product created", slog.String("productID", created.ID.Hex()), slog.String("slug", created.Slug))
	c.JSON(http.StatusCreated, gin.H{"product": created})
}

func (h *HttpEndpoints) updateProduct(c *gin.Context) {
	existing, err := h.catalogDBConn.GetProductByID(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	var req ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product, err := req.toProduct()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	updated, err := h.catalogDBConn.ReplaceProduct(product)
	if err != nil {
		slog.Error("failed to update product", slog.String("productID", existing.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": updated})
}

func (h *HttpEndpoints) deleteProduct(c *gin.Context) {
	productID := c.Param("productID")
	if err := h.catalogDBConn.DeleteProduct(productID); err != nil {
		slog.Error("failed to delete product", slog.String("productID", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	slog.Info("product deleted", slog.String("productID", productID))
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
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

type CategoryReq struct {
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

func (r CategoryReq) toCategory() (*catalogDB.Category, error) {
	category := &catalogDB.Category{
		Name: r.Name,
		Slug: slug.From(r.Name),
	}
	if r.ParentID != "" {
		parentID, err := primitive.ObjectIDFromHex(r.ParentID)
		if err != nil {
			return nil, err
		}
		category.ParentID = parentID
	}
	return category, nil
}

func (h *HttpEndpoints) createCategory(c *gin.Context) {
	var req CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || slug.From(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid category name"})
		return
	}

	category, err := req.toCategory()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent category id"})
		return
	}

	created, err := h.catalogDBConn.CreateCategory(category)
	if err != nil {
		slog.Error("failed to create category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}

	slog.Info("category created", slog.String("categoryID", created.ID.Hex()), slog.String("slug", created.Slug))
	c.JSON(http.StatusCreated, gin.H{"category": created})
}

func (h *HttpEndpoints) updateCategory(c *gin.Context) {
	existing, err := h.catalogDBConn.GetCategoryByID(c.Param("categoryID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	var req CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || slug.From(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid category name"})
		return
	}

	category, err := req.toCategory()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent category id"})
		return
	}
	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt

	updated, err := h.catalogDBConn.ReplaceCategory(category)
	if err != nil {
		slog.Error("failed to update category", slog.String("categoryID", existing.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": updated})
}

func (h *HttpEndpoints) deleteCategory(c *gin.Context) {
	categoryID := c.Param("categoryID")
	if err := h.catalogDBConn.DeleteCategory(categoryID); err != nil {
		slog.Error("failed to delete category", slog.String("categoryID", categoryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}
	slog.Info("category deleted", slog.String("categoryID", categoryID))
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

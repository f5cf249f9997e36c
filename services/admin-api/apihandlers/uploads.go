package apihandlers

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	adminuser "github.com/storelane/store-backend/pkg/admin-user"
	mw "github.com/storelane/store-backend/pkg/apihelpers/middlewares"
	"github.com/storelane/store-backend/pkg/utils"
)

const MAX_UPLOAD_SIZE = 10 << 20 // 10 MB

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

func (h *HttpEndpoints) AddUploadsAPI(rg *gin.RouterGroup) {
	uploadsGroup := rg.Group("/uploads")
	uploadsGroup.Use(mw.AdminAuthMiddleware(h.guard))
	uploadsGroup.Use(mw.RequirePermission(adminuser.PERMISSION_UPLOADS_CREATE))
	{
		uploadsGroup.POST("/images", h.uploadImage)
	}
}

// uploadImage stores a product image under a random name in the filestore.
// The content type is sniffed from the file content, the client supplied
// extension is ignored.
func (h *HttpEndpoints) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	if fileHeader.Size > MAX_UPLOAD_SIZE {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	contentType, err := utils.ValidateFileTypeFromContent(fileHeader, allowedImageTypes)
	if err != nil {
		slog.Warn("rejected image upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	filename := uuid.New().String() + utils.GetFileExtensionFromContentType(contentType)
	dst := filepath.Join(h.filestorePath, filename)

	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		slog.Error("failed to save uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	slog.Info("image uploaded", slog.String("filename", filename))
	c.JSON(http.StatusCreated, gin.H{"filename": filename})
}

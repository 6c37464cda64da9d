package handlers

import (
	"io"
	"net/http"

	"storefront/services/catalog"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CatalogHandler exposes the catalog passthrough reads and the admin
// service-offering upload.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

// List returns a handler serving the given catalog kind.
func (h *CatalogHandler) List(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := h.Service.List(c.Request.Context(), kind)
		if err != nil {
			h.Logger.Error("catalog list failed", zap.String("kind", kind), zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", err.Error())
			return
		}
		if docs == nil {
			docs = []bson.M{}
		}
		c.JSON(http.StatusOK, docs)
	}
}

// AddService handles POST /add-service: multipart name, description and image
// file, with the image persisted as raw binary.
func (h *CatalogHandler) AddService(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing image file", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unreadable image file", err.Error())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unreadable image file", err.Error())
		return
	}

	svc, err := h.Service.AddService(c.Request.Context(), name, description, image)
	if err != nil {
		h.Logger.Error("add service failed", zap.String("name", name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to add service", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": svc.ID, "name": svc.Name})
}

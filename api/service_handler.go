package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tidyhive/home-cleaning-backend/auth"
	"github.com/tidyhive/home-cleaning-backend/catalog"
)

type ServiceCatalog interface {
	GetService(ctx context.Context, id int64) (catalog.Service, error)
	ListServicesForCleaner(ctx context.Context, cleanerUserID string) ([]catalog.Service, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	UpsertService(ctx context.Context, cleanerUserID string, input catalog.ServiceInput) (catalog.Service, error)
	DeleteService(ctx context.Context, cleanerUserID string, id int64) error
}

type ServiceHandler struct {
	catalog ServiceCatalog
}

func NewServiceHandler(catalog ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (h *ServiceHandler) Register(rg *gin.RouterGroup) {
	cleanerOnly := CleanerOnly()
	rg.GET("", cleanerOnly, h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.POST("", cleanerOnly, h.Upsert)
	rg.DELETE("/:id", cleanerOnly, h.Delete)
}

func (h *ServiceHandler) RegisterCategories(rg *gin.RouterGroup) {
	rg.GET("", h.ListCategories)
}

func (h *ServiceHandler) ListMine(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)

	services, err := h.catalog.ListServicesForCleaner(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve services"})
		return
	}

	c.IndentedJSON(http.StatusOK, services)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	service, err := h.catalog.GetService(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, catalog.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, service)
}

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve categories"})
		return
	}

	c.IndentedJSON(http.StatusOK, categories)
}

func (h *ServiceHandler) Upsert(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)

	var input catalog.ServiceInput

	if err := c.BindJSON(&input); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	service, err := h.catalog.UpsertService(c.Request.Context(), user.ID, input)

	if err != nil {
		c.Error(err)
		if errors.Is(err, catalog.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		} else if errors.Is(err, catalog.ErrCleanerProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cleaner profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save service"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	err = h.catalog.DeleteService(c.Request.Context(), user.ID, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, catalog.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		} else if errors.Is(err, catalog.ErrCleanerProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cleaner profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "service deleted"})
}

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidyhive/home-cleaning-backend/auth"
	"github.com/tidyhive/home-cleaning-backend/shortlist"
)

type ShortlistStore interface {
	ListForHomeOwner(ctx context.Context, homeOwnerID string) ([]shortlist.Entry, error)
	Add(ctx context.Context, homeOwnerID, cleanerID string) (shortlist.Entry, error)
	Remove(ctx context.Context, homeOwnerID, cleanerID string) error
}

type ShortlistHandler struct {
	store ShortlistStore
}

func NewShortlistHandler(store ShortlistStore) *ShortlistHandler {
	return &ShortlistHandler{store: store}
}

func (h *ShortlistHandler) Register(rg *gin.RouterGroup) {
	homeOwnerOnly := HomeOwnerOnly()
	rg.GET("", homeOwnerOnly, h.List)
	rg.POST("", homeOwnerOnly, h.Add)
	rg.DELETE("/:cleanerId", homeOwnerOnly, h.Remove)
}

func (h *ShortlistHandler) List(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)

	entries, err := h.store.ListForHomeOwner(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve shortlist"})
		return
	}

	c.IndentedJSON(http.StatusOK, entries)
}

type addShortlistRequest struct {
	CleanerID string `json:"cleanerId"`
}

func (h *ShortlistHandler) Add(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)

	var req addShortlistRequest

	if err := c.BindJSON(&req); err != nil || len(req.CleanerID) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cleanerId is required"})
		return
	}

	entry, err := h.store.Add(c.Request.Context(), user.ID, req.CleanerID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, shortlist.ErrAlreadyShortlisted) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cleaner already shortlisted"})
		} else if errors.Is(err, shortlist.ErrCleanerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cleaner not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to shortlist"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ShortlistHandler) Remove(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)
	cleanerID := c.Param("cleanerId")

	err := h.store.Remove(c.Request.Context(), user.ID, cleanerID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, shortlist.ErrNotShortlisted) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cleaner not on shortlist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove from shortlist"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "removed from shortlist"})
}

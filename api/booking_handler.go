package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tidyhive/home-cleaning-backend/auth"
	bk "github.com/tidyhive/home-cleaning-backend/booking"
	"github.com/tidyhive/home-cleaning-backend/catalog"
)

type BookingService interface {
	FindBookingsForUser(ctx context.Context, actor auth.Identity) ([]bk.BookingSummary, error)
	FindBookingByID(ctx context.Context, id string, actor auth.Identity) (bk.Booking, error)
	CreateBooking(ctx context.Context, actor auth.Identity, req bk.CreateBookingRequest) (bk.Booking, error)
	RequestTransition(ctx context.Context, id string, actor auth.Identity, req bk.Change) (bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/booking/:id", h.GetByID)
	rg.PATCH("/:id/status", h.UpdateStatus)
}

func (h *BookingHandler) List(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)

	bookings, err := h.service.FindBookingsForUser(c.Request.Context(), user)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)
	id := c.Param("id")

	booking, err := h.service.FindBookingByID(c.Request.Context(), id, user)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "not allowed to view this booking",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to fetch booking",
			})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

type createBookingRequest struct {
	CleanerID       string    `json:"cleanerId"`
	ServiceID       int64     `json:"serviceId"`
	BookingTime     time.Time `json:"bookingTime"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceAtBooking  float64   `json:"priceAtBooking"`
	Notes           string    `json:"notes"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)

	var req createBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), user, bk.CreateBookingRequest{
		CleanerID:       req.CleanerID,
		ServiceID:       req.ServiceID,
		BookingTime:     req.BookingTime,
		DurationMinutes: req.DurationMinutes,
		PriceAtBooking:  req.PriceAtBooking,
		Notes:           req.Notes,
	})

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, catalog.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to create bookings"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

type updateBookingRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	user := c.MustGet("user").(auth.Identity)
	id := c.Param("id")

	var req updateBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	var change bk.Change

	if req.Status != nil {
		status, err := bk.ParseStatus(*req.Status)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		change.Status = &status
	}

	if req.PaymentStatus != nil {
		paymentStatus, err := bk.ParsePaymentStatus(*req.PaymentStatus)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		change.PaymentStatus = &paymentStatus
	}

	updated, err := h.service.RequestTransition(c.Request.Context(), id, user, change)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, bk.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to update this booking"})
		case errors.Is(err, bk.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking status transition"})
		case errors.Is(err, bk.ErrNoValidUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no valid update provided"})
		case errors.Is(err, bk.ErrUpdateConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "booking was modified concurrently, reload and retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		}
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/service/booking"
	"github.com/gin-gonic/gin"
)

const bookingNotFound = "booking not found"

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	ClientID      int64 `json:"client_id" binding:"required,gt=0"`
	TravelOfferID int64 `json:"travel_offer_id" binding:"required,gt=0"`
}

type updateBookingRequest struct {
	ClientID      *int64                `json:"client_id" binding:"omitempty,gt=0"`
	TravelOfferID *int64                `json:"travel_offer_id" binding:"omitempty,gt=0"`
	Status        *domain.BookingStatus `json:"status" binding:"required"`
}

type bookingResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	ClientID      int64  `json:"client_id"`
	TravelOfferID int64  `json:"travel_offer_id"`
	Status        int    `json:"status"`
	StatusName    string `json:"status_name"`
	Date          string `json:"date"`
}

func newBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		ClientID:      b.ClientID,
		TravelOfferID: b.TravelOfferID,
		Status:        int(b.Status),
		StatusName:    b.Status.String(),
		Date:          b.Date.Format(time.RFC3339),
	}
}

func newBookingResponses(list []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(list))
	for i := range list {
		out = append(out, newBookingResponse(&list[i]))
	}
	return out
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	admin := auth.RequireRoles(domain.RoleAdmin)
	member := auth.RequireRoles(domain.RoleAdmin, domain.RoleClient)

	bookings := router.Group("/bookings", authn)
	bookings.GET("", admin, h.list)
	bookings.GET("/mine", member, h.mine)
	bookings.GET("/referenceNumber/:ref", member, h.getByReference)
	bookings.GET("/:id", member, h.get)
	bookings.POST("", member, h.create)
	bookings.PUT("/:id", admin, h.update)
	bookings.DELETE("/:id", admin, h.delete)

	router.GET("/travelOffers/:id/bookings", authn, admin, h.listForOffer)
}

func (h *BookingHandler) list(c *gin.Context) {
	list, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingResponses(list))
}

func (h *BookingHandler) mine(c *gin.Context) {
	p := auth.FromContext(c)
	list, err := h.service.ListClientBookings(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingResponses(list))
}

func (h *BookingHandler) listForOffer(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	list, err := h.service.ListOfferBookings(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingResponses(list))
}

// get and getByReference answer 404 both for a missing booking and for a
// booking owned by another client, so ownership is not observable.
func (h *BookingHandler) get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	h.writeOwned(c, b, err)
}

func (h *BookingHandler) getByReference(c *gin.Context) {
	b, err := h.service.GetByReference(c.Request.Context(), c.Param("ref"))
	h.writeOwned(c, b, err)
}

func (h *BookingHandler) writeOwned(c *gin.Context, b *domain.Booking, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	if !auth.FromContext(c).CanAccessClient(b.ClientID) {
		notFound(c, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, newBookingResponse(b))
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !auth.FromContext(c).CanAccessClient(req.ClientID) {
		notFound(c, bookingNotFound)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		ClientID:      req.ClientID,
		TravelOfferID: req.TravelOfferID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/referenceNumber/"+b.Reference)
	c.JSON(http.StatusCreated, newBookingResponse(b))
}

func (h *BookingHandler) update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), id, booking.UpdateBookingInput{
		ClientID:      req.ClientID,
		TravelOfferID: req.TravelOfferID,
		Status:        *req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingResponse(b))
}

func (h *BookingHandler) delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

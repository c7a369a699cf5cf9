package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/service/offers"
	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	service offers.OfferUseCase
}

type offerRequest struct {
	AgencyID          int64     `json:"agency_id" binding:"required,gt=0"`
	HotelID           int64     `json:"hotel_id" binding:"required,gt=0"`
	CityID            int64     `json:"city_id" binding:"required,gt=0"`
	CountryID         int64     `json:"country_id" binding:"required,gt=0"`
	Description       string    `json:"description"`
	DepartureDate     time.Time `json:"departure_date" binding:"required"`
	ReturnDate        time.Time `json:"return_date" binding:"required,gtfield=DepartureDate"`
	PersonCount       int       `json:"person_count" binding:"required,gt=0"`
	Price             float64   `json:"price" binding:"gte=0"`
	IsFeedingIncluded bool      `json:"is_feeding_included"`
}

func (r offerRequest) toDomain(id int64) *domain.TravelOffer {
	return &domain.TravelOffer{
		ID:                id,
		AgencyID:          r.AgencyID,
		HotelID:           r.HotelID,
		CityID:            r.CityID,
		CountryID:         r.CountryID,
		Description:       r.Description,
		DepartureDate:     r.DepartureDate,
		ReturnDate:        r.ReturnDate,
		PersonCount:       r.PersonCount,
		Price:             r.Price,
		IsFeedingIncluded: r.IsFeedingIncluded,
	}
}

type offerResponse struct {
	ID                int64   `json:"id"`
	AgencyID          int64   `json:"agency_id"`
	HotelID           int64   `json:"hotel_id"`
	CityID            int64   `json:"city_id"`
	CountryID         int64   `json:"country_id"`
	Description       string  `json:"description"`
	DepartureDate     string  `json:"departure_date"`
	ReturnDate        string  `json:"return_date"`
	PersonCount       int     `json:"person_count"`
	Price             float64 `json:"price"`
	IsFeedingIncluded bool    `json:"is_feeding_included"`
}

func newOfferResponse(o *domain.TravelOffer) offerResponse {
	return offerResponse{
		ID:                o.ID,
		AgencyID:          o.AgencyID,
		HotelID:           o.HotelID,
		CityID:            o.CityID,
		CountryID:         o.CountryID,
		Description:       o.Description,
		DepartureDate:     o.DepartureDate.Format(time.RFC3339),
		ReturnDate:        o.ReturnDate.Format(time.RFC3339),
		PersonCount:       o.PersonCount,
		Price:             o.Price,
		IsFeedingIncluded: o.IsFeedingIncluded,
	}
}

func NewOfferHandler(service offers.OfferUseCase) *OfferHandler {
	return &OfferHandler{service: service}
}

func (h *OfferHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	admin := auth.RequireRoles(domain.RoleAdmin)

	g := router.Group("/travelOffers")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/:id/properties", h.listProperties)
	g.POST("", authn, admin, h.create)
	g.PUT("/:id", authn, admin, h.update)
	g.DELETE("/:id", authn, admin, h.delete)
	g.POST("/:id/properties/:propertyId", authn, admin, h.attachProperty)
	g.DELETE("/:id/properties/:propertyId", authn, admin, h.detachProperty)
}

func (h *OfferHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]offerResponse, 0, len(list))
	for i := range list {
		out = append(out, newOfferResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *OfferHandler) get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	offer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOfferResponse(offer))
}

func (h *OfferHandler) create(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	offer := req.toDomain(0)
	if err := h.service.Create(c.Request.Context(), offer); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOfferResponse(offer))
}

func (h *OfferHandler) update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	offer := req.toDomain(id)
	if err := h.service.Update(c.Request.Context(), offer); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOfferResponse(offer))
}

func (h *OfferHandler) delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OfferHandler) listProperties(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	props, err := h.service.ListProperties(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPropertyResponses(props))
}

func (h *OfferHandler) attachProperty(c *gin.Context) {
	h.linkProperty(c, h.service.AttachProperty)
}

func (h *OfferHandler) detachProperty(c *gin.Context) {
	h.linkProperty(c, h.service.DetachProperty)
}

func (h *OfferHandler) linkProperty(c *gin.Context, op func(ctx context.Context, offerID, propertyID int64) error) {
	offerID, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	propertyID, err := idParam(c, "propertyId")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := op(c.Request.Context(), offerID, propertyID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	service catalog.HotelUseCase
}

type hotelRequest struct {
	Name      string `json:"name" binding:"required,notblank"`
	StarCount int    `json:"star_count" binding:"required,min=1,max=5"`
}

type hotelResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StarCount int    `json:"star_count"`
}

type roomRequest struct {
	Type string `json:"type" binding:"required,notblank"`
}

type roomResponse struct {
	ID      int64  `json:"id"`
	HotelID int64  `json:"hotel_id"`
	Type    string `json:"type"`
}

func newHotelResponse(h *domain.Hotel) hotelResponse {
	return hotelResponse{ID: h.ID, Name: h.Name, StarCount: h.StarCount}
}

func NewHotelHandler(service catalog.HotelUseCase) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	admin := auth.RequireRoles(domain.RoleAdmin)

	g := router.Group("/hotels")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/:id/rooms", h.listRooms)
	g.POST("", authn, admin, h.create)
	g.PUT("/:id", authn, admin, h.update)
	g.DELETE("/:id", authn, admin, h.delete)
	g.POST("/:id/rooms", authn, admin, h.createRoom)
	g.DELETE("/:id/rooms/:roomId", authn, admin, h.deleteRoom)
}

func (h *HotelHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]hotelResponse, 0, len(list))
	for i := range list {
		out = append(out, newHotelResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HotelHandler) get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	hotel, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHotelResponse(hotel))
}

func (h *HotelHandler) create(c *gin.Context) {
	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	hotel := &domain.Hotel{Name: req.Name, StarCount: req.StarCount}
	if err := h.service.Create(c.Request.Context(), hotel); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newHotelResponse(hotel))
}

func (h *HotelHandler) update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	hotel := &domain.Hotel{ID: id, Name: req.Name, StarCount: req.StarCount}
	if err := h.service.Update(c.Request.Context(), hotel); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHotelResponse(hotel))
}

func (h *HotelHandler) delete(c *gin.Context) {
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

func (h *HotelHandler) listRooms(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	rooms, err := h.service.ListRooms(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomResponse{ID: r.ID, HotelID: r.HotelID, Type: r.Type})
	}
	c.JSON(http.StatusOK, out)
}

func (h *HotelHandler) createRoom(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	room := &domain.Room{HotelID: id, Type: req.Type}
	if err := h.service.CreateRoom(c.Request.Context(), room); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, roomResponse{ID: room.ID, HotelID: room.HotelID, Type: room.Type})
}

func (h *HotelHandler) deleteRoom(c *gin.Context) {
	hotelID, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	roomID, err := idParam(c, "roomId")
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), hotelID, roomID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	service catalog.PropertyUseCase
}

type propertyRequest struct {
	Name string `json:"name" binding:"required,notblank"`
	Kind string `json:"kind" binding:"required,property_kind"`
}

type propertyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func newPropertyResponses(list []domain.Property) []propertyResponse {
	out := make([]propertyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, propertyResponse{ID: p.ID, Name: p.Name, Kind: string(p.Kind)})
	}
	return out
}

func NewPropertyHandler(service catalog.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	admin := auth.RequireRoles(domain.RoleAdmin)

	g := router.Group("/properties")
	g.GET("", h.list)
	g.POST("", authn, admin, h.create)
	g.DELETE("/:id", authn, admin, h.delete)
}

func (h *PropertyHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPropertyResponses(list))
}

func (h *PropertyHandler) create(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p := &domain.Property{Name: req.Name, Kind: domain.PropertyKind(req.Kind)}
	if err := h.service.Create(c.Request.Context(), p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, propertyResponse{ID: p.ID, Name: p.Name, Kind: string(p.Kind)})
}

func (h *PropertyHandler) delete(c *gin.Context) {
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

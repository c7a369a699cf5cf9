package api

import (
	"net/http"

	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AgencyHandler struct {
	service catalog.AgencyUseCase
}

type createAgencyRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Address string `json:"address"`
	Logo    string `json:"logo"`
}

// updateAgencyRequest only touches the fields present in the body.
type updateAgencyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Logo    *string `json:"logo"`
}

type agencyResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Logo    string `json:"logo"`
}

func newAgencyResponse(a *domain.Agency) agencyResponse {
	return agencyResponse{ID: a.ID, Name: a.Name, Address: a.Address, Logo: a.Logo}
}

func NewAgencyHandler(service catalog.AgencyUseCase) *AgencyHandler {
	return &AgencyHandler{service: service}
}

func (h *AgencyHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	admin := auth.RequireRoles(domain.RoleAdmin)

	g := router.Group("/agencies")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", authn, admin, h.create)
	g.PUT("/:id", authn, admin, h.update)
	g.DELETE("/:id", authn, admin, h.delete)
}

func (h *AgencyHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]agencyResponse, 0, len(list))
	for i := range list {
		out = append(out, newAgencyResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AgencyHandler) get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAgencyResponse(a))
}

func (h *AgencyHandler) create(c *gin.Context) {
	var req createAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	a := &domain.Agency{Name: req.Name, Address: req.Address, Logo: req.Logo}
	if err := h.service.Create(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAgencyResponse(a))
}

func (h *AgencyHandler) update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req updateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	a, err := h.service.Update(c.Request.Context(), id, catalog.AgencyPatch{
		Name:    req.Name,
		Address: req.Address,
		Logo:    req.Logo,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAgencyResponse(a))
}

func (h *AgencyHandler) delete(c *gin.Context) {
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

package api

import (
	"net/http"

	"github.com/Domenick1991/goglobe/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	service catalog.LocationUseCase
}

type namedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewLocationHandler(service catalog.LocationUseCase) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) Register(router *gin.RouterGroup, _ gin.HandlerFunc) {
	router.GET("/cities", h.cities)
	router.GET("/countries", h.countries)
}

func (h *LocationHandler) cities(c *gin.Context) {
	list, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]namedResponse, 0, len(list))
	for _, city := range list {
		out = append(out, namedResponse{ID: city.ID, Name: city.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (h *LocationHandler) countries(c *gin.Context) {
	list, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]namedResponse, 0, len(list))
	for _, country := range list {
		out = append(out, namedResponse{ID: country.ID, Name: country.Name})
	}
	c.JSON(http.StatusOK, out)
}

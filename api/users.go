package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/service/users"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type UserHandler struct {
	service users.UserUseCase
}

type registerRequest struct {
	Name      string `json:"name" binding:"required,notblank"`
	Surname   string `json:"surname" binding:"required,notblank"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	BirthDate string `json:"birth_date,omitempty"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      userResponse `json:"user"`
}

func newUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Role:    u.Role(),
	}
	if u.BirthDate != nil {
		resp.BirthDate = u.BirthDate.Format(dateLayout)
	}
	return resp
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	admin := auth.RequireRoles(domain.RoleAdmin)

	router.POST("/register", h.register)
	router.POST("/login", h.login)

	g := router.Group("/users", authn)
	g.GET("/me", h.me)
	g.GET("", admin, h.list)
	g.GET("/:id", admin, h.get)
}

func (h *UserHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	in := users.RegisterInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.BirthDate != "" {
		d, err := time.Parse(dateLayout, req.BirthDate)
		if err != nil {
			badRequest(c, err)
			return
		}
		in.BirthDate = &d
	}

	u, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(u))
}

func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt.Format(time.RFC3339),
		User:      newUserResponse(res.User),
	})
}

func (h *UserHandler) me(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), auth.FromContext(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(u))
}

func (h *UserHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]userResponse, 0, len(list))
	for i := range list {
		out = append(out, newUserResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(u))
}

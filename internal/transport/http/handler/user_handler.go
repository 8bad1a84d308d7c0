package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
	resp "github.com/HasinduSudeepana/User-Order-Micro-Services/internal/transport/http/response"
)

type UserService interface {
	GetByID(ctx context.Context, id uint64) (*domain.UserDTO, error)
	Create(ctx context.Context, in *domain.UserDTO) (*domain.UserDTO, error)
	List(ctx context.Context) ([]domain.UserDTO, error)
	Update(ctx context.Context, id uint64, in *domain.UserDTO) (*domain.UserDTO, error)
	Delete(ctx context.Context, id uint64) error
	GetWithOrders(ctx context.Context, id uint64) (*domain.UserOrderResponse, error)
}

type UserHandler struct{ svc UserService }

func NewUserHandler(svc UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.list)
	g.POST("/users", h.create)
	g.GET("/users/:id", h.get)
	g.PUT("/users/:id", h.update)
	g.DELETE("/users/:id", h.delete)
	g.GET("/users/:id/orders", h.getWithOrders)
}

type userIn struct {
	UserName string `json:"userName" binding:"required,max=64"`
	Email    string `json:"email"    binding:"required,email"`
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

func (h *UserHandler) create(c *gin.Context) {
	var in userIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	u, err := h.svc.Create(c.Request.Context(), &domain.UserDTO{UserName: in.UserName, Email: in.Email})
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(users))
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in userIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, &domain.UserDTO{UserName: in.UserName, Email: in.Email})
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

func (h *UserHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": id}))
}

func (h *UserHandler) getWithOrders(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.svc.GetWithOrders(c.Request.Context(), id)
	if err != nil {
		// Anything that is not a domain kind came from the order service.
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrAlreadyExists) {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadGateway, err.Error()))
			return
		}
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(out))
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "invalid id"))
		return 0, false
	}
	return id, true
}

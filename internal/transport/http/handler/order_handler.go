package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
	resp "github.com/HasinduSudeepana/User-Order-Micro-Services/internal/transport/http/response"
)

type OrderService interface {
	GetByID(ctx context.Context, id uint64) (*domain.OrderDTO, error)
	Create(ctx context.Context, in *domain.OrderDTO) (*domain.OrderDTO, error)
	List(ctx context.Context) ([]domain.OrderDTO, error)
	ListByUser(ctx context.Context, userID uint64) ([]domain.OrderDTO, error)
	Update(ctx context.Context, id uint64, in *domain.OrderDTO) (*domain.OrderDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type OrderHandler struct{ svc OrderService }

func NewOrderHandler(svc OrderService) *OrderHandler { return &OrderHandler{svc: svc} }

func (h *OrderHandler) Mount(g *gin.RouterGroup) {
	g.GET("/orders", h.list)
	g.POST("/orders", h.create)
	g.GET("/orders/:id", h.get)
	g.PUT("/orders/:id", h.update)
	g.DELETE("/orders/:id", h.delete)
	// Consumed by the user service's aggregation.
	g.GET("/users/:id/orders", h.listByUser)
}

type orderIn struct {
	UserID      uint64  `json:"userId"      binding:"required"`
	ProductName string  `json:"productName" binding:"required,max=191"`
	Quantity    int     `json:"quantity"    binding:"required,gt=0"`
	Price       float64 `json:"price"       binding:"required,gt=0"`
}

func (in *orderIn) dto() *domain.OrderDTO {
	return &domain.OrderDTO{
		UserID:      in.UserID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Price:       in.Price,
	}
}

func (h *OrderHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(o))
}

func (h *OrderHandler) create(c *gin.Context) {
	var in orderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	o, err := h.svc.Create(c.Request.Context(), in.dto())
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(o))
}

func (h *OrderHandler) list(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(orders))
}

func (h *OrderHandler) listByUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orders, err := h.svc.ListByUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(orders))
}

func (h *OrderHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in orderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	o, err := h.svc.Update(c.Request.Context(), id, in.dto())
	if err != nil {
		c.JSON(http.StatusOK, resp.FromError(err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(o))
}

func (h *OrderHandler) delete(c *gin.Context) {
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

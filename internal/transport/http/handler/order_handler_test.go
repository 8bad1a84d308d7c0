package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
	resp "github.com/HasinduSudeepana/User-Order-Micro-Services/internal/transport/http/response"
)

type stubOrderService struct {
	order  *domain.OrderDTO
	orders []domain.OrderDTO
	err    error
}

func (s *stubOrderService) GetByID(ctx context.Context, id uint64) (*domain.OrderDTO, error) {
	return s.order, s.err
}

func (s *stubOrderService) Create(ctx context.Context, in *domain.OrderDTO) (*domain.OrderDTO, error) {
	return s.order, s.err
}

func (s *stubOrderService) List(ctx context.Context) ([]domain.OrderDTO, error) {
	return s.orders, s.err
}

func (s *stubOrderService) ListByUser(ctx context.Context, userID uint64) ([]domain.OrderDTO, error) {
	return s.orders, s.err
}

func (s *stubOrderService) Update(ctx context.Context, id uint64, in *domain.OrderDTO) (*domain.OrderDTO, error) {
	return s.order, s.err
}

func (s *stubOrderService) Delete(ctx context.Context, id uint64) error { return s.err }

func newOrderRouter(svc OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewOrderHandler(svc).Mount(r.Group("/api/v1"))
	return r
}

func TestOrderHandler_GetNotFoundMapsTo404(t *testing.T) {
	r := newOrderRouter(&stubOrderService{err: &domain.NotFoundError{Entity: "order", ID: 3}})

	out := doReq(t, r, http.MethodGet, "/api/v1/orders/3", "")
	require.Equal(t, resp.CodeNotFound, out.Code)
	require.Equal(t, "order not found with id 3", out.Msg)
}

func TestOrderHandler_CreateRejectsNonPositiveQuantity(t *testing.T) {
	r := newOrderRouter(&stubOrderService{})

	out := doReq(t, r, http.MethodPost, "/api/v1/orders", `{"userId":1,"productName":"Pen","quantity":0,"price":2.5}`)
	require.Equal(t, resp.CodeBadRequest, out.Code)
}

func TestOrderHandler_CreateSuccess(t *testing.T) {
	created := &domain.OrderDTO{OrderID: 10, UserID: 1, ProductName: "Pen", Quantity: 3, Price: 2.5}
	r := newOrderRouter(&stubOrderService{order: created})

	out := doReq(t, r, http.MethodPost, "/api/v1/orders", `{"userId":1,"productName":"Pen","quantity":3,"price":2.5}`)
	require.Equal(t, resp.CodeOK, out.Code)

	b, err := json.Marshal(out.Data)
	require.NoError(t, err)
	var got domain.OrderDTO
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, *created, got)
}

func TestOrderHandler_ListByUserEmptyIsOK(t *testing.T) {
	r := newOrderRouter(&stubOrderService{orders: []domain.OrderDTO{}})

	out := doReq(t, r, http.MethodGet, "/api/v1/users/1/orders", "")
	require.Equal(t, resp.CodeOK, out.Code)
}

func TestOrderHandler_DeleteNotFound(t *testing.T) {
	r := newOrderRouter(&stubOrderService{err: &domain.NotFoundError{Entity: "order", ID: 8}})

	out := doReq(t, r, http.MethodDelete, "/api/v1/orders/8", "")
	require.Equal(t, resp.CodeNotFound, out.Code)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
)

// Mock OrderRepository
type mockOrderRepo struct {
	orders map[uint64]domain.Order
	seq    uint64

	saveCalls   int
	deleteCalls int
}

func newMockOrderRepo(orders ...domain.Order) *mockOrderRepo {
	m := &mockOrderRepo{orders: make(map[uint64]domain.Order)}
	for _, o := range orders {
		m.orders[o.ID] = o
		if o.ID > m.seq {
			m.seq = o.ID
		}
	}
	return m
}

func (m *mockOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	m.seq++
	o.ID = m.seq
	m.orders[o.ID] = *o
	return nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	if o, ok := m.orders[id]; ok {
		cp := o
		return &cp, nil
	}
	return nil, nil
}

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(m.orders))
	for id := uint64(1); id <= m.seq; id++ {
		if o, ok := m.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindByUserID(ctx context.Context, userID uint64) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	for id := uint64(1); id <= m.seq; id++ {
		if o, ok := m.orders[id]; ok && o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) Save(ctx context.Context, o *domain.Order) error {
	m.saveCalls++
	m.orders[o.ID] = *o
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uint64) error {
	m.deleteCalls++
	delete(m.orders, id)
	return nil
}

func TestOrderGetByID_Success(t *testing.T) {
	repo := newMockOrderRepo(domain.Order{ID: 1, UserID: 101, ProductName: "Laptop", Quantity: 2, Price: 1000})
	svc := NewOrderService(repo, zap.NewNop())

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got.OrderID)
	require.Equal(t, "Laptop", got.ProductName)
}

func TestOrderGetByID_NotFound(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo(), zap.NewNop())

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "order", nf.Entity)
	require.Equal(t, uint64(99), nf.ID)
}

func TestOrderCreate_Success(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, zap.NewNop())

	got, err := svc.Create(context.Background(), &domain.OrderDTO{
		UserID: 100, ProductName: "New Product", Quantity: 3, Price: 75,
	})
	require.NoError(t, err)
	require.NotZero(t, got.OrderID)
	require.Equal(t, uint64(100), got.UserID)
	require.Equal(t, 3, got.Quantity)
	require.Equal(t, 75.0, got.Price)
}

func TestOrderList_Empty(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo(), zap.NewNop())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestOrderList_StoreOrder(t *testing.T) {
	repo := newMockOrderRepo(
		domain.Order{ID: 1, UserID: 100, ProductName: "Product 1"},
		domain.Order{ID: 2, UserID: 101, ProductName: "Product 2"},
	)
	svc := NewOrderService(repo, zap.NewNop())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, uint64(1), got[0].OrderID)
	require.Equal(t, uint64(2), got[1].OrderID)
}

func TestOrderListByUser(t *testing.T) {
	repo := newMockOrderRepo(
		domain.Order{ID: 1, UserID: 101, ProductName: "Pen"},
		domain.Order{ID: 2, UserID: 102, ProductName: "Pad"},
		domain.Order{ID: 3, UserID: 101, ProductName: "Ink"},
	)
	svc := NewOrderService(repo, zap.NewNop())

	got, err := svc.ListByUser(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Pen", got[0].ProductName)
	require.Equal(t, "Ink", got[1].ProductName)
}

func TestOrderListByUser_Empty(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo(), zap.NewNop())

	got, err := svc.ListByUser(context.Background(), 101)
	require.NoError(t, err, "no orders for a user is a valid empty result")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestOrderUpdate_Success(t *testing.T) {
	repo := newMockOrderRepo(domain.Order{ID: 1, UserID: 100, ProductName: "Old Product", Quantity: 2, Price: 50})
	created := repo.orders[1].CreatedAt
	svc := NewOrderService(repo, zap.NewNop())

	got, err := svc.Update(context.Background(), 1, &domain.OrderDTO{
		UserID: 101, ProductName: "Updated Product", Quantity: 3, Price: 75,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), got.OrderID)
	require.Equal(t, uint64(101), got.UserID)
	require.Equal(t, "Updated Product", got.ProductName)
	require.Equal(t, created, repo.orders[1].CreatedAt)
	require.Equal(t, 1, repo.saveCalls)
}

func TestOrderUpdate_NotFound(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, zap.NewNop())

	_, err := svc.Update(context.Background(), 99, &domain.OrderDTO{ProductName: "X"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Equal(t, 0, repo.saveCalls, "no mutation on a missing record")
}

func TestOrderDelete_ActuallyRemoves(t *testing.T) {
	repo := newMockOrderRepo(domain.Order{ID: 1, UserID: 100, ProductName: "Pen"})
	svc := NewOrderService(repo, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.Equal(t, 1, repo.deleteCalls, "delete must reach the store, not just confirm existence")
	require.Empty(t, repo.orders)
}

func TestOrderDelete_NotFound(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, zap.NewNop())

	err := svc.Delete(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Equal(t, 0, repo.deleteCalls)
}

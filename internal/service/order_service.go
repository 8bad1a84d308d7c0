package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
)

// OrderService implements order CRUD invariants. It has no cross-entity
// awareness: the owning user id on an order is stored as given, without
// checking the user service (the two stores are owned separately).
type OrderService struct {
	repo domain.OrderRepository
	log  *zap.Logger
}

func NewOrderService(repo domain.OrderRepository, log *zap.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

func (s *OrderService) GetByID(ctx context.Context, id uint64) (*domain.OrderDTO, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, &domain.NotFoundError{Entity: "order", ID: id}
	}
	dto := toOrderDTO(o)
	return &dto, nil
}

func (s *OrderService) Create(ctx context.Context, in *domain.OrderDTO) (*domain.OrderDTO, error) {
	o := &domain.Order{
		UserID:      in.UserID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Price:       in.Price,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	s.log.Info("order created", zap.Uint64("order_id", o.ID), zap.Uint64("user_id", o.UserID))
	dto := toOrderDTO(o)
	return &dto, nil
}

// List returns every order; an empty store is an empty slice, not an error.
func (s *OrderService) List(ctx context.Context) ([]domain.OrderDTO, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderDTOs(orders), nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID uint64) ([]domain.OrderDTO, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderDTOs(orders), nil
}

// Update replaces the mutable fields of an existing order; identity and
// creation timestamp are preserved.
func (s *OrderService) Update(ctx context.Context, id uint64, in *domain.OrderDTO) (*domain.OrderDTO, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, &domain.NotFoundError{Entity: "order", ID: id}
	}
	o.UserID = in.UserID
	o.ProductName = in.ProductName
	o.Quantity = in.Quantity
	o.Price = in.Price
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	dto := toOrderDTO(o)
	return &dto, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint64) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return &domain.NotFoundError{Entity: "order", ID: id}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("order deleted", zap.Uint64("order_id", id))
	return nil
}

func toOrderDTO(o *domain.Order) domain.OrderDTO {
	return domain.OrderDTO{
		OrderID:     o.ID,
		UserID:      o.UserID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		Price:       o.Price,
	}
}

func toOrderDTOs(orders []domain.Order) []domain.OrderDTO {
	out := make([]domain.OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderDTO(&orders[i]))
	}
	return out
}

package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/core/cache"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
)

// OrderClient fetches orders attributed to a user from the order service.
type OrderClient interface {
	OrdersForUser(ctx context.Context, userID uint64) ([]domain.OrderDTO, error)
}

// UserService implements user CRUD invariants and the aggregation that
// joins a local user with its remote orders.
type UserService struct {
	repo   domain.UserRepository
	orders OrderClient
	log    *zap.Logger

	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewUserService(repo domain.UserRepository, orders OrderClient, log *zap.Logger) *UserService {
	return &UserService{repo: repo, orders: orders, log: log}
}

// EnableCache turns on read-through caching of point reads. Remote order
// results are never cached.
func (s *UserService) EnableCache(c *cache.Cache, ttl time.Duration) {
	s.cache = c
	s.cacheTTL = ttl
}

func userKey(id uint64) string { return fmt.Sprintf("user:%d", id) }

func (s *UserService) GetByID(ctx context.Context, id uint64) (*domain.UserDTO, error) {
	if s.cache != nil {
		return cache.GetOrLoadJSON(s.cache, ctx, userKey(id), s.cacheTTL, func(ctx context.Context) (*domain.UserDTO, error) {
			return s.loadUser(ctx, id)
		})
	}
	return s.loadUser(ctx, id)
}

func (s *UserService) loadUser(ctx context.Context, id uint64) (*domain.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &domain.NotFoundError{Entity: "user", ID: id}
	}
	dto := toUserDTO(u)
	return &dto, nil
}

// Create persists a new user after checking email uniqueness. The check
// is a fast path only; the unique index on users.email is the authority,
// and the repo maps its conflict to AlreadyExists, so two concurrent
// creates with the same email cannot both land.
func (s *UserService) Create(ctx context.Context, in *domain.UserDTO) (*domain.UserDTO, error) {
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.AlreadyExistsError{Entity: "user", Field: "email", Value: in.Email}
	}
	u := &domain.User{Name: in.UserName, Email: in.Email}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.Uint64("user_id", u.ID))
	dto := toUserDTO(u)
	return &dto, nil
}

// List returns every user; an empty store is an empty slice, not an error.
func (s *UserService) List(ctx context.Context) ([]domain.UserDTO, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	return out, nil
}

func (s *UserService) Update(ctx context.Context, id uint64, in *domain.UserDTO) (*domain.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &domain.NotFoundError{Entity: "user", ID: id}
	}
	u.Name = in.UserName
	u.Email = in.Email
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	dto := toUserDTO(u)
	return &dto, nil
}

func (s *UserService) Delete(ctx context.Context, id uint64) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return &domain.NotFoundError{Entity: "user", ID: id}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info("user deleted", zap.Uint64("user_id", id))
	return nil
}

// GetWithOrders builds the aggregate view. The existence check runs first
// and short-circuits before any remote call; a failure from the order
// client propagates to the caller unwrapped.
func (s *UserService) GetWithOrders(ctx context.Context, id uint64) (*domain.UserOrderResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &domain.NotFoundError{Entity: "user", ID: id}
	}
	orders, err := s.orders.OrdersForUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.OrderDTO{}
	}
	return &domain.UserOrderResponse{User: toUserDTO(u), Orders: orders}, nil
}

func (s *UserService) invalidate(ctx context.Context, id uint64) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userKey(id))
	}
}

func toUserDTO(u *domain.User) domain.UserDTO {
	return domain.UserDTO{UserID: u.ID, UserName: u.Name, Email: u.Email}
}

package usecase

import (
	"context"
	"strings"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// ClientService implements port.ClientUseCase. Plain tenant CRUD; the
// ownership cascade on delete lives in the schema's foreign keys.
type ClientService struct {
	clients port.ClientRepository
}

// NewClientService creates the client usecase.
func NewClientService(clients port.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

func (s *ClientService) Clients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) Client(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.Get(ctx, id)
}

func (s *ClientService) CreateClient(ctx context.Context, name string) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	c := &domain.Client{Name: name}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id int64, name string) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	c, err := s.clients.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	if err = s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	return s.clients.Delete(ctx, id)
}

var _ port.ClientUseCase = (*ClientService)(nil)

package store

import (
	"context"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
)

type InMemoryCredentials struct {
	byIdentifier map[string]entity.Credential
}

func NewInMemoryCredentials(creds []entity.Credential) (*InMemoryCredentials, error) {
	s := &InMemoryCredentials{
		byIdentifier: make(map[string]entity.Credential, len(creds)),
	}

	for _, c := range creds {
		if _, exists := s.byIdentifier[c.Identifier]; exists {
			return nil, pkgerror.NewBusiness("credential already exists", pkgerror.CodeConflict)
		}
		s.byIdentifier[c.Identifier] = c
	}

	return s, nil
}

func (s *InMemoryCredentials) Lookup(ctx context.Context, identifier string) (entity.Credential, error) {
	c, ok := s.byIdentifier[identifier]
	if !ok {
		return entity.Credential{}, pkgerror.ErrNotFound
	}

	return c, nil
}

package memory

import (
	"context"
	"time"

	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/persistence"
	c "github.com/patrickmn/go-cache"
)

var _ persistence.FactStore = new(factStore)

type factStore struct {
	cache *c.Cache
}

func NewFactStore() *factStore {
	return &factStore{
		cache: c.New(c.NoExpiration, 10*time.Minute),
	}
}

func (s *factStore) Save(ctx context.Context, doc facts.Document) error {
	if doc.Id == "" {
		return persistence.StorageLayerError{Message: "engagement id is empty"}
	}
	s.cache.Set(doc.Id, doc, c.NoExpiration)
	return nil
}

func (s *factStore) Get(ctx context.Context, id string) (*facts.Document, error) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, persistence.NotFoundError{Id: id}
	}
	doc := v.(facts.Document)
	return &doc, nil
}

func (s *factStore) Delete(ctx context.Context, id string) error {
	if _, found := s.cache.Get(id); !found {
		return persistence.NotFoundError{Id: id}
	}
	s.cache.Delete(id)
	return nil
}

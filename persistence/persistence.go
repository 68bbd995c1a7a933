package persistence

import (
	"context"
	"fmt"

	"github.com/mohitkumar/engage/facts"
)

type StorageLayerError struct {
	Message string
}

func (e StorageLayerError) Error() string {
	return fmt.Sprintf("storage layer error %s", e.Message)
}

type NotFoundError struct {
	Id string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("engagement %s not found", e.Id)
}

const FACTS_PREFIX string = "FACTS"

// FactStore keeps the latest loaded document per engagement. Visibility is
// always recomputed from it, never stored.
type FactStore interface {
	Save(ctx context.Context, doc facts.Document) error
	Get(ctx context.Context, id string) (*facts.Document, error)
	Delete(ctx context.Context, id string) error
}

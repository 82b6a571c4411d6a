package encounter

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by GetByID when no encounter has the given id.
var ErrNotFound = errors.New("encounter not found")

// Patch carries the post-creation mutable fields. Nil fields are left
// untouched by Update.
type Patch struct {
	EncounterCost        *string
	EncounterSchedule    *string
	EncounterDescription *string
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.EncounterCost == nil && p.EncounterSchedule == nil && p.EncounterDescription == nil
}

type Repository interface {
	Create(ctx context.Context, enc *Encounter) error
	GetByID(ctx context.Context, id uuid.UUID) (*Encounter, error)

	// List returns every encounter ordered by animal ascending.
	List(ctx context.Context) ([]*Encounter, error)
	// ListByAnimal and ListByZoo are byte-exact equality filters.
	ListByAnimal(ctx context.Context, animal string) ([]*Encounter, error)
	ListByZoo(ctx context.Context, zooName string) ([]*Encounter, error)
	DistinctAnimals(ctx context.Context) ([]string, error)
	DistinctZoos(ctx context.Context) ([]string, error)

	Update(ctx context.Context, id uuid.UUID, patch Patch) error
	// Delete reports whether a record existed and was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

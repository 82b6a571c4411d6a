package sandbox

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/TheGaff87/featured-creatures-api/internal/domain/encounter"
)

type memRepo struct {
	encounters map[uuid.UUID]*encounter.Encounter
}

func newMemRepo() *memRepo {
	return &memRepo{encounters: make(map[uuid.UUID]*encounter.Encounter)}
}

func (m *memRepo) Create(_ context.Context, enc *encounter.Encounter) error {
	enc.ID = uuid.New()
	enc.CreatedAt = time.Now()
	enc.UpdatedAt = time.Now()
	m.encounters[enc.ID] = enc
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*encounter.Encounter, error) {
	enc, ok := m.encounters[id]
	if !ok {
		return nil, encounter.ErrNotFound
	}
	return enc, nil
}

func (m *memRepo) List(_ context.Context) ([]*encounter.Encounter, error) {
	var result []*encounter.Encounter
	for _, enc := range m.encounters {
		result = append(result, enc)
	}
	return result, nil
}

func (m *memRepo) ListByAnimal(_ context.Context, animal string) ([]*encounter.Encounter, error) {
	var result []*encounter.Encounter
	for _, enc := range m.encounters {
		if enc.Animal == animal {
			result = append(result, enc)
		}
	}
	return result, nil
}

func (m *memRepo) ListByZoo(_ context.Context, zooName string) ([]*encounter.Encounter, error) {
	var result []*encounter.Encounter
	for _, enc := range m.encounters {
		if enc.ZooName == zooName {
			result = append(result, enc)
		}
	}
	return result, nil
}

func (m *memRepo) DistinctAnimals(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	values := []string{}
	for _, enc := range m.encounters {
		if !seen[enc.Animal] {
			seen[enc.Animal] = true
			values = append(values, enc.Animal)
		}
	}
	return values, nil
}

func (m *memRepo) DistinctZoos(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	values := []string{}
	for _, enc := range m.encounters {
		if !seen[enc.ZooName] {
			seen[enc.ZooName] = true
			values = append(values, enc.ZooName)
		}
	}
	return values, nil
}

func (m *memRepo) Update(_ context.Context, id uuid.UUID, patch encounter.Patch) error {
	return nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.encounters[id]
	delete(m.encounters, id)
	return ok, nil
}

func TestSeed(t *testing.T) {
	repo := newMemRepo()
	svc := encounter.NewService(repo)

	count, err := NewSeeder(svc).Seed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 seeded encounters, got %d", count)
	}

	animals, _ := svc.DistinctAnimals(context.Background())
	if len(animals) != 3 {
		t.Errorf("expected 3 distinct animals, got %v", animals)
	}
	zoos, _ := svc.DistinctZoos(context.Background())
	if len(zoos) != 2 {
		t.Errorf("expected 2 distinct zoos, got %v", zoos)
	}
}

func TestSeed_DerivedLocations(t *testing.T) {
	repo := newMemRepo()
	svc := encounter.NewService(repo)

	if _, err := NewSeeder(svc).Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	penguins, err := svc.ByAnimal(context.Background(), "PENGUIN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(penguins) != 1 {
		t.Fatalf("expected one penguin encounter, got %d", len(penguins))
	}
	if penguins[0].ZooLocation != "San Diego, CA, USA" {
		t.Errorf("expected derived location with state, got %q", penguins[0].ZooLocation)
	}

	koalas, err := svc.ByAnimal(context.Background(), "KOALA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if koalas[0].ZooLocation != "Sydney, Australia" {
		t.Errorf("expected derived location without state, got %q", koalas[0].ZooLocation)
	}
}

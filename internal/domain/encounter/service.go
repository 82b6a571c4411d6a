package encounter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a required field missing from a create request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing field '%s' in request body", e.Field)
}

// CreateRequest is the write schema for new encounters. It is validated once
// at the boundary; unknown JSON keys are discarded by decoding.
type CreateRequest struct {
	Animal               string `json:"animal"`
	EncounterImage       string `json:"encounterImage"`
	EncounterName        string `json:"encounterName"`
	EncounterWebsite     string `json:"encounterWebsite"`
	ZooName              string `json:"zooName"`
	ZooWebsite           string `json:"zooWebsite"`
	ZooCity              string `json:"zooCity"`
	ZooState             string `json:"zooState"`
	ZooCountry           string `json:"zooCountry"`
	EncounterCost        string `json:"encounterCost"`
	EncounterSchedule    string `json:"encounterSchedule"`
	EncounterDescription string `json:"encounterDescription"`
	AddedBy              string `json:"addedBy"`
}

// UpdateRequest carries the post-creation mutable fields. Anything else a
// client posts is dropped before it can touch the stored record.
type UpdateRequest struct {
	EncounterCost        *string `json:"encounterCost"`
	EncounterSchedule    *string `json:"encounterSchedule"`
	EncounterDescription *string `json:"encounterDescription"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// requiredFields lists the create-time required fields in the order they are
// reported when missing.
var requiredFields = []struct {
	name  string
	value func(*CreateRequest) string
}{
	{"animal", func(r *CreateRequest) string { return r.Animal }},
	{"encounterImage", func(r *CreateRequest) string { return r.EncounterImage }},
	{"encounterName", func(r *CreateRequest) string { return r.EncounterName }},
	{"zooName", func(r *CreateRequest) string { return r.ZooName }},
	{"zooWebsite", func(r *CreateRequest) string { return r.ZooWebsite }},
	{"zooCity", func(r *CreateRequest) string { return r.ZooCity }},
	{"zooCountry", func(r *CreateRequest) string { return r.ZooCountry }},
	{"encounterCost", func(r *CreateRequest) string { return r.EncounterCost }},
	{"encounterSchedule", func(r *CreateRequest) string { return r.EncounterSchedule }},
	{"encounterDescription", func(r *CreateRequest) string { return r.EncounterDescription }},
}

// Create validates the request and persists a new encounter. addedBy falls
// back to the authenticated identity when the body omits it.
func (s *Service) Create(ctx context.Context, req *CreateRequest, identity string) (*Encounter, error) {
	for _, f := range requiredFields {
		if f.value(req) == "" {
			return nil, &ValidationError{Field: f.name}
		}
	}

	enc := &Encounter{
		Animal:               req.Animal,
		EncounterImage:       req.EncounterImage,
		EncounterName:        req.EncounterName,
		EncounterWebsite:     optional(req.EncounterWebsite),
		ZooName:              req.ZooName,
		ZooWebsite:           req.ZooWebsite,
		ZooCity:              req.ZooCity,
		ZooState:             optional(req.ZooState),
		ZooCountry:           req.ZooCountry,
		EncounterCost:        req.EncounterCost,
		EncounterSchedule:    req.EncounterSchedule,
		EncounterDescription: req.EncounterDescription,
	}
	if req.AddedBy != "" {
		enc.AddedBy = &req.AddedBy
	} else if identity != "" {
		enc.AddedBy = &identity
	}

	if err := s.repo.Create(ctx, enc); err != nil {
		return nil, err
	}
	return enc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]View, error) {
	encs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return SerializeAll(encs), nil
}

func (s *Service) DistinctAnimals(ctx context.Context) ([]string, error) {
	return s.repo.DistinctAnimals(ctx)
}

func (s *Service) DistinctZoos(ctx context.Context) ([]string, error) {
	return s.repo.DistinctZoos(ctx)
}

func (s *Service) ByAnimal(ctx context.Context, term string) ([]View, error) {
	encs, err := s.repo.ListByAnimal(ctx, term)
	if err != nil {
		return nil, err
	}
	return SerializeAll(encs), nil
}

func (s *Service) ByZoo(ctx context.Context, term string) ([]View, error) {
	encs, err := s.repo.ListByZoo(ctx, term)
	if err != nil {
		return nil, err
	}
	return SerializeAll(encs), nil
}

// Update forwards only the allow-listed fields to the store. A request that
// changes nothing is a no-op and never reaches the store.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) error {
	patch := Patch{
		EncounterCost:        req.EncounterCost,
		EncounterSchedule:    req.EncounterSchedule,
		EncounterDescription: req.EncounterDescription,
	}
	if patch.IsEmpty() {
		return nil
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes the encounter. Deleting an id that no longer exists is not
// an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

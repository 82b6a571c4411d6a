package encounter

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Encounter maps to the encounters table. The zoo location is stored in its
// structured form (city/state/country); the joined display string exists only
// on the wire, see View.
type Encounter struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	Animal               string    `db:"animal" json:"animal"`
	EncounterImage       string    `db:"encounter_image" json:"encounterImage"`
	EncounterName        string    `db:"encounter_name" json:"encounterName"`
	EncounterWebsite     *string   `db:"encounter_website" json:"encounterWebsite,omitempty"`
	ZooName              string    `db:"zoo_name" json:"zooName"`
	ZooWebsite           string    `db:"zoo_website" json:"zooWebsite"`
	ZooCity              string    `db:"zoo_city" json:"zooCity"`
	ZooState             *string   `db:"zoo_state" json:"zooState,omitempty"`
	ZooCountry           string    `db:"zoo_country" json:"zooCountry"`
	EncounterCost        string    `db:"encounter_cost" json:"encounterCost"`
	EncounterSchedule    string    `db:"encounter_schedule" json:"encounterSchedule"`
	EncounterDescription string    `db:"encounter_description" json:"encounterDescription"`
	AddedBy              *string   `db:"added_by" json:"addedBy,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// ZooLocation returns the display form of the structured location:
// "City, State, Country", omitting the state segment when it is absent.
func (e *Encounter) ZooLocation() string {
	parts := []string{strings.TrimSpace(e.ZooCity)}
	if e.ZooState != nil && strings.TrimSpace(*e.ZooState) != "" {
		parts = append(parts, strings.TrimSpace(*e.ZooState))
	}
	parts = append(parts, strings.TrimSpace(e.ZooCountry))
	return strings.Join(parts, ", ")
}

// View is the public wire representation of an encounter. It carries the
// derived zooLocation string instead of the structured columns and exposes
// nothing else about the stored shape.
type View struct {
	ID                   uuid.UUID `json:"id"`
	Animal               string    `json:"animal"`
	EncounterImage       string    `json:"encounterImage"`
	EncounterName        string    `json:"encounterName"`
	EncounterWebsite     string    `json:"encounterWebsite,omitempty"`
	ZooName              string    `json:"zooName"`
	ZooWebsite           string    `json:"zooWebsite"`
	ZooLocation          string    `json:"zooLocation"`
	EncounterCost        string    `json:"encounterCost"`
	EncounterSchedule    string    `json:"encounterSchedule"`
	EncounterDescription string    `json:"encounterDescription"`
	AddedBy              string    `json:"addedBy,omitempty"`
}

// Serialize projects a stored encounter to its public view.
func (e *Encounter) Serialize() View {
	return View{
		ID:                   e.ID,
		Animal:               e.Animal,
		EncounterImage:       e.EncounterImage,
		EncounterName:        e.EncounterName,
		EncounterWebsite:     strPtrVal(e.EncounterWebsite),
		ZooName:              e.ZooName,
		ZooWebsite:           e.ZooWebsite,
		ZooLocation:          e.ZooLocation(),
		EncounterCost:        e.EncounterCost,
		EncounterSchedule:    e.EncounterSchedule,
		EncounterDescription: e.EncounterDescription,
		AddedBy:              strPtrVal(e.AddedBy),
	}
}

// SerializeAll projects a list of stored encounters, preserving order.
func SerializeAll(encs []*Encounter) []View {
	views := make([]View, 0, len(encs))
	for _, e := range encs {
		views = append(views, e.Serialize())
	}
	return views
}

func strPtrVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

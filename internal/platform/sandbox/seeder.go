// Package sandbox seeds demo encounter data for development and UI demos.
package sandbox

import (
	"context"
	"fmt"

	"github.com/TheGaff87/featured-creatures-api/internal/domain/encounter"
)

var demoEncounters = []encounter.CreateRequest{
	{
		Animal:               "KANGAROO",
		EncounterImage:       "images/kangaroo-feeding.jpeg",
		EncounterName:        "Kangaroo Feeding",
		ZooName:              "FEATHERDALE WILDLIFE PARK",
		ZooWebsite:           "https://www.featherdale.com.au/",
		ZooCity:              "Sydney",
		ZooCountry:           "Australia",
		EncounterCost:        "Free",
		EncounterSchedule:    "Everyday",
		EncounterDescription: "Visitors can buy kangaroo feed for $2 and hand feed the kangaroos inside their enclosure.",
	},
	{
		Animal:               "KOALA",
		EncounterImage:       "images/koala-encounter.jpeg",
		EncounterName:        "Koala Encounter",
		ZooName:              "FEATHERDALE WILDLIFE PARK",
		ZooWebsite:           "https://www.featherdale.com.au/",
		ZooCity:              "Sydney",
		ZooCountry:           "Australia",
		EncounterCost:        "$25 AUD",
		EncounterSchedule:    "Everyday",
		EncounterDescription: "Visitors pose for a photo with a koala. You may pet the koala, but it is illegal to hold koalas without the proper certification in New South Wales.",
	},
	{
		Animal:               "PENGUIN",
		EncounterImage:       "images/penguin-encounter.jpeg",
		EncounterName:        "Penguins Close-up Tour",
		EncounterWebsite:     "https://seaworld.com/san-diego/experiences/penguins-up-close-tour/",
		ZooName:              "SEAWORLD SAN DIEGO",
		ZooWebsite:           "https://seaworld.com/san-diego/",
		ZooCity:              "San Diego",
		ZooState:             "CA",
		ZooCountry:           "USA",
		EncounterCost:        "$80 USD",
		EncounterSchedule:    "Everyday",
		EncounterDescription: "Visitors enter the penguin enclosure and receive in-depth information on penguin care from the keepers. Guests also go behind-the-scenes to see and pet a penguin up close.",
	},
}

// Seeder inserts demo encounters through the domain service so they pass the
// same validation as API writes.
type Seeder struct {
	svc *encounter.Service
}

func NewSeeder(svc *encounter.Service) *Seeder {
	return &Seeder{svc: svc}
}

// Seed inserts the demo data set and returns the number of records created.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	count := 0
	for i := range demoEncounters {
		req := demoEncounters[i]
		if _, err := s.svc.Create(ctx, &req, "sandbox"); err != nil {
			return count, fmt.Errorf("seed %s: %w", req.EncounterName, err)
		}
		count++
	}
	return count, nil
}

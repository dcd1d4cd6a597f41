package catalog

import (
	"errors"
	"sort"

	"hotelops/internal/domain"
)

// ErrUnknownRoomType is returned for any id outside the fixed catalog.
var ErrUnknownRoomType = errors.New("unknown room type")

// Catalog is the single source of room-type reference data. The set of ids
// is fixed at deploy time; every other component resolves room types here
// rather than redefining the mapping. Rates are nightly, in NGN.
type Catalog struct {
	types map[string]domain.RoomType
}

func Default() *Catalog {
	return New([]domain.RoomType{
		{
			ID:           "classic-single",
			DisplayName:  "Classic Single",
			NightlyRate:  24900,
			MaxOccupancy: 1,
			Description:  "Compact room with a single bed, work desk and en-suite bathroom.",
			Amenities:    []string{"wifi", "tv", "air-conditioning"},
		},
		{
			ID:           "classic-double",
			DisplayName:  "Classic Double",
			NightlyRate:  27500,
			MaxOccupancy: 2,
			Description:  "Double bed, garden view, en-suite bathroom.",
			Amenities:    []string{"wifi", "tv", "air-conditioning", "mini-fridge"},
		},
		{
			ID:           "deluxe",
			DisplayName:  "Deluxe",
			NightlyRate:  30500,
			MaxOccupancy: 2,
			Description:  "Queen bed, seating area, city view.",
			Amenities:    []string{"wifi", "tv", "air-conditioning", "mini-fridge", "room-service"},
		},
		{
			ID:           "executive-suite",
			DisplayName:  "Executive Suite",
			NightlyRate:  45000,
			MaxOccupancy: 3,
			Description:  "Separate living room, king bed, bathtub and balcony.",
			Amenities:    []string{"wifi", "tv", "air-conditioning", "mini-fridge", "room-service", "bathtub"},
		},
		{
			ID:           "family",
			DisplayName:  "Family Room",
			NightlyRate:  52000,
			MaxOccupancy: 4,
			Description:  "Two double beds, extra space for children.",
			Amenities:    []string{"wifi", "tv", "air-conditioning", "mini-fridge"},
		},
	})
}

func New(types []domain.RoomType) *Catalog {
	m := make(map[string]domain.RoomType, len(types))
	for _, t := range types {
		m[t.ID] = t
	}
	return &Catalog{types: m}
}

func (c *Catalog) Get(id string) (*domain.RoomType, error) {
	t, ok := c.types[id]
	if !ok {
		return nil, ErrUnknownRoomType
	}
	return &t, nil
}

func (c *Catalog) List() []domain.RoomType {
	out := make([]domain.RoomType, 0, len(c.types))
	for _, t := range c.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

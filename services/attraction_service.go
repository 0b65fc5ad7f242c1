package services

import (
	"errors"
	"math"
	"sort"

	"github.com/catx7/visit-borsa-sub000/entity"
	"github.com/catx7/visit-borsa-sub000/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultNearbyRadiusKm = 50.0
	maxNearbyResults      = 10
)

type AttractionService struct {
	repo *repository.AttractionRepository
}

func NewAttractionService(repo *repository.AttractionRepository) *AttractionService {
	return &AttractionService{repo: repo}
}

func (s *AttractionService) List(f repository.AttractionFilter) ([]entity.TouristAttraction, int64, error) {
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)
	return s.repo.FindAll(f)
}

func (s *AttractionService) Get(id uint) (*entity.TouristAttraction, error) {
	a, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return a, err
}

// NearbyAttraction is an attraction row plus its computed distance from
// the query point.
type NearbyAttraction struct {
	entity.TouristAttraction
	Distance float64 `json:"distance"`
}

// FindNearby scans the whole attraction table, computes great-circle
// distances and returns the up-to-10 closest rows within the radius
// (inclusive), ascending by distance. The table holds tens of rows, so
// the O(n) scan is fine; move to a spatial DB query if that ever grows.
func (s *AttractionService) FindNearby(lat, lng, radiusKm float64) ([]NearbyAttraction, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}

	all, err := s.repo.FindEvery()
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyAttraction, 0, len(all))
	for _, a := range all {
		d := haversineDistance(lat, lng, a.Latitude, a.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, NearbyAttraction{TouristAttraction: a, Distance: d})
		}
	}

	// Stable keeps insertion order on equal distances
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})

	if len(nearby) > maxNearbyResults {
		nearby = nearby[:maxNearbyResults]
	}
	return nearby, nil
}

func (s *AttractionService) Create(a *entity.TouristAttraction) error {
	a.IsLocationOfMonth = false
	return s.repo.Create(a)
}

type AttractionUpdate struct {
	TitleRo       *string   `json:"titleRo"`
	TitleEn       *string   `json:"titleEn"`
	DescriptionRo *string   `json:"descriptionRo"`
	DescriptionEn *string   `json:"descriptionEn"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Address       *string   `json:"address"`
	Images        *[]string `json:"images"`
}

func (s *AttractionService) Update(id uint, upd AttractionUpdate) (*entity.TouristAttraction, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	setIf(updates, "title_ro", upd.TitleRo)
	setIf(updates, "title_en", upd.TitleEn)
	setIf(updates, "description_ro", upd.DescriptionRo)
	setIf(updates, "description_en", upd.DescriptionEn)
	setIf(updates, "latitude", upd.Latitude)
	setIf(updates, "longitude", upd.Longitude)
	setIf(updates, "address", upd.Address)
	if upd.Images != nil {
		updates["images"] = datatypes.JSONSlice[string](*upd.Images)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

func (s *AttractionService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// haversineDistance calculates the great-circle distance between two
// points on Earth. Returns kilometers.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

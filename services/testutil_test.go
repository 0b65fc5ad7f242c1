package services

import (
	"fmt"
	"testing"

	"github.com/catx7/visit-borsa-sub000/entity"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Property{}, &entity.Service{},
		&entity.Restaurant{}, &entity.TouristAttraction{}, &entity.ContactClick{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createProperty(t *testing.T, db *gorm.DB, ownerID uint, status string, active bool) *entity.Property {
	t.Helper()
	p := &entity.Property{
		Type: entity.PropertyTypeCabin, RentalType: entity.RentalTypeShortTerm,
		TitleRo: "Cabana", TitleEn: "Cabin",
		Status: status, IsActive: active, UserID: ownerID,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create property: %v", err)
	}
	// gorm skips zero-value fields that carry a column default
	if !active {
		if err := db.Model(p).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate property: %v", err)
		}
	}
	return p
}

func createRestaurant(t *testing.T, db *gorm.DB, ownerID uint, status string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		PriceRange: entity.PriceRangeModerate,
		TitleRo:    "Han", TitleEn: "Inn",
		Status: status, IsActive: true, UserID: ownerID,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return r
}

func createAttraction(t *testing.T, db *gorm.DB, titleEn string, lat, lng float64) *entity.TouristAttraction {
	t.Helper()
	a := &entity.TouristAttraction{
		TitleRo: titleEn, TitleEn: titleEn,
		Latitude: lat, Longitude: lng,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("create attraction: %v", err)
	}
	return a
}

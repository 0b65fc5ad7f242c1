package configs

import (
	"github.com/catx7/visit-borsa-sub000/entity"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Info().Str("email", cfg.AdminEmail).Msg("admin already exists")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedAttractions inserts the base set of tourist attractions around Borsa.
func SeedAttractions() error {
	db := DB()

	attractions := []entity.TouristAttraction{
		{
			TitleRo: "Cascada Cailor", TitleEn: "Horses Waterfall",
			DescriptionRo: "Cea mai mare cascada din Romania, accesibila cu telescaunul.",
			DescriptionEn: "The tallest waterfall in Romania, reachable by chairlift.",
			Latitude:      47.5983, Longitude: 24.8122,
			Images: datatypes.JSONSlice[string]{},
		},
		{
			TitleRo: "Varful Pietrosul Rodnei", TitleEn: "Pietrosul Rodnei Peak",
			DescriptionRo: "Cel mai inalt varf din Muntii Rodnei, 2303 m.",
			DescriptionEn: "The highest peak of the Rodna Mountains, 2303 m.",
			Latitude:      47.5931, Longitude: 24.6383,
			Images: datatypes.JSONSlice[string]{},
		},
		{
			TitleRo: "Partia Olimpica", TitleEn: "Olympic Ski Slope",
			DescriptionRo: "Partie de ski cu trambulina naturala istorica.",
			DescriptionEn: "Ski slope with a historic natural ski jump.",
			Latitude:      47.6487, Longitude: 24.6743,
			Images: datatypes.JSONSlice[string]{},
		},
		{
			TitleRo: "Lacul Iezer", TitleEn: "Iezer Lake",
			DescriptionRo: "Lac glaciar sub varful Pietrosul Rodnei.",
			DescriptionEn: "Glacial lake below Pietrosul Rodnei peak.",
			Latitude:      47.5986, Longitude: 24.6482,
			Images: datatypes.JSONSlice[string]{},
		},
		{
			TitleRo: "Manastirea Barsana", TitleEn: "Barsana Monastery",
			DescriptionRo: "Manastire de lemn in stil maramuresean.",
			DescriptionEn: "Wooden monastery in traditional Maramures style.",
			Latitude:      47.8049, Longitude: 24.0645,
			Images: datatypes.JSONSlice[string]{},
		},
	}

	for _, a := range attractions {
		if err := db.Where(&entity.TouristAttraction{TitleEn: a.TitleEn}).
			FirstOrCreate(&a).Error; err != nil {
			return err
		}
	}

	log.Info().Msg("tourist attractions seeded")
	return nil
}

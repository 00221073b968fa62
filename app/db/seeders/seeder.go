package seeders

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-storefront/app/services"
	"github.com/Rakhulsr/go-storefront/app/utils/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context) (Report, error)
}

// Report counts what a seeder created and what it found already present.
type Report struct {
	Created       int
	Existing      int
	ImagesSaved   int
	ImageFailures int
}

func (r Report) Add(o Report) Report {
	return Report{
		Created:       r.Created + o.Created,
		Existing:      r.Existing + o.Existing,
		ImagesSaved:   r.ImagesSaved + o.ImagesSaved,
		ImageFailures: r.ImageFailures + o.ImageFailures,
	}
}

func SeedersRegister(db *gorm.DB, fetcher services.ImageFetcher, store storage.Storage) []Seeder {
	return []Seeder{
		NewClothingSeeder(db, fetcher, store),
	}
}

func DBSeed(ctx context.Context, db *gorm.DB, fetcher services.ImageFetcher, store storage.Storage) (Report, error) {
	var total Report
	for _, seeder := range SeedersRegister(db, fetcher, store) {
		report, err := seeder.Run(ctx)
		total = total.Add(report)
		if err != nil {
			return total, fmt.Errorf("seeder %s: %w", seeder.Name(), err)
		}
		zap.L().Info("DBSeed: seeder finished",
			zap.String("seeder", seeder.Name()),
			zap.Int("created", report.Created),
			zap.Int("existing", report.Existing),
			zap.Int("images_saved", report.ImagesSaved),
			zap.Int("image_failures", report.ImageFailures))
	}
	return total, nil
}

// firstOrCreate loads the first row matching query into dest, or inserts
// build() when there is none. It reports whether a row was inserted.
func firstOrCreate[T any](db *gorm.DB, dest *T, build func() T, query string, args ...interface{}) (bool, error) {
	err := db.Where(query, args...).First(dest).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	*dest = build()
	if err := db.Create(dest).Error; err != nil {
		return false, err
	}
	return true, nil
}

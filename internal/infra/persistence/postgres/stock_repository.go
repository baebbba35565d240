// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stockRepository implements the repository.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// EnsureEntries creates a zero-unit row for every missing blood group.
// Existing rows are left untouched, so startup seeding is idempotent.
func (repo *stockRepository) EnsureEntries(ctx context.Context, groups []entity.BloodGroup) error {
	entries := make([]*model.StockEntryModel, 0, len(groups))
	for _, group := range groups {
		entries = append(entries, &model.StockEntryModel{BloodGroup: group.String(), Units: 0})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entries).Error; err != nil {
		return errors.Wrap(err, "failed to seed stock entries")
	}

	return nil
}

// AdjustUnits applies units += delta behind a guarded single-statement
// update. The WHERE clause refuses any adjustment that would drive the
// balance negative, and the row lock serializes concurrent adjustments
// to the same group.
func (repo *stockRepository) AdjustUnits(ctx context.Context, group entity.BloodGroup, delta int) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.StockEntryModel{}).
		Where("blood_group = ? AND units + ? >= 0", group.String(), delta).
		Update("units", gorm.Expr("units + ?", delta))
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to adjust stock units")
	}

	return result.RowsAffected > 0, nil
}

// FindByGroup retrieves the ledger entry for a blood group.
func (repo *stockRepository) FindByGroup(ctx context.Context, group entity.BloodGroup) (*entity.StockEntry, error) {
	var stockM model.StockEntryModel

	if err := repo.db.WithContext(ctx).
		Where("blood_group = ?", group.String()).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock entry")
	}

	return toStockDomain(&stockM), nil
}

// Snapshot returns all ledger entries in blood group order.
func (repo *stockRepository) Snapshot(ctx context.Context) ([]*entity.StockEntry, error) {
	var stockModels []*model.StockEntryModel

	if err := repo.db.WithContext(ctx).
		Order("blood_group ASC").
		Find(&stockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read stock snapshot")
	}

	entries := make([]*entity.StockEntry, 0, len(stockModels))
	for _, stockM := range stockModels {
		entries = append(entries, toStockDomain(stockM))
	}

	return entries, nil
}

// --- Mappers ---

func toStockDomain(data *model.StockEntryModel) *entity.StockEntry {
	return &entity.StockEntry{
		BloodGroup: entity.BloodGroup(data.BloodGroup),
		Units:      data.Units,
	}
}

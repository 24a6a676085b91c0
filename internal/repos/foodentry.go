package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/coachie-backend/internal/logger"
  "github.com/yungbote/coachie-backend/internal/types"
)

type FoodEntryRepo interface {
  Create(ctx context.Context, tx *gorm.DB, entries []*types.FoodEntry) ([]*types.FoodEntry, error)
  ListByProfileInRange(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, startDate, endDate string) ([]*types.FoodEntry, error)
  Delete(ctx context.Context, tx *gorm.DB, profileID, entryID uuid.UUID) (bool, error)
}

type foodEntryRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewFoodEntryRepo(db *gorm.DB, baseLog *logger.Logger) FoodEntryRepo {
  repoLog := baseLog.With("repo", "FoodEntryRepo")
  return &foodEntryRepo{db: db, log: repoLog}
}

func (r *foodEntryRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.FoodEntry) ([]*types.FoodEntry, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(entries) == 0 {
    return []*types.FoodEntry{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
    return nil, err
  }
  return entries, nil
}

func (r *foodEntryRepo) ListByProfileInRange(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, startDate, endDate string) ([]*types.FoodEntry, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.FoodEntry
  if err := transaction.WithContext(ctx).
    Where("profile_id = ? AND entry_date >= ? AND entry_date <= ?", profileID, startDate, endDate).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// Delete is scoped by profile so one client cannot remove another's entry.
func (r *foodEntryRepo) Delete(ctx context.Context, tx *gorm.DB, profileID, entryID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Where("id = ? AND profile_id = ?", entryID, profileID).
    Delete(&types.FoodEntry{})
  if res.Error != nil {
    return false, res.Error
  }
  return res.RowsAffected > 0, nil
}

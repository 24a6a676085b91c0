package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/coachie-backend/internal/logger"
  "github.com/yungbote/coachie-backend/internal/types"
)

type DailyCheckinRepo interface {
  UpsertFields(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string, fields map[string]interface{}) error
  GetByProfileAndDate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string) (*types.DailyCheckin, error)
  ListByProfileInRange(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, startDate, endDate string) ([]*types.DailyCheckin, error)
  ListRecentByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, limit int) ([]*types.DailyCheckin, error)
}

type dailyCheckinRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDailyCheckinRepo(db *gorm.DB, baseLog *logger.Logger) DailyCheckinRepo {
  repoLog := baseLog.With("repo", "DailyCheckinRepo")
  return &dailyCheckinRepo{db: db, log: repoLog}
}

// UpsertFields writes only the provided columns; an existing row for
// (profile_id, checkin_date) keeps every column not named in fields.
func (r *dailyCheckinRepo) UpsertFields(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  row := map[string]interface{}{
    "profile_id":   profileID,
    "checkin_date": checkinDate,
  }
  assignments := map[string]interface{}{}
  for k, v := range fields {
    row[k] = v
    assignments[k] = v
  }
  assignments["updated_at"] = gorm.Expr("now()")

  return transaction.WithContext(ctx).
    Model(&types.DailyCheckin{}).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "profile_id"}, {Name: "checkin_date"}},
      DoUpdates: clause.Assignments(assignments),
    }).
    Create(row).Error
}

func (r *dailyCheckinRepo) GetByProfileAndDate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string) (*types.DailyCheckin, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.DailyCheckin
  if err := transaction.WithContext(ctx).
    Where("profile_id = ? AND checkin_date = ?", profileID, checkinDate).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *dailyCheckinRepo) ListByProfileInRange(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, startDate, endDate string) ([]*types.DailyCheckin, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.DailyCheckin
  if err := transaction.WithContext(ctx).
    Where("profile_id = ? AND checkin_date >= ? AND checkin_date <= ?", profileID, startDate, endDate).
    Order("checkin_date ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *dailyCheckinRepo) ListRecentByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, limit int) ([]*types.DailyCheckin, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.DailyCheckin
  if err := transaction.WithContext(ctx).
    Where("profile_id = ?", profileID).
    Order("checkin_date DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/coachie-backend/internal/logger"
  "github.com/yungbote/coachie-backend/internal/types"
)

type WeeklyReviewRepo interface {
  Create(ctx context.Context, tx *gorm.DB, reviews []*types.WeeklyReview) ([]*types.WeeklyReview, error)
  GetByProfileAndWeek(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, weekStart string) (*types.WeeklyReview, error)
  ListByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.WeeklyReview, error)
}

type weeklyReviewRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewWeeklyReviewRepo(db *gorm.DB, baseLog *logger.Logger) WeeklyReviewRepo {
  repoLog := baseLog.With("repo", "WeeklyReviewRepo")
  return &weeklyReviewRepo{db: db, log: repoLog}
}

func (r *weeklyReviewRepo) Create(ctx context.Context, tx *gorm.DB, reviews []*types.WeeklyReview) ([]*types.WeeklyReview, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(reviews) == 0 {
    return []*types.WeeklyReview{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&reviews).Error; err != nil {
    return nil, err
  }
  return reviews, nil
}

func (r *weeklyReviewRepo) GetByProfileAndWeek(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, weekStart string) (*types.WeeklyReview, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.WeeklyReview
  if err := transaction.WithContext(ctx).
    Where("profile_id = ? AND week_start = ?", profileID, weekStart).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *weeklyReviewRepo) ListByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.WeeklyReview, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.WeeklyReview
  if err := transaction.WithContext(ctx).
    Where("profile_id = ?", profileID).
    Order("week_start DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

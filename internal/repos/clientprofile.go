package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/coachie-backend/internal/logger"
  "github.com/yungbote/coachie-backend/internal/types"
)

type ClientProfileRepo interface {
  Create(ctx context.Context, tx *gorm.DB, profiles []*types.ClientProfile) ([]*types.ClientProfile, error)
  GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.ClientProfile, error)
  GetByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*types.ClientProfile, error)
  ListSmsOptIn(ctx context.Context, tx *gorm.DB) ([]*types.ClientProfile, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, fields map[string]interface{}) error
}

type clientProfileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewClientProfileRepo(db *gorm.DB, baseLog *logger.Logger) ClientProfileRepo {
  repoLog := baseLog.With("repo", "ClientProfileRepo")
  return &clientProfileRepo{db: db, log: repoLog}
}

func (r *clientProfileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.ClientProfile) ([]*types.ClientProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(profiles) == 0 {
    return []*types.ClientProfile{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&profiles).Error; err != nil {
    return nil, err
  }

  return profiles, nil
}

func (r *clientProfileRepo) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.ClientProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.ClientProfile
  if err := transaction.WithContext(ctx).
    Where("id = ?", profileID).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

// GetByPhone matches only profiles that opted into SMS check-ins.
func (r *clientProfileRepo) GetByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*types.ClientProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.ClientProfile
  if err := transaction.WithContext(ctx).
    Where("phone_number = ? AND allow_sms_checkins = ?", phoneNumber, true).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *clientProfileRepo) ListSmsOptIn(ctx context.Context, tx *gorm.DB) ([]*types.ClientProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.ClientProfile
  if err := transaction.WithContext(ctx).
    Where("allow_sms_checkins = ? AND phone_number IS NOT NULL AND phone_number <> ''", true).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *clientProfileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.ClientProfile{}).
    Where("id = ?", profileID).
    Updates(fields).Error
}

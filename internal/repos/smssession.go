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

type SmsSessionRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, session *types.SmsCheckinSession) error
  GetByPhoneAndDate(ctx context.Context, tx *gorm.DB, phoneNumber, checkinDate string) (*types.SmsCheckinSession, error)
  GetByProfileAndDate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string) (*types.SmsCheckinSession, error)
  TransitionStep(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, fromStep, toStep string) (bool, error)
}

type smsSessionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSmsSessionRepo(db *gorm.DB, baseLog *logger.Logger) SmsSessionRepo {
  repoLog := baseLog.With("repo", "SmsSessionRepo")
  return &smsSessionRepo{db: db, log: repoLog}
}

// Upsert resets step and phone for the (profile, date) session.
func (r *smsSessionRepo) Upsert(ctx context.Context, tx *gorm.DB, session *types.SmsCheckinSession) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "profile_id"}, {Name: "checkin_date"}},
      DoUpdates: clause.AssignmentColumns([]string{
        "phone_number",
        "step",
        "updated_at",
      }),
    }).
    Create(session).Error
}

func (r *smsSessionRepo) GetByPhoneAndDate(ctx context.Context, tx *gorm.DB, phoneNumber, checkinDate string) (*types.SmsCheckinSession, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.SmsCheckinSession
  if err := transaction.WithContext(ctx).
    Where("phone_number = ? AND checkin_date = ?", phoneNumber, checkinDate).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *smsSessionRepo) GetByProfileAndDate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string) (*types.SmsCheckinSession, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.SmsCheckinSession
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

// TransitionStep advances the session only when it is still on fromStep.
// Returns false when another delivery of the same message already advanced it.
func (r *smsSessionRepo) TransitionStep(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, fromStep, toStep string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.SmsCheckinSession{}).
    Where("id = ? AND step = ?", sessionID, fromStep).
    Updates(map[string]interface{}{
      "step":       toStep,
      "updated_at": gorm.Expr("now()"),
    })
  if res.Error != nil {
    return false, res.Error
  }
  return res.RowsAffected > 0, nil
}

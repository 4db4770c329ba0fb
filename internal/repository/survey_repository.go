package repository

import (
	"time"

	"smart_survey_backend/internal/model"
	"smart_survey_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

// HasCompleted 是否存在 completed_at 非空的记录
func (r *SurveyRepository) HasCompleted(userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.SurveyResponse{}).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Count(&count).Error
	return count > 0, err
}

// LatestByUser 最近创建的一条记录，无论是否完成
func (r *SurveyRepository) LatestByUser(userID uint) (*model.SurveyResponse, error) {
	var resp model.SurveyResponse
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&resp).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateCompleted 在同一事务里锁定用户行、复查完成状态后插入，
// 避免两个并发提交同时通过 HasCompleted 检查各写入一条完成记录。
// 已完成时返回 util.ErrSurveyAlreadyCompleted 且不产生任何写入。
func (r *SurveyRepository) CreateCompleted(resp *model.SurveyResponse) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		userQuery := tx.Model(&model.User{})
		// SQLite 没有行锁，写事务本身互斥
		if tx.Dialector.Name() != "sqlite" {
			userQuery = userQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var userID uint
		if err := userQuery.Select("id").Where("id = ?", resp.UserID).Scan(&userID).Error; err != nil {
			return err
		}
		if userID == 0 {
			return gorm.ErrRecordNotFound
		}

		var count int64
		if err := tx.Model(&model.SurveyResponse{}).
			Where("user_id = ? AND completed_at IS NOT NULL", resp.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrSurveyAlreadyCompleted
		}

		now := time.Now()
		resp.CompletedAt = &now
		return tx.Create(resp).Error
	})
}

// DeleteAll 清空问卷表，仅供运维/测试脚本使用
func (r *SurveyRepository) DeleteAll() (int64, error) {
	result := r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&model.SurveyResponse{})
	return result.RowsAffected, result.Error
}

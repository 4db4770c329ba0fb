package service

import (
	"errors"
	"time"

	"smart_survey_backend/internal/model"
	"smart_survey_backend/internal/repository"
	"smart_survey_backend/internal/util"

	"gorm.io/gorm"
)

type SurveyService struct {
	SurveyRepo *repository.SurveyRepository
}

func NewSurveyService(surveyRepo *repository.SurveyRepository) *SurveyService {
	return &SurveyService{SurveyRepo: surveyRepo}
}

// SubmitInput 五个必答题的答案，字段校验在绑定层完成
type SubmitInput struct {
	FavoriteFramework    string
	ExperienceLevel      string
	ProgrammingLanguages []string
	TeamworkRating       int
	AgileExperience      bool
}

// Submit 每个用户只允许一条完成记录。重复提交返回
// util.ErrSurveyAlreadyCompleted，不写入任何数据。
func (s *SurveyService) Submit(userID uint, input SubmitInput) (*model.SurveyResponse, error) {
	completed, err := s.SurveyRepo.HasCompleted(userID)
	if err != nil {
		return nil, err
	}
	if completed {
		return nil, util.ErrSurveyAlreadyCompleted
	}

	resp := &model.SurveyResponse{
		UserID:               userID,
		FavoriteFramework:    input.FavoriteFramework,
		ExperienceLevel:      input.ExperienceLevel,
		ProgrammingLanguages: model.StringList(input.ProgrammingLanguages),
		TeamworkRating:       input.TeamworkRating,
		AgileExperience:      input.AgileExperience,
	}

	// 事务内复查并插入，并发的重复提交在这里被拦下
	if err := s.SurveyRepo.CreateCompleted(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *SurveyService) HasCompleted(userID uint) (bool, error) {
	return s.SurveyRepo.HasCompleted(userID)
}

// LatestResponse 没有任何记录时返回 (nil, nil)
func (s *SurveyService) LatestResponse(userID uint) (*model.SurveyResponse, error) {
	resp, err := s.SurveyRepo.LatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SurveyStatus 供前端决定是否放行问卷页
type SurveyStatus struct {
	HasCompletedSurvey bool       `json:"has_completed_survey"`
	CompletedAt        *time.Time `json:"completed_at"`
	CanTakeSurvey      bool       `json:"can_take_survey"`
}

func (s *SurveyService) Status(userID uint) (*SurveyStatus, error) {
	completed, err := s.SurveyRepo.HasCompleted(userID)
	if err != nil {
		return nil, err
	}

	status := &SurveyStatus{
		HasCompletedSurvey: completed,
		CanTakeSurvey:      !completed,
	}
	if completed {
		resp, err := s.SurveyRepo.LatestByUser(userID)
		if err != nil {
			return nil, err
		}
		status.CompletedAt = resp.CompletedAt
	}
	return status, nil
}

// Results 格式化后的全部答案。尚未完成问卷返回 util.ErrSurveyNotCompleted
func (s *SurveyService) Results(userID uint) (*model.SurveyResponse, []FormattedAnswer, error) {
	resp, err := s.SurveyRepo.LatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, util.ErrSurveyNotCompleted
	}
	if err != nil {
		return nil, nil, err
	}

	formatted, err := FormatResults(resp)
	if err != nil {
		return nil, nil, err
	}
	return resp, formatted, nil
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList 以JSON形式存储的字符串数组（programming_languages 列）
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// swagger:model SurveyResponse
type SurveyResponse struct {
	BaseModel
	UserID               uint       `gorm:"not null;index" json:"user_id"`
	FavoriteFramework    string     `gorm:"type:text" json:"favorite_framework"`
	ExperienceLevel      string     `gorm:"size:20" json:"experience_level"`
	ProgrammingLanguages StringList `gorm:"type:json" json:"programming_languages"`
	TeamworkRating       int        `json:"teamwork_rating"`
	AgileExperience      bool       `json:"agile_experience"`
	CompletedAt          *time.Time `json:"completed_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

// IsCompleted 仅 completed_at 非空的记录才算完成
func (r *SurveyResponse) IsCompleted() bool {
	return r.CompletedAt != nil
}

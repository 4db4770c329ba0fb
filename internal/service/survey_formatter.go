package service

import (
	"fmt"

	"smart_survey_backend/internal/model"
)

// FormattedAnswer 展示用的 {问题, 答案, 类型} 三元组
type FormattedAnswer struct {
	Question string      `json:"question"`
	Answer   interface{} `json:"answer"`
	Type     string      `json:"type"`
}

// FormatResults 把存储的答案按固定题目顺序展开为展示列表。
// 纯函数；只有在记录缺少必答字段时才会失败。
func FormatResults(resp *model.SurveyResponse) ([]FormattedAnswer, error) {
	if resp.FavoriteFramework == "" || resp.ExperienceLevel == "" ||
		len(resp.ProgrammingLanguages) == 0 || resp.TeamworkRating == 0 {
		return nil, fmt.Errorf("survey response %d is missing required answers", resp.ID)
	}

	agileLabel := "No"
	if resp.AgileExperience {
		agileLabel = "Sí"
	}

	return []FormattedAnswer{
		{
			Question: "¿Cuál es tu framework favorito y por qué?",
			Answer:   resp.FavoriteFramework,
			Type:     "text",
		},
		{
			Question: "¿Cuál es tu nivel de experiencia en React?",
			Answer:   resp.ExperienceLevel,
			Type:     "selection",
		},
		{
			Question: "¿Qué lenguajes de programación conoces?",
			Answer:   []string(resp.ProgrammingLanguages),
			Type:     "multiple",
		},
		{
			Question: "En una escala del 1 al 5, ¿qué tanto te gusta trabajar en equipo?",
			Answer:   fmt.Sprintf("%d/5", resp.TeamworkRating),
			Type:     "rating",
		},
		{
			Question: "¿Has trabajado con metodologías ágiles?",
			Answer:   agileLabel,
			Type:     "boolean",
		},
	}, nil
}

package service

// Question 固定问卷里的一道题
type Question struct {
	ID        int         `json:"id"`
	Type      string      `json:"type"`
	Question  string      `json:"question"`
	FieldName string      `json:"field_name"`
	Required  bool        `json:"required"`
	MaxLength int         `json:"max_length,omitempty"`
	Options   interface{} `json:"options,omitempty"`
	Min       int         `json:"min,omitempty"`
	Max       int         `json:"max,omitempty"`
}

// BoolOption 是/否题的选项
type BoolOption struct {
	Value bool   `json:"value"`
	Label string `json:"label"`
}

// 问卷题面，顺序与 FormatResults 的输出一致
var surveyQuestions = []Question{
	{
		ID:        1,
		Type:      "textarea",
		Question:  "¿Cuál es tu framework favorito y por qué?",
		FieldName: "favorite_framework",
		Required:  true,
		MaxLength: 1000,
	},
	{
		ID:        2,
		Type:      "radio",
		Question:  "¿Cuál es tu nivel de experiencia en React?",
		FieldName: "experience_level",
		Required:  true,
		Options:   []string{"Junior", "Mid", "Senior"},
	},
	{
		ID:        3,
		Type:      "checkbox",
		Question:  "¿Qué lenguajes de programación conoces?",
		FieldName: "programming_languages",
		Required:  true,
		Options:   []string{"JavaScript", "PHP", "Python", "Java"},
	},
	{
		ID:        4,
		Type:      "range",
		Question:  "En una escala del 1 al 5, ¿qué tanto te gusta trabajar en equipo?",
		FieldName: "teamwork_rating",
		Required:  true,
		Min:       1,
		Max:       5,
	},
	{
		ID:        5,
		Type:      "radio",
		Question:  "¿Has trabajado con metodologías ágiles?",
		FieldName: "agile_experience",
		Required:  true,
		Options: []BoolOption{
			{Value: true, Label: "Sí"},
			{Value: false, Label: "No"},
		},
	},
}

// Questions 固定的五道题
func (s *SurveyService) Questions() []Question {
	return surveyQuestions
}

package controller

import (
	"errors"

	"smart_survey_backend/internal/service"
	"smart_survey_backend/internal/util"
	"smart_survey_backend/internal/validation"
	"smart_survey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	SurveyService *service.SurveyService
	AuthService   *service.AuthService
}

func NewSurveyController(surveyService *service.SurveyService, authService *service.AuthService) *SurveyController {
	return &SurveyController{
		SurveyService: surveyService,
		AuthService:   authService,
	}
}

// swagger:model SubmitSurveyRequest
type SubmitSurveyRequest struct {
	FavoriteFramework    string   `json:"favorite_framework" binding:"required,max=1000"`
	ExperienceLevel      string   `json:"experience_level" binding:"required,oneof=Junior Mid Senior"`
	ProgrammingLanguages []string `json:"programming_languages" binding:"required,min=1,dive,oneof=JavaScript PHP Python Java"`
	TeamworkRating       int      `json:"teamwork_rating" binding:"required,min=1,max=5"`
	AgileExperience      *bool    `json:"agile_experience" binding:"required"`
}

var submitSchema = validation.Schema{
	"FavoriteFramework": {
		JSON: "favorite_framework",
		Messages: map[string]string{
			"required": "Debes responder cuál es tu framework favorito.",
			"max":      "La respuesta no puede exceder 1000 caracteres.",
		},
	},
	"ExperienceLevel": {
		JSON: "experience_level",
		Messages: map[string]string{
			"required": "Debes seleccionar tu nivel de experiencia.",
			"oneof":    "El nivel de experiencia debe ser Junior, Mid o Senior.",
		},
	},
	"ProgrammingLanguages": {
		JSON: "programming_languages",
		Messages: map[string]string{
			"required": "Debes seleccionar al menos un lenguaje de programación.",
			"min":      "Debes seleccionar al menos un lenguaje.",
			"oneof":    "Los lenguajes deben ser: JavaScript, PHP, Python o Java.",
		},
	},
	"TeamworkRating": {
		JSON: "teamwork_rating",
		Messages: map[string]string{
			"required": "Debes calificar qué tanto te gusta trabajar en equipo.",
			"min":      "La calificación debe ser entre 1 y 5.",
			"max":      "La calificación debe ser entre 1 y 5.",
		},
	},
	"AgileExperience": {
		JSON: "agile_experience",
		Messages: map[string]string{
			"required": "Debes responder si has trabajado con metodologías ágiles.",
		},
	},
}

// GetQuestions godoc
// @Summary 获取问卷题目
// @Description 固定的五道题
// @Tags 问卷
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /survey/questions [get]
func (c *SurveyController) GetQuestions(ctx *gin.Context) {
	questions := c.SurveyService.Questions()
	util.Success(ctx, "Preguntas obtenidas exitosamente", gin.H{
		"questions":       questions,
		"total_questions": len(questions),
	})
}

// Submit godoc
// @Summary 提交问卷
// @Description 每个用户只能提交一次
// @Tags 问卷
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitSurveyRequest true "五道题的答案"
// @Success 201 {object} util.Response{data=object} "提交成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 409 {object} util.Response "已经提交过"
// @Failure 422 {object} util.Response "字段校验失败"
// @Router /survey/submit [post]
func (c *SurveyController) Submit(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		monitoring.SurveySubmissions.WithLabelValues("validation_failed").Inc()
		fieldErrors, ok := submitSchema.Translate(err)
		if !ok {
			util.ValidationFailed(ctx, "Datos inválidos", nil)
			return
		}
		util.ValidationFailed(ctx, "Los datos proporcionados no son válidos.", fieldErrors)
		return
	}

	resp, err := c.SurveyService.Submit(user.ID, service.SubmitInput{
		FavoriteFramework:    req.FavoriteFramework,
		ExperienceLevel:      req.ExperienceLevel,
		ProgrammingLanguages: req.ProgrammingLanguages,
		TeamworkRating:       req.TeamworkRating,
		AgileExperience:      *req.AgileExperience,
	})
	if err != nil {
		if errors.Is(err, util.ErrSurveyAlreadyCompleted) {
			monitoring.SurveySubmissions.WithLabelValues("conflict").Inc()
			util.Conflict(ctx, "Ya has completado la encuesta anteriormente.")
		} else {
			monitoring.SurveySubmissions.WithLabelValues("error").Inc()
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.SurveySubmissions.WithLabelValues("created").Inc()
	util.Created(ctx, "¡Encuesta enviada exitosamente!", gin.H{
		"survey_response": gin.H{
			"id":           resp.ID,
			"completed_at": resp.CompletedAt,
			"user": gin.H{
				"name":  user.Name,
				"email": user.Email,
			},
		},
	})
}

// GetResults godoc
// @Summary 查看本人问卷结果
// @Description 按固定题目顺序返回格式化后的答案
// @Tags 问卷
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "尚未完成问卷"
// @Router /survey/results [get]
func (c *SurveyController) GetResults(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	resp, results, err := c.SurveyService.Results(user.ID)
	if err != nil {
		if errors.Is(err, util.ErrSurveyNotCompleted) {
			util.NotFound(ctx, "No has completado la encuesta aún.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, "Resultados obtenidos exitosamente", gin.H{
		"survey_info": gin.H{
			"completed_at": resp.CompletedAt,
			"user_name":    user.Name,
		},
		"results": results,
	})
}

// CheckStatus godoc
// @Summary 查询问卷完成状态
// @Tags 问卷
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.SurveyStatus} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /survey/status [get]
func (c *SurveyController) CheckStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	status, err := c.SurveyService.Status(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "", status)
}

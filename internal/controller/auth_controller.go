package controller

import (
	"errors"

	"smart_survey_backend/internal/service"
	"smart_survey_backend/internal/util"
	"smart_survey_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService   *service.AuthService
	SurveyService *service.SurveyService
}

func NewAuthController(authService *service.AuthService, surveyService *service.SurveyService) *AuthController {
	return &AuthController{
		AuthService:   authService,
		SurveyService: surveyService,
	}
}

// RegisterRequest defines model for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name                 string `json:"name" binding:"required,max=100"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

var registerSchema = validation.Schema{
	"Name": {
		JSON: "name",
		Messages: map[string]string{
			"required": "El nombre es requerido.",
			"max":      "El nombre no puede exceder 100 caracteres.",
		},
	},
	"Email": {
		JSON: "email",
		Messages: map[string]string{
			"required": "El correo electrónico es requerido.",
			"email":    "El correo electrónico no es válido.",
		},
	},
	"Password": {
		JSON: "password",
		Messages: map[string]string{
			"required": "La contraseña es requerida.",
			"min":      "La contraseña debe tener al menos 8 caracteres.",
		},
	},
	"PasswordConfirmation": {
		JSON: "password_confirmation",
		Messages: map[string]string{
			"required": "La confirmación de contraseña es requerida.",
			"eqfield":  "Las contraseñas no coinciden.",
		},
	},
}

// Register godoc
// @Summary 注册新用户
// @Description 创建账号并直接签发令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 422 {object} util.Response "字段校验失败或邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fieldErrors, ok := registerSchema.Translate(err)
		if !ok {
			util.ValidationFailed(ctx, "Datos inválidos", nil)
			return
		}
		util.ValidationFailed(ctx, "Los datos proporcionados no son válidos.", fieldErrors)
		return
	}

	user, token, err := c.AuthService.Register(ctx.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.ValidationFailed(ctx, "Los datos proporcionados no son válidos.", map[string][]string{
				"email": {"El correo electrónico ya está registrado."},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, "¡Usuario registrado exitosamente!", gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token":      token,
		"token_type": "Bearer",
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var loginSchema = validation.Schema{
	"Email": {
		JSON: "email",
		Messages: map[string]string{
			"required": "El correo electrónico es requerido.",
			"email":    "El correo electrónico no es válido.",
		},
	},
	"Password": {
		JSON: "password",
		Messages: map[string]string{
			"required": "La contraseña es requerida.",
		},
	},
}

// Login godoc
// @Summary 用户登录
// @Description 验证凭据，吊销旧令牌并签发新令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 422 {object} util.Response "凭据无效"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fieldErrors, ok := loginSchema.Translate(err)
		if !ok {
			util.ValidationFailed(ctx, "Datos inválidos", nil)
			return
		}
		util.ValidationFailed(ctx, "Los datos proporcionados no son válidos.", fieldErrors)
		return
	}

	user, token, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			// 不区分邮箱不存在与密码错误
			util.ValidationFailed(ctx, "Credenciales inválidas", map[string][]string{
				"email": {"Las credenciales no coinciden con nuestros registros."},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	hasCompleted, err := c.SurveyService.HasCompleted(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "¡Bienvenido de vuelta!", gin.H{
		"user": gin.H{
			"id":                   user.ID,
			"name":                 user.Name,
			"email":                user.Email,
			"has_completed_survey": hasCompleted,
		},
		"token":      token,
		"token_type": "Bearer",
	})
}

// Logout godoc
// @Summary 登出
// @Description 吊销当前令牌
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "¡Sesión cerrada exitosamente!", nil)
}

// Me godoc
// @Summary 获取当前用户资料
// @Description 当前用户信息及问卷完成状态
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	hasCompleted, err := c.SurveyService.HasCompleted(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	latest, err := c.SurveyService.LatestResponse(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{
		"user": gin.H{
			"id":                   user.ID,
			"name":                 user.Name,
			"email":                user.Email,
			"has_completed_survey": hasCompleted,
			"survey_response":      latest,
		},
	})
}

// CurrentUser godoc
// @Summary 获取当前用户
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.User "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /user [get]
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	ctx.JSON(200, user)
}

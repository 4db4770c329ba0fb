package util

import "errors"

var (
	ErrEmailRegistered        = errors.New("该邮箱已被注册")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrSurveyAlreadyCompleted = errors.New("survey already completed")
	ErrSurveyNotCompleted     = errors.New("survey not completed")
)

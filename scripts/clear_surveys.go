// 清空问卷表脚本
//
// 仅供测试/运维使用：删除 survey_responses 里的全部记录，
// 让同一批账号可以重新走一遍提交流程。生产环境不要执行。
//
// 用法: go run scripts/clear_surveys.go

package main

import (
	"log"

	"smart_survey_backend/internal/config"
	"smart_survey_backend/internal/repository"
	"smart_survey_backend/pkg/database"
	"smart_survey_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	surveyRepo := repository.NewSurveyRepository(db)

	deleted, err := surveyRepo.DeleteAll()
	if err != nil {
		log.Fatalf("清空问卷表失败: %v", err)
	}

	log.Printf("已删除 %d 条问卷记录，所有用户可重新提交", deleted)
}

package main

import (
	"context"

	collectionmodels "github.com/anderson2805/social-live-exploration/internal/api/collection/models"
	collectionsvc "github.com/anderson2805/social-live-exploration/internal/api/collection/service"
	"github.com/anderson2805/social-live-exploration/internal/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	statusService, err := collectionsvc.NewServiceStatusService()
	if err != nil {
		log.Fatalf("Failed to initialize service status service: %v", err)
	}

	// Trạng thái dịch vụ thu thập mặc định là "start" nếu chưa có document nào
	status, err := statusService.GetStatus(context.TODO())
	if err != nil {
		log.Fatalf("Failed to read service status: %v", err)
	}
	if status == "" {
		if err := statusService.SetStatus(context.TODO(), collectionmodels.CollectionStatusStart); err != nil {
			log.Fatalf("Failed to seed default service status: %v", err)
		}
		log.Info("✅ [INIT] Default service status seeded (start)")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

// File: service.analytics.dashboard.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package analyticssvc

import (
	"context"
	"fmt"

	analyticsmodels "github.com/anderson2805/social-live-exploration/internal/api/analytics/models"
	chatsvc "github.com/anderson2805/social-live-exploration/internal/api/chat/service"
)

// AnalyticsService tổng hợp số liệu dashboard từ dòng tin đã enrich.
type AnalyticsService struct {
	messageService *chatsvc.MessageService
	tracker        *EditTracker
}

// NewAnalyticsService tạo mới AnalyticsService
func NewAnalyticsService() (*AnalyticsService, error) {
	messageService, err := chatsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}

	return &AnalyticsService{
		messageService: messageService,
		tracker:        NewEditTracker(messageService),
	}, nil
}

// Tracker trả về EditTracker dùng chung của service.
func (s *AnalyticsService) Tracker() *EditTracker {
	return s.tracker
}

// StanceSeries dựng line chart Favor/Against cho cả bốn trục lập trường.
// Độ rộng bucket tính một lần trên toàn bộ dữ liệu để các chart cùng thang thời gian.
func (s *AnalyticsService) StanceSeries(ctx context.Context) (map[string]analyticsmodels.StanceSeries, error) {
	messages, err := s.messageService.FetchEnriched(ctx)
	if err != nil {
		return nil, err
	}

	width := BucketWidth(SpanMinutes(messages))
	result := make(map[string]analyticsmodels.StanceSeries, len(StanceFields))
	for _, field := range StanceFields {
		result[field] = BuildStanceSeries(messages, field, width)
	}
	return result, nil
}

// SummaryMetrics tính bộ số liệu tổng quan trên dòng tin đã enrich.
func (s *AnalyticsService) SummaryMetrics(ctx context.Context) (*analyticsmodels.SummaryMetrics, error) {
	messages, err := s.messageService.FetchEnriched(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeSummaryMetrics(messages), nil
}

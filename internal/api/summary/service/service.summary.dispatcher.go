// File: service.summary.dispatcher.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package summarysvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/anderson2805/social-live-exploration/internal/api/base/service"
	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
	chatsvc "github.com/anderson2805/social-live-exploration/internal/api/chat/service"
	summarymodels "github.com/anderson2805/social-live-exploration/internal/api/summary/models"
	"github.com/anderson2805/social-live-exploration/internal/common"
	"github.com/anderson2805/social-live-exploration/internal/global"
)

// Giới hạn sample size mỗi nhóm khi sinh summary.
const (
	MinSampleSize = 30
	MaxSampleSize = 100
)

// sectionLayout mô tả một chủ đề trong bundle: hai facet đối cực và nhãn hiển thị.
type sectionLayout struct {
	section    string
	title      string
	facets     [2]string // facet name trong FetchLabeledSubsets
	labels     [2]string // nhãn hiển thị tương ứng
}

// sectionLayouts theo đúng thứ tự hiển thị của bundle.
var sectionLayouts = []sectionLayout{
	{section: "sentiment", title: "Sentiment Analysis", facets: [2]string{"sentiment_pos", "sentiment_neg"}, labels: [2]string{"Positive", "Negative"}},
	{section: "sg", title: "Singapore", facets: [2]string{"sg_favor", "sg_against"}, labels: [2]string{"Favor", "Against"}},
	{section: "military", title: "Military", facets: [2]string{"military_favor", "military_against"}, labels: [2]string{"Favor", "Against"}},
	{section: "religion_race", title: "Race and Religion", facets: [2]string{"religion_race_favor", "religion_race_against"}, labels: [2]string{"Favor", "Against"}},
	{section: "societal_impact", title: "Societal Impact Assessment", facets: [2]string{"societal_impact_favor", "societal_impact_against"}, labels: [2]string{"Favor", "Against"}},
}

// SummaryService sinh và lưu các summary bundle (collection summaries, append-only).
type SummaryService struct {
	*basesvc.BaseServiceMongoImpl[summarymodels.SummaryBundle]

	messageService *chatsvc.MessageService
	client         *SummarizerClient
	location       *time.Location
	defaultSample  int64
}

// NewSummaryService tạo mới SummaryService
func NewSummaryService() (*SummaryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Summaries)
	if !exist {
		return nil, fmt.Errorf("failed to get summaries collection: %v", common.ErrNotFound)
	}

	messageService, err := chatsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}

	cfg := global.MongoDB_ServerConfig
	location, err := time.LoadLocation(cfg.SummaryTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid summary timezone %q: %v", cfg.SummaryTimezone, err)
	}

	client := NewSummarizerClient(SummarizerConfig{
		Endpoint: cfg.SummarizerEndpoint,
		Model:    cfg.SummarizerModel,
		APIKey:   cfg.SummarizerAPIKey,
	})

	return &SummaryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[summarymodels.SummaryBundle](collection),
		messageService:       messageService,
		client:               client,
		location:             location,
		defaultSample:        int64(cfg.SummarySampleSize),
	}, nil
}

// ClampSampleSize đưa sample size về khoảng hợp lệ [30,100]; 0 dùng giá trị cấu hình.
func (s *SummaryService) ClampSampleSize(n int64) int64 {
	if n == 0 {
		n = s.defaultSample
	}
	if n < MinSampleSize {
		return MinSampleSize
	}
	if n > MaxSampleSize {
		return MaxSampleSize
	}
	return n
}

// Generate gom các nhóm tin gắn nhãn trong một lượt $facet duy nhất rồi sinh summary
// cho từng nhóm. Nhóm chỉ đủ điều kiện khi gom được đúng sampleSize tin; nhóm thiếu
// được ghi chú thay vì gọi dịch vụ tóm tắt. Một nhóm lỗi không làm hỏng cả bundle.
// Bundle hoàn chỉnh được lưu append-only vào collection summaries.
func (s *SummaryService) Generate(ctx context.Context, sampleSize int64) (*summarymodels.SummaryBundle, error) {
	sampleSize = s.ClampSampleSize(sampleSize)

	subsets, err := s.messageService.FetchLabeledSubsets(ctx, nil, sampleSize)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bundle := summarymodels.SummaryBundle{
		SampleSize: sampleSize,
		GenerateDt: now.In(s.location).Format("2006-01-02 15:04:05 -0700"),
		GenerateTs: now.UnixMilli(),
	}

	for _, layout := range sectionLayouts {
		section := summarymodels.SectionSummary{
			Section: layout.section,
			Title:   layout.title,
		}

		for i := 0; i < 2; i++ {
			messages := subsets[layout.facets[i]]
			group := s.summarizeGroup(ctx, layout.labels[i], messages, sampleSize)
			section.Groups = append(section.Groups, group)
		}

		bundle.Sections = append(bundle.Sections, section)
	}

	saved, err := s.InsertOne(ctx, bundle)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sample_size": sampleSize,
		"generate_dt": bundle.GenerateDt,
	}).Info("Generated summary bundle")

	return &saved, nil
}

// summarizeGroup sinh summary cho một nhóm tin, hoặc ghi chú khi nhóm chưa đủ tin
// hay dịch vụ tóm tắt lỗi sau khi retry hết hạn.
func (s *SummaryService) summarizeGroup(ctx context.Context, label string, messages []chatmodels.Message, sampleSize int64) summarymodels.GroupSummary {
	group := summarymodels.GroupSummary{
		Label:        label,
		MessageCount: int64(len(messages)),
	}

	if int64(len(messages)) < sampleSize {
		group.Status = summarymodels.GroupStatusInsufficient
		group.Summary = fmt.Sprintf("Insufficient messages for %s, only %d messages found", label, len(messages))
		return group
	}

	texts := make([]string, 0, len(messages))
	for i := range messages {
		texts = append(texts, messages[i].Message)
	}

	summary, err := s.client.Summarize(ctx, texts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"label": label,
			"error": err.Error(),
		}).Error("Failed to summarize group")
		group.Status = summarymodels.GroupStatusFailed
		group.Summary = fmt.Sprintf("Summary generation failed for %s: %v", label, err)
		return group
	}

	group.Status = summarymodels.GroupStatusSummarized
	group.Summary = summary
	return group
}

// Latest trả về bundle mới nhất theo thời điểm sinh.
func (s *SummaryService) Latest(ctx context.Context) (summarymodels.SummaryBundle, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generate_ts", Value: -1}})
	return s.FindOne(ctx, bson.M{}, opts)
}

package worker

import (
	"context"
	"time"

	summarysvc "github.com/anderson2805/social-live-exploration/internal/api/summary/service"
	"github.com/anderson2805/social-live-exploration/internal/logger"
)

// SummaryDispatchWorker sinh summary bundle định kỳ từ các nhóm tin gắn nhãn hiện tại.
// Mặc định tắt (SUMMARY_WORKER_ENABLED=false): luồng chính là bấm generate thủ công,
// worker chỉ dành cho các phiên theo dõi dài không có người trực.
type SummaryDispatchWorker struct {
	summaryService *summarysvc.SummaryService
	interval       time.Duration // Khoảng thời gian giữa các lần chạy
	sampleSize     int64         // Số tin mỗi nhóm, 0 = dùng cấu hình
}

// NewSummaryDispatchWorker tạo mới SummaryDispatchWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (tối thiểu 1 phút, mặc định 30 phút)
//   - sampleSize: Số tin mỗi nhóm (0: dùng giá trị cấu hình)
func NewSummaryDispatchWorker(interval time.Duration, sampleSize int64) (*SummaryDispatchWorker, error) {
	summaryService, err := summarysvc.NewSummaryService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 30 * time.Minute
	}
	return &SummaryDispatchWorker{
		summaryService: summaryService,
		interval:       interval,
		sampleSize:     sampleSize,
	}, nil
}

// Start chạy worker trong vòng lặp: mỗi interval sinh một bundle mới.
// Một lần sinh lỗi (kể cả panic) không dừng worker, lần chạy sau vẫn tiếp tục.
func (w *SummaryDispatchWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":   w.interval.String(),
		"sampleSize": w.sampleSize,
	}).Info("📝 [SUMMARY_DISPATCH] Starting Summary Dispatch Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📝 [SUMMARY_DISPATCH] Summary Dispatch Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📝 [SUMMARY_DISPATCH] Panic khi sinh summary, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				bundle, err := w.summaryService.Generate(ctx, w.sampleSize)
				if err != nil {
					log.WithError(err).Error("📝 [SUMMARY_DISPATCH] Lỗi sinh summary bundle")
					return
				}

				log.WithFields(map[string]interface{}{
					"generate_dt": bundle.GenerateDt,
					"sections":    len(bundle.Sections),
				}).Info("📝 [SUMMARY_DISPATCH] Đã sinh summary bundle")
			}()
		}
	}
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một nhóm trong bundle.
const (
	GroupStatusSummarized   = "summarized"   // Đủ tin, đã sinh được summary
	GroupStatusInsufficient = "insufficient" // Chưa gom đủ tin
	GroupStatusFailed       = "failed"       // Đủ tin nhưng dịch vụ tóm tắt lỗi sau khi đã retry hết hạn
)

// GroupSummary là kết quả tóm tắt của một nhóm tin gắn nhãn (ví dụ sg/Favor).
type GroupSummary struct {
	Label        string `json:"label" bson:"label"`                 // Nhãn hiển thị: Favor / Against / Positive / Negative
	MessageCount int64  `json:"message_count" bson:"message_count"` // Số tin gom được cho nhóm
	Summary      string `json:"summary" bson:"summary"`             // Văn bản tóm tắt hoặc ghi chú insufficient/failed
	Status       string `json:"status" bson:"status"`               // summarized / insufficient / failed
}

// SectionSummary gom hai nhóm đối cực của một chủ đề.
type SectionSummary struct {
	Section string         `json:"section" bson:"section"` // sentiment / sg / military / religion_race / societal_impact
	Title   string         `json:"title" bson:"title"`     // Tên hiển thị của chủ đề
	Groups  []GroupSummary `json:"groups" bson:"groups"`
}

// SummaryBundle là một lần sinh summary hoàn chỉnh, lưu append-only vào
// collection summaries. GenerateDt format theo timezone cấu hình cố định
// (mặc định Asia/Singapore) để các bundle so sánh được với nhau.
type SummaryBundle struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SampleSize int64              `json:"sample_size" bson:"sample_size"` // Số tin mỗi nhóm khi sinh bundle
	Sections   []SectionSummary   `json:"sections" bson:"sections"`
	GenerateDt string             `json:"generate_dt" bson:"generate_dt"` // Thời điểm sinh theo timezone cấu hình
	GenerateTs int64              `json:"generate_ts" bson:"generate_ts" index:"single:-1"` // Thời điểm sinh (UnixMilli)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

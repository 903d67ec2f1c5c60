package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái thu thập của một URL (và của toàn dịch vụ).
const (
	CollectionStatusStart   = "start"
	CollectionStatusStopped = "stopped"
)

// CollectionEntry là một URL nguồn trong registry thu thập (collection "collection").
// Collector đọc registry này để biết cần thu thập live chat từ những phiên nào.
type CollectionEntry struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                            // ID của document
	URL      string             `json:"url" bson:"url" index:"unique"`                                // URL của phiên live (watch?v=<id>)
	Platform string             `json:"platform" bson:"platform" default:"YouTube"`                   // Nền tảng nguồn
	Status   string             `json:"status" bson:"status" index:"single:1" default:"start"`        // Trạng thái thu thập: start / stopped

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo document
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật document
}

// ServiceStatus là trạng thái chung của dịch vụ thu thập (collection "service",
// chỉ có một document). Collector dừng toàn bộ khi status = stopped.
type ServiceStatus struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của document
	Status string             `json:"status" bson:"status" default:"start"` // start / stopped

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// DeleteResult là kết quả xóa URL khỏi registry kèm cascade soft delete tin nhắn.
type DeleteResult struct {
	DeletedCount         int64 `json:"deleted_count"`          // Số entry bị xóa khỏi registry
	AffectedMessageCount int64 `json:"affected_message_count"` // Số tin nhắn bị đánh dấu delete
}

// Package analyticsdto chứa DTO cho domain Analytics (so sánh và flush các dòng đã sửa).
// File: dto.analytics.edits.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package analyticsdto

import (
	analyticssvc "github.com/anderson2805/social-live-exploration/internal/api/analytics/service"
)

// CompareInput là payload của POST /analytics/edits/compare: bảng đang hiển thị
// và bảng gốc (cùng thứ tự dòng) để tìm các dòng đã bị sửa.
type CompareInput struct {
	Displayed []analyticssvc.DisplayRow `json:"displayed" validate:"required"`
	Original  []analyticssvc.DisplayRow `json:"original" validate:"required"`
}

// CompareResult trả về số dòng đang được theo dõi và danh sách id của chúng.
type CompareResult struct {
	ChangedCount int     `json:"changed_count"`
	ChangedIDs   []int64 `json:"changed_ids"`
}

// FlushInput là payload của POST /analytics/edits/flush: trạng thái cuối của
// bảng đang hiển thị, từ đó dựng update cho các dòng đã theo dõi.
type FlushInput struct {
	Rows []analyticssvc.DisplayRow `json:"rows" validate:"required"`
}

// FlushResult trả về số tin đã được ghi xuống database.
type FlushResult struct {
	UpdatedCount int64 `json:"updated_count"`
}

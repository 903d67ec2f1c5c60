// Package collectiondto chứa DTO cho domain Collection (registry URL thu thập).
// File: dto.collection.entry.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package collectiondto

// RegisterInput là payload của POST /collection/register.
// URL phải trích xuất được video id (validator platform_url) vì thao tác
// xóa cascade dựa vào id này.
type RegisterInput struct {
	URL      string `json:"url" validate:"required,platform_url"` // URL của phiên live
	Platform string `json:"platform"`                             // Nền tảng nguồn, mặc định YouTube
}

// RegisterResult cho biết URL vừa được tạo mới hay chỉ bật lại trạng thái start.
type RegisterResult struct {
	Created bool   `json:"created"` // true nếu URL lần đầu vào registry
	URL     string `json:"url"`
	Status  string `json:"status"`
}

// SetStatusInput là payload của PUT /collection/set-status.
type SetStatusInput struct {
	URLs   []string `json:"urls" validate:"required,min=1,dive,required"`   // Các URL cần đổi trạng thái
	Status string   `json:"status" validate:"required,oneof=start stopped"` // Trạng thái mới
}

// DeleteInput là payload của DELETE /collection/delete.
type DeleteInput struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,required"` // Các URL cần gỡ khỏi registry
}

// EntryCreateInput là input tạo entry qua CRUD route.
type EntryCreateInput struct {
	URL      string `json:"url" validate:"required,platform_url"`
	Platform string `json:"platform"`
	Status   string `json:"status" validate:"omitempty,oneof=start stopped"`
}

// EntryUpdateInput là input cập nhật entry qua CRUD route.
type EntryUpdateInput struct {
	Platform *string `json:"platform,omitempty"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=start stopped"`
}

// ServiceStatusInput là payload của PUT /collection/service-status.
type ServiceStatusInput struct {
	Status string `json:"status" validate:"required,oneof=start stopped"` // Trạng thái chung của dịch vụ
}

// Package summarydto chứa DTO cho domain Summary.
// File: dto.summary.bundle.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package summarydto

// GenerateInput là payload của POST /summary/generate.
// SampleSize = 0 dùng giá trị cấu hình; giá trị ngoài [30,100] bị kẹp về biên.
type GenerateInput struct {
	SampleSize int64 `json:"sample_size" validate:"omitempty,min=0,max=100"` // Số tin mỗi nhóm
}

// BundleCreateInput là input tạo bundle qua CRUD route. Bundle sinh qua
// /generate; create thủ công chỉ dành cho import lại dữ liệu cũ.
type BundleCreateInput struct {
	SampleSize int64  `json:"sample_size" validate:"required,min=30,max=100"`
	GenerateDt string `json:"generate_dt" validate:"required"`
	GenerateTs int64  `json:"generate_ts" validate:"required"`
}

// BundleUpdateInput là input cập nhật bundle qua CRUD route.
// Bundle là append-only nên không có field nào được phép sửa.
type BundleUpdateInput struct{}

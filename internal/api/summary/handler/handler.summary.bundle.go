// Package summaryhdl chứa HTTP handler cho domain Summary.
// File: handler.summary.bundle.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package summaryhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/anderson2805/social-live-exploration/internal/api/base/handler"
	summarydto "github.com/anderson2805/social-live-exploration/internal/api/summary/dto"
	summarymodels "github.com/anderson2805/social-live-exploration/internal/api/summary/models"
	summarysvc "github.com/anderson2805/social-live-exploration/internal/api/summary/service"
	"github.com/anderson2805/social-live-exploration/internal/common"
	"github.com/anderson2805/social-live-exploration/internal/logger"
)

// SummaryHandler xử lý các request liên quan đến summary bundle
type SummaryHandler struct {
	basehdl.BaseHandler[summarymodels.SummaryBundle, summarydto.BundleCreateInput, summarydto.BundleUpdateInput]
	summaryService *summarysvc.SummaryService
}

// NewSummaryHandler tạo mới SummaryHandler
func NewSummaryHandler() (*SummaryHandler, error) {
	summaryService, err := summarysvc.NewSummaryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[summarymodels.SummaryBundle, summarydto.BundleCreateInput, summarydto.BundleUpdateInput](summaryService)
	h := &SummaryHandler{
		BaseHandler:    *baseHandler,
		summaryService: summaryService,
	}
	h.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 5,
	})
	return h, nil
}

// Generate sinh một summary bundle mới từ các nhóm tin gắn nhãn hiện tại.
func (h *SummaryHandler) Generate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input summarydto.GenerateInput
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
					common.StatusBadRequest,
					err,
				))
				return nil
			}
		}

		bundle, err := h.summaryService.Generate(c.Context(), input.SampleSize)
		if err == nil {
			logger.LogAction("summary_generate", c, map[string]interface{}{
				"sample_size": bundle.SampleSize,
				"generate_dt": bundle.GenerateDt,
			})
		}
		h.HandleResponse(c, bundle, err)
		return nil
	})
}

// Latest trả về bundle mới nhất theo thời điểm sinh.
func (h *SummaryHandler) Latest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		bundle, err := h.summaryService.Latest(c.Context())
		h.HandleResponse(c, bundle, err)
		return nil
	})
}

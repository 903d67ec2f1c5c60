// Package analyticshdl chứa HTTP handler cho domain Analytics.
// File: handler.analytics.dashboard.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package analyticshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/anderson2805/social-live-exploration/internal/api/base/handler"
	analyticsdto "github.com/anderson2805/social-live-exploration/internal/api/analytics/dto"
	analyticssvc "github.com/anderson2805/social-live-exploration/internal/api/analytics/service"
	"github.com/anderson2805/social-live-exploration/internal/common"
)

// AnalyticsHandler xử lý các request dashboard: chart, số liệu tổng quan và edit.
// Không có collection riêng nên chỉ dùng phần parse/response của BaseHandler.
type AnalyticsHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	analyticsService *analyticssvc.AnalyticsService
}

// NewAnalyticsHandler tạo mới AnalyticsHandler
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	analyticsService, err := analyticssvc.NewAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %v", err)
	}

	return &AnalyticsHandler{
		BaseHandler:      &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		analyticsService: analyticsService,
	}, nil
}

// StanceSeries trả về line chart Favor/Against cho cả bốn trục lập trường.
func (h *AnalyticsHandler) StanceSeries(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.analyticsService.StanceSeries(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// SummaryMetrics trả về bộ số liệu tổng quan trên dòng tin đã enrich.
func (h *AnalyticsHandler) SummaryMetrics(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.analyticsService.SummaryMetrics(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// CompareEdits so sánh bảng đang hiển thị với bảng gốc và ghi nhận các dòng đã sửa.
func (h *AnalyticsHandler) CompareEdits(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input analyticsdto.CompareInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		tracker := h.analyticsService.Tracker()
		count := tracker.Compare(input.Displayed, input.Original)

		h.HandleResponse(c, analyticsdto.CompareResult{
			ChangedCount: count,
			ChangedIDs:   tracker.ChangedIDs(),
		}, nil)
		return nil
	})
}

// FlushEdits ghi các dòng đã sửa xuống database bằng một bulk upsert rồi xóa theo dõi.
func (h *AnalyticsHandler) FlushEdits(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input analyticsdto.FlushInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		updated, err := h.analyticsService.Tracker().Flush(c.Context(), input.Rows)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, analyticsdto.FlushResult{UpdatedCount: updated}, nil)
		return nil
	})
}

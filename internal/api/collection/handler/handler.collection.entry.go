// Package collectionhdl chứa HTTP handler cho domain Collection.
// File: handler.collection.entry.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package collectionhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/anderson2805/social-live-exploration/internal/api/base/handler"
	collectiondto "github.com/anderson2805/social-live-exploration/internal/api/collection/dto"
	collectionmodels "github.com/anderson2805/social-live-exploration/internal/api/collection/models"
	collectionsvc "github.com/anderson2805/social-live-exploration/internal/api/collection/service"
	"github.com/anderson2805/social-live-exploration/internal/common"
	"github.com/anderson2805/social-live-exploration/internal/logger"
)

// CollectionHandler xử lý các request liên quan đến registry URL thu thập
type CollectionHandler struct {
	basehdl.BaseHandler[collectionmodels.CollectionEntry, collectiondto.EntryCreateInput, collectiondto.EntryUpdateInput]
	collectionService    *collectionsvc.CollectionService
	serviceStatusService *collectionsvc.ServiceStatusService
}

// NewCollectionHandler tạo mới CollectionHandler
func NewCollectionHandler() (*CollectionHandler, error) {
	collectionService, err := collectionsvc.NewCollectionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create collection service: %v", err)
	}

	serviceStatusService, err := collectionsvc.NewServiceStatusService()
	if err != nil {
		return nil, fmt.Errorf("failed to create service status service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[collectionmodels.CollectionEntry, collectiondto.EntryCreateInput, collectiondto.EntryUpdateInput](collectionService)
	h := &CollectionHandler{
		BaseHandler:          *baseHandler,
		collectionService:    collectionService,
		serviceStatusService: serviceStatusService,
	}
	h.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$ne", "$in", "$nin", "$exists",
		},
		MaxFields: 5,
	})
	return h, nil
}

// parseAndValidate gom bước parse body + validate chung cho các route nghiệp vụ.
func (h *CollectionHandler) parseAndValidate(c fiber.Ctx, input interface{}) error {
	if err := h.ParseRequestBody(c, input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return h.ValidateInput(input)
}

// Register đưa một URL vào registry (hoặc bật lại trạng thái start nếu đã có).
func (h *CollectionHandler) Register(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input collectiondto.RegisterInput
		if err := h.parseAndValidate(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.collectionService.Register(c.Context(), input.URL, input.Platform)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCollectionLifecycle("register", []string{input.URL}, c, map[string]interface{}{
			"created": created,
		})
		h.HandleResponse(c, collectiondto.RegisterResult{
			Created: created,
			URL:     input.URL,
			Status:  collectionmodels.CollectionStatusStart,
		}, nil)
		return nil
	})
}

// SetStatus đổi trạng thái thu thập của một nhóm URL.
func (h *CollectionHandler) SetStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input collectiondto.SetStatusInput
		if err := h.parseAndValidate(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		modified, err := h.collectionService.SetStatus(c.Context(), input.URLs, input.Status)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCollectionLifecycle(input.Status, input.URLs, c, map[string]interface{}{
			"modified_count": modified,
		})
		h.HandleResponse(c, fiber.Map{"modified_count": modified}, nil)
		return nil
	})
}

// ListByStatus trả về các URL đang ở trạng thái cho trước (mặc định: start).
func (h *CollectionHandler) ListByStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		status := c.Query("status")
		if status == "" {
			status = collectionmodels.CollectionStatusStart
		}
		if status != collectionmodels.CollectionStatusStart && status != collectionmodels.CollectionStatusStopped {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Trạng thái không hợp lệ: %s", status),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		urls, err := h.collectionService.ListByStatus(c.Context(), status)
		h.HandleResponse(c, urls, err)
		return nil
	})
}

// Delete gỡ các URL khỏi registry và cascade soft delete tin nhắn của các video đó.
func (h *CollectionHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input collectiondto.DeleteInput
		if err := h.parseAndValidate(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.collectionService.Delete(c.Context(), input.URLs)
		if err == nil {
			logger.LogCollectionLifecycle("delete", input.URLs, c, map[string]interface{}{
				"deleted_count":          result.DeletedCount,
				"affected_message_count": result.AffectedMessageCount,
			})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// CheckStatus đọc trạng thái của một URL với độ nhất quán mạnh.
func (h *CollectionHandler) CheckStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		url := c.Query("url")
		if url == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu query param url",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		status, err := h.collectionService.CheckStatus(c.Context(), url)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"url": url, "status": status}, nil)
		return nil
	})
}

// GetServiceStatus trả về trạng thái chung của dịch vụ thu thập.
func (h *CollectionHandler) GetServiceStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		status, err := h.serviceStatusService.GetStatus(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"status": status}, nil)
		return nil
	})
}

// SetServiceStatus đặt trạng thái chung của dịch vụ thu thập (pause/resume toàn bộ).
func (h *CollectionHandler) SetServiceStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input collectiondto.ServiceStatusInput
		if err := h.parseAndValidate(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.serviceStatusService.SetStatus(c.Context(), input.Status); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"status": input.Status}, nil)
		return nil
	})
}

// Package chathdl chứa HTTP handler cho domain Chat (Message).
// File: handler.chat.message.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package chathdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/anderson2805/social-live-exploration/internal/api/base/handler"
	chatdto "github.com/anderson2805/social-live-exploration/internal/api/chat/dto"
	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
	chatsvc "github.com/anderson2805/social-live-exploration/internal/api/chat/service"
	"github.com/anderson2805/social-live-exploration/internal/common"
)

// MessageHandler xử lý các request liên quan đến tin nhắn live chat
type MessageHandler struct {
	basehdl.BaseHandler[chatmodels.Message, chatdto.MessageCreateInput, chatdto.MessageUpdateInput]
	messageService *chatsvc.MessageService
}

// NewMessageHandler tạo mới MessageHandler
func NewMessageHandler() (*MessageHandler, error) {
	messageService, err := chatsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[chatmodels.Message, chatdto.MessageCreateInput, chatdto.MessageUpdateInput](messageService)
	h := &MessageHandler{
		BaseHandler:    *baseHandler,
		messageService: messageService,
	}
	h.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$ne", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return h, nil
}

// InsertRaw nhận batch tin nhắn thô từ collector, cấp id và lưu vào database.
// msg_id đã tồn tại bị bỏ qua, không làm hỏng cả batch.
func (h *MessageHandler) InsertRaw(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input chatdto.InsertRawInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		batch := make([]chatmodels.Message, 0, len(input.Messages))
		for _, m := range input.Messages {
			batch = append(batch, chatmodels.Message{
				VidID:    m.VidID,
				Author:   m.Author,
				AuthorID: m.AuthorID,
				DtStamp:  m.DtStamp,
				MsgID:    m.MsgID,
				Message:  m.Message,
			})
		}

		inserted, skipped, err := h.messageService.InsertRaw(c.Context(), batch)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, chatdto.InsertRawResult{
			InsertedCount: inserted,
			SkippedMsgIDs: skipped,
		}, nil)
		return nil
	})
}

// FetchUnenriched trả về các tin chưa enrich, đủ dài để enrich.
// Query param limit giới hạn số tin trả về (mặc định không giới hạn).
func (h *MessageHandler) FetchUnenriched(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		limit := parseLimitQuery(c, 0)
		data, err := h.messageService.FetchUnenriched(c.Context(), limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FetchEnriched trả về toàn bộ tin đã enrich và chưa bị soft delete.
func (h *MessageHandler) FetchEnriched(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.messageService.FetchEnriched(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// EnrichMany ghi kết quả enrichment cho cả batch bằng một bulk upsert.
func (h *MessageHandler) EnrichMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input chatdto.EnrichManyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updates := make([]chatmodels.EnrichmentUpdate, 0, len(input.Updates))
		for _, u := range input.Updates {
			updates = append(updates, chatmodels.EnrichmentUpdate{
				MsgSeq:         u.MsgSeq,
				Lang:           u.Lang,
				Senti:          u.Senti,
				Troll:          u.Troll,
				Toxic:          u.Toxic,
				SG:             u.SG,
				Mil:            u.Mil,
				RnR:            u.RnR,
				SocietalImpact: u.SocietalImpact,
			})
		}

		updated, err := h.messageService.BulkUpsertEnrichment(c.Context(), updates)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"updated_count": updated}, nil)
		return nil
	})
}

// LabeledSubsets trả về các nhóm tin gắn nhãn mặc định (sentiment Pos/Neg,
// Favor/Against theo từng trục lập trường), mỗi nhóm tối đa limit tin mới nhất.
func (h *MessageHandler) LabeledSubsets(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		limit := parseLimitQuery(c, 30)
		data, err := h.messageService.FetchLabeledSubsets(c.Context(), nil, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// parseLimitQuery đọc query param limit, trả về defaultValue nếu thiếu hoặc không hợp lệ.
func parseLimitQuery(c fiber.Ctx, defaultValue int64) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return defaultValue
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return defaultValue
	}
	return limit
}

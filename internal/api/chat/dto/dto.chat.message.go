// Package chatdto chứa DTO cho domain Chat (Message).
// File: dto.chat.message.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package chatdto

// RawMessageInput là một tin nhắn thô do collector gửi lên, chưa có id nội bộ.
type RawMessageInput struct {
	VidID    string `json:"vid_id" validate:"required"`  // Video id của phiên live
	Author   string `json:"author"`                      // Tên hiển thị của người gửi
	AuthorID string `json:"author_id"`                   // ID người gửi do nền tảng cấp
	DtStamp  int64  `json:"dt_stamp" validate:"required"` // Thời điểm gửi tin (UnixMilli)
	MsgID    string `json:"msg_id" validate:"required"`  // ID tin nhắn do nền tảng cấp
	Message  string `json:"message" validate:"required"` // Nội dung tin nhắn
}

// InsertRawInput là payload của POST /chat/message/insert-raw.
type InsertRawInput struct {
	Messages []RawMessageInput `json:"messages" validate:"required,min=1,dive"` // Batch tin nhắn thô
}

// EnrichmentUpdateInput là kết quả enrichment cho một tin nhắn, định danh bằng id nội bộ.
type EnrichmentUpdateInput struct {
	MsgSeq         int64  `json:"id" validate:"required"`                                // Id nội bộ của tin nhắn
	Lang           string `json:"lang" validate:"required,language_value"`               // Mã ngôn ngữ (EN/MS/ZH/TA/Other)
	Senti          string `json:"senti" validate:"required,sentiment_value"`             // Sentiment (Pos/Neut/Neg)
	Troll          bool   `json:"troll"`                                                 // Cờ troll
	Toxic          bool   `json:"toxic"`                                                 // Cờ toxic
	SG             string `json:"sg" validate:"required,stance_value"`                   // Lập trường về Singapore (Favor/Against/Neutral/NA)
	Mil            string `json:"mil" validate:"required,stance_value"`                  // Lập trường về quân đội
	RnR            string `json:"rnr" validate:"required,stance_value"`                  // Lập trường về tôn giáo / sắc tộc
	SocietalImpact string `json:"societal_impact" validate:"required,stance_value"`      // Lập trường về tác động xã hội
}

// EnrichManyInput là payload của POST /chat/message/enrich-many.
type EnrichManyInput struct {
	Updates []EnrichmentUpdateInput `json:"updates" validate:"required,min=1,dive"` // Kết quả enrichment theo batch
}

// MessageCreateInput là input tạo tin nhắn qua CRUD route (dành cho seed/test thủ công).
// Đường ingest chính là insert-raw; create ở đây nhận đủ field ingest.
type MessageCreateInput struct {
	VidID    string `json:"vid_id" validate:"required"`
	Author   string `json:"author"`
	AuthorID string `json:"author_id"`
	DtStamp  int64  `json:"dt_stamp" validate:"required"`
	MsgID    string `json:"msg_id" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// MessageUpdateInput là input cập nhật tin nhắn qua CRUD route.
type MessageUpdateInput struct {
	Lang           *string `json:"lang,omitempty" validate:"omitempty,language_value"`
	Senti          *string `json:"senti,omitempty" validate:"omitempty,sentiment_value"`
	Troll          *bool   `json:"troll,omitempty"`
	Toxic          *bool   `json:"toxic,omitempty"`
	SG             *string `json:"sg,omitempty" validate:"omitempty,stance_value"`
	Mil            *string `json:"mil,omitempty" validate:"omitempty,stance_value"`
	RnR            *string `json:"rnr,omitempty" validate:"omitempty,stance_value"`
	SocietalImpact *string `json:"societal_impact,omitempty" validate:"omitempty,stance_value"`
	Delete         *bool   `json:"delete,omitempty"`
}

// InsertRawResult là kết quả của insert-raw: số tin chèn được và các msg_id bị trùng.
type InsertRawResult struct {
	InsertedCount int64    `json:"inserted_count"` // Số tin nhắn mới được chèn
	SkippedMsgIDs []string `json:"skipped_msg_ids,omitempty"` // msg_id đã tồn tại, bị bỏ qua
}

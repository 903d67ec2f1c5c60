package models

// Counter lưu bộ đếm sequence trong collection counters.
// _id là tên sequence (ví dụ "message_id"), seq là giá trị đã cấp gần nhất.
type Counter struct {
	ID  string `json:"_id" bson:"_id"` // Tên sequence
	Seq int64  `json:"seq" bson:"seq"` // Giá trị hiện tại của sequence
}

// MessageSequenceName là tên sequence cấp id cho tin nhắn.
const MessageSequenceName = "message_id"

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message đại diện cho một tin nhắn live chat trong collection messages.
// Tin nhắn thô chỉ có các field ingest (id, vid_id, author, ...); các field
// enrichment (lang, senti, troll, ...) được bổ sung sau qua bulk upsert.
type Message struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`  // ID của document
	MsgSeq   int64              `json:"id" bson:"id" index:"unique"`         // Số thứ tự do counter cấp, tăng dần
	VidID    string             `json:"vid_id" bson:"vid_id" index:"single:1"` // Video id của phiên live (trích từ URL)
	Author   string             `json:"author" bson:"author"`                // Tên hiển thị của người gửi
	AuthorID string             `json:"author_id" bson:"author_id"`          // ID người gửi do nền tảng cấp
	DtStamp  int64              `json:"dt_stamp" bson:"dt_stamp"`            // Thời điểm gửi tin (UnixMilli)
	MsgID    string             `json:"msg_id" bson:"msg_id" index:"unique"` // ID tin nhắn do nền tảng cấp (chống ingest trùng)
	Message  string             `json:"message" bson:"message"`              // Nội dung tin nhắn

	Enriched bool `json:"enriched" bson:"enriched" index:"single:1" default:"false"` // Đã qua enrichment chưa
	Delete   bool `json:"delete" bson:"delete" index:"single:1" default:"false"`     // Soft delete (URL nguồn đã bị gỡ)

	// ===== ENRICHMENT =====
	Lang           string `json:"lang,omitempty" bson:"lang,omitempty"`                       // Mã ngôn ngữ phát hiện được
	Senti          string `json:"senti,omitempty" bson:"senti,omitempty"`                     // Sentiment: Pos / Neut / Neg
	Troll          bool   `json:"troll,omitempty" bson:"troll,omitempty"`                     // Cờ troll
	Toxic          bool   `json:"toxic,omitempty" bson:"toxic,omitempty"`                     // Cờ toxic
	SG             string `json:"sg,omitempty" bson:"sg,omitempty"`                           // Lập trường về Singapore: Favor / Against / Neutral
	Mil            string `json:"mil,omitempty" bson:"mil,omitempty"`                         // Lập trường về quân đội
	RnR            string `json:"rnr,omitempty" bson:"rnr,omitempty"`                         // Lập trường về tôn giáo / sắc tộc
	SocietalImpact string `json:"societal_impact,omitempty" bson:"societal_impact,omitempty"` // Lập trường về tác động xã hội
	DtEnriched     int64  `json:"dt_enriched,omitempty" bson:"dt_enriched,omitempty"`         // Thời điểm enrichment (UnixMilli)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo document
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật document
}

// Các giá trị sentiment hợp lệ của field senti.
const (
	SentiPos  = "Pos"
	SentiNeut = "Neut"
	SentiNeg  = "Neg"
)

// Các giá trị lập trường hợp lệ của sg / mil / rnr / societal_impact.
const (
	StanceFavor   = "Favor"
	StanceAgainst = "Against"
	StanceNeutral = "Neutral"
)

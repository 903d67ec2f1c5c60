package models

// SubsetSpec mô tả một facet trong truy vấn labeled subsets:
// lọc field = value trên dòng tin đã enrich, lấy tối đa limit tin mới nhất.
type SubsetSpec struct {
	Name  string `json:"name"`  // Tên facet, cũng là key trong kết quả
	Field string `json:"field"` // Field lọc: senti / sg / mil / rnr / societal_impact
	Value string `json:"value"` // Giá trị cần khớp: Pos / Neg / Favor / Against
}

// EnrichmentUpdate là kết quả enrichment của một tin nhắn, dùng cho bulk upsert.
type EnrichmentUpdate struct {
	MsgSeq         int64  `json:"id" bson:"id"`
	Lang           string `json:"lang" bson:"lang"`
	Senti          string `json:"senti" bson:"senti"`
	Troll          bool   `json:"troll" bson:"troll"`
	Toxic          bool   `json:"toxic" bson:"toxic"`
	SG             string `json:"sg" bson:"sg"`
	Mil            string `json:"mil" bson:"mil"`
	RnR            string `json:"rnr" bson:"rnr"`
	SocietalImpact string `json:"societal_impact" bson:"societal_impact"`
}

// DefaultSubsetSpecs trả về 10 facet mặc định: sentiment Pos/Neg và
// Favor/Against cho từng trục lập trường.
func DefaultSubsetSpecs() []SubsetSpec {
	return []SubsetSpec{
		{Name: "sentiment_pos", Field: "senti", Value: SentiPos},
		{Name: "sentiment_neg", Field: "senti", Value: SentiNeg},
		{Name: "sg_favor", Field: "sg", Value: StanceFavor},
		{Name: "sg_against", Field: "sg", Value: StanceAgainst},
		{Name: "military_favor", Field: "mil", Value: StanceFavor},
		{Name: "military_against", Field: "mil", Value: StanceAgainst},
		{Name: "religion_race_favor", Field: "rnr", Value: StanceFavor},
		{Name: "religion_race_against", Field: "rnr", Value: StanceAgainst},
		{Name: "societal_impact_favor", Field: "societal_impact", Value: StanceFavor},
		{Name: "societal_impact_against", Field: "societal_impact", Value: StanceAgainst},
	}
}

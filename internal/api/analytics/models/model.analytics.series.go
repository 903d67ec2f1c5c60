package models

// SeriesPoint là một điểm trên đường stance theo thời gian.
type SeriesPoint struct {
	Bucket int64 `json:"bucket"` // Thời điểm đầu bucket (UnixMilli)
	Count  int64 `json:"count"`  // Số tin trong bucket
}

// StanceSeries là đường Favor/Against của một trục lập trường,
// kèm thông số trục y để client vẽ trực tiếp.
type StanceSeries struct {
	Field         string        `json:"field"`          // Field lập trường: sg / mil / rnr / societal_impact
	BucketMinutes int64         `json:"bucket_minutes"` // Độ rộng bucket (phút)
	Favor         []SeriesPoint `json:"favor"`
	Against       []SeriesPoint `json:"against"`
	YMax          int64         `json:"y_max"`      // Trần trục y (bội số của interval)
	YInterval     int64         `json:"y_interval"` // Khoảng chia trục y
}

// StanceCounts đếm số tin theo từng giá trị lập trường của một trục.
type StanceCounts struct {
	Favor   int64 `json:"favor"`
	Against int64 `json:"against"`
	Neutral int64 `json:"neutral"`
}

// SummaryMetrics là bộ số liệu tổng quan trên dòng tin đã enrich.
type SummaryMetrics struct {
	Total      int64                   `json:"total"`                // Tổng số tin đã enrich
	Sentiment  map[string]int64        `json:"sentiment"`            // Pos / Neut / Neg
	Stances    map[string]StanceCounts `json:"stances"`              // Theo field: sg / mil / rnr / societal_impact
	Languages  map[string]int64        `json:"languages"`            // Phân bố ngôn ngữ
	TrollCount int64                   `json:"troll_count"`
	TrollPct   float64                 `json:"troll_pct"` // round(troll/total*100, 1)
	ToxicCount int64                   `json:"toxic_count"`
	ToxicPct   float64                 `json:"toxic_pct"` // round(toxic/total*100, 1)
}

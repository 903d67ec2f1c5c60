// Package analyticssvc chứa service tổng hợp số liệu dashboard trên dòng tin đã enrich.
// Các hàm tính toán ở file này là hàm thuần, tách khỏi data access để test trực tiếp.
// File: service.analytics.chart.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package analyticssvc

import (
	"math"

	analyticsmodels "github.com/anderson2805/social-live-exploration/internal/api/analytics/models"
	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
)

// StanceFields là các trục lập trường được vẽ thành line chart.
var StanceFields = []string{"sg", "mil", "rnr", "societal_impact"}

const millisPerMinute = int64(60 * 1000)

// BucketWidth chọn độ rộng bucket (phút) theo độ dài khoảng thời gian của dữ liệu:
// span <= 15 phút dùng bucket 1 phút, <= 60 dùng 5, <= 120 dùng 10, còn lại 15.
// span <= 0 (dữ liệu rỗng hoặc một thời điểm duy nhất) dùng 1.
func BucketWidth(spanMinutes float64) int64 {
	switch {
	case spanMinutes <= 0:
		return 1
	case spanMinutes <= 15:
		return 1
	case spanMinutes <= 60:
		return 5
	case spanMinutes <= 120:
		return 10
	default:
		return 15
	}
}

// ScaleYAxis tính trần và khoảng chia trục y từ giá trị lớn nhất của dữ liệu:
// cộng 10% đệm phía trên rồi làm tròn lên bội số của khoảng chia.
func ScaleYAxis(maxCount int64) (yMax int64, interval int64) {
	yMax = int64(math.Ceil(float64(maxCount) * 1.1))

	switch {
	case yMax <= 5:
		interval = 1
	case yMax <= 20:
		interval = 2
	case yMax <= 50:
		interval = 5
	default:
		interval = 10
	}

	yMax = int64(math.Ceil(float64(yMax)/float64(interval))) * interval
	return yMax, interval
}

// stanceValue đọc giá trị lập trường của một tin theo field, "" nếu field không có.
func stanceValue(msg *chatmodels.Message, field string) string {
	switch field {
	case "sg":
		return msg.SG
	case "mil":
		return msg.Mil
	case "rnr":
		return msg.RnR
	case "societal_impact":
		return msg.SocietalImpact
	default:
		return ""
	}
}

// truncateToBucket đưa một timestamp về đầu bucket chứa nó.
func truncateToBucket(ts int64, widthMinutes int64) int64 {
	widthMillis := widthMinutes * millisPerMinute
	return ts - (ts % widthMillis)
}

// BuildStanceSeries dựng đường Favor/Against của một trục lập trường.
// widthMinutes tính một lần trên toàn bộ dữ liệu (BucketWidth) để các chart
// cùng thang thời gian. Các bucket không có tin được điền 0 trên suốt khoảng
// từ bucket đầu đến bucket cuối. Field không hợp lệ trả về series rỗng.
func BuildStanceSeries(messages []chatmodels.Message, field string, widthMinutes int64) analyticsmodels.StanceSeries {
	series := analyticsmodels.StanceSeries{
		Field:         field,
		BucketMinutes: widthMinutes,
		Favor:         []analyticsmodels.SeriesPoint{},
		Against:       []analyticsmodels.SeriesPoint{},
	}

	if len(messages) == 0 || widthMinutes <= 0 {
		return series
	}

	known := false
	for _, f := range StanceFields {
		if f == field {
			known = true
			break
		}
	}
	if !known {
		return series
	}

	minTs, maxTs := messages[0].DtStamp, messages[0].DtStamp
	favorCounts := make(map[int64]int64)
	againstCounts := make(map[int64]int64)
	for i := range messages {
		msg := &messages[i]
		if msg.DtStamp < minTs {
			minTs = msg.DtStamp
		}
		if msg.DtStamp > maxTs {
			maxTs = msg.DtStamp
		}

		bucket := truncateToBucket(msg.DtStamp, widthMinutes)
		switch stanceValue(msg, field) {
		case chatmodels.StanceFavor:
			favorCounts[bucket]++
		case chatmodels.StanceAgainst:
			againstCounts[bucket]++
		}
	}

	widthMillis := widthMinutes * millisPerMinute
	firstBucket := truncateToBucket(minTs, widthMinutes)
	lastBucket := truncateToBucket(maxTs, widthMinutes)

	maxPoint := int64(0)
	for bucket := firstBucket; bucket <= lastBucket; bucket += widthMillis {
		favor := favorCounts[bucket]
		against := againstCounts[bucket]
		series.Favor = append(series.Favor, analyticsmodels.SeriesPoint{Bucket: bucket, Count: favor})
		series.Against = append(series.Against, analyticsmodels.SeriesPoint{Bucket: bucket, Count: against})
		if favor > maxPoint {
			maxPoint = favor
		}
		if against > maxPoint {
			maxPoint = against
		}
	}

	series.YMax, series.YInterval = ScaleYAxis(maxPoint)
	return series
}

// SpanMinutes tính độ dài khoảng thời gian (phút) của một tập tin nhắn.
func SpanMinutes(messages []chatmodels.Message) float64 {
	if len(messages) == 0 {
		return 0
	}

	minTs, maxTs := messages[0].DtStamp, messages[0].DtStamp
	for i := range messages {
		if messages[i].DtStamp < minTs {
			minTs = messages[i].DtStamp
		}
		if messages[i].DtStamp > maxTs {
			maxTs = messages[i].DtStamp
		}
	}

	return float64(maxTs-minTs) / float64(millisPerMinute)
}

// roundPct làm tròn phần trăm về 1 chữ số thập phân.
func roundPct(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// ComputeSummaryMetrics tính bộ số liệu tổng quan trên một tập tin đã enrich.
func ComputeSummaryMetrics(messages []chatmodels.Message) *analyticsmodels.SummaryMetrics {
	metrics := &analyticsmodels.SummaryMetrics{
		Total:     int64(len(messages)),
		Sentiment: make(map[string]int64),
		Stances:   make(map[string]analyticsmodels.StanceCounts),
		Languages: make(map[string]int64),
	}

	for _, field := range StanceFields {
		metrics.Stances[field] = analyticsmodels.StanceCounts{}
	}

	for i := range messages {
		msg := &messages[i]

		if msg.Senti != "" {
			metrics.Sentiment[msg.Senti]++
		}
		if msg.Lang != "" {
			metrics.Languages[msg.Lang]++
		}
		if msg.Troll {
			metrics.TrollCount++
		}
		if msg.Toxic {
			metrics.ToxicCount++
		}

		for _, field := range StanceFields {
			counts := metrics.Stances[field]
			switch stanceValue(msg, field) {
			case chatmodels.StanceFavor:
				counts.Favor++
			case chatmodels.StanceAgainst:
				counts.Against++
			case chatmodels.StanceNeutral:
				counts.Neutral++
			}
			metrics.Stances[field] = counts
		}
	}

	metrics.TrollPct = roundPct(metrics.TrollCount, metrics.Total)
	metrics.ToxicPct = roundPct(metrics.ToxicCount, metrics.Total)
	return metrics
}

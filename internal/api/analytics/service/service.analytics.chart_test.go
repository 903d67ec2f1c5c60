// Package analyticssvc - Test các hàm tính toán thuần của dashboard (bucket, thang trục y, series, metrics).
package analyticssvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
)

func TestBucketWidth(t *testing.T) {
	cases := []struct {
		name string
		span float64
		want int64
	}{
		{"rỗng hoặc một thời điểm", 0, 1},
		{"span âm", -3, 1},
		{"span ngắn dùng bucket 1 phút", 10, 1},
		{"biên 15 phút", 15, 1},
		{"span vừa dùng bucket 5 phút", 45, 5},
		{"biên 60 phút", 60, 5},
		{"span dài dùng bucket 10 phút", 90, 10},
		{"biên 120 phút", 120, 10},
		{"span rất dài dùng bucket 15 phút", 200, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BucketWidth(tc.span))
		})
	}
}

func TestScaleYAxis(t *testing.T) {
	cases := []struct {
		name         string
		maxCount     int64
		wantYMax     int64
		wantInterval int64
	}{
		{"max 0", 0, 0, 1},
		{"max nhỏ, khoảng chia 1", 3, 4, 1},      // ceil(3.3)=4
		{"max trung bình, khoảng chia 2", 18, 20, 2}, // ceil(19.8)=20
		{"max lớn, khoảng chia 5", 40, 45, 5},    // ceil(44)=44 -> bội số 5 = 45
		{"max rất lớn, khoảng chia 10", 47, 60, 10}, // ceil(51.7)=52 -> bội số 10 = 60
		{"max 95", 95, 110, 10},                  // ceil(104.5)=105 -> bội số 10 = 110
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			yMax, interval := ScaleYAxis(tc.maxCount)
			assert.Equal(t, tc.wantYMax, yMax, "yMax")
			assert.Equal(t, tc.wantInterval, interval, "interval")
		})
	}
}

func msgAt(ts int64, sg string) chatmodels.Message {
	return chatmodels.Message{DtStamp: ts, SG: sg}
}

func TestBuildStanceSeries(t *testing.T) {
	base := int64(1_700_000_040_000) // không nằm ở đầu phút

	t.Run("đếm favor/against theo bucket và điền 0 bucket trống", func(t *testing.T) {
		messages := []chatmodels.Message{
			msgAt(base, chatmodels.StanceFavor),
			msgAt(base+30_000, chatmodels.StanceFavor),
			msgAt(base+30_000, chatmodels.StanceAgainst),
			// bucket thứ hai trống, tin cuối rơi vào bucket thứ ba
			msgAt(base+2*60_000, chatmodels.StanceNeutral),
		}
		series := BuildStanceSeries(messages, "sg", 1)

		require.Len(t, series.Favor, 3)
		require.Len(t, series.Against, 3)
		assert.Equal(t, int64(1), series.BucketMinutes)

		assert.Equal(t, int64(2), series.Favor[0].Count)
		assert.Equal(t, int64(1), series.Against[0].Count)
		assert.Equal(t, int64(0), series.Favor[1].Count, "bucket trống phải là 0")
		assert.Equal(t, int64(0), series.Against[1].Count)
		assert.Equal(t, int64(0), series.Favor[2].Count, "Neutral không được đếm vào favor")
		assert.Equal(t, int64(0), series.Against[2].Count)

		// Các bucket phải thẳng hàng với đầu phút và cách đều nhau
		assert.Zero(t, series.Favor[0].Bucket%60_000)
		assert.Equal(t, series.Favor[0].Bucket+60_000, series.Favor[1].Bucket)

		// Thang trục y tính từ điểm lớn nhất (2): ceil(2.2)=3, khoảng chia 1
		assert.Equal(t, int64(3), series.YMax)
		assert.Equal(t, int64(1), series.YInterval)
	})

	t.Run("field không hợp lệ trả về series rỗng", func(t *testing.T) {
		messages := []chatmodels.Message{msgAt(base, chatmodels.StanceFavor)}
		series := BuildStanceSeries(messages, "sentiment", 1)
		assert.Empty(t, series.Favor)
		assert.Empty(t, series.Against)
	})

	t.Run("không có tin trả về series rỗng", func(t *testing.T) {
		series := BuildStanceSeries(nil, "sg", 1)
		assert.Empty(t, series.Favor)
		assert.Empty(t, series.Against)
	})
}

func TestSpanMinutes(t *testing.T) {
	assert.Zero(t, SpanMinutes(nil))

	messages := []chatmodels.Message{
		{DtStamp: 60_000},
		{DtStamp: 0},
		{DtStamp: 150_000},
	}
	assert.InDelta(t, 2.5, SpanMinutes(messages), 1e-9)
}

func TestComputeSummaryMetrics(t *testing.T) {
	messages := []chatmodels.Message{
		{Senti: chatmodels.SentiPos, Lang: "EN", SG: chatmodels.StanceFavor, Troll: true},
		{Senti: chatmodels.SentiPos, Lang: "ZH", SG: chatmodels.StanceAgainst, Toxic: true},
		{Senti: chatmodels.SentiNeg, Lang: "EN", Mil: chatmodels.StanceNeutral},
		{Lang: "EN"}, // chưa có nhãn sentiment
	}

	metrics := ComputeSummaryMetrics(messages)
	require.NotNil(t, metrics)

	assert.Equal(t, int64(4), metrics.Total)
	assert.Equal(t, int64(2), metrics.Sentiment[chatmodels.SentiPos])
	assert.Equal(t, int64(1), metrics.Sentiment[chatmodels.SentiNeg])
	assert.NotContains(t, metrics.Sentiment, "")

	assert.Equal(t, int64(3), metrics.Languages["EN"])
	assert.Equal(t, int64(1), metrics.Languages["ZH"])

	assert.Equal(t, int64(1), metrics.Stances["sg"].Favor)
	assert.Equal(t, int64(1), metrics.Stances["sg"].Against)
	assert.Equal(t, int64(1), metrics.Stances["mil"].Neutral)
	assert.Zero(t, metrics.Stances["rnr"].Favor)

	assert.Equal(t, int64(1), metrics.TrollCount)
	assert.Equal(t, 25.0, metrics.TrollPct)
	assert.Equal(t, int64(1), metrics.ToxicCount)
	assert.Equal(t, 25.0, metrics.ToxicPct)
}

func TestComputeSummaryMetrics_Empty(t *testing.T) {
	metrics := ComputeSummaryMetrics(nil)
	require.NotNil(t, metrics)
	assert.Zero(t, metrics.Total)
	assert.Zero(t, metrics.TrollPct, "chia cho 0 phải trả về 0")
	assert.Zero(t, metrics.ToxicPct)
}

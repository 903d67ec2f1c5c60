// Package analyticssvc - Test theo dõi chỉnh sửa trên bảng dữ liệu hiển thị.
package analyticssvc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
)

func TestFieldMapping(t *testing.T) {
	t.Run("ánh xạ hai chiều khớp nhau", func(t *testing.T) {
		for display := range displayToStorage {
			storage, ok := StorageField(display)
			require.True(t, ok, "thiếu ánh xạ cho cột %q", display)
			back, ok := DisplayField(storage)
			require.True(t, ok, "thiếu chiều ngược cho field %q", storage)
			assert.Equal(t, display, back)
		}
	})

	t.Run("cột có khoảng trắng", func(t *testing.T) {
		storage, ok := StorageField("Societal Impact")
		require.True(t, ok)
		assert.Equal(t, "societal_impact", storage)
	})

	t.Run("cột lạ", func(t *testing.T) {
		_, ok := StorageField("Message")
		assert.False(t, ok, "cột không được phép sửa phải bị từ chối")
	})
}

func TestEditTracker_Compare(t *testing.T) {
	t.Run("ghi nhận dòng có cột được phép sửa thay đổi", func(t *testing.T) {
		tracker := NewEditTracker(nil)
		displayed := []DisplayRow{
			{"ID": json.Number("7"), "Sentiment": "Pos", "Troll": false},
			{"ID": json.Number("8"), "Sentiment": "Neg", "Troll": false},
		}
		original := []DisplayRow{
			{"ID": json.Number("7"), "Sentiment": "Neut", "Troll": false},
			{"ID": json.Number("8"), "Sentiment": "Neg", "Troll": false},
		}

		count := tracker.Compare(displayed, original)
		assert.Equal(t, 1, count)
		assert.Equal(t, []int64{7}, tracker.ChangedIDs())
	})

	t.Run("so sánh lặp lại không ghi trùng id", func(t *testing.T) {
		tracker := NewEditTracker(nil)
		displayed := []DisplayRow{{"ID": json.Number("7"), "Troll": true}}
		original := []DisplayRow{{"ID": json.Number("7"), "Troll": false}}

		tracker.Compare(displayed, original)
		count := tracker.Compare(displayed, original)
		assert.Equal(t, 1, count)
	})

	t.Run("cột ID khác nhau không tính là chỉnh sửa", func(t *testing.T) {
		tracker := NewEditTracker(nil)
		displayed := []DisplayRow{{"ID": json.Number("7"), "Sentiment": "Pos"}}
		original := []DisplayRow{{"ID": json.Number("9"), "Sentiment": "Pos"}}

		count := tracker.Compare(displayed, original)
		assert.Zero(t, count)
	})

	t.Run("cột lạ bị bỏ qua", func(t *testing.T) {
		tracker := NewEditTracker(nil)
		displayed := []DisplayRow{{"ID": json.Number("7"), "Message": "sửa nội dung"}}
		original := []DisplayRow{{"ID": json.Number("7"), "Message": "nội dung gốc"}}

		count := tracker.Compare(displayed, original)
		assert.Zero(t, count, "thay đổi ở cột ngoài danh sách cho phép không được ghi nhận")
	})

	t.Run("độ dài hai bảng lệch nhau chỉ so phần chung", func(t *testing.T) {
		tracker := NewEditTracker(nil)
		displayed := []DisplayRow{{"ID": json.Number("7"), "Troll": true}}
		original := []DisplayRow{
			{"ID": json.Number("7"), "Troll": true},
			{"ID": json.Number("8"), "Troll": true},
		}

		count := tracker.Compare(displayed, original)
		assert.Zero(t, count)
	})
}

func TestValueEqual(t *testing.T) {
	assert.True(t, valueEqual(true, true))
	assert.False(t, valueEqual(true, false))
	assert.True(t, valueEqual(false, nil), "bool thiếu coi như false")
	assert.True(t, valueEqual("Pos", "Pos"))
	assert.False(t, valueEqual("Pos", "Neg"))
	assert.True(t, valueEqual(nil, ""), "string thiếu coi như rỗng")
}

func TestEditTracker_Flush_EmptySet(t *testing.T) {
	tracker := NewEditTracker(nil)

	// Không có id nào được theo dõi: không chạm database
	count, err := tracker.Flush(context.Background(), []DisplayRow{
		{"ID": json.Number("7"), "Sentiment": "Pos"},
	})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEditTracker_Flush_ResetsTrackedSet(t *testing.T) {
	tracker := NewEditTracker(nil)
	displayed := []DisplayRow{{"ID": json.Number("7"), "Troll": true}}
	original := []DisplayRow{{"ID": json.Number("7"), "Troll": false}}
	tracker.Compare(displayed, original)

	// Dòng đã sửa không còn trong bảng gửi lên: không có update nào được dựng
	count, err := tracker.Flush(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Set đã được reset sau flush
	assert.Empty(t, tracker.ChangedIDs())
}

// enrichmentWriterStub ghi nhận các update nhận được và trả lỗi cấu hình sẵn.
type enrichmentWriterStub struct {
	calls   int
	updates []chatmodels.EnrichmentUpdate
	err     error
}

func (s *enrichmentWriterStub) BulkUpsertEnrichment(_ context.Context, updates []chatmodels.EnrichmentUpdate) (int64, error) {
	s.calls++
	s.updates = updates
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(updates)), nil
}

func TestEditTracker_Flush_RestoresSetOnWriteError(t *testing.T) {
	stub := &enrichmentWriterStub{err: errors.New("bulk write failed")}
	tracker := &EditTracker{changed: map[int64]struct{}{}, messageService: stub}

	displayed := []DisplayRow{{"ID": json.Number("7"), "Sentiment": "Neg"}}
	original := []DisplayRow{{"ID": json.Number("7"), "Sentiment": "Pos"}}
	tracker.Compare(displayed, original)

	count, err := tracker.Flush(context.Background(), displayed)
	require.Error(t, err)
	assert.Zero(t, count)

	// Id vẫn được theo dõi: sửa đổi chưa ghi được không bị mất
	assert.Equal(t, []int64{7}, tracker.ChangedIDs())

	// Hết lỗi thì flush lại ghi đúng update còn nợ
	stub.err = nil
	count, err = tracker.Flush(context.Background(), displayed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, 2, stub.calls)
	require.Len(t, stub.updates, 1)
	assert.EqualValues(t, 7, stub.updates[0].MsgSeq)
	assert.Equal(t, "Neg", stub.updates[0].Senti)
	assert.Empty(t, tracker.ChangedIDs())
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
		ok   bool
	}{
		{"json.Number", json.Number("42"), 42, true},
		{"float64", float64(7), 7, true},
		{"int64", int64(9), 9, true},
		{"int", 3, 3, true},
		{"string", "42", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

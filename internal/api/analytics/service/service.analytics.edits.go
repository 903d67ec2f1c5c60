// File: service.analytics.edits.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package analyticssvc

import (
	"context"
	"encoding/json"
	"sync"

	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
	chatsvc "github.com/anderson2805/social-live-exploration/internal/api/chat/service"
)

// displayToStorage là bảng ánh xạ tên cột hiển thị sang tên field lưu trữ.
// Chỉ các cột trong bảng này được phép sửa từ bảng dữ liệu; cột lạ bị bỏ qua.
var displayToStorage = map[string]string{
	"ID":              "id",
	"Language":        "lang",
	"Sentiment":       "senti",
	"Military":        "mil",
	"RnR":             "rnr",
	"SG":              "sg",
	"Troll":           "troll",
	"Toxic":           "toxic",
	"Societal Impact": "societal_impact",
}

// storageToDisplay là chiều ngược lại, dựng từ displayToStorage để hai bảng không lệch nhau.
var storageToDisplay = func() map[string]string {
	m := make(map[string]string, len(displayToStorage))
	for display, storage := range displayToStorage {
		m[storage] = display
	}
	return m
}()

// StorageField trả về tên field lưu trữ của một cột hiển thị.
func StorageField(display string) (string, bool) {
	storage, ok := displayToStorage[display]
	return storage, ok
}

// DisplayField trả về tên cột hiển thị của một field lưu trữ.
func DisplayField(storage string) (string, bool) {
	display, ok := storageToDisplay[storage]
	return display, ok
}

// DisplayRow là một dòng của bảng dữ liệu phía hiển thị, key là tên cột hiển thị.
type DisplayRow map[string]interface{}

// rowID đọc cột ID của một dòng; ok=false nếu thiếu hoặc không phải số.
func rowID(row DisplayRow) (int64, bool) {
	return toInt64(row["ID"])
}

// toInt64 ép một giá trị JSON về int64 (body được parse với UseNumber).
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// toBool ép một giá trị JSON về bool.
func toBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

// toString ép một giá trị JSON về string.
func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// enrichmentWriter là phần của MessageService mà EditTracker cần khi flush.
type enrichmentWriter interface {
	BulkUpsertEnrichment(ctx context.Context, updates []chatmodels.EnrichmentUpdate) (int64, error)
}

// EditTracker theo dõi các dòng đã bị sửa trên bảng dữ liệu hiển thị.
// So sánh nhiều lần trên cùng một dòng chỉ ghi nhận id một lần (set),
// nên flush không gửi trùng update cho cùng một tin.
type EditTracker struct {
	mu             sync.Mutex
	changed        map[int64]struct{}
	messageService enrichmentWriter
}

// NewEditTracker tạo mới EditTracker
func NewEditTracker(messageService *chatsvc.MessageService) *EditTracker {
	return &EditTracker{
		changed:        make(map[int64]struct{}),
		messageService: messageService,
	}
}

// Compare so sánh từng cặp dòng (hiển thị, gốc) và ghi nhận id của các dòng
// có ít nhất một cột được phép sửa bị thay đổi. Trả về số id đang được theo dõi.
func (t *EditTracker) Compare(displayed, original []DisplayRow) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(displayed)
	if len(original) < n {
		n = len(original)
	}

	for i := 0; i < n; i++ {
		if rowChanged(displayed[i], original[i]) {
			if id, ok := rowID(displayed[i]); ok {
				t.changed[id] = struct{}{}
			}
		}
	}

	return len(t.changed)
}

// rowChanged kiểm tra hai dòng có khác nhau ở cột được phép sửa nào không.
// Cột ID là định danh, không tính là thay đổi.
func rowChanged(displayed, original DisplayRow) bool {
	for display := range displayToStorage {
		if display == "ID" {
			continue
		}
		if !valueEqual(displayed[display], original[display]) {
			return true
		}
	}
	return false
}

// valueEqual so sánh hai giá trị JSON theo ngữ nghĩa cột (bool hoặc string).
func valueEqual(a, b interface{}) bool {
	if ab, ok := a.(bool); ok {
		return ab == toBool(b)
	}
	if bb, ok := b.(bool); ok {
		return toBool(a) == bb
	}
	return toString(a) == toString(b)
}

// ChangedIDs trả về danh sách id đang được theo dõi (phục vụ hiển thị).
func (t *EditTracker) ChangedIDs() []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]int64, 0, len(t.changed))
	for id := range t.changed {
		ids = append(ids, id)
	}
	return ids
}

// Flush dựng payload enrichment từ trạng thái cuối của các dòng đã sửa rồi ghi
// xuống database bằng một bulk upsert. Các lần flush chồng nhau phân xử theo
// last-write-wins ở từng field. Set rỗng trả về 0 và không chạm database.
func (t *EditTracker) Flush(ctx context.Context, rows []DisplayRow) (int64, error) {
	t.mu.Lock()
	changed := t.changed
	t.changed = make(map[int64]struct{})
	t.mu.Unlock()

	if len(changed) == 0 {
		return 0, nil
	}

	updates := make([]chatmodels.EnrichmentUpdate, 0, len(changed))
	for _, row := range rows {
		id, ok := rowID(row)
		if !ok {
			continue
		}
		if _, tracked := changed[id]; !tracked {
			continue
		}

		updates = append(updates, chatmodels.EnrichmentUpdate{
			MsgSeq:         id,
			Lang:           toString(row["Language"]),
			Senti:          toString(row["Sentiment"]),
			Troll:          toBool(row["Troll"]),
			Toxic:          toBool(row["Toxic"]),
			SG:             toString(row["SG"]),
			Mil:            toString(row["Military"]),
			RnR:            toString(row["RnR"]),
			SocietalImpact: toString(row["Societal Impact"]),
		})
	}

	if len(updates) == 0 {
		return 0, nil
	}

	count, err := t.messageService.BulkUpsertEnrichment(ctx, updates)
	if err != nil {
		// Ghi lỗi thì trả id về set để lần flush sau còn gửi lại,
		// không thì các sửa đổi mất luôn mà không ai hay.
		t.mu.Lock()
		for id := range changed {
			t.changed[id] = struct{}{}
		}
		t.mu.Unlock()
		return 0, err
	}
	return count, nil
}

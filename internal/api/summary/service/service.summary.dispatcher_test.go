// Package summarysvc - Test clamp sample size, layout các chủ đề và nhóm thiếu tin.
package summarysvc

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
	summarymodels "github.com/anderson2805/social-live-exploration/internal/api/summary/models"
)

func TestClampSampleSize(t *testing.T) {
	s := &SummaryService{defaultSample: 50}

	cases := []struct {
		name string
		in   int64
		want int64
	}{
		{"0 dùng giá trị cấu hình", 0, 50},
		{"dưới sàn kéo lên 30", 10, 30},
		{"đúng sàn", 30, 30},
		{"trong khoảng giữ nguyên", 64, 64},
		{"đúng trần", 100, 100},
		{"trên trần kéo xuống 100", 250, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.ClampSampleSize(tc.in))
		})
	}
}

func TestSectionLayouts(t *testing.T) {
	require.Len(t, sectionLayouts, 5)

	// Các facet phải khớp với tên subset do FetchLabeledSubsets trả về
	specNames := make(map[string]bool)
	for _, spec := range chatmodels.DefaultSubsetSpecs() {
		specNames[spec.Name] = true
	}
	for _, layout := range sectionLayouts {
		for _, facet := range layout.facets {
			assert.True(t, specNames[facet], "facet %q không có trong danh sách subset mặc định", facet)
		}
	}

	// Nhãn hiển thị: sentiment dùng Positive/Negative, các trục còn lại Favor/Against
	assert.Equal(t, [2]string{"Positive", "Negative"}, sectionLayouts[0].labels)
	for _, layout := range sectionLayouts[1:] {
		assert.Equal(t, [2]string{"Favor", "Against"}, layout.labels)
	}

	assert.Equal(t, "Sentiment Analysis", sectionLayouts[0].title)
	assert.Equal(t, "Societal Impact Assessment", sectionLayouts[4].title)
}

func TestSummarizeGroup_Insufficient(t *testing.T) {
	s := &SummaryService{}

	messages := make([]chatmodels.Message, 29)
	for i := range messages {
		messages[i] = chatmodels.Message{Message: fmt.Sprintf("tin %d", i)}
	}

	group := s.summarizeGroup(context.Background(), "Positive", messages, 30)
	assert.Equal(t, summarymodels.GroupStatusInsufficient, group.Status)
	assert.Equal(t, int64(29), group.MessageCount)
	assert.Equal(t, "Insufficient messages for Positive, only 29 messages found", group.Summary)
}

func TestSummarizeGroup_InsufficientEmpty(t *testing.T) {
	s := &SummaryService{}

	group := s.summarizeGroup(context.Background(), "Against", nil, 30)
	assert.Equal(t, summarymodels.GroupStatusInsufficient, group.Status)
	assert.Zero(t, group.MessageCount)
	assert.Equal(t, "Insufficient messages for Against, only 0 messages found", group.Summary)
}

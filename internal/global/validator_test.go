// Package global - Test trích xuất video id và các custom validator.
package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"URL chuẩn dạng watch", "https://www.youtube.com/watch?v=abc123", "abc123"},
		{"có query param khác phía sau", "https://www.youtube.com/watch?v=abc123&t=42s", "abc123"},
		{"param v không đứng đầu", "https://www.youtube.com/watch?t=42s&v=abc123", "abc123"},
		{"dạng không chuẩn chỉ có dấu bằng", "watch?v=xyz789", "xyz789"},
		{"chuỗi rỗng", "", ""},
		{"không có video id", "https://www.youtube.com/", ""},
		{"dấu bằng ở cuối không có id", "https://example.com/watch?v=", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractVideoID(tc.url))
		})
	}
}

func TestCustomValidators(t *testing.T) {
	InitValidator()

	t.Run("platform_url", func(t *testing.T) {
		assert.NoError(t, Validate.Var("https://www.youtube.com/watch?v=abc123", "platform_url"))
		assert.Error(t, Validate.Var("https://www.youtube.com/", "platform_url"))
	})

	t.Run("stance_value", func(t *testing.T) {
		for _, v := range []string{"Favor", "Against", "Neutral", "NA", ""} {
			assert.NoError(t, Validate.Var(v, "stance_value"), "giá trị %q phải hợp lệ", v)
		}
		assert.Error(t, Validate.Var("favor", "stance_value"), "phân biệt hoa thường")
	})

	t.Run("sentiment_value", func(t *testing.T) {
		for _, v := range []string{"Pos", "Neut", "Neg", ""} {
			assert.NoError(t, Validate.Var(v, "sentiment_value"))
		}
		assert.Error(t, Validate.Var("Positive", "sentiment_value"))
	})

	t.Run("language_value", func(t *testing.T) {
		for _, v := range []string{"EN", "MS", "ZH", "TA", "Other", ""} {
			assert.NoError(t, Validate.Var(v, "language_value"))
		}
		assert.Error(t, Validate.Var("FR", "language_value"))
	})

	t.Run("no_xss", func(t *testing.T) {
		assert.NoError(t, Validate.Var("xin chào", "no_xss"))
		assert.Error(t, Validate.Var("<script>alert(1)</script>", "no_xss"))
	})
}

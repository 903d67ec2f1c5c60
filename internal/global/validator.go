package global

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Các giá trị label hợp lệ của classifier
var (
	validStances    = map[string]bool{"Favor": true, "Against": true, "Neutral": true, "NA": true}
	validSentiments = map[string]bool{"Pos": true, "Neut": true, "Neg": true}
	validLanguages  = map[string]bool{"EN": true, "MS": true, "ZH": true, "TA": true, "Other": true}
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("platform_url", validatePlatformURL)
	_ = Validate.RegisterValidation("stance_value", validateStanceValue)
	_ = Validate.RegisterValidation("sentiment_value", validateSentimentValue)
	_ = Validate.RegisterValidation("language_value", validateLanguageValue)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validatePlatformURL kiểm tra URL của nguồn thu thập: phải parse được và
// phải trích xuất được video id từ query param "v" (dạng watch?v=<id>).
// Các thao tác xóa collection dựa vào id này để cascade, nên URL không
// trích xuất được id bị từ chối ngay từ validation.
func validatePlatformURL(fl validator.FieldLevel) bool {
	return ExtractVideoID(fl.Field().String()) != ""
}

// ExtractVideoID trích xuất video id từ URL nguồn (query param "v").
// Trả về chuỗi rỗng nếu URL không hợp lệ hoặc không có id.
func ExtractVideoID(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if id := u.Query().Get("v"); id != "" {
		return id
	}
	// Dạng không chuẩn: lấy phần sau dấu "=" đầu tiên
	if idx := strings.Index(rawURL, "="); idx >= 0 && idx+1 < len(rawURL) {
		id := rawURL[idx+1:]
		if amp := strings.Index(id, "&"); amp >= 0 {
			id = id[:amp]
		}
		return id
	}
	return ""
}

// validateStanceValue kiểm tra giá trị stance: Favor/Against/Neutral/NA
func validateStanceValue(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Trường optional, required xử lý riêng
	}
	return validStances[value]
}

// validateSentimentValue kiểm tra giá trị sentiment: Pos/Neut/Neg
func validateSentimentValue(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return validSentiments[value]
}

// validateLanguageValue kiểm tra giá trị ngôn ngữ: EN/MS/ZH/TA/Other
func validateLanguageValue(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return validLanguages[value]
}

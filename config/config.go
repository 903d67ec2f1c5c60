package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin cơ sở dữ liệu, server và các dịch vụ ngoài
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"chat_messages"` // Tên cơ sở dữ liệu chat
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Summarizer Configuration (dịch vụ sinh văn bản tóm tắt bên ngoài)
	SummarizerEndpoint string `env:"SUMMARIZER_ENDPOINT,required"`              // URL endpoint của dịch vụ tóm tắt
	SummarizerModel    string `env:"SUMMARIZER_MODEL" envDefault:"gpt-4o-mini"` // Tên model của dịch vụ tóm tắt
	SummarizerAPIKey   string `env:"SUMMARIZER_API_KEY"`                        // API key của dịch vụ tóm tắt (optional)
	SummarySampleSize  int    `env:"SUMMARY_SAMPLE_SIZE" envDefault:"30"`       // Số message mỗi nhóm khi tóm tắt (30..100)
	SummaryTimezone    string `env:"SUMMARY_TIMEZONE" envDefault:"Asia/Singapore"` // Timezone cố định cho timestamp của summary

	// Summary Worker Configuration (worker chạy nền, mặc định tắt)
	SummaryWorkerEnabled  bool `env:"SUMMARY_WORKER_ENABLED" envDefault:"false"` // Bật/tắt worker tóm tắt định kỳ
	SummaryWorkerInterval int  `env:"SUMMARY_WORKER_INTERVAL" envDefault:"1800"` // Khoảng thời gian giữa các lần chạy (giây)

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	// Kẹp sample size vào khoảng hợp lệ [30, 100]
	if cfg.SummarySampleSize < 30 {
		cfg.SummarySampleSize = 30
	}
	if cfg.SummarySampleSize > 100 {
		cfg.SummarySampleSize = 100
	}

	return &cfg
}

package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anderson2805/social-live-exploration/config"
	"github.com/anderson2805/social-live-exploration/internal/registry"
)

// MongoDB_Chat_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Chat_CollectionName struct {
	Messages    string // Tên collection cho tin nhắn live chat (raw + enriched)
	Counters    string // Tên collection cho bộ đếm sequence (cấp id)
	Collections string // Tên collection cho registry các URL đang thu thập
	Summaries   string // Tên collection cho các summary bundle đã sinh
	Service     string // Tên collection cho trạng thái chung của dịch vụ thu thập
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_Chat_CollectionName = *new(MongoDB_Chat_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

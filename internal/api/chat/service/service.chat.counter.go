// Package chatsvc chứa service data access cho domain Chat (Message, Counter).
// Nằm trong folder service/; base service (BaseServiceMongoImpl) ở api/basesvc.
// File: service.chat.counter.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package chatsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/anderson2805/social-live-exploration/internal/api/base/service"
	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
	"github.com/anderson2805/social-live-exploration/internal/common"
	"github.com/anderson2805/social-live-exploration/internal/global"
)

// CounterService cấp các giá trị sequence tăng dần từ collection counters.
type CounterService struct {
	*basesvc.BaseServiceMongoImpl[chatmodels.Counter]
}

// NewCounterService tạo mới CounterService
func NewCounterService() (*CounterService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Counters)
	if !exist {
		return nil, fmt.Errorf("failed to get counters collection: %v", common.ErrNotFound)
	}

	return &CounterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[chatmodels.Counter](collection),
	}, nil
}

// NextSequence trả về giá trị tiếp theo của sequence name.
// $inc + upsert + ReturnDocument(After) trong một FindOneAndUpdate duy nhất,
// nên giá trị trả về là duy nhất và tăng dần kể cả khi nhiều collector gọi song song.
func (s *CounterService) NextSequence(ctx context.Context, name string) (int64, error) {
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"seq": int64(1)},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	counter, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, bson.M{"_id": name}, update, opts)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

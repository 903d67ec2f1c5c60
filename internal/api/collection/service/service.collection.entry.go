// Package collectionsvc chứa service data access cho domain Collection.
// Nằm trong folder service/; base service (BaseServiceMongoImpl) ở api/basesvc.
// File: service.collection.entry.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package collectionsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	basesvc "github.com/anderson2805/social-live-exploration/internal/api/base/service"
	chatsvc "github.com/anderson2805/social-live-exploration/internal/api/chat/service"
	collectionmodels "github.com/anderson2805/social-live-exploration/internal/api/collection/models"
	"github.com/anderson2805/social-live-exploration/internal/common"
	"github.com/anderson2805/social-live-exploration/internal/global"
)

// CheckStatusUnknown được trả về khi không đọc được trạng thái trong hạn 1s.
// Collector coi unknown là "giữ nguyên hành vi hiện tại", khác với stopped.
const CheckStatusUnknown = "unknown"

// checkStatusMaxTime là hạn tối đa cho một lần check_status.
const checkStatusMaxTime = 1 * time.Second

// setStatusWTimeout là wtimeout cho các lần ghi trạng thái với write concern majority.
const setStatusWTimeout = 5 * time.Second

// CollectionService quản lý registry các URL thu thập.
type CollectionService struct {
	*basesvc.BaseServiceMongoImpl[collectionmodels.CollectionEntry]

	// majority ghi trạng thái với write concern majority (wtimeout 5s)
	majority *basesvc.BaseServiceMongoImpl[collectionmodels.CollectionEntry]
	// consistent đọc từ primary với read concern majority, dùng cho check_status
	consistent *mongo.Collection
	// messageService cascade soft delete tin nhắn khi xóa URL
	messageService *chatsvc.MessageService
}

// NewCollectionService tạo mới CollectionService
func NewCollectionService() (*CollectionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Collections)
	if !exist {
		return nil, fmt.Errorf("failed to get collection registry collection: %v", common.ErrNotFound)
	}

	messageService, err := chatsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}

	wc := writeconcern.Majority()
	wc.WTimeout = setStatusWTimeout
	majorityCol := collection.Database().Collection(
		collection.Name(),
		options.Collection().SetWriteConcern(wc),
	)

	consistentCol := collection.Database().Collection(
		collection.Name(),
		options.Collection().
			SetReadPreference(readpref.Primary()).
			SetReadConcern(readconcern.Majority()),
	)

	return &CollectionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[collectionmodels.CollectionEntry](collection),
		majority:             basesvc.NewBaseServiceMongo[collectionmodels.CollectionEntry](majorityCol),
		consistent:           consistentCol,
		messageService:       messageService,
	}, nil
}

// Register đưa một URL vào registry với status=start bằng một upsert duy nhất.
// created suy ra từ UpsertedCount của chính lệnh ghi, không pre-check nên không
// có race giữa kiểm tra và ghi: URL đã có chỉ được bật lại trạng thái start.
func (s *CollectionService) Register(ctx context.Context, url string, platform string) (bool, error) {
	if platform == "" {
		platform = "YouTube"
	}

	now := time.Now().UnixMilli()
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"platform":  platform,
			"status":    collectionmodels.CollectionStatusStart,
			"updatedAt": now,
		},
		SetOnInsert: map[string]interface{}{
			"createdAt": now,
		},
	}

	result, err := s.Collection().UpdateOne(ctx, bson.M{"url": url}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}

	created := result.UpsertedCount > 0
	logrus.WithFields(logrus.Fields{
		"url":     url,
		"created": created,
	}).Info("Registered collection URL")

	return created, nil
}

// SetStatus đổi trạng thái của một nhóm URL, ghi với write concern majority
// (wtimeout 5s) để collector trên node khác không đọc phải trạng thái cũ.
func (s *CollectionService) SetStatus(ctx context.Context, urls []string, status string) (int64, error) {
	if len(urls) == 0 {
		return 0, nil
	}
	if status != collectionmodels.CollectionStatusStart && status != collectionmodels.CollectionStatusStopped {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái không hợp lệ: %s", status),
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{"url": bson.M{"$in": urls}}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	}

	return s.majority.UpdateMany(ctx, filter, update, options.Update().SetUpsert(true))
}

// ListByStatus trả về danh sách URL đang ở trạng thái cho trước.
func (s *CollectionService) ListByStatus(ctx context.Context, status string) ([]string, error) {
	entries, err := s.Find(ctx, bson.M{"status": status}, nil)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(entries))
	for _, entry := range entries {
		urls = append(urls, entry.URL)
	}
	return urls, nil
}

// Delete gỡ các URL khỏi registry và cascade soft delete toàn bộ tin nhắn
// của các video tương ứng. URL không trích xuất được video id đã bị chặn từ
// validation nên ở đây chỉ bỏ qua cho an toàn.
func (s *CollectionService) Delete(ctx context.Context, urls []string) (*collectionmodels.DeleteResult, error) {
	if len(urls) == 0 {
		return &collectionmodels.DeleteResult{}, nil
	}

	vidIDs := make([]string, 0, len(urls))
	for _, url := range urls {
		if id := global.ExtractVideoID(url); id != "" {
			vidIDs = append(vidIDs, id)
		}
	}

	deleted, err := s.DeleteMany(ctx, bson.M{"url": bson.M{"$in": urls}})
	if err != nil {
		return nil, err
	}

	affected, err := s.messageService.SoftDeleteByVidIDs(ctx, vidIDs)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"deleted_count":          deleted,
		"affected_message_count": affected,
	}).Info("Deleted collection URLs")

	return &collectionmodels.DeleteResult{
		DeletedCount:         deleted,
		AffectedMessageCount: affected,
	}, nil
}

// CheckStatus đọc trạng thái của một URL với độ nhất quán mạnh: đọc từ primary,
// read concern majority, hạn 1s. Quá hạn trả về unknown thay vì stopped để
// collector không tự dừng chỉ vì một lần đọc chậm.
func (s *CollectionService) CheckStatus(ctx context.Context, url string) (string, error) {
	opts := options.FindOne().
		SetProjection(bson.M{"status": 1}).
		SetMaxTime(checkStatusMaxTime)

	var entry collectionmodels.CollectionEntry
	err := s.consistent.FindOne(ctx, bson.M{"url": url}, opts).Decode(&entry)
	if err != nil {
		converted := common.ConvertMongoError(err)
		if errors.Is(converted, common.ErrMongoTimeout) {
			return CheckStatusUnknown, nil
		}
		return "", converted
	}

	return entry.Status, nil
}

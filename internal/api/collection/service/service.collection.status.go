// File: service.collection.status.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package collectionsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	basesvc "github.com/anderson2805/social-live-exploration/internal/api/base/service"
	collectionmodels "github.com/anderson2805/social-live-exploration/internal/api/collection/models"
	"github.com/anderson2805/social-live-exploration/internal/common"
	"github.com/anderson2805/social-live-exploration/internal/global"
)

// ServiceStatusService quản lý trạng thái chung của dịch vụ thu thập
// (collection "service", một document duy nhất).
type ServiceStatusService struct {
	*basesvc.BaseServiceMongoImpl[collectionmodels.ServiceStatus]

	majority *basesvc.BaseServiceMongoImpl[collectionmodels.ServiceStatus]
}

// NewServiceStatusService tạo mới ServiceStatusService
func NewServiceStatusService() (*ServiceStatusService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Service)
	if !exist {
		return nil, fmt.Errorf("failed to get service status collection: %v", common.ErrNotFound)
	}

	wc := writeconcern.Majority()
	wc.WTimeout = setStatusWTimeout
	majorityCol := collection.Database().Collection(
		collection.Name(),
		options.Collection().SetWriteConcern(wc),
	)

	return &ServiceStatusService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[collectionmodels.ServiceStatus](collection),
		majority:             basesvc.NewBaseServiceMongo[collectionmodels.ServiceStatus](majorityCol),
	}, nil
}

// GetStatus trả về trạng thái hiện tại của dịch vụ thu thập.
// Chưa có document nào nghĩa là dịch vụ chưa từng được đặt trạng thái: trả về chuỗi rỗng.
func (s *ServiceStatusService) GetStatus(ctx context.Context) (string, error) {
	status, err := s.FindOne(ctx, bson.M{}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return status.Status, nil
}

// SetStatus đặt trạng thái chung của dịch vụ bằng một upsert trên document duy nhất,
// ghi với write concern majority (wtimeout 5s).
func (s *ServiceStatusService) SetStatus(ctx context.Context, status string) error {
	if status != collectionmodels.CollectionStatusStart && status != collectionmodels.CollectionStatusStopped {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái không hợp lệ: %s", status),
			common.StatusBadRequest,
			nil,
		)
	}

	now := time.Now().UnixMilli()
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    status,
			"updatedAt": now,
		},
		SetOnInsert: map[string]interface{}{
			"createdAt": now,
		},
	}

	_, err := s.majority.Collection().UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

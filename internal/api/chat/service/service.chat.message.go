// File: service.chat.message.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package chatsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	basesvc "github.com/anderson2805/social-live-exploration/internal/api/base/service"
	chatmodels "github.com/anderson2805/social-live-exploration/internal/api/chat/models"
	"github.com/anderson2805/social-live-exploration/internal/common"
	"github.com/anderson2805/social-live-exploration/internal/global"
)

// minMessageLength: tin nhắn phải dài hơn ngưỡng này (tính theo code point)
// mới được đưa vào enrichment và các truy vấn phân tích.
const minMessageLength = 5

// MessageService là service quản lý tin nhắn live chat.
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[chatmodels.Message]

	// majority ghi với write concern majority, dùng cho bulk upsert enrichment
	majority *basesvc.BaseServiceMongoImpl[chatmodels.Message]
	counter  *CounterService
}

// NewMessageService tạo mới MessageService
func NewMessageService() (*MessageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("failed to get messages collection: %v", common.ErrNotFound)
	}

	counter, err := NewCounterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create counter service: %v", err)
	}

	majorityCol := collection.Database().Collection(
		collection.Name(),
		options.Collection().SetWriteConcern(writeconcern.Majority()),
	)

	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[chatmodels.Message](collection),
		majority:             basesvc.NewBaseServiceMongo[chatmodels.Message](majorityCol),
		counter:              counter,
	}, nil
}

// lengthFilter chỉ giữ các tin có nội dung dài hơn minMessageLength code point.
func lengthFilter() bson.M {
	return bson.M{"$gt": bson.A{bson.M{"$strLenCP": "$message"}, minMessageLength}}
}

// notDeletedFilter loại các tin đã soft delete; document cũ chưa có field delete vẫn được giữ.
func notDeletedFilter() bson.A {
	return bson.A{
		bson.M{"delete": bson.M{"$ne": true}},
		bson.M{"delete": bson.M{"$exists": false}},
	}
}

// InsertRaw cấp id từ counter cho từng tin rồi chèn cả batch vào collection messages.
// Batch được chèn unordered: msg_id đã tồn tại (collector gửi lại tin cũ) bị bỏ qua
// và trả về trong skipped, các tin còn lại vẫn được chèn bình thường.
func (s *MessageService) InsertRaw(ctx context.Context, batch []chatmodels.Message) (int64, []string, error) {
	if len(batch) == 0 {
		return 0, nil, nil
	}

	now := time.Now().UnixMilli()
	docs := make([]interface{}, 0, len(batch))
	for i := range batch {
		seq, err := s.counter.NextSequence(ctx, chatmodels.MessageSequenceName)
		if err != nil {
			return 0, nil, err
		}
		msg := batch[i]
		msg.MsgSeq = seq
		msg.Enriched = false
		msg.Delete = false
		msg.CreatedAt = now
		msg.UpdatedAt = now
		docs = append(docs, msg)
	}

	opts := options.InsertMany().SetOrdered(false)
	result, err := s.Collection().InsertMany(ctx, docs, opts)

	var skipped []string
	if err != nil {
		bwe, ok := err.(mongo.BulkWriteException)
		if !ok {
			return 0, nil, common.ConvertMongoError(err)
		}
		// Chỉ chấp nhận lỗi duplicate key (tin đã ingest trước đó), lỗi khác trả về luôn
		for _, we := range bwe.WriteErrors {
			if we.Code != 11000 {
				return 0, nil, common.ConvertMongoError(err)
			}
			if we.Index >= 0 && we.Index < len(batch) {
				skipped = append(skipped, batch[we.Index].MsgID)
			}
		}
	}

	inserted := int64(0)
	if result != nil {
		inserted = int64(len(result.InsertedIDs))
	}

	logrus.WithFields(logrus.Fields{
		"inserted": inserted,
		"skipped":  len(skipped),
	}).Info("Inserted raw chat messages")

	return inserted, skipped, nil
}

// FetchUnenriched trả về các tin chưa enrich và đủ dài để enrich.
// limit <= 0 nghĩa là không giới hạn.
func (s *MessageService) FetchUnenriched(ctx context.Context, limit int64) ([]chatmodels.Message, error) {
	filter := bson.M{
		"enriched": false,
		"$expr":    lengthFilter(),
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	return s.Find(ctx, filter, opts)
}

// FetchEnriched trả về toàn bộ tin đã enrich, đủ dài và chưa bị soft delete.
func (s *MessageService) FetchEnriched(ctx context.Context) ([]chatmodels.Message, error) {
	filter := bson.M{
		"enriched": true,
		"$expr":    lengthFilter(),
		"$or":      notDeletedFilter(),
	}

	return s.Find(ctx, filter, nil)
}

// FetchByVidIDs trả về các tin đã enrich thuộc các video cho trước,
// kể cả tin đã soft delete (phục vụ xuất dữ liệu theo phiên live).
func (s *MessageService) FetchByVidIDs(ctx context.Context, vidIDs []string) ([]chatmodels.Message, error) {
	if len(vidIDs) == 0 {
		return []chatmodels.Message{}, nil
	}

	filter := bson.M{
		"enriched": true,
		"$expr":    lengthFilter(),
		"vid_id":   bson.M{"$in": vidIDs},
	}

	return s.Find(ctx, filter, nil)
}

// SoftDeleteByVidIDs đánh dấu delete=true cho toàn bộ tin thuộc các video cho trước.
// Tin vẫn nằm trong collection và vẫn truy cập được qua lookup theo id.
func (s *MessageService) SoftDeleteByVidIDs(ctx context.Context, vidIDs []string) (int64, error) {
	if len(vidIDs) == 0 {
		return 0, nil
	}

	filter := bson.M{"vid_id": bson.M{"$in": vidIDs}}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"delete": true},
	}

	return s.UpdateMany(ctx, filter, update, nil)
}

// BulkUpsertEnrichment ghi kết quả enrichment cho cả batch bằng một BulkWrite duy nhất,
// filter theo id nội bộ, write concern majority. Mỗi update đặt enriched=true và
// dt_enriched; chạy lại cùng payload cho cùng trạng thái cuối (idempotent).
func (s *MessageService) BulkUpsertEnrichment(ctx context.Context, updates []chatmodels.EnrichmentUpdate) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	now := time.Now().UnixMilli()
	filters := make([]interface{}, 0, len(updates))
	updateDocs := make([]interface{}, 0, len(updates))
	for _, u := range updates {
		filters = append(filters, bson.M{"id": u.MsgSeq})
		updateDocs = append(updateDocs, &basesvc.UpdateData{
			Set: map[string]interface{}{
				"lang":            u.Lang,
				"senti":           u.Senti,
				"troll":           u.Troll,
				"toxic":           u.Toxic,
				"sg":              u.SG,
				"mil":             u.Mil,
				"rnr":             u.RnR,
				"societal_impact": u.SocietalImpact,
				"enriched":        true,
				"dt_enriched":     now,
			},
		})
	}

	result, err := s.majority.UpsertMany(ctx, filters, updateDocs)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"matched":  result.MatchedCount,
		"modified": result.ModifiedCount,
		"upserted": result.UpsertedCount,
	}).Info("Bulk upserted message enrichment")

	return result.MatchedCount + result.UpsertedCount, nil
}

// FetchLabeledSubsets lấy các nhóm tin gắn nhãn trong một lượt aggregation duy nhất:
// dòng tin đã enrich (chưa xóa, đủ dài) sort theo dt_stamp giảm dần, mỗi spec là một
// facet lọc field=value và cắt limit tin mới nhất. Key của map kết quả là Name của spec.
func (s *MessageService) FetchLabeledSubsets(ctx context.Context, specs []chatmodels.SubsetSpec, limit int64) (map[string][]chatmodels.Message, error) {
	if len(specs) == 0 {
		specs = chatmodels.DefaultSubsetSpecs()
	}
	if limit <= 0 {
		limit = 30
	}

	facet := bson.M{}
	for _, spec := range specs {
		facet[spec.Name] = bson.A{
			bson.M{"$match": bson.M{spec.Field: spec.Value}},
			bson.M{"$limit": limit},
		}
	}

	pipeline := []bson.M{
		{"$match": bson.M{
			"enriched": true,
			"$expr":    lengthFilter(),
			"$or":      notDeletedFilter(),
		}},
		{"$sort": bson.M{"dt_stamp": -1}},
		{"$facet": facet},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	subsets := make(map[string][]chatmodels.Message)
	if cursor.Next(ctx) {
		if err := cursor.Decode(&subsets); err != nil {
			return nil, common.ConvertMongoError(err)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return subsets, nil
}

package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AlertRepo interface {
	CreateAlert(ctx context.Context, alert *JobAlertModel) error
	BulkCreateAlerts(ctx context.Context, alerts []*JobAlertModel) error
	GetAlertList(ctx context.Context, userID uint64, limit, offset int64) ([]*JobAlertModel, error)
	MarkAsRead(ctx context.Context, userID uint64, alertID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*JobAlertModel, error)
}

type alertRepoImpl struct {
	col *mongo.Collection
}

func NewAlertRepo(db *mongo.Database) AlertRepo {
	return &alertRepoImpl{
		col: db.Collection("job_alerts"),
	}
}

// CreateAlert 插入单条提醒
func (s *alertRepoImpl) CreateAlert(ctx context.Context, alert *JobAlertModel) error {
	_, err := s.col.InsertOne(ctx, alert)
	return err
}

// BulkCreateAlerts 批量插入提醒，供职位发布后的关注者扇出使用
func (s *alertRepoImpl) BulkCreateAlerts(ctx context.Context, alerts []*JobAlertModel) error {
	if len(alerts) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(alerts))
	for _, alert := range alerts {
		docs = append(docs, alert)
	}
	_, err := s.col.InsertMany(ctx, docs)
	return err
}

// GetAlertList 分页获取用户的提醒列表 (按时间倒序)
func (s *alertRepoImpl) GetAlertList(ctx context.Context, userID uint64, limit, offset int64) ([]*JobAlertModel, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*JobAlertModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkAsRead 标记单条提醒为已读
func (s *alertRepoImpl) MarkAsRead(ctx context.Context, userID uint64, alertID string) error {
	objectID, err := primitive.ObjectIDFromHex(alertID)
	if err != nil {
		return mongo.ErrInvalidIndexValue
	}
	filter := bson.M{"_id": objectID, "user_id": userID}
	update := bson.M{"$set": bson.M{"is_read": true}}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkAllAsRead 一键清除未读
func (s *alertRepoImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	filter := bson.M{"user_id": userID, "is_read": false}
	update := bson.M{"$set": bson.M{"is_read": true}}
	_, err := s.col.UpdateMany(ctx, filter, update)
	return err
}

// GetUnreadCount 获取用户的未读提醒总数
func (s *alertRepoImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	filter := bson.M{"user_id": userID, "is_read": false}
	return s.col.CountDocuments(ctx, filter)
}

// GetByID 根据 ID 获取提醒
func (s *alertRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*JobAlertModel, error) {
	var alert JobAlertModel
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&alert)
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

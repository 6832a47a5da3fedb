package repository

import (
	"context"
	"fmt"
	"time"

	"gamer_social_service/internal/chat/domain"
	"gamer_social_service/pkg"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository definition message bucket access
type MessageRepository interface {
	// AppendMessage 將訊息寫入當天的桶，桶不存在時建立
	AppendMessage(ctx context.Context, roomID string, msg domain.ChatMessage) error
	// FindBucketsSince 查詢指定聊天室從 fromDate 起的所有桶
	FindBucketsSince(ctx context.Context, roomID, fromDate string) ([]domain.MessageBucket, error)
	// MarkRead 將 messageID 的訊息加入 read_by: userID
	MarkRead(ctx context.Context, roomID, messageID, userID string) error
	// FindEarliestUnread 找出第一個含未讀訊息的桶
	FindEarliestUnread(ctx context.Context, userID, roomID string) (*domain.MessageBucket, error)
	FindMessagesBefore(ctx context.Context, roomID string, beforeTimestamp int64) ([]domain.ChatMessage, error)
	CountUnreadMessagesByRoom(ctx context.Context, userID string, roomIDs []string) ([]domain.RoomUnreadInfo, error)
}

type chatMessageRepository struct {
	coll *mongo.Collection
}

// NewMongoMessageRepository create a MessageRepository
func NewMongoMessageRepository(db *mongo.Database) MessageRepository {
	return &chatMessageRepository{
		coll: db.Collection("chat_messages"),
	}
}

// AppendMessage - 寫入一筆聊天訊息到當天的桶
func (r *chatMessageRepository) AppendMessage(ctx context.Context, roomID string, msg domain.ChatMessage) error {
	date := time.Unix(msg.Timestamp, 0).UTC().Format("2006-01-02")
	filter := bson.M{"room_id": roomID, "date": date}
	update := bson.M{"$push": bson.M{"messages": msg}}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindBucketsSince 查詢 fromDate（含）之後的桶，按日期升序
func (r *chatMessageRepository) FindBucketsSince(ctx context.Context, roomID, fromDate string) ([]domain.MessageBucket, error) {
	filter := bson.M{
		"room_id": roomID,
		"date":    bson.M{"$gte": fromDate},
	}
	opts := options.Find()
	opts.SetSort(bson.M{"date": 1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var buckets []domain.MessageBucket
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// MarkRead 把 userID 加入指定訊息的 read_by
func (r *chatMessageRepository) MarkRead(ctx context.Context, roomID, messageID, userID string) error {
	filter := bson.M{
		"room_id":     roomID,
		"messages.id": messageID,
	}
	update := bson.M{"$addToSet": bson.M{"messages.$.read_by": userID}}
	_, err := r.coll.UpdateOne(ctx, filter, update)
	return err
}

// FindEarliestUnread - 尋找 userID 在 roomID 裡第一個含未讀訊息的桶
func (r *chatMessageRepository) FindEarliestUnread(ctx context.Context, userID, roomID string) (*domain.MessageBucket, error) {
	// 按日期升序排序（最早的桶在前）
	filter := bson.M{"room_id": roomID}
	opts := options.Find()
	opts.SetSort(bson.M{"date": 1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var buckets []domain.MessageBucket
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}

	// 遍歷每個 bucket，找到第一個包含至少一則未讀訊息的 bucket
	for _, bucket := range buckets {
		for _, msg := range bucket.Messages {
			if msg.SenderID == userID {
				continue
			}
			if !pkg.Contains(msg.ReadBy, userID) {
				return &bucket, nil
			}
		}
	}
	return nil, nil
}

func (r *chatMessageRepository) FindMessagesBefore(ctx context.Context, roomID string, beforeTimestamp int64) ([]domain.ChatMessage, error) {
	day := time.Unix(beforeTimestamp, 0).UTC().Format("2006-01-02")
	filter := bson.M{
		"room_id": roomID,
		"date":    bson.M{"$lte": day},
	}
	opts := options.Find()
	opts.SetSort(bson.M{"date": 1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var buckets []domain.MessageBucket
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	var messages []domain.ChatMessage
	for _, bucket := range buckets {
		for _, msg := range bucket.Messages {
			if msg.Timestamp < beforeTimestamp {
				messages = append(messages, msg)
			}
		}
	}
	return messages, nil
}

// CountUnreadMessagesByRoom 聚合計算每個房間的未讀數
func (r *chatMessageRepository) CountUnreadMessagesByRoom(ctx context.Context, userID string, roomIDs []string) ([]domain.RoomUnreadInfo, error) {
	pipeline := mongo.Pipeline{
		// 1. 只看自己所屬的房間
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "room_id", Value: bson.D{{Key: "$in", Value: roomIDs}}},
		}}},
		// 2. 展開每個 bucket 的 messages 陣列
		bson.D{{Key: "$unwind", Value: "$messages"}},
		// 3. 過濾出未讀訊息（read_by 不包含 userID，且非自己發的）
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "messages.read_by", Value: bson.D{{Key: "$ne", Value: userID}}},
			{Key: "messages.sender_id", Value: bson.D{{Key: "$ne", Value: userID}}},
		}}},
		// 4. 按 room_id 分組，計算未讀數量和該組未讀訊息中的最大時間戳
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$room_id"},
			{Key: "unread_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "last_unread_timestamp", Value: bson.D{{Key: "$max", Value: "$messages.timestamp"}}},
		}}},
		// 5. 根據 last_unread_timestamp 降序排序
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "last_unread_timestamp", Value: -1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate error: %w", err)
	}

	var results []domain.RoomUnreadInfo
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("cursor All error: %w", err)
	}

	return results, nil
}

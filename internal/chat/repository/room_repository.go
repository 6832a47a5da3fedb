package repository

import (
	"context"

	"gamer_social_service/internal/chat/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository definition chat room
type RoomRepository interface {
	CreateRoom(ctx context.Context, room *domain.ChatRoom) error
	FindByID(ctx context.Context, roomID string) (*domain.ChatRoom, error)
	UpdateRoom(ctx context.Context, room *domain.ChatRoom) error
	FindRoomsByMember(ctx context.Context, userID string) ([]domain.ChatRoom, error)
	AddMember(ctx context.Context, roomID, userID string) error
	RemoveMember(ctx context.Context, roomID, userID string) error
	DeleteRoom(ctx context.Context, roomID string) error
}

type chatRoomRepository struct {
	roomsColl *mongo.Collection
}

// NewMongoRoomRepository create new mongo chat room repo
func NewMongoRoomRepository(db *mongo.Database) RoomRepository {
	return &chatRoomRepository{
		roomsColl: db.Collection("chat_rooms"),
	}
}

// CreateRoom create room
func (r *chatRoomRepository) CreateRoom(ctx context.Context, room *domain.ChatRoom) error {
	_, err := r.roomsColl.InsertOne(ctx, room)
	return err
}

// FindByID find room by id
func (r *chatRoomRepository) FindByID(ctx context.Context, roomID string) (*domain.ChatRoom, error) {
	var room domain.ChatRoom
	err := r.roomsColl.FindOne(ctx, bson.M{"_id": roomID}).Decode(&room)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoom update room info
func (r *chatRoomRepository) UpdateRoom(ctx context.Context, room *domain.ChatRoom) error {
	filter := bson.M{"_id": room.ID}
	update := bson.M{"$set": room}
	_, err := r.roomsColl.UpdateOne(ctx, filter, update)
	return err
}

// FindRoomsByMember 查詢 user 所屬的全部房間
func (r *chatRoomRepository) FindRoomsByMember(ctx context.Context, userID string) ([]domain.ChatRoom, error) {
	filter := bson.M{"members": userID}
	cur, err := r.roomsColl.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var rooms []domain.ChatRoom
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// AddMember 加入成員，$addToSet 避免重複
func (r *chatRoomRepository) AddMember(ctx context.Context, roomID, userID string) error {
	filter := bson.M{"_id": roomID}
	update := bson.M{"$addToSet": bson.M{"members": userID}}
	_, err := r.roomsColl.UpdateOne(ctx, filter, update)
	return err
}

// RemoveMember 移除成員
func (r *chatRoomRepository) RemoveMember(ctx context.Context, roomID, userID string) error {
	filter := bson.M{"_id": roomID}
	update := bson.M{"$pull": bson.M{"members": userID, "admins": userID}}
	_, err := r.roomsColl.UpdateOne(ctx, filter, update)
	return err
}

// DeleteRoom delete room
func (r *chatRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	_, err := r.roomsColl.DeleteOne(ctx, bson.M{"_id": roomID})
	return err
}

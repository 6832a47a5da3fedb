package repository

import (
	"context"
	"fmt"
	"io"
	"time"

	"gamer_social_service/pkg/database"
)

// AvatarStore 頭像物件儲存介面
type AvatarStore interface {
	Upload(ctx context.Context, memberID string, reader io.Reader, size int64, contentType string) (string, error)
	PresignURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectName string) error
}

type minioAvatarStore struct {
	client *database.MinIOClient
}

// NewMinioAvatarStore create minio AvatarStore
func NewMinioAvatarStore(client *database.MinIOClient) AvatarStore {
	return &minioAvatarStore{client: client}
}

// Upload 上傳頭像，object key 以 memberID 命名，重新上傳直接覆蓋
func (s *minioAvatarStore) Upload(ctx context.Context, memberID string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("avatars/%s", memberID)
	if err := s.client.UploadStream(ctx, objectName, reader, size, contentType); err != nil {
		return "", err
	}
	return objectName, nil
}

func (s *minioAvatarStore) PresignURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return s.client.PresignGetURL(ctx, objectName, expiry)
}

func (s *minioAvatarStore) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, objectName)
}

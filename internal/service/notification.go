package service

import (
	"context"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) Notify(ctx context.Context, userID, title, message string, attributes map[string]string) error {
	note := &domain.Notification{
		UserID:     userID,
		Title:      title,
		Message:    message,
		Attributes: attributes,
	}
	return s.noteRepo.Create(ctx, note)
}

func (s *notificationService) List(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	return s.noteRepo.List(ctx, userID, limit)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id, userID string) error {
	return s.noteRepo.MarkAsRead(ctx, id, userID)
}

package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/repository"
)

type notificationDoc struct {
	UserID     string            `firestore:"user_id"`
	Title      string            `firestore:"title"`
	Message    string            `firestore:"message"`
	IsRead     bool              `firestore:"is_read"`
	Attributes map[string]string `firestore:"attributes"`
	CreatedOn  time.Time         `firestore:"created_on"`
}

type notificationRepository struct {
	client *firestore.Client
}

func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedOn = time.Now().UTC()
	doc := notificationDoc{
		UserID:     n.UserID,
		Title:      n.Title,
		Message:    n.Message,
		IsRead:     n.IsRead,
		Attributes: n.Attributes,
		CreatedOn:  n.CreatedOn,
	}
	_, err := r.client.Collection(colNotifications).Doc(n.ID).Create(ctx, doc)
	return err
}

func (r *notificationRepository) List(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	q := r.client.Collection(colNotifications).
		Where("user_id", "==", userID).
		OrderBy("created_on", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}
	iter := q.Documents(ctx)
	defer iter.Stop()
	var notes []domain.Notification
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d notificationDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		notes = append(notes, domain.Notification{
			ID:         snap.Ref.ID,
			UserID:     d.UserID,
			Title:      d.Title,
			Message:    d.Message,
			IsRead:     d.IsRead,
			Attributes: d.Attributes,
			CreatedOn:  d.CreatedOn,
		})
	}
	return notes, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	ref := r.client.Collection(colNotifications).Doc(id)
	snap, err := ref.Get(ctx)
	if err != nil {
		return mapGetErr(err)
	}
	var d notificationDoc
	if err := snap.DataTo(&d); err != nil {
		return err
	}
	// Ownership check so one member cannot mark another's notification.
	if d.UserID != userID {
		return domain.ErrNotFound
	}
	_, err = ref.Update(ctx, []firestore.Update{{Path: "is_read", Value: true}})
	return err
}

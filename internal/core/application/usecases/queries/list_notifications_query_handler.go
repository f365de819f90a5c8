package queries

import (
	"context"
	"database/sql"
	"strings"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler pages through a user's notification feed.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for feed queries.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the query, newest notifications first.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	conditions := []string{"user_id = ?"}
	args := []any{query.UserID()}
	if query.Type() != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, query.Type().String())
	}
	if query.UnreadOnly() {
		conditions = append(conditions, "is_read = FALSE")
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	resp := ListNotificationsQueryResponse{
		Notifications: make([]NotificationResponse, 0),
		Page:          query.Page(),
		PageSize:      query.PageSize(),
	}

	err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM notifications`+where, args...,
	).Scan(&resp.Total).Error
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	pageArgs := append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			priority,
			title,
			message,
			action_url,
			is_read,
			read_at,
			created_at
		FROM notifications`+where+`
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			n      NotificationResponse
			id     uuid.UUID
			readAt sql.NullTime
		)

		err = rows.Scan(
			&id,
			&n.Type,
			&n.Priority,
			&n.Title,
			&n.Message,
			&n.ActionURL,
			&n.IsRead,
			&readAt,
			&n.CreatedAt,
		)
		if err != nil {
			return ListNotificationsQueryResponse{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListNotificationsQueryResponse{}, idErr
		}
		n.ID = notificationID
		n.ReadAt = nullableTime(readAt)
		resp.Notifications = append(resp.Notifications, n)
	}

	if err = rows.Err(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	return resp, nil
}

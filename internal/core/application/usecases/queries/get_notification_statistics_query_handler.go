package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetNotificationStatisticsQueryHandler counts a user's notifications.
type GetNotificationStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationStatisticsQueryHandler creates a handler for feed
// statistics queries.
func NewGetNotificationStatisticsQueryHandler(db *gorm.DB) GetNotificationStatisticsQueryHandler {
	return GetNotificationStatisticsQueryHandler{db: db}
}

// Handle executes the query. A user without notifications reports zero
// counts and an empty type breakdown.
func (h GetNotificationStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationStatisticsQuery,
) (GetNotificationStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationStatisticsQueryResponse{}, err
	}

	resp := GetNotificationStatisticsQueryResponse{
		ByType: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			type,
			COUNT(*),
			COUNT(*) FILTER (WHERE NOT is_read)
		FROM notifications
		WHERE user_id = ?
		GROUP BY type
	`, query.UserID()).Rows()
	if err != nil {
		return GetNotificationStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			notifType     string
			total, unread int64
		)

		if err = rows.Scan(&notifType, &total, &unread); err != nil {
			return GetNotificationStatisticsQueryResponse{}, err
		}

		resp.ByType[notifType] = total
		resp.Total += total
		resp.Unread += unread
	}

	if err = rows.Err(); err != nil {
		return GetNotificationStatisticsQueryResponse{}, err
	}

	return resp, nil
}

package queries

import (
	"errors"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetNotificationStatisticsQueryIsNotConstructed = errors.New(
	"GetNotificationStatisticsQuery must be created via NewGetNotificationStatisticsQuery constructor",
)

// GetNotificationStatisticsQuery counts a user's notifications, total and
// unread, broken down by type.
type GetNotificationStatisticsQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetNotificationStatisticsQuery creates a statistics query for the
// user's feed.
func NewGetNotificationStatisticsQuery(userID string) (GetNotificationStatisticsQuery, error) {
	query := GetNotificationStatisticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if userID == "" {
		return GetNotificationStatisticsQuery{}, errs.NewValueIsRequiredError("userID")
	}
	query.userID = userID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationStatisticsQueryIsNotConstructed)
}

// UserID returns the feed owner.
func (q GetNotificationStatisticsQuery) UserID() string { return q.userID }

// GetNotificationStatisticsQueryResponse summarizes one user's feed.
type GetNotificationStatisticsQueryResponse struct {
	Total  int64
	Unread int64
	ByType map[string]int64
}

package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery pages through a user's notification feed, newest
// first, with optional type and unread filters.
type ListNotificationsQuery struct { //nolint:recvcheck //using for validation
	userID     string
	notifType  *notification.Type
	unreadOnly bool
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a feed query. A nil type means all
// types; zero page and pageSize select the defaults.
func NewListNotificationsQuery(
	userID string,
	notifType *notification.Type,
	unreadOnly bool,
	page, pageSize int,
) (ListNotificationsQuery, error) {
	query := ListNotificationsQuery{
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setType(notifType),
		query.setPage(page),
		query.setPageSize(pageSize),
	); err != nil {
		return ListNotificationsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// UserID returns the feed owner.
func (q ListNotificationsQuery) UserID() string { return q.userID }

// Type returns the type filter, nil when unfiltered.
func (q ListNotificationsQuery) Type() *notification.Type { return q.notifType }

// UnreadOnly reports whether read notifications are excluded.
func (q ListNotificationsQuery) UnreadOnly() bool { return q.unreadOnly }

// Page returns the 1-based page index.
func (q ListNotificationsQuery) Page() int { return q.page }

// PageSize returns the page length.
func (q ListNotificationsQuery) PageSize() int { return q.pageSize }

func (q *ListNotificationsQuery) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	q.userID = userID
	return nil
}

func (q *ListNotificationsQuery) setType(notifType *notification.Type) error {
	if notifType == nil {
		return nil
	}
	if err := notifType.Validate(); err != nil {
		return err
	}

	q.notifType = notifType
	return nil
}

func (q *ListNotificationsQuery) setPage(page int) error {
	normalized, err := normalizePage(page)
	if err != nil {
		return err
	}

	q.page = normalized
	return nil
}

func (q *ListNotificationsQuery) setPageSize(pageSize int) error {
	normalized, err := normalizePageSize(pageSize)
	if err != nil {
		return err
	}

	q.pageSize = normalized
	return nil
}

// NotificationResponse is one notification in the feed read model.
type NotificationResponse struct {
	ID        kernel.UUID
	Type      string
	Priority  string
	Title     string
	Message   string
	ActionURL string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

// ListNotificationsQueryResponse is one page of a user's feed.
type ListNotificationsQueryResponse struct {
	Notifications []NotificationResponse
	Total         int64
	Page          int
	PageSize      int
}

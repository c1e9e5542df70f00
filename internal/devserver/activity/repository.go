package activity

import "context"

type Repository interface {
	Add(ctx context.Context, e Entry) error
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
}

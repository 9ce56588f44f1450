package sessions

import "context"

type StoreInterface interface {
	Issue(ctx context.Context, userID uint64) (string, error)
	Resolve(ctx context.Context, token string) (uint64, error)
	Revoke(ctx context.Context, token string) error
}

var _ StoreInterface = (*Store)(nil)

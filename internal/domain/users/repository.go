package users

import "context"

type Repository interface {
	Get(ctx context.Context, id string) (User, error)
	Save(ctx context.Context, u User) error
	List(ctx context.Context) ([]User, error)
}

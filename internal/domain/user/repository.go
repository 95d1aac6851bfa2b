package user

import (
	"context"
)

type UserRepository interface {
	GetByContact(ctx context.Context, contact string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByContact(ctx context.Context, contact string) (bool, error)
}

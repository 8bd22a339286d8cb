package seed

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/types"
)

// DemoPassword is shared by every demo account
const DemoPassword = "testpassword123"

// DemoUsers are the accounts created for local development
var DemoUsers = []types.SignupRequest{
	{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
	{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com"},
	{FirstName: "Bob", LastName: "Wilson", Email: "bob.wilson@example.com"},
	{FirstName: "Alice", LastName: "Cooper", Email: "alice.cooper@example.com"},
}

// LoadDemoUsers signs up every demo account. Accounts that already exist are left alone.
func LoadDemoUsers(ctx context.Context, auth service.IAuthService, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}

	created := 0
	for _, u := range DemoUsers {
		req := u
		req.Password = DemoPassword
		user, _, err := auth.Signup(ctx, &req)
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			log.Info("demo user exists", zap.String("email", req.Email))
			continue
		case err != nil:
			return created, err
		}
		created++
		log.Info("created demo user", zap.String("email", user.Email), zap.Int64("id", user.ID))
	}
	return created, nil
}

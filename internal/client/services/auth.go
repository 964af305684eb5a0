// Package services contains the application services of the staffdesk
// client: authentication exchanges and the employee domain façade. Both
// are thin layers over the transport Client; neither retries, and
// neither touches the session store — establishing the session after a
// successful login is the caller's job.
package services

import (
	"context"
	"fmt"

	"github.com/pvolkovs/staffdesk/internal/client/client"
	"github.com/pvolkovs/staffdesk/internal/client/models"
)

// AuthService performs the login and signup exchanges.
//
// Contract:
//   - each operation is a single request/response, no retry;
//   - on failure the transport error is surfaced unmodified and no
//     state is mutated anywhere;
//   - on success the returned payload carries the session token; the
//     caller persists it and proceeds.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.AuthPayload, error)
	Signup(ctx context.Context, username, email, password string) (*models.AuthPayload, error)
}

type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.AuthPayload, error) {
	payload, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if payload.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}
	return payload, nil
}

func (a *authService) Signup(ctx context.Context, username, email, password string) (*models.AuthPayload, error) {
	payload, err := a.client.Signup(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	if payload.Token == "" {
		return nil, fmt.Errorf("signup response carried no token")
	}
	return payload, nil
}

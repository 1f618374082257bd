package rest

import (
	"context"
	"encoding/json"
	"fmt"

	"huddle/app"
)

// sessionService implements app.SessionService against the Huddle API.
type sessionService struct {
	client *Client
}

// NewSessionService creates a SessionService backed by the Huddle API.
func NewSessionService(client *Client) *sessionService {
	return &sessionService{client: client}
}

func (s *sessionService) Status(_ context.Context) (app.AuthStatus, error) {
	data, err := s.client.Get("/auth/status")
	if err != nil {
		return app.AuthStatus{}, fmt.Errorf("fetching auth status: %w", err)
	}

	var payload struct {
		User   *wireUser `json:"user"`
		Online bool      `json:"online"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return app.AuthStatus{}, fmt.Errorf("parsing auth status: %w", err)
	}

	status := app.AuthStatus{Online: payload.Online}
	if payload.User != nil {
		if payload.User.ID == "" {
			return app.AuthStatus{}, fmt.Errorf("auth status: user missing id")
		}
		u := payload.User.toDomain()
		status.User = &u
	}
	return status, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexsamir/portfolio/internal/auth/domain"
	"github.com/dexsamir/portfolio/internal/backend"
)

type fakeLogin struct {
	token string
	err   error
}

func (f fakeLogin) Login(ctx context.Context, email, password string) (string, error) {
	return f.token, f.err
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		api     fakeLogin
		want    string
		wantErr error
	}{
		{name: "success", api: fakeLogin{token: "tok"}, want: "tok"},
		{name: "unauthorized", api: fakeLogin{err: &backend.APIError{Status: 401}}, wantErr: domain.ErrInvalidCredentials},
		{name: "forbidden", api: fakeLogin{err: &backend.APIError{Status: 403}}, wantErr: domain.ErrInvalidCredentials},
		{name: "bad request", api: fakeLogin{err: &backend.APIError{Status: 400}}, wantErr: domain.ErrInvalidCredentials},
		{name: "server error", api: fakeLogin{err: &backend.APIError{Status: 500}}, wantErr: domain.ErrLoginUnavailable},
		{name: "network", api: fakeLogin{err: errors.New("dial tcp: refused")}, wantErr: domain.ErrLoginUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAuthService(tt.api, nil).Login(context.Background(), "a@b.c", "pw")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

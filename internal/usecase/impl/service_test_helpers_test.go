package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"getlife/config"
	"getlife/internal/domain/entity"
	"getlife/internal/domain/repository"
	"getlife/internal/infra/persistence/local"
	"getlife/internal/infra/session"
	"getlife/internal/usecase"
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return local.New(bucket)
}

func newTestSession(t *testing.T) repository.SessionStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return session.New(bucket)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Seed = config.SeedConfig{
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin-secret",
		AdminName:     "Admin",
	}

	return cfg
}

func newTestAuthService(t *testing.T, store repository.Store, sessions repository.SessionStore) usecase.AuthUsecase {
	t.Helper()

	return NewAuthService(AuthServiceParams{
		Store:   store,
		Session: sessions,
		Config:  testConfig(),
		Logger:  testLogger(),
	})
}

func registerUser(t *testing.T, auth usecase.AuthUsecase, email string, role entity.Role) {
	t.Helper()

	_, err := auth.Register(context.Background(), usecase.RegisterInput{
		Name:     "Seseorang",
		Email:    email,
		Password: "rahasia",
		Role:     role,
	})
	require.NoError(t, err)
}

package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"getlife/config"
	"getlife/internal/delivery/http/middleware"
	"getlife/internal/delivery/http/router"
	"getlife/internal/delivery/http/router/handler"
	"getlife/internal/delivery/http/validator"
	"getlife/internal/infra/persistence/failover"
	"getlife/internal/infra/persistence/local"
	"getlife/internal/infra/session"
	"getlife/internal/usecase"
	"getlife/internal/usecase/impl"
	"getlife/internal/view"
)

type testServer struct {
	echo *echo.Echo
	auth usecase.AuthUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	storeBucket := memblob.OpenBucket(nil)
	sessionBucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = storeBucket.Close()
		_ = sessionBucket.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	facade := failover.New(nil, local.New(storeBucket), logger)
	sessions := session.New(sessionBucket)

	cfg := &config.Config{}
	cfg.Seed = config.SeedConfig{
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin-secret",
		AdminName:     "Admin",
	}

	auth := impl.NewAuthService(impl.AuthServiceParams{
		Store: facade, Session: sessions, Config: cfg, Logger: logger,
	})
	partners := impl.NewPartnerService(impl.PartnerServiceParams{Store: facade, Logger: logger})
	profiles := impl.NewProfileService(impl.ProfileServiceParams{Store: facade, Logger: logger})
	wallet := impl.NewWalletService(impl.WalletServiceParams{Store: facade, Logger: logger})
	orders := impl.NewOrderService(impl.OrderServiceParams{Store: facade, Logger: logger})
	chat := impl.NewChatService(impl.ChatServiceParams{Store: facade, Logger: logger})
	views := view.NewRouter(view.RouterParams{Auth: auth, Logger: logger})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	routes := router.NewRouter(router.RouterParams{
		ShellHandler:   handler.NewShellHandler(facade, views),
		AuthHandler:    handler.NewAuthHandler(auth, views, logger),
		PartnerHandler: handler.NewPartnerHandler(partners),
		ProfileHandler: handler.NewProfileHandler(profiles),
		WalletHandler:  handler.NewWalletHandler(wallet),
		OrderHandler:   handler.NewOrderHandler(orders),
		ChatHandler:    handler.NewChatHandler(chat),
		AuthMiddleware: middleware.NewAuthMiddleware(auth),
	})
	routes.RegisterRoutes(e)

	return &testServer{echo: e, auth: auth}
}

func (s *testServer) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHealthReportsLocalBackend(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "local", data["backend"])
}

func TestRegisterLoginMeFlow(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia","role":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Registration does not log in.
	rec = server.request(t, http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"budi@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.request(t, http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "budi@example.com", data["email"])
	assert.Equal(t, "user", data["role"])
	// The password never leaves the server.
	_, leaked := data["password"]
	assert.False(t, leaked)

	rec = server.request(t, http.MethodGet, "/view/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "dashboard-user", state["state"])

	rec = server.request(t, http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.request(t, http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestViewNavigationBetweenLoggedOutScreens(t *testing.T) {
	server := newTestServer(t)

	// The first resolve settles the shell on the landing page.
	rec := server.request(t, http.MethodGet, "/view/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "landing", decodeBody(t, rec)["data"].(map[string]any)["state"])

	rec = server.request(t, http.MethodPost, "/view/navigate", `{"target":"login"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "login", decodeBody(t, rec)["data"].(map[string]any)["state"])

	rec = server.request(t, http.MethodPost, "/view/navigate", `{"target":"register-mitra"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "register-mitra", decodeBody(t, rec)["data"].(map[string]any)["state"])

	// Dashboards are only entered through a resolved login.
	rec = server.request(t, http.MethodPost, "/view/navigate", `{"target":"dashboard-admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "register-mitra", decodeBody(t, rec)["data"].(map[string]any)["state"])

	rec = server.request(t, http.MethodPost, "/view/navigate", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFailureSpeaksIndonesian(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(t, http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"salah"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Email atau password salah", body["message"])
	errorInfo := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_CREDENTIALS", errorInfo["code"])
}

func TestRegisterValidation(t *testing.T) {
	server := newTestServer(t)

	// Admin cannot be chosen at registration.
	rec := server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Penyusup","email":"penyusup@example.com","password":"rahasia","role":"admin"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Short password is refused.
	rec = server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"x","role":"user"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Duplicate email is a conflict with the original message.
	rec = server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia","role":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia","role":"user"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email sudah terdaftar", decodeBody(t, rec)["message"])
}

func TestAdminGatesProtectedRoutes(t *testing.T) {
	server := newTestServer(t)
	ctx := t.Context()

	require.NoError(t, server.auth.EnsureAdmin(ctx))

	rec := server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia","role":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Logged out: 401.
	rec = server.request(t, http.MethodGet, "/profiles", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logged in as a regular user: 403.
	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"budi@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = server.request(t, http.MethodGet, "/profiles", "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Logged in as the admin: 200.
	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"admin-secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = server.request(t, http.MethodGet, "/profiles", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMitraApplicationApprovalUnlocksLogin(t *testing.T) {
	server := newTestServer(t)
	require.NoError(t, server.auth.EnsureAdmin(t.Context()))

	rec := server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Mitra Satu","email":"mitra@example.com","password":"rahasia","role":"mitra"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Unverified mitra cannot log in yet.
	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"mitra@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Akun mitra belum diverifikasi", decodeBody(t, rec)["message"])

	// Application is open to the logged-out public.
	rec = server.request(t, http.MethodPost, "/partner/applications",
		`{"email":"mitra@example.com","nama":"Mitra Satu","expertise":"GetClean","reason":"pengalaman"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	applicationID := decodeBody(t, rec)["data"].(map[string]any)["id"].(string)

	// Admin approves.
	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"admin-secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = server.request(t, http.MethodPost, "/partner/applications/"+applicationID+"/review",
		`{"approve":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"mitra@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWalletTopupReviewFlow(t *testing.T) {
	server := newTestServer(t)
	require.NoError(t, server.auth.EnsureAdmin(t.Context()))

	rec := server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia","role":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"budi@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.request(t, http.MethodPost, "/wallet/topup",
		`{"amount":100000,"transferProof":"bukti.jpg"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	transactionID := decodeBody(t, rec)["data"].(map[string]any)["id"].(string)

	// A regular user cannot review.
	rec = server.request(t, http.MethodPost, "/wallet/transactions/"+transactionID+"/review",
		`{"approve":true}`)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"admin-secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = server.request(t, http.MethodPost, "/wallet/transactions/"+transactionID+"/review",
		`{"approve":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// The credited balance shows up on the profile.
	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"budi@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = server.request(t, http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.EqualValues(t, 100000, data["saldo"])
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia","role":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"budi@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.request(t, http.MethodPost, "/orders",
		`{"mitraId":"mitra@example.com","service":"GetClean"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := decodeBody(t, rec)["data"].(map[string]any)["id"].(string)

	rec = server.request(t, http.MethodPost, "/orders/"+orderID+"/start", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Cancelling after start is refused.
	rec = server.request(t, http.MethodPost, "/orders/"+orderID+"/cancel", "")
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = server.request(t, http.MethodPost, "/orders/"+orderID+"/complete", `{"totalCost":150000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.request(t, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeBody(t, rec)["data"].([]any)
	require.Len(t, orders, 1)
	assert.Equal(t, "done", orders[0].(map[string]any)["status"])
}

func TestChatRequiresPeerForNonAdmins(t *testing.T) {
	server := newTestServer(t)

	rec := server.request(t, http.MethodPost, "/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia","role":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = server.request(t, http.MethodPost, "/auth/login",
		`{"email":"budi@example.com","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.request(t, http.MethodPost, "/chat/messages",
		`{"receiverId":"admin@example.com","message":"Halo admin"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = server.request(t, http.MethodGet, "/chat/messages?with=admin@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	messages := decodeBody(t, rec)["data"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "Halo admin", messages[0].(map[string]any)["message"])

	rec = server.request(t, http.MethodGet, "/chat/messages", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

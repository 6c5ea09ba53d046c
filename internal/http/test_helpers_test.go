package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	"github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-manager/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testEnv struct {
	router http.Handler
	store  *repo.ProductStore
	tokens *auth.TokenIssuer
}

func newTestEnv(t *testing.T, limiter *rl.Limiter) *testEnv {
	t.Helper()

	users, err := repo.NewSeededUserRepository(repo.DefaultAccounts)
	require.NoError(t, err)

	store := repo.NewProductStore()
	tokens := auth.NewTokenIssuer(testSecret, 15*time.Minute)
	if limiter == nil {
		limiter = rl.New(1000, 1000)
	}

	server := handlers.NewServer(handlers.Deps{
		Products:      store,
		Metrics:       store,
		Authenticator: auth.NewCredentialAuthenticator(users),
		Tokens:        tokens,
	})
	router := api.NewRouter(api.RouterDeps{
		Server:       server,
		Tokens:       tokens,
		LoginLimiter: limiter,
	})
	return &testEnv{router: router, store: store, tokens: tokens}
}

func (e *testEnv) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return e.do(req, token)
}

func (e *testEnv) doForm(method, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req, token)
}

func (e *testEnv) doCSV(path, token, csvData string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("file", "products.csv")
	_, _ = part.Write([]byte(csvData))
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return e.do(req, token)
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	w := e.doJSON(http.MethodPost, "/login", "", handlers.UserLogin{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res handlers.LoginResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	return res.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}

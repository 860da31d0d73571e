package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marketplace/internal/events"
	"marketplace/internal/hash"
	"marketplace/internal/models"
	"marketplace/internal/repo"
	"marketplace/internal/search"
	"marketplace/internal/service"
)

var testJWTSecret = []byte("test_jwt_secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// single connection so the in-memory db survives the pool
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}
	producer := events.NewProducer(nil)

	catalogSvc := &service.CatalogService{
		Repo:     gormRepo,
		Searcher: &search.GormSearcher{DB: db},
		Producer: producer,
	}
	authSvc := &service.AuthService{Repo: gormRepo, JWTSecret: testJWTSecret, Producer: producer}
	adminSvc := &service.AdminService{Repo: gormRepo, Catalog: catalogSvc}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	Register(e, &Deps{
		AuthHandler:    &AuthHTTP{Svc: authSvc},
		ProductHandler: &ProductHTTP{Svc: catalogSvc},
		AdminHandler:   &AdminHTTP{Svc: adminSvc},
		JWTSecret:      testJWTSecret,
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) registerSeller(t *testing.T, email, password string) string {
	t.Helper()

	rec := env.doJSON(http.MethodPost, "/auth/register", map[string]string{
		"email":           email,
		"password":        password,
		"confirmPassword": password,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.UserID)
	return resp.UserID
}

func (env *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := env.doJSON(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func (env *testEnv) createAdmin(t *testing.T, email, password string) {
	t.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	admin := models.User{
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
	}
	require.NoError(t, env.DB.WithContext(context.Background()).Create(&admin).Error)
}

func (env *testEnv) createProduct(t *testing.T, token string, body map[string]any) models.Product {
	t.Helper()

	rec := env.doJSON(http.MethodPost, "/products", body, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	return product
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()

	var envlp ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envlp))
	return envlp
}

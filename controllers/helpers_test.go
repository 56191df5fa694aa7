package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/repository"
	"backend/routes"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T, publicCatalog bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedGroups(db))

	cfg := &configs.Config{
		JWTSecret:     testSecret,
		JWTTTL:        time.Hour,
		PublicCatalog: publicCatalog,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, username string, staff bool, groups ...string) (*entity.User, string) {
	t.Helper()
	u := &entity.User{Username: username, Password: "x", IsStaff: staff}
	require.NoError(t, db.Create(u).Error)

	repo := repository.NewUserRepository(db)
	for _, g := range groups {
		require.NoError(t, repo.AddToGroup(u, g))
	}

	token, err := utils.GenerateToken(u.ID, u.Username, testSecret, time.Hour)
	require.NoError(t, err)
	return u, token
}

func seedMenuItem(t *testing.T, db *gorm.DB, title, price string) *entity.MenuItem {
	t.Helper()
	cat := entity.Category{Slug: "menu-" + title, Title: title + " Category"}
	require.NoError(t, db.Create(&cat).Error)
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	m := &entity.MenuItem{Title: title, Price: p, CategoryID: cat.ID}
	require.NoError(t, db.Create(m).Error)
	return m
}

func perform(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		OK   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.OK, "response not ok: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status: %s", rec.Body.String())
}

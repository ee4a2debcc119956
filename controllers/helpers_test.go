package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cecepns/nature-coffee/configs"
	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/routes"
	"github.com/cecepns/nature-coffee/storage"
	"github.com/cecepns/nature-coffee/utils"
	"github.com/cecepns/nature-coffee/ws"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// setupServer wires the full route table against a fresh in-memory
// database, mirroring main.go minus the listener.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB, *configs.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:test_%s_%d?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"), dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuItem{},
		&entity.CoffeeBean{},
		&entity.GalleryItem{},
		&entity.Reservation{},
		&entity.Settings{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg := &configs.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		UploadDir: t.TempDir(),
	}

	images, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		t.Fatalf("create upload dir: %v", err)
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, images, ws.NewEventHub())
	return r, db, cfg
}

// adminToken seeds an admin row and returns a valid bearer token for it.
func adminToken(t *testing.T, db *gorm.DB, cfg *configs.Config) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := entity.Admin{Username: "admin", Password: string(hash), Email: "admin@nature.coffee"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	token, err := utils.GenerateToken(&admin, cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// perform runs one request through the router. A nil body sends no
// payload; anything else is marshalled to JSON.
func perform(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

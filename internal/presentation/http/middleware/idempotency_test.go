package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
)

type memoryIdempotencyRepo struct {
	rows map[string]*entity.IdempotencyKey
}

func newMemoryIdempotencyRepo() *memoryIdempotencyRepo {
	return &memoryIdempotencyRepo{rows: make(map[string]*entity.IdempotencyKey)}
}

func (r *memoryIdempotencyRepo) rowKey(key string, userID uuid.UUID) string {
	return key + "|" + userID.String()
}

func (r *memoryIdempotencyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	return r.rows[r.rowKey(key, userID)], nil
}

func (r *memoryIdempotencyRepo) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	r.rows[r.rowKey(ikey.Key, ikey.UserID)] = ikey
	return nil
}

func (r *memoryIdempotencyRepo) DeleteExpired(ctx context.Context) error {
	for k, row := range r.rows {
		if row.IsExpired() {
			delete(r.rows, k)
		}
	}
	return nil
}

func newIdempotencyRouter(repo *memoryIdempotencyRepo, userID uuid.UUID, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout",
		func(c *gin.Context) { c.Set("user_id", userID) },
		IdempotencyRequired(IdempotencyConfig{Repo: repo}),
		func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusCreated, gin.H{"calls": *calls})
		},
	)
	return router
}

func postCheckout(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyRequiredRejectsMissingKey(t *testing.T) {
	calls := 0
	router := newIdempotencyRouter(newMemoryIdempotencyRepo(), uuid.New(), &calls)

	w := postCheckout(router, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if calls != 0 {
		t.Errorf("handler ran %d times, want 0", calls)
	}
}

func TestIdempotencyRequiredReplaysRecordedResponse(t *testing.T) {
	calls := 0
	repo := newMemoryIdempotencyRepo()
	router := newIdempotencyRouter(repo, uuid.New(), &calls)

	first := postCheckout(router, "key-1")
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d, want %d", first.Code, http.StatusCreated)
	}

	second := postCheckout(router, "key-1")
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want %d", second.Code, http.StatusCreated)
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Error("replay missing X-Idempotency-Replayed header")
	}
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("replayed body %q differs from original %q", second.Body.String(), first.Body.String())
	}
}

func TestIdempotencyRequiredReplacesExpiredKey(t *testing.T) {
	calls := 0
	repo := newMemoryIdempotencyRepo()
	userID := uuid.New()
	router := newIdempotencyRouter(repo, userID, &calls)

	repo.rows[repo.rowKey("key-1", userID)] = &entity.IdempotencyKey{
		Key:          "key-1",
		UserID:       userID,
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"calls":0}`,
		ExpiresAt:    time.Now().Add(-time.Hour),
	}

	w := postCheckout(router, "key-1")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1: an expired key must not replay", calls)
	}

	row := repo.rows[repo.rowKey("key-1", userID)]
	if row == nil || row.IsExpired() {
		t.Fatal("expired row was not replaced with a fresh recording")
	}
	if row.ResponseBody != w.Body.String() {
		t.Errorf("recorded body %q, want %q", row.ResponseBody, w.Body.String())
	}
}

func TestIdempotencyRequiredKeysAreScopedPerUser(t *testing.T) {
	repo := newMemoryIdempotencyRepo()

	callsA, callsB := 0, 0
	routerA := newIdempotencyRouter(repo, uuid.New(), &callsA)
	routerB := newIdempotencyRouter(repo, uuid.New(), &callsB)

	if w := postCheckout(routerA, "shared-key"); w.Code != http.StatusCreated {
		t.Fatalf("user A status = %d, want %d", w.Code, http.StatusCreated)
	}
	if w := postCheckout(routerB, "shared-key"); w.Code != http.StatusCreated {
		t.Fatalf("user B status = %d, want %d", w.Code, http.StatusCreated)
	}
	if callsA != 1 || callsB != 1 {
		t.Errorf("handler calls = (%d, %d), want (1, 1): one user's key must not shadow another's", callsA, callsB)
	}
}

func TestIdempotencyRequiredSkipsFailedResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newMemoryIdempotencyRepo()
	userID := uuid.New()

	calls := 0
	router := gin.New()
	router.POST("/checkout",
		func(c *gin.Context) { c.Set("user_id", userID) },
		IdempotencyRequired(IdempotencyConfig{Repo: repo}),
		func(c *gin.Context) {
			calls++
			c.JSON(http.StatusConflict, gin.H{"calls": calls})
		},
	)

	postCheckout(router, "key-1")
	w := postCheckout(router, "key-1")
	if calls != 2 {
		t.Errorf("handler ran %d times, want 2: failed responses must stay retryable", calls)
	}
	if w.Header().Get("X-Idempotency-Replayed") == "true" {
		t.Error("failed response must not be replayed")
	}
}

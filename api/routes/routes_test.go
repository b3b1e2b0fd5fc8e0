package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/relationtrack/relationtrack-backend/internal/config"
	"github.com/relationtrack/relationtrack-backend/internal/handlers"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories/memory"
	"github.com/relationtrack/relationtrack-backend/internal/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.AllowedHosts = []string{"localhost:3000"}

	ledgerService := services.NewLedgerService(memory.NewPointRepository())
	taskService := services.NewTaskService(memory.NewTaskRepository(), ledgerService)
	couponService := services.NewCouponService(memory.NewCouponRepository(), ledgerService)
	gameService := services.NewGameService(memory.NewChallengeRepository(), ledgerService)
	bucketlistService := services.NewBucketlistService(memory.NewBucketlistRepository())
	attractionService := services.NewAttractionService(memory.NewAttractionRepository())

	return SetupRouter(cfg, HandlerDependencies{
		TaskHandler:       handlers.NewTaskHandler(taskService),
		GameHandler:       handlers.NewGameHandler(gameService),
		PointHandler:      handlers.NewPointHandler(ledgerService),
		BucketlistHandler: handlers.NewBucketlistHandler(bucketlistService),
		CouponHandler:     handlers.NewCouponHandler(couponService),
		AttractionHandler: handlers.NewAttractionHandler(attractionService),
	})
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("GET /api/health = %d, want 200", w.Code)
	}
}

func TestStatusMapping(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"invalid task body", http.MethodPost, "/api/tasks", `{"title":""}`, http.StatusBadRequest},
		{"complete unknown task", http.MethodPost, "/api/tasks/missing/complete", "", http.StatusNotFound},
		{"delete unknown task", http.MethodDelete, "/api/tasks/missing", "", http.StatusNotFound},
		{"redeem unknown coupon", http.MethodPost, "/api/coupons/missing/redeem", "", http.StatusNotFound},
		{"total without partner", http.MethodGet, "/api/points/total", "", http.StatusBadRequest},
		{"draw with empty balance", http.MethodPost, "/api/game/draw", `{"partner":"partner1","mode":"dare"}`, http.StatusPaymentRequired},
		{"draw with bad mode", http.MethodPost, "/api/game/draw", `{"partner":"partner1","mode":"trivia"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.path, w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestCouponLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/coupons",
		`{"title":"Breakfast in bed","points":15,"createdBy":"partner1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create coupon = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var coupon models.Coupon
	if err := json.Unmarshal(w.Body.Bytes(), &coupon); err != nil {
		t.Fatalf("decoding coupon: %v", err)
	}

	// Unredeemed coupons cannot be deleted
	w = doRequest(t, router, http.MethodDelete, "/api/coupons/"+coupon.ID, "")
	if w.Code != http.StatusConflict {
		t.Errorf("delete unredeemed = %d, want 409", w.Code)
	}

	w = doRequest(t, router, http.MethodPost, "/api/coupons/"+coupon.ID+"/redeem", "")
	if w.Code != http.StatusOK {
		t.Fatalf("redeem = %d, want 200", w.Code)
	}

	w = doRequest(t, router, http.MethodPost, "/api/coupons/"+coupon.ID+"/redeem", "")
	if w.Code != http.StatusConflict {
		t.Errorf("second redeem = %d, want 409", w.Code)
	}

	// The creator paid the price
	w = doRequest(t, router, http.MethodGet, "/api/points/total?partner=partner1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("total = %d, want 200", w.Code)
	}
	var total models.TotalPointsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &total); err != nil {
		t.Fatalf("decoding total: %v", err)
	}
	if total.Total != -15 {
		t.Errorf("creator total = %d, want -15", total.Total)
	}

	w = doRequest(t, router, http.MethodDelete, "/api/coupons/"+coupon.ID, "")
	if w.Code != http.StatusOK {
		t.Errorf("delete redeemed = %d, want 200", w.Code)
	}
}

func TestTaskCompletionOverHTTP(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/tasks",
		`{"title":"Do the dishes","points":20,"assignedTo":"partner2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create task = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var task models.Task
	if err := json.Unmarshal(w.Body.Bytes(), &task); err != nil {
		t.Fatalf("decoding task: %v", err)
	}

	w = doRequest(t, router, http.MethodPost, "/api/tasks/"+task.ID+"/complete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("complete = %d, want 200", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/points/total?partner=partner2", "")
	var total models.TotalPointsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &total); err != nil {
		t.Fatalf("decoding total: %v", err)
	}
	if total.Total != 20 {
		t.Errorf("assignee total = %d, want 20", total.Total)
	}
}

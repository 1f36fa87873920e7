package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"touristtable/repository"
	"touristtable/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testRouter wires the endpoints that never reach the store, plus the
// pre-store validation paths of the id-scoped handlers.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	store := repository.NewStore(nil)
	sysCtrl := NewSystemController(nil)
	restCtrl := NewRestaurantController(store)
	reviewCtrl := NewReviewController(store, repository.NewAnalyticsRepository(store))
	rsvCtrl := NewReservationController(store)
	translateCtrl := NewTranslateController(services.NewTranslateService())

	r.GET("/", sysCtrl.Root)
	r.GET("/test", sysCtrl.Test)
	r.GET("/schema", sysCtrl.Schema)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.PATCH("/restaurants/:id", restCtrl.Update)
	r.POST("/restaurants/:id/reviews", reviewCtrl.Create)
	r.PATCH("/reservations/:id", rsvCtrl.Update)
	r.POST("/translate_menu", translateCtrl.TranslateMenu)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("%s %s: invalid JSON response %q: %v", method, path, w.Body.String(), err)
	}
	return w, parsed
}

func TestRoot(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodGet, "/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["message"] != "TouristTable Backend running" {
		t.Errorf("message = %v", body["message"])
	}
	if body["version"] != "0.1.0" {
		t.Errorf("version = %v", body["version"])
	}
}

func TestSchema(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodGet, "/schema", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	collections, ok := body["collections"].([]any)
	if !ok {
		t.Fatalf("collections = %T", body["collections"])
	}
	want := []string{"owner", "restaurant", "review", "event", "reservation", "campaign", "discount"}
	if len(collections) != len(want) {
		t.Fatalf("collections = %v, want %v", collections, want)
	}
	for i, name := range want {
		if collections[i] != name {
			t.Errorf("collections[%d] = %v, want %s", i, collections[i], name)
		}
	}
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	r := testRouter()
	w, body := doRequest(t, r, http.MethodGet, "/test", "")

	if w.Code != http.StatusOK {
		t.Fatalf("diagnostics must never fail, status = %d", w.Code)
	}
	if body["backend"] != "✅ Running" {
		t.Errorf("backend = %v", body["backend"])
	}
	if body["database"] != "⚠️ Available but not initialized" {
		t.Errorf("database = %v", body["database"])
	}
	if body["connection_status"] != "Not Connected" {
		t.Errorf("connection_status = %v", body["connection_status"])
	}
	if body["database_url"] != "❌ Not Set" {
		t.Errorf("database_url = %v", body["database_url"])
	}
}

func TestMalformedIDReturns400(t *testing.T) {
	r := testRouter()

	for _, path := range []string{"/restaurants/not-an-id", "/reservations/xyz"} {
		method := http.MethodPatch
		body := `{"notes":"x"}`
		if strings.HasPrefix(path, "/restaurants") {
			method = http.MethodGet
			body = ""
		}
		w, parsed := doRequest(t, r, method, path, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s %s: status = %d, want 400", method, path, w.Code)
		}
		if parsed["error"] != "Invalid id format" {
			t.Errorf("%s %s: error = %v", method, path, parsed["error"])
		}
	}
}

func TestPatchEmptyBodyIsNoOp(t *testing.T) {
	r := testRouter()
	id := primitive.NewObjectID().Hex()

	// No store behind the router: a write attempt would panic, so a 200
	// here proves the empty patch never reaches the store.
	w, body := doRequest(t, r, http.MethodPatch, "/restaurants/"+id, `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["updated"] != false {
		t.Errorf("updated = %v, want false", body["updated"])
	}
}

func TestReviewRestaurantIDMismatch(t *testing.T) {
	r := testRouter()
	id := primitive.NewObjectID().Hex()

	payload := `{"restaurant_id":"` + primitive.NewObjectID().Hex() + `","user_name":"Ana","rating":5}`
	w, body := doRequest(t, r, http.MethodPost, "/restaurants/"+id+"/reviews", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["error"] != "restaurant_id mismatch" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestReviewRatingValidation(t *testing.T) {
	r := testRouter()
	id := primitive.NewObjectID().Hex()

	payload := `{"restaurant_id":"` + id + `","user_name":"Ana","rating":6}`
	w, _ := doRequest(t, r, http.MethodPost, "/restaurants/"+id+"/reviews", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("rating 6 must fail validation, status = %d", w.Code)
	}
}

func TestReservationPatchStatusValidation(t *testing.T) {
	r := testRouter()
	id := primitive.NewObjectID().Hex()

	w, _ := doRequest(t, r, http.MethodPatch, "/reservations/"+id, `{"status":"cancelled"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown status must fail validation, status = %d", w.Code)
	}
}

func TestTranslateMenu(t *testing.T) {
	r := testRouter()

	payload := `{"items":[{"name":"Grilled Chicken","price":9.9}],"target_lang":"it"}`
	w, body := doRequest(t, r, http.MethodPost, "/translate_menu", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["lang"] != "it" {
		t.Errorf("lang = %v, want it", body["lang"])
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v", body["items"])
	}
	item := items[0].(map[string]any)
	if item["name"] != "alla griglia pollo" {
		t.Errorf("name = %v, want alla griglia pollo", item["name"])
	}
	if item["price"] != 9.9 {
		t.Errorf("price = %v, want 9.9", item["price"])
	}
	if item["lang"] != "it" {
		t.Errorf("item lang = %v, want it", item["lang"])
	}
}

func TestTranslateMenuDefaultsToEnglish(t *testing.T) {
	r := testRouter()

	payload := `{"items":[{"name":"Grilled Chicken"}]}`
	w, body := doRequest(t, r, http.MethodPost, "/translate_menu", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["lang"] != "en" {
		t.Errorf("lang = %v, want en", body["lang"])
	}
	item := body["items"].([]any)[0].(map[string]any)
	if item["name"] != "Grilled Chicken" {
		t.Errorf("en must be identity, name = %v", item["name"])
	}
}

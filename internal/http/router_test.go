package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aislechef-backend/internal/data/repos"
	"github.com/yungbote/aislechef-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/aislechef-backend/internal/http/handlers"
	catalogmod "github.com/yungbote/aislechef-backend/internal/modules/catalog"
	"github.com/yungbote/aislechef-backend/internal/observability"
	"github.com/yungbote/aislechef-backend/internal/seed"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func testRouter(t *testing.T, seeded bool) (*gin.Engine, seed.Result) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	set := repos.NewSet(db, log)

	var res seed.Result
	if seeded {
		f, err := seed.Default()
		if err != nil {
			t.Fatalf("fixtures: %v", err)
		}
		res, err = seed.Apply(context.Background(), set, f, log)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	uc := catalogmod.New(catalogmod.UsecasesDeps{
		Log:         log,
		Stores:      set.Stores,
		Ingredients: set.Ingredients,
		Recipes:     set.Recipes,
		Pairings:    set.Pairings,
	})
	return NewRouter(RouterConfig{
		Log:           log,
		Metrics:       observability.NewMetrics(nil),
		RecipeHandler: httpH.NewRecipeHandler(log, uc),
		StoreHandler:  httpH.NewStoreHandler(log, uc),
		RouteHandler:  httpH.NewRouteHandler(log, uc),
		HealthHandler: httpH.NewHealthHandler(nil),
	}), res
}

func do(h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(out); err != nil {
		t.Fatalf("decode: %v (body=%s)", err, rr.Body.String())
	}
}

func TestHealthcheck(t *testing.T) {
	r, _ := testRouter(t, false)
	rr := do(r, http.MethodGet, "/healthcheck", nil)
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", rr.Code, rr.Body.String())
	}
	rr = do(r, http.MethodGet, "/readyz", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", rr.Code)
	}
}

func TestListAndGetRecipes(t *testing.T) {
	r, _ := testRouter(t, true)

	rr := do(r, http.MethodGet, "/api/recipes", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var list []catalogmod.RecipeSummary
	decode(t, rr, &list)
	if len(list) != 5 || list[0].Title != "Spaghetti Carbonara" {
		t.Fatalf("unexpected recipes: %+v", list)
	}

	rr = do(r, http.MethodGet, "/api/recipes/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var detail catalogmod.RecipeDetail
	decode(t, rr, &detail)
	if len(detail.Ingredients) != 6 || detail.Pairing == nil || detail.Pairing.Title != "Chianti DOCG" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if detail.Ingredients[0].Missing || detail.Ingredients[0].Location == nil || detail.Ingredients[0].Location.Code != "C2" {
		t.Fatalf("unexpected first line: %+v", detail.Ingredients[0])
	}
}

func TestGetRecipeErrors(t *testing.T) {
	r, _ := testRouter(t, true)

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/recipes/999", http.StatusNotFound, "recipe_not_found"},
		{"/api/recipes/abc", http.StatusBadRequest, "invalid_id"},
		{"/api/recipes/0", http.StatusBadRequest, "invalid_id"},
		{"/api/recipes/1/route?store_id=x", http.StatusBadRequest, "invalid_id"},
		{"/api/recipes/1/route?include_pairing=maybe", http.StatusBadRequest, "invalid_query"},
		{"/api/recipes/1/route?store_id=77", http.StatusNotFound, "store_not_found"},
		{"/api/stores/77", http.StatusNotFound, "store_not_found"},
	}
	for _, tc := range cases {
		rr := do(r, http.MethodGet, tc.path, nil)
		if rr.Code != tc.status {
			t.Fatalf("%s: status=%d want=%d body=%s", tc.path, rr.Code, tc.status, rr.Body.String())
		}
		var body errorBody
		decode(t, rr, &body)
		if body.Error.Code != tc.code {
			t.Fatalf("%s: code=%q want=%q", tc.path, body.Error.Code, tc.code)
		}
	}
}

func TestRecipeRoute(t *testing.T) {
	r, res := testRouter(t, true)

	rr := do(r, http.MethodGet, "/api/recipes/1/route", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out catalogmod.RouteResult
	decode(t, rr, &out)
	if out.StoreID != res.StoreID || len(out.Aisles) != 12 {
		t.Fatalf("unexpected store in result: %+v", out)
	}
	got := []string{}
	for _, e := range out.Route {
		got = append(got, e.Code)
	}
	if strings.Join(got, ",") != "A2,B1,C2,C3" {
		t.Fatalf("unexpected route: %v", got)
	}

	rr = do(r, http.MethodGet, "/api/recipes/1/route?include_pairing=true", nil)
	decode(t, rr, &out)
	last := out.Route[len(out.Route)-1]
	if last.Code != "E2" || last.Name != "Wine & Beer" || !last.Resolved {
		t.Fatalf("pairing aisle not routed: %+v", out.Route)
	}
}

func TestRecipeRouteWithoutStore(t *testing.T) {
	r, _ := testRouter(t, false)
	rr := do(r, http.MethodGet, "/api/recipes/1/route", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdHocRoute(t *testing.T) {
	r, res := testRouter(t, true)

	body, _ := json.Marshal(map[string]any{"store_id": res.StoreID, "codes": []string{"C1", "A1", "A1", "Z9"}})
	rr := do(r, http.MethodPost, "/api/route", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out struct {
		Route []map[string]any `json:"route"`
	}
	decode(t, rr, &out)
	if len(out.Route) != 3 {
		t.Fatalf("unexpected route: %+v", out.Route)
	}
	want := []map[string]any{
		{"code": "A1", "name": "Fresh Produce", "position": float64(0), "resolved": true},
		{"code": "C1", "name": "Pantry & Canned Goods", "position": float64(3), "resolved": true},
		{"code": "Z9", "name": "Z9", "position": float64(1_000_000), "resolved": false},
	}
	for i := range want {
		for k, v := range want[i] {
			if out.Route[i][k] != v {
				t.Fatalf("entry %d field %s: got=%v want=%v", i, k, out.Route[i][k], v)
			}
		}
	}

	rr = do(r, http.MethodPost, "/api/route", []byte(`{"codes":`))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: status=%d", rr.Code)
	}
}

func TestStoresAndIngredients(t *testing.T) {
	r, _ := testRouter(t, true)

	rr := do(r, http.MethodGet, "/api/stores", nil)
	var stores []map[string]any
	decode(t, rr, &stores)
	if len(stores) != 1 || stores[0]["name"] != "Walmart Supercenter" {
		t.Fatalf("unexpected stores: %+v", stores)
	}

	rr = do(r, http.MethodGet, "/api/ingredients", nil)
	var ings []map[string]any
	decode(t, rr, &ings)
	if len(ings) != 34 {
		t.Fatalf("unexpected ingredient count: %d", len(ings))
	}

	rr = do(r, http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "aislechef_api_requests_total") {
		t.Fatalf("metrics not exposed: status=%d", rr.Code)
	}
}

package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/everestllcweb-png/backend/config"
	"github.com/everestllcweb-png/backend/database"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/gofiber/fiber/v2"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "admin-password"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func newTestServer(t *testing.T, env *config.EnviornmentVariable) *testServer {
	t.Helper()
	if env == nil {
		env = &config.EnviornmentVariable{PORT: 5000}
	}

	store := database.StartMemory()
	if err := database.NewSeeder(store.Repositories()).EnsureAdmin(testAdminUser, testAdminPassword); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}

	app := fiber.New()
	SetupRoutes(app, Dependencies{
		Env:      env,
		Store:    store,
		Sessions: middleware.NewSessionStore(middleware.SessionConfig{}),
	})
	return &testServer{t: t, app: app}
}

func (s *testServer) do(method, path string, body interface{}, withSession bool) (*http.Response, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			s.t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withSession && s.cookie != nil {
		req.AddCookie(s.cookie)
	}

	resp, err := s.app.Test(req, -1)
	if err != nil {
		s.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp, env
}

func (s *testServer) login() {
	s.t.Helper()
	resp, body := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, false)
	if resp.StatusCode != http.StatusOK || !body.Success {
		s.t.Fatalf("login status = %d, body = %+v", resp.StatusCode, body)
	}
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			s.cookie = c
		}
	}
	if s.cookie == nil {
		s.t.Fatal("login did not set a session cookie")
	}
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	for path, message := range map[string]string{
		"/health":     "Server is running",
		"/api/health": "API is healthy",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := s.app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		var body map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || body["status"] != "ok" || body["message"] != message {
			t.Errorf("GET %s = %d %v", path, resp.StatusCode, body)
		}
	}
}

func TestLoginFlow(t *testing.T) {
	s := newTestServer(t, nil)

	resp, body := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testAdminUser,
		"password": "wrong-password",
	}, false)
	if resp.StatusCode != http.StatusUnauthorized || body.Message != "Invalid credentials" {
		t.Fatalf("bad password = %d %q", resp.StatusCode, body.Message)
	}

	resp, body = s.do(http.MethodGet, "/api/auth/check", nil, false)
	if resp.StatusCode != http.StatusOK || string(body.Data) != `{"authenticated":false}` {
		t.Errorf("check before login = %d %s", resp.StatusCode, body.Data)
	}

	s.login()
	if !s.cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	_, body = s.do(http.MethodGet, "/api/auth/check", nil, true)
	if string(body.Data) != `{"authenticated":true,"username":"admin"}` {
		t.Errorf("check after login = %s", body.Data)
	}

	resp, body = s.do(http.MethodGet, "/api/auth/me", nil, true)
	me := decode[map[string]interface{}](t, body.Data)
	if resp.StatusCode != http.StatusOK || me["username"] != testAdminUser {
		t.Errorf("me = %d %v", resp.StatusCode, me)
	}

	if resp, _ := s.do(http.MethodPost, "/api/auth/logout", nil, true); resp.StatusCode != http.StatusOK {
		t.Fatalf("logout = %d", resp.StatusCode)
	}
	if resp, _ := s.do(http.MethodGet, "/api/auth/me", nil, true); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("me after logout = %d, want 401", resp.StatusCode)
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/sliders"},
		{http.MethodPut, "/api/universities/some-id"},
		{http.MethodDelete, "/api/courses/some-id"},
		{http.MethodPost, "/api/destinations"},
		{http.MethodPost, "/api/classes"},
		{http.MethodPost, "/api/blogs"},
		{http.MethodDelete, "/api/reviews/some-id"},
		{http.MethodGet, "/api/team/all"},
		{http.MethodGet, "/api/appointments"},
		{http.MethodPut, "/api/appointments/some-id"},
		{http.MethodPut, "/api/settings"},
		{http.MethodPost, "/api/signature"},
		{http.MethodPost, "/api/uploads/presign"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, body := s.do(tt.method, tt.path, map[string]string{}, false)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
			if body.Error == nil || body.Error.Code != "UNAUTHORIZED" {
				t.Errorf("error = %+v", body.Error)
			}
		})
	}
}

func TestPublicVisibility(t *testing.T) {
	s := newTestServer(t, nil)
	s.login()

	resp, body := s.do(http.MethodPost, "/api/sliders", map[string]interface{}{"title": "Shown", "order": 1}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create shown = %d %+v", resp.StatusCode, body)
	}
	shown := decode[map[string]interface{}](t, body.Data)
	if shown["isActive"] != true {
		t.Errorf("isActive default = %v, want true", shown["isActive"])
	}

	_, body = s.do(http.MethodPost, "/api/sliders", map[string]interface{}{"title": "Hidden", "order": 2, "isActive": false}, true)
	hidden := decode[map[string]interface{}](t, body.Data)

	_, body = s.do(http.MethodGet, "/api/sliders", nil, false)
	if list := decode[[]map[string]interface{}](t, body.Data); len(list) != 1 || list[0]["title"] != "Shown" {
		t.Errorf("public list = %v", list)
	}

	_, body = s.do(http.MethodGet, "/api/sliders", nil, true)
	if list := decode[[]map[string]interface{}](t, body.Data); len(list) != 2 {
		t.Errorf("admin list has %d items, want 2", len(list))
	}

	if resp, _ := s.do(http.MethodGet, "/api/sliders/"+hidden["id"].(string), nil, false); resp.StatusCode != http.StatusNotFound {
		t.Errorf("public get hidden = %d, want 404", resp.StatusCode)
	}
	if resp, _ := s.do(http.MethodGet, "/api/sliders/"+hidden["id"].(string), nil, true); resp.StatusCode != http.StatusOK {
		t.Errorf("admin get hidden = %d, want 200", resp.StatusCode)
	}
}

func TestBlogDraftsAndSlugConflict(t *testing.T) {
	s := newTestServer(t, nil)
	s.login()

	resp, body := s.do(http.MethodPost, "/api/blogs", map[string]interface{}{
		"title": "Study in Japan",
		"slug":  "study-in-japan",
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create draft = %d %+v", resp.StatusCode, body)
	}
	draft := decode[map[string]interface{}](t, body.Data)
	if draft["isPublished"] != false || draft["publishedAt"] != nil {
		t.Errorf("draft = %v", draft)
	}

	if resp, _ := s.do(http.MethodGet, "/api/blogs/slug/study-in-japan", nil, false); resp.StatusCode != http.StatusNotFound {
		t.Errorf("public draft by slug = %d, want 404", resp.StatusCode)
	}

	resp, body = s.do(http.MethodPost, "/api/blogs", map[string]interface{}{
		"title": "Another",
		"slug":  "Study-In-Japan",
	}, true)
	if resp.StatusCode != http.StatusBadRequest || body.Error == nil || body.Error.Code != "CONFLICT" {
		t.Fatalf("duplicate slug = %d %+v", resp.StatusCode, body.Error)
	}
	if body.Message != "Slug already exists. Use a different title." {
		t.Errorf("conflict message = %q", body.Message)
	}

	_, body = s.do(http.MethodPut, "/api/blogs/"+draft["id"].(string), map[string]interface{}{"isPublished": true}, true)
	published := decode[map[string]interface{}](t, body.Data)
	if published["publishedAt"] == nil {
		t.Error("publishing did not stamp publishedAt")
	}

	resp, body = s.do(http.MethodGet, "/api/blogs/slug/study-in-japan", nil, false)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("public published by slug = %d", resp.StatusCode)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	s := newTestServer(t, nil)

	resp, body := s.do(http.MethodPost, "/api/appointments", map[string]interface{}{
		"fullName": "Sita Rai",
		"email":    "sita@example.com",
		"phone":    "9800000000",
		"status":   "completed",
	}, false)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("book = %d %+v", resp.StatusCode, body)
	}
	booked := decode[map[string]interface{}](t, body.Data)
	if booked["status"] != "pending" || booked["name"] != "Sita Rai" {
		t.Errorf("booked = %v", booked)
	}

	resp, body = s.do(http.MethodPost, "/api/appointments", map[string]interface{}{"email": "x@example.com"}, false)
	if resp.StatusCode != http.StatusBadRequest || body.Error == nil || body.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("missing fields = %d %+v", resp.StatusCode, body.Error)
	}

	s.login()
	id := booked["id"].(string)

	resp, _ = s.do(http.MethodPut, "/api/appointments/"+id, map[string]interface{}{"status": "archived"}, true)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid status = %d, want 400", resp.StatusCode)
	}

	_, body = s.do(http.MethodPut, "/api/appointments/"+id, map[string]interface{}{"status": "confirmed"}, true)
	if updated := decode[map[string]interface{}](t, body.Data); updated["status"] != "confirmed" {
		t.Errorf("status = %v", updated["status"])
	}

	resp, _ = s.do(http.MethodPut, "/api/appointments/"+id, map[string]interface{}{"status": ""}, true)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank status = %d, want 400", resp.StatusCode)
	}
	_, body = s.do(http.MethodGet, "/api/appointments", nil, true)
	if list := decode[[]map[string]interface{}](t, body.Data); len(list) != 1 || list[0]["status"] != "confirmed" {
		t.Errorf("appointments after blank status = %v", list)
	}

	for i := 0; i < 2; i++ {
		if resp, _ := s.do(http.MethodDelete, "/api/appointments/"+id, nil, true); resp.StatusCode != http.StatusOK {
			t.Errorf("delete #%d = %d, want 200", i+1, resp.StatusCode)
		}
	}

	if resp, _ := s.do(http.MethodPut, "/api/appointments/"+id, map[string]interface{}{"status": "pending"}, true); resp.StatusCode != http.StatusNotFound {
		t.Errorf("update deleted = %d, want 404", resp.StatusCode)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	s := newTestServer(t, nil)
	s.login()

	for rating, want := range map[int]int{0: http.StatusBadRequest, 6: http.StatusBadRequest, 1: http.StatusCreated, 5: http.StatusCreated} {
		resp, _ := s.do(http.MethodPost, "/api/reviews", map[string]interface{}{
			"studentName": "Student",
			"rating":      rating,
		}, true)
		if resp.StatusCode != want {
			t.Errorf("rating %d = %d, want %d", rating, resp.StatusCode, want)
		}
	}
}

func TestSettings(t *testing.T) {
	s := newTestServer(t, nil)

	resp, body := s.do(http.MethodGet, "/api/settings", nil, false)
	defaults := decode[map[string]interface{}](t, body.Data)
	if resp.StatusCode != http.StatusOK || defaults["companyName"] == "" {
		t.Fatalf("default settings = %d %v", resp.StatusCode, defaults)
	}

	s.login()
	_, _ = s.do(http.MethodPut, "/api/settings", map[string]interface{}{"email": "hello@example.com"}, true)
	_, _ = s.do(http.MethodPut, "/api/settings", map[string]interface{}{"mobile": "9800000001"}, true)

	_, body = s.do(http.MethodGet, "/api/settings", nil, false)
	saved := decode[map[string]interface{}](t, body.Data)
	if saved["email"] != "hello@example.com" || saved["mobile"] != "9800000001" {
		t.Errorf("settings = %v", saved)
	}
}

func TestSignature(t *testing.T) {
	s := newTestServer(t, nil)
	s.login()

	resp, body := s.do(http.MethodPost, "/api/signature", nil, true)
	if resp.StatusCode != http.StatusInternalServerError || body.Error == nil || body.Error.Code != "CONFIG_ERROR" {
		t.Errorf("unconfigured signature = %d %+v", resp.StatusCode, body.Error)
	}

	s = newTestServer(t, &config.EnviornmentVariable{
		CLOUDINARY_CLOUD_NAME: "demo",
		CLOUDINARY_API_KEY:    "key",
		CLOUDINARY_API_SECRET: "secret",
	})
	s.login()

	resp, body = s.do(http.MethodPost, "/api/signature", map[string]string{"folder": "sliders"}, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signature = %d %+v", resp.StatusCode, body)
	}
	sig := decode[map[string]interface{}](t, body.Data)
	if sig["folder"] != "sliders" || sig["cloudName"] != "demo" || sig["apiKey"] != "key" || sig["signature"] == "" {
		t.Errorf("signature payload = %v", sig)
	}
}

func TestListVisibilityOnEveryCollection(t *testing.T) {
	tests := []struct {
		path    string
		visible map[string]interface{}
		hidden  map[string]interface{}
	}{
		{
			path:    "/api/sliders",
			visible: map[string]interface{}{"title": "Shown"},
			hidden:  map[string]interface{}{"title": "Hidden", "isActive": false},
		},
		{
			path:    "/api/universities",
			visible: map[string]interface{}{"name": "Shown", "country": "Japan"},
			hidden:  map[string]interface{}{"name": "Hidden", "country": "Japan", "isActive": false},
		},
		{
			path:    "/api/courses",
			visible: map[string]interface{}{"name": "Shown"},
			hidden:  map[string]interface{}{"name": "Hidden", "isActive": false},
		},
		{
			path:    "/api/destinations",
			visible: map[string]interface{}{"name": "Shown", "country": "Japan"},
			hidden:  map[string]interface{}{"name": "Hidden", "country": "Japan", "isActive": false},
		},
		{
			path:    "/api/classes",
			visible: map[string]interface{}{"name": "Shown"},
			hidden:  map[string]interface{}{"name": "Hidden", "isActive": false},
		},
		{
			path:    "/api/reviews",
			visible: map[string]interface{}{"studentName": "Shown", "rating": 5},
			hidden:  map[string]interface{}{"studentName": "Hidden", "rating": 4, "isActive": false},
		},
		{
			path:    "/api/team",
			visible: map[string]interface{}{"name": "Shown", "position": "Counsellor"},
			hidden:  map[string]interface{}{"name": "Hidden", "position": "Counsellor", "isActive": false},
		},
		{
			path:    "/api/blogs",
			visible: map[string]interface{}{"title": "Shown", "slug": "shown", "isPublished": true},
			hidden:  map[string]interface{}{"title": "Hidden", "slug": "hidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			s := newTestServer(t, nil)
			s.login()

			for _, payload := range []map[string]interface{}{tt.visible, tt.hidden} {
				if resp, body := s.do(http.MethodPost, tt.path, payload, true); resp.StatusCode != http.StatusCreated {
					t.Fatalf("create %v = %d %+v", payload, resp.StatusCode, body)
				}
			}

			_, body := s.do(http.MethodGet, tt.path, nil, false)
			public := decode[[]map[string]interface{}](t, body.Data)
			if len(public) != 1 {
				t.Fatalf("public list has %d items, want 1", len(public))
			}
			for _, key := range []string{"title", "name", "studentName"} {
				if v, ok := public[0][key]; ok && v != "Shown" {
					t.Errorf("public list shows %v", v)
				}
			}

			_, body = s.do(http.MethodGet, tt.path, nil, true)
			if admin := decode[[]map[string]interface{}](t, body.Data); len(admin) != 2 {
				t.Errorf("admin list has %d items, want 2", len(admin))
			}
		})
	}
}

func TestTeamAllListsHiddenMembers(t *testing.T) {
	s := newTestServer(t, nil)
	s.login()

	s.do(http.MethodPost, "/api/team", map[string]interface{}{"name": "B", "position": "Counsellor", "order": 2}, true)
	s.do(http.MethodPost, "/api/team", map[string]interface{}{"name": "A", "position": "Director", "order": 1, "isActive": false}, true)

	_, body := s.do(http.MethodGet, "/api/team/all", nil, true)
	all := decode[[]map[string]interface{}](t, body.Data)
	if len(all) != 2 || all[0]["name"] != "A" {
		t.Errorf("team/all = %v", all)
	}
}

func TestMirroredFieldsFollowPartialUpdate(t *testing.T) {
	s := newTestServer(t, nil)
	s.login()

	_, body := s.do(http.MethodPost, "/api/universities", map[string]interface{}{
		"name":    "University of Tokyo",
		"country": "Japan",
		"website": "https://old.u-tokyo.ac.jp",
	}, true)
	created := decode[map[string]interface{}](t, body.Data)

	_, body = s.do(http.MethodPut, "/api/universities/"+created["id"].(string), map[string]interface{}{
		"websiteUrl": "https://www.u-tokyo.ac.jp",
	}, true)
	updated := decode[map[string]interface{}](t, body.Data)
	if updated["websiteUrl"] != "https://www.u-tokyo.ac.jp" || updated["website"] != "https://www.u-tokyo.ac.jp" {
		t.Errorf("websiteUrl/website = %v/%v", updated["websiteUrl"], updated["website"])
	}

	_, body = s.do(http.MethodPost, "/api/courses", map[string]interface{}{"name": "Nursing", "level": "Bachelor"}, true)
	course := decode[map[string]interface{}](t, body.Data)
	_, body = s.do(http.MethodPut, "/api/courses/"+course["id"].(string), map[string]interface{}{"category": "Master"}, true)
	if updated := decode[map[string]interface{}](t, body.Data); updated["level"] != "Master" || updated["category"] != "Master" {
		t.Errorf("level/category = %v/%v", updated["level"], updated["category"])
	}
}

package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
	"expoquest/internal/repositories"
	"expoquest/internal/services"
	"expoquest/internal/testutil"
	"expoquest/pkg/middleware"
	"expoquest/pkg/utils"
)

type apiEnvelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenDB(t)

	attendeeRepo := repositories.NewAttendeeRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	stationRepo := repositories.NewStationRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	scanRepo := repositories.NewScanRepository(db)
	questRepo := repositories.NewQuestRepository(db)
	pointsRepo := repositories.NewPointsRepository(db)
	leaderboardRepo := repositories.NewLeaderboardRepository(db)
	surveyRepo := repositories.NewSurveyRepository(db)

	attendeeService := services.NewAttendeeService(attendeeRepo, eventRepo)
	scanService := services.NewScanService(stationRepo, scanRepo, pointsRepo)
	questService := services.NewQuestService(questRepo, pointsRepo)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo)
	dashboardService := services.NewDashboardService(attendeeRepo, scanRepo)
	surveyService := services.NewSurveyService(attendeeRepo, surveyRepo, pointsRepo)
	adminService := services.NewAdminService(eventRepo, stationRepo, vendorRepo, attendeeRepo, scanRepo, surveyRepo, leaderboardRepo)

	attendeeController := NewAttendeeController(attendeeService)
	scanController := NewScanController(scanService)
	questController := NewQuestController(questService)
	leaderboardController := NewLeaderboardController(leaderboardService)
	dashboardController := NewDashboardController(dashboardService)
	surveyController := NewSurveyController(surveyService)
	adminController := NewAdminController(adminService)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	r.POST("/attendees/register", attendeeController.Register)
	r.POST("/attendees/login", attendeeController.Login)
	r.GET("/leaderboard", leaderboardController.Top)
	r.GET("/stations/:id/review", scanController.Review)

	session := r.Group("/")
	session.Use(middleware.SessionMiddleware(attendeeService))
	session.POST("/scan", scanController.Scan)
	session.GET("/quests", questController.List)
	session.POST("/quests/:id/submit", questController.Submit)

	me := session.Group("/me")
	me.GET("", attendeeController.Me)
	me.GET("/dashboard", dashboardController.Dashboard)
	me.GET("/prizes", dashboardController.Prizes)
	me.POST("/reflection", surveyController.Reflection)
	me.POST("/exit-survey", surveyController.ExitSurvey)

	admin := r.Group("/admin")
	admin.POST("/stations", adminController.CreateStation)
	admin.GET("/stations", adminController.ListStations)
	admin.GET("/stations/:id/qr", adminController.StationQR)
	admin.POST("/vendors", adminController.CreateVendor)
	admin.GET("/attendees", adminController.ListAttendees)
	admin.GET("/analytics", adminController.Analytics)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, attendeeID string, body interface{}) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if attendeeID != "" {
		req.Header.Set("X-Attendee-ID", attendeeID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env apiEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("parse response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func registerAttendee(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/attendees/register", "", map[string]interface{}{
		"first_name":                 "Ada",
		"last_name":                  "Lovelace",
		"email":                      email,
		"zip_code":                   "11354",
		"age_range":                  "25-34",
		"attendee_type":              []string{"student"},
		"tech_access":                "smartphone",
		"digital_skill_level":        "intermediate",
		"agreed_to_media_release":    true,
		"confidence_tech_access_pre": 3,
		"clarity_tech_pathways_pre":  2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register: %d %s", w.Code, env.Message)
	}

	var attendee struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &attendee); err != nil {
		t.Fatalf("parse attendee: %v", err)
	}
	return attendee.ID
}

func seedScanTarget(t *testing.T, db *gorm.DB, stationType db_models.StationType, points int) *db_models.Station {
	t.Helper()

	event := testutil.SeedEvent(t, db)
	return testutil.SeedStation(t, db, event.ID, "Booth", stationType, points)
}

func TestRegisterScanDashboardFlow(t *testing.T) {
	r, db := setupRouter(t)
	station := seedScanTarget(t, db, db_models.StationTypeActivity, 100)

	attendeeID := registerAttendee(t, r, "flow@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/scan", attendeeID, map[string]interface{}{
		"payload": utils.StationQRPayload(station.ID),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("scan: %d %s", w.Code, env.Message)
	}

	var result struct {
		Success      bool `json:"success"`
		PointsEarned int  `json:"points_earned"`
		NewTotal     int  `json:"new_total"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("parse scan result: %v", err)
	}
	if !result.Success || result.PointsEarned != 100 {
		t.Fatalf("unexpected scan result: %+v", result)
	}

	w, env = doJSON(t, r, http.MethodGet, "/me/dashboard", attendeeID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: %d %s", w.Code, env.Message)
	}
	var dash struct {
		TotalPoints int  `json:"total_points"`
		Qualified   bool `json:"qualified"`
		Threshold   int  `json:"threshold"`
	}
	if err := json.Unmarshal(env.Data, &dash); err != nil {
		t.Fatalf("parse dashboard: %v", err)
	}
	if dash.TotalPoints != 100 || dash.Qualified || dash.Threshold != 5 {
		t.Fatalf("unexpected dashboard: %+v", dash)
	}
}

func TestScanDuplicateConflict(t *testing.T) {
	r, db := setupRouter(t)
	station := seedScanTarget(t, db, db_models.StationTypeActivity, 100)
	attendeeID := registerAttendee(t, r, "dup@example.com")

	body := map[string]interface{}{"payload": station.ID.String()}
	if w, env := doJSON(t, r, http.MethodPost, "/scan", attendeeID, body); w.Code != http.StatusOK {
		t.Fatalf("first scan: %d %s", w.Code, env.Message)
	}

	w, env := doJSON(t, r, http.MethodPost, "/scan", attendeeID, body)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate scan: %d, want 409", w.Code)
	}
	if env.Message != "You have already visited this station!" {
		t.Fatalf("duplicate message: %q", env.Message)
	}
}

func TestVendorScanConsentGate(t *testing.T) {
	r, db := setupRouter(t)
	station := seedScanTarget(t, db, db_models.StationTypeVendor, 150)
	testutil.SeedVendor(t, db, station.ID, "Cityworks")
	attendeeID := registerAttendee(t, r, "vendor@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/scan", attendeeID, map[string]interface{}{"payload": station.ID.String()})
	if w.Code != http.StatusOK {
		t.Fatalf("review scan: %d %s", w.Code, env.Message)
	}
	var review struct {
		ReviewRequired bool `json:"review_required"`
		Vendor         *struct {
			Name string `json:"name"`
		} `json:"vendor"`
	}
	if err := json.Unmarshal(env.Data, &review); err != nil {
		t.Fatalf("parse review: %v", err)
	}
	if !review.ReviewRequired || review.Vendor == nil || review.Vendor.Name != "Cityworks" {
		t.Fatalf("unexpected review: %+v", review)
	}

	w, env = doJSON(t, r, http.MethodPost, "/scan", attendeeID, map[string]interface{}{
		"payload":   station.ID.String(),
		"confirmed": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("confirmed scan: %d %s", w.Code, env.Message)
	}
}

func TestQuestSubmitOverHTTP(t *testing.T) {
	r, db := setupRouter(t)
	testutil.SeedEvent(t, db)
	attendeeID := registerAttendee(t, r, "quest@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/quests/q1/submit", attendeeID, map[string]interface{}{
		"answers": []string{"wrong guess"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("wrong answer: %d %s", w.Code, env.Message)
	}

	w, env = doJSON(t, r, http.MethodPost, "/quests/q1/submit", attendeeID, map[string]interface{}{
		"answers": []string{"Danny Rojas"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("correct answer: %d %s", w.Code, env.Message)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/quests/q1/submit", attendeeID, map[string]interface{}{
		"answers": []string{"Danny Rojas"},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("repeat answer: %d, want 409", w.Code)
	}
}

func TestSessionMiddlewareGuards(t *testing.T) {
	r, _ := setupRouter(t)

	// No header.
	w, _ := doJSON(t, r, http.MethodGet, "/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: %d, want 401", w.Code)
	}

	// Garbage header.
	w, _ = doJSON(t, r, http.MethodGet, "/me", "not-a-uuid", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad header: %d, want 401", w.Code)
	}

	// Well formed id with no row: 401 plus the clear-session marker.
	w, _ = doJSON(t, r, http.MethodGet, "/me", "70e1f8a2-4c4f-4f49-91f6-2b8d9c3f5a11", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("orphan session: %d, want 401", w.Code)
	}
	if w.Header().Get("X-Session-Expired") != "true" {
		t.Fatal("orphan session missing X-Session-Expired header")
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	station := seedScanTarget(t, db, db_models.StationTypeActivity, 100)

	first := registerAttendee(t, r, "first@example.com")
	registerAttendee(t, r, "second@example.com")
	if w, env := doJSON(t, r, http.MethodPost, "/scan", first, map[string]interface{}{"payload": station.ID.String()}); w.Code != http.StatusOK {
		t.Fatalf("scan: %d %s", w.Code, env.Message)
	}

	w, env := doJSON(t, r, http.MethodGet, "/leaderboard", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard: %d %s", w.Code, env.Message)
	}
	var entries []struct {
		Rank        int    `json:"rank"`
		ID          string `json:"id"`
		TotalPoints int    `json:"total_points"`
	}
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		t.Fatalf("parse leaderboard: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != first || entries[0].TotalPoints != 100 {
		t.Fatalf("unexpected leaderboard: %+v", entries)
	}
}

func TestAdminStationQRServesPNG(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/admin/stations", "", map[string]interface{}{"name": "Booth 1"})
	if w.Code != http.StatusOK {
		t.Fatalf("create station: %d %s", w.Code, env.Message)
	}
	var station struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &station); err != nil {
		t.Fatalf("parse station: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/admin/stations/%s/qr", station.ID), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("qr: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type: %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatal("body is not a PNG")
	}
}

func TestTraceIDOnResponses(t *testing.T) {
	r, _ := setupRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/leaderboard", "", nil)
	if w.Header().Get("X-Trace-ID") == "" {
		t.Fatal("missing X-Trace-ID header")
	}
}

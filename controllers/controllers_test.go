package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/routes"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

// newTestApp wires the full route surface onto an in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *store.Store, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := store.New(db)
	require.NoError(t, s.AutoMigrate())

	cfg := testConfig()
	app := fiber.New()
	routes.SetupRoutes(app, s, cfg)
	return app, s, cfg
}

// seedUser creates an account with a bcrypt password and returns it with a
// signed token for the Authorization header.
func seedUser(t *testing.T, app *fiber.App, s *store.Store, username, password, role string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Name:         username,
		Role:         role,
	}
	require.NoError(t, s.CreateUser(user))

	if role == models.RoleAdmin {
		// Exercise the real login path for admins.
		body, _ := json.Marshal(fiber.Map{"username": username, "password": password})
		req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		var result map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		token, _ := result["token"].(string)
		require.NotEmpty(t, token)
		return user, token
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Role, testConfig())
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func TestAdminLogin(t *testing.T) {
	app, s, _ := newTestApp(t)
	seedUser(t, app, s, "boss", "hunter2", models.RoleAdmin)

	status, result := doJSON(t, app, "POST", "/api/admin/login", "",
		fiber.Map{"username": "boss", "password": "hunter2"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "boss", result["username"])
	assert.NotEmpty(t, result["token"])

	status, _ = doJSON(t, app, "POST", "/api/admin/login", "",
		fiber.Map{"username": "boss", "password": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "POST", "/api/admin/login", "",
		fiber.Map{"username": "nobody", "password": "hunter2"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAdminLoginRejectsRegularUser(t *testing.T) {
	app, s, _ := newTestApp(t)
	seedUser(t, app, s, "sara", "hunter2", models.RoleUser)

	status, result := doJSON(t, app, "POST", "/api/admin/login", "",
		fiber.Map{"username": "sara", "password": "hunter2"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Admin access required", result["message"])
}

func TestCreateCourseRequiresAdmin(t *testing.T) {
	app, s, _ := newTestApp(t)
	_, userToken := seedUser(t, app, s, "sara", "pw", models.RoleUser)
	_, adminToken := seedUser(t, app, s, "boss", "pw", models.RoleAdmin)

	payload := fiber.Map{"title": "Soil Basics", "category": "agriculture"}

	status, _ := doJSON(t, app, "POST", "/api/courses", "", payload)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "POST", "/api/courses", userToken, payload)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doJSON(t, app, "POST", "/api/courses", adminToken, payload)
	assert.Equal(t, fiber.StatusCreated, status)
	course := result["data"].(map[string]interface{})
	assert.Equal(t, "Soil Basics", course["title"])
	assert.NotZero(t, course["id"])
}

func TestCreateCourseValidationStatus(t *testing.T) {
	app, s, _ := newTestApp(t)
	_, adminToken := seedUser(t, app, s, "boss", "pw", models.RoleAdmin)

	status, _ := doJSON(t, app, "POST", "/api/courses", adminToken, fiber.Map{"title": ""})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetCourseWithAccessDecision(t *testing.T) {
	app, s, _ := newTestApp(t)
	locked := &models.Course{Title: "Locked", IsLocked: true}
	require.NoError(t, s.CreateCourse(locked))

	status, result := doJSON(t, app, "GET",
		fmt.Sprintf("/api/courses/%d", locked.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "locked", result["access"])

	user, token := seedUser(t, app, s, "sara", "pw", models.RoleUser)
	_, err := s.GrantAccess(user.ID, locked.ID, models.AccessTypePurchased, nil)
	require.NoError(t, err)

	status, result = doJSON(t, app, "GET",
		fmt.Sprintf("/api/courses/%d", locked.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "allowed", result["access"])
}

func TestGetCourseNotFound(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/courses/999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doJSON(t, app, "GET", "/api/courses/abc", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdateProgressEndpoint(t *testing.T) {
	app, s, _ := newTestApp(t)
	course := &models.Course{Title: "C", TotalModules: 4}
	require.NoError(t, s.CreateCourse(course))
	_, token := seedUser(t, app, s, "sara", "pw", models.RoleUser)

	path := fmt.Sprintf("/api/courses/%d/progress", course.ID)

	status, _ := doJSON(t, app, "PATCH", path, "", fiber.Map{"progress": 50})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "PATCH", path, token, fiber.Map{"progress": 150})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "PATCH", path, token, fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, result := doJSON(t, app, "PATCH", path, token, fiber.Map{"progress": 50})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(50), result["progress"])
}

func TestPatchCourseRejectsUnknownFields(t *testing.T) {
	app, s, _ := newTestApp(t)
	course := &models.Course{Title: "C"}
	require.NoError(t, s.CreateCourse(course))
	_, adminToken := seedUser(t, app, s, "boss", "pw", models.RoleAdmin)

	path := fmt.Sprintf("/api/courses/%d", course.ID)
	status, _ := doJSON(t, app, "PATCH", path, adminToken, fiber.Map{"bogus": 1})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, result := doJSON(t, app, "PATCH", path, adminToken, fiber.Map{"title": "Renamed"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Renamed", result["title"])
}

func TestDeleteCourseEndpoint(t *testing.T) {
	app, s, _ := newTestApp(t)
	course := &models.Course{Title: "C"}
	require.NoError(t, s.CreateCourse(course))
	_, adminToken := seedUser(t, app, s, "boss", "pw", models.RoleAdmin)

	path := fmt.Sprintf("/api/courses/%d", course.ID)
	status, _ := doJSON(t, app, "DELETE", path, adminToken, nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, "DELETE", path, adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestListCourseModulesAnnotatesAccess(t *testing.T) {
	app, s, _ := newTestApp(t)
	course := &models.Course{Title: "C", IsLocked: true}
	require.NoError(t, s.CreateCourse(course))
	require.NoError(t, s.CreateModule(&models.Module{CourseID: course.ID, Title: "m1", Order: 1, IsLocked: true}))
	require.NoError(t, s.CreateModule(&models.Module{CourseID: course.ID, Title: "m2", Order: 2}))

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/courses/%d/modules", course.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var mods []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mods))
	require.Len(t, mods, 2)
	assert.Equal(t, "locked", mods[0]["access"])
	assert.Equal(t, "allowed", mods[1]["access"])
}

func TestDocumentViewAndDownloadEndpoints(t *testing.T) {
	app, s, _ := newTestApp(t)
	doc := &models.Document{Title: "Guide", Status: models.DocumentStatusPublished}
	require.NoError(t, s.CreateDocument(doc))

	path := fmt.Sprintf("/api/documents/%d/view", doc.ID)
	status, _ := doJSON(t, app, "POST", path, "", nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, "POST", "/api/documents/999/view", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doJSON(t, app, "POST", fmt.Sprintf("/api/documents/%d/download", doc.ID), "", nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	got, err := s.GetDocument(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount)
	assert.Equal(t, 1, got.DownloadCount)
}

func TestDeleteMagazineEndpoint(t *testing.T) {
	app, s, _ := newTestApp(t)
	_, adminToken := seedUser(t, app, s, "boss", "pw", models.RoleAdmin)

	mag := &models.Magazine{Title: "Spring", IsActive: true}
	require.NoError(t, s.CreateMagazine(mag))
	require.NoError(t, s.CreateArticle(&models.Article{Title: "a", MagazineID: mag.ID, Order: 1}))

	path := fmt.Sprintf("/api/magazines/%d", mag.ID)
	status, _ := doJSON(t, app, "DELETE", path, adminToken, nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	articles, err := s.ListArticlesByMagazine(mag.ID)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestActiveSlidesRoute(t *testing.T) {
	app, s, _ := newTestApp(t)
	require.NoError(t, s.CreateSlide(&models.Slide{Title: "visible", IsActive: true, Order: 1}))

	req := httptest.NewRequest("GET", "/api/slides/active", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var slides []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&slides))
	require.Len(t, slides, 1)
	assert.Equal(t, "visible", slides[0]["title"])
}

func TestGrantAndRevokeCourseAccessEndpoints(t *testing.T) {
	app, s, _ := newTestApp(t)
	_, adminToken := seedUser(t, app, s, "boss", "pw", models.RoleAdmin)
	user, _ := seedUser(t, app, s, "sara", "pw", models.RoleUser)

	course := &models.Course{Title: "C", IsLocked: true}
	require.NoError(t, s.CreateCourse(course))

	grantPath := fmt.Sprintf("/api/users/%d/grant-course-access", user.ID)
	status, result := doJSON(t, app, "POST", grantPath, adminToken,
		fiber.Map{"courseId": course.ID, "accessType": models.AccessTypeTrial})
	assert.Equal(t, fiber.StatusCreated, status)
	grant := result["data"].(map[string]interface{})
	assert.Equal(t, "trial", grant["accessType"])

	status, _ = doJSON(t, app, "POST", grantPath, adminToken,
		fiber.Map{"courseId": course.ID, "accessType": "vip"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	revokePath := fmt.Sprintf("/api/users/%d/revoke-course-access/%d", user.ID, course.ID)
	status, _ = doJSON(t, app, "DELETE", revokePath, adminToken, nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, "DELETE", revokePath, adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCreateUserHashesPassword(t *testing.T) {
	app, s, _ := newTestApp(t)

	status, result := doJSON(t, app, "POST", "/api/users", "",
		fiber.Map{"username": "sara", "password": "hunter2", "name": "Sara"})
	assert.Equal(t, fiber.StatusCreated, status)
	created := result["data"].(map[string]interface{})
	assert.Equal(t, "sara", created["username"])
	// The hash must never leak through the JSON surface.
	_, exposed := created["passwordHash"]
	assert.False(t, exposed)

	stored, err := s.GetUserByUsername("sara")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))

	status, _ = doJSON(t, app, "POST", "/api/users", "",
		fiber.Map{"username": "sara", "password": "again"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

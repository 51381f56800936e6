package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-showcase-api/internal/auth"
	"github.com/yukikurage/project-showcase-api/internal/config"
	"github.com/yukikurage/project-showcase-api/internal/logger"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/testutil"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type RouterTestSuite struct {
	suite.Suite
	db      *gorm.DB
	cfg     *config.Config
	handler http.Handler
	tokens  *auth.TokenManager
	admin   *models.User
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.db = testutil.OpenDB(suite.T())

	suite.cfg = &config.Config{
		JWT:   config.JWTConfig{Secret: "router-test-secret", ExpiresIn: time.Hour, Issuer: "test"},
		Admin: config.AdminConfig{Email: "root@university.ac.in", Password: "admin123", Name: "System Administrator"},
		Batch: config.BatchConfig{DefaultDepartment: "Information Science and Engineering"},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	}
	log := logger.Nop()
	suite.handler = WithCORS(suite.cfg.CORS, NewRouter(NewServices(suite.cfg, suite.db, log), log))
	suite.tokens = auth.NewTokenManager(auth.TokenConfig{
		Secret:    suite.cfg.JWT.Secret,
		ExpiresIn: suite.cfg.JWT.ExpiresIn,
		Issuer:    suite.cfg.JWT.Issuer,
	})
	suite.admin = testutil.CreateAdmin(suite.T(), suite.db, "admin@university.ac.in")
}

func (suite *RouterTestSuite) token(user *models.User) string {
	token, err := suite.tokens.Issue(user.ID)
	suite.Require().NoError(err)
	return token
}

func (suite *RouterTestSuite) request(method, path string, body interface{}, user *models.User) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req.Header.Set("Authorization", "Bearer "+suite.token(user))
	}

	w := httptest.NewRecorder()
	suite.handler.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (suite *RouterTestSuite) decode(raw json.RawMessage, v interface{}) {
	suite.Require().NoError(json.Unmarshal(raw, v), string(raw))
}

func (suite *RouterTestSuite) student(email, batchID string) *models.User {
	return testutil.CreateStudent(suite.T(), suite.db, email, batchID)
}

func projectPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":            "Smart Irrigation",
		"description":      "IoT based irrigation controller for small farms",
		"shortDescription": "IoT irrigation",
		"year":             2025,
		"category":         "capstone",
		"tags":             []string{"iot", "embedded"},
		"teamMembers": []map[string]string{
			{"name": "Alice", "email": "alice@x.edu", "github": "https://github.com/alice", "role": "Lead"},
			{"name": "Bob"},
		},
		"supervisor": map[string]string{
			"name": "Dr. Rao", "email": "rao@university.ac.in", "department": "CSE", "title": "Professor",
		},
		"links": map[string]string{
			"demoUrl": "https://demo.example.com",
			"repoUrl": "https://github.com/alice/irrigation",
		},
		"motivation":   "Water scarcity",
		"softwareUsed": []string{"Go", "PostgreSQL"},
	}
}

type projectBody struct {
	Project struct {
		ID               string `json:"id"`
		Title            string `json:"title"`
		Description      string `json:"description"`
		ShortDescription string `json:"shortDescription"`
		Year             int    `json:"year"`
		Batch            string `json:"batch"`
		BatchID          string `json:"batchId"`
		Category         string `json:"category"`
		Tags             []string
		TeamMembers      []map[string]string `json:"teamMembers"`
		Supervisor       map[string]string   `json:"supervisor"`
		Links            map[string]string   `json:"links"`
		Motivation       string              `json:"motivation"`
		SoftwareUsed     []string            `json:"softwareUsed"`
		Images           []string            `json:"images"`
		IsApproved       bool                `json:"isApproved"`
		Status           string              `json:"status"`
		ApprovedAt       *time.Time          `json:"approvedAt"`
		ApprovedBy       *struct {
			ID string `json:"id"`
		} `json:"approvedBy"`
		CreatedBy *struct {
			ID      string `json:"id"`
			BatchID string `json:"batchId"`
		} `json:"createdBy"`
	} `json:"project"`
}

func (suite *RouterTestSuite) createProject(owner *models.User) projectBody {
	w, env := suite.request(http.MethodPost, "/api/projects", projectPayload(), owner)
	suite.Require().Equal(http.StatusCreated, w.Code, env.Message)
	var body projectBody
	suite.decode(env.Data, &body)
	return body
}

func (suite *RouterTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	suite.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"ok"`)
	suite.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (suite *RouterTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/projects/public", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	w := httptest.NewRecorder()
	suite.handler.ServeHTTP(w, req)
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *RouterTestSuite) TestLogin_StudentWithoutBatchID() {
	testutil.CreateBatch(suite.T(), suite.db, "CSE2027", 2027, suite.admin.ID)
	suite.student("alice@x.edu", "CSE2027")

	w, env := suite.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@x.edu", "password": testutil.Password,
	}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.Success)
	suite.Equal("Batch ID is required for student login", env.Message)

	w, env = suite.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@x.edu", "password": testutil.Password, "batchId": "cse2027",
	}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var body struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	suite.decode(env.Data, &body)
	suite.NotEmpty(body.Token)
	suite.Equal("alice@x.edu", body.User["email"])
	suite.NotContains(body.User, "passwordHash")
	suite.NotContains(string(env.Data), "$2a$")

	w, env = suite.request(http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@x.edu"}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("password is required", env.Message)
}

func (suite *RouterTestSuite) TestAuthGate() {
	w, env := suite.request(http.MethodGet, "/api/auth/profile", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Access token is missing", env.Message)

	alice := suite.student("alice@x.edu", "CSE2027")
	w, env = suite.request(http.MethodGet, "/api/auth/profile", nil, alice)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(string(env.Data), alice.ID)

	w, env = suite.request(http.MethodGet, "/api/auth/batches", nil, alice)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Admin access required", env.Message)

	suite.Require().NoError(suite.db.Model(alice).Update("is_active", false).Error)
	w, env = suite.request(http.MethodGet, "/api/auth/profile", nil, alice)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid token or user is not active", env.Message)
}

func (suite *RouterTestSuite) TestInitAdmin_OneTime() {
	w, env := suite.request(http.MethodPost, "/api/auth/init-admin", nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Admin user already exists", env.Message)
}

func (suite *RouterTestSuite) TestRegisterStudent_AutoCreatesBatch() {
	w, env := suite.request(http.MethodPost, "/api/auth/register-student", map[string]string{
		"email": "alice@x.edu", "password": "secret1", "name": "Alice", "batchId": "CSE2027", "batch": "2023-2027",
	}, suite.admin)
	suite.Require().Equal(http.StatusCreated, w.Code, env.Message)
	suite.Contains(string(env.Data), `"batchId":"CSE2027"`)

	w, env = suite.request(http.MethodGet, "/api/projects/public/batches", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var body struct {
		Batches []map[string]interface{} `json:"batches"`
	}
	suite.decode(env.Data, &body)
	suite.Require().Len(body.Batches, 1)
	suite.Equal("CSE2027", body.Batches[0]["batchId"])
	suite.Equal("2023-2027", body.Batches[0]["batch"])
	suite.Equal(float64(2027), body.Batches[0]["year"])
	suite.Len(body.Batches[0], 4)

	w, env = suite.request(http.MethodPost, "/api/auth/register-student", map[string]string{
		"email": "ALICE@x.edu", "password": "secret1", "name": "Alice", "batchId": "CSE2027", "batch": "2023-2027",
	}, suite.admin)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("User with this email already exists", env.Message)
}

func (suite *RouterTestSuite) TestBatchLifecycle() {
	w, env := suite.request(http.MethodPost, "/api/auth/create-batch", map[string]interface{}{
		"batchId": "ISE2026", "batch": "2022-2026", "department": "ISE", "year": 2026,
	}, suite.admin)
	suite.Require().Equal(http.StatusCreated, w.Code, env.Message)

	w, env = suite.request(http.MethodPost, "/api/auth/create-batch", map[string]interface{}{
		"batchId": "ISE2026", "batch": "2022-2026", "department": "ISE", "year": 2026,
	}, suite.admin)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Batch with this ID already exists", env.Message)

	for i := 0; i < 3; i++ {
		suite.student(fmt.Sprintf("s%d@x.edu", i), "ISE2026")
	}
	w, env = suite.request(http.MethodDelete, "/api/auth/batches/ISE2026", nil, suite.admin)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(env.Message, "3")

	testutil.CreateBatch(suite.T(), suite.db, "OLD2020", 2020, suite.admin.ID)
	w, _ = suite.request(http.MethodDelete, "/api/auth/batches/OLD2020", nil, suite.admin)
	suite.Equal(http.StatusOK, w.Code)

	w, env = suite.request(http.MethodGet, "/api/auth/batches", nil, suite.admin)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.NotContains(string(env.Data), "OLD2020")
	suite.Contains(string(env.Data), "ISE2026")
}

func (suite *RouterTestSuite) TestBatchDetailAccess() {
	testutil.CreateBatch(suite.T(), suite.db, "CSE2027", 2027, suite.admin.ID)
	testutil.CreateBatch(suite.T(), suite.db, "ISE2026", 2026, suite.admin.ID)
	alice := suite.student("alice@x.edu", "CSE2027")

	w, _ := suite.request(http.MethodGet, "/api/auth/batches/CSE2027", nil, alice)
	suite.Equal(http.StatusOK, w.Code)

	w, env := suite.request(http.MethodGet, "/api/auth/batches/ISE2026", nil, alice)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Access denied for this batch", env.Message)

	w, _ = suite.request(http.MethodGet, "/api/auth/batches/NONE2030", nil, suite.admin)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestProjectRoundTrip() {
	testutil.CreateBatch(suite.T(), suite.db, "CSE2027", 2027, suite.admin.ID)
	alice := suite.student("alice@x.edu", "CSE2027")

	created := suite.createProject(alice)

	w, env := suite.request(http.MethodGet, "/api/projects/"+created.Project.ID, nil, alice)
	suite.Require().Equal(http.StatusOK, w.Code)
	var fetched projectBody
	suite.decode(env.Data, &fetched)

	p := fetched.Project
	suite.Equal(created.Project.ID, p.ID)
	suite.Equal("Smart Irrigation", p.Title)
	suite.Equal("IoT based irrigation controller for small farms", p.Description)
	suite.Equal("IoT irrigation", p.ShortDescription)
	suite.Equal(2025, p.Year)
	suite.Equal("capstone", p.Category)
	suite.Equal([]string{"iot", "embedded"}, p.Tags)
	suite.Equal([]map[string]string{
		{"name": "Alice", "email": "alice@x.edu", "github": "https://github.com/alice", "role": "Lead"},
		{"name": "Bob"},
	}, p.TeamMembers)
	suite.Equal(map[string]string{"name": "Dr. Rao", "email": "rao@university.ac.in", "department": "CSE", "title": "Professor"}, p.Supervisor)
	suite.Equal(map[string]string{"demoUrl": "https://demo.example.com", "repoUrl": "https://github.com/alice/irrigation"}, p.Links)
	suite.Equal("Water scarcity", p.Motivation)
	suite.Equal([]string{"Go", "PostgreSQL"}, p.SoftwareUsed)
	suite.Equal([]string{}, p.Images)
	suite.False(p.IsApproved)
	suite.Equal("pending", p.Status)
	suite.Equal("CSE2027", p.BatchID)
	suite.Require().NotNil(p.CreatedBy)
	suite.Equal(alice.ID, p.CreatedBy.ID)
	suite.Equal("CSE2027", p.CreatedBy.BatchID)
}

func (suite *RouterTestSuite) TestProjectValidation() {
	testutil.CreateBatch(suite.T(), suite.db, "CSE2027", 2027, suite.admin.ID)
	alice := suite.student("alice@x.edu", "CSE2027")

	payload := projectPayload()
	payload["teamMembers"] = []map[string]string{}
	w, env := suite.request(http.MethodPost, "/api/projects", payload, alice)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("teamMembers must contain at least 1 item", env.Message)

	payload = projectPayload()
	payload["category"] = "hobby"
	w, env = suite.request(http.MethodPost, "/api/projects", payload, alice)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(env.Message, "category")

	payload = projectPayload()
	payload["batchId"] = "ISE2026"
	w, env = suite.request(http.MethodPost, "/api/projects", payload, alice)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You can only create projects for your own batch", env.Message)
}

func (suite *RouterTestSuite) TestUpdateScenario() {
	testutil.CreateBatch(suite.T(), suite.db, "CSE2027", 2027, suite.admin.ID)
	alice := suite.student("alice@x.edu", "CSE2027")
	bob := suite.student("bob@x.edu", "CSE2027")
	id := suite.createProject(alice).Project.ID

	update := map[string]interface{}{"title": "Smarter Irrigation", "isApproved": true, "batchId": "ISE2026"}

	w, env := suite.request(http.MethodPut, "/api/projects/"+id, update, bob)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You can only update your own projects", env.Message)

	w, env = suite.request(http.MethodPut, "/api/projects/"+id, update, alice)
	suite.Require().Equal(http.StatusOK, w.Code, env.Message)
	var body projectBody
	suite.decode(env.Data, &body)
	suite.Equal("Smarter Irrigation", body.Project.Title)
	suite.False(body.Project.IsApproved)
	suite.Equal("CSE2027", body.Project.BatchID)

	w, env = suite.request(http.MethodPost, "/api/projects/"+id+"/approve", map[string]bool{"approve": true}, suite.admin)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("Project approved successfully", env.Message)

	w, env = suite.request(http.MethodPut, "/api/projects/"+id, update, alice)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Cannot update approved projects", env.Message)

	w, env = suite.request(http.MethodDelete, "/api/projects/"+id, nil, alice)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Cannot delete approved projects", env.Message)

	w, _ = suite.request(http.MethodDelete, "/api/projects/"+id, nil, suite.admin)
	suite.Equal(http.StatusOK, w.Code)

	w, _ = suite.request(http.MethodGet, "/api/projects/"+id, nil, suite.admin)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestApprove() {
	testutil.CreateBatch(suite.T(), suite.db, "CSE2027", 2027, suite.admin.ID)
	alice := suite.student("alice@x.edu", "CSE2027")
	id := suite.createProject(alice).Project.ID

	w, env := suite.request(http.MethodPost, "/api/projects/"+id+"/approve", map[string]bool{"approve": true}, alice)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Admin access required", env.Message)

	w, env = suite.request(http.MethodPost, "/api/projects/"+id+"/approve", map[string]string{}, suite.admin)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("approve is required", env.Message)

	var first, second projectBody
	_, env = suite.request(http.MethodPost, "/api/projects/"+id+"/approve", map[string]bool{"approve": true}, suite.admin)
	suite.decode(env.Data, &first)
	time.Sleep(10 * time.Millisecond)
	_, env = suite.request(http.MethodPost, "/api/projects/"+id+"/approve", map[string]bool{"approve": true}, suite.admin)
	suite.decode(env.Data, &second)

	suite.True(first.Project.IsApproved)
	suite.True(second.Project.IsApproved)
	suite.Require().NotNil(second.Project.ApprovedAt)
	suite.True(second.Project.ApprovedAt.After(*first.Project.ApprovedAt))
	suite.Require().NotNil(second.Project.ApprovedBy)
	suite.Equal(suite.admin.ID, second.Project.ApprovedBy.ID)

	w, env = suite.request(http.MethodPost, "/api/projects/"+id+"/approve", map[string]bool{"approve": false}, suite.admin)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Project rejected successfully", env.Message)
	suite.Contains(string(env.Data), `"status":"rejected"`)
}

func (suite *RouterTestSuite) TestListings() {
	testutil.CreateBatch(suite.T(), suite.db, "CSE2027", 2027, suite.admin.ID)
	testutil.CreateBatch(suite.T(), suite.db, "ISE2026", 2026, suite.admin.ID)
	alice := suite.student("alice@x.edu", "CSE2027")
	dave := suite.student("dave@x.edu", "ISE2026")
	suite.createProject(alice)
	daves := suite.createProject(dave).Project.ID
	_, _ = suite.request(http.MethodPost, "/api/projects/"+daves+"/approve", map[string]bool{"approve": true}, suite.admin)

	type listBody struct {
		Projects []struct {
			ID      string `json:"id"`
			BatchID string `json:"batchId"`
		} `json:"projects"`
		Pagination struct {
			CurrentPage int   `json:"currentPage"`
			TotalPages  int   `json:"totalPages"`
			TotalItems  int64 `json:"totalItems"`
			Limit       int   `json:"limit"`
			HasNext     bool  `json:"hasNext"`
			HasPrev     bool  `json:"hasPrev"`
		} `json:"pagination"`
	}

	var body listBody
	w, env := suite.request(http.MethodGet, "/api/projects", nil, alice)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(env.Data, &body)
	suite.Require().Len(body.Projects, 1)
	suite.Equal("CSE2027", body.Projects[0].BatchID)
	suite.Equal(10, body.Pagination.Limit)

	body = listBody{}
	_, env = suite.request(http.MethodGet, "/api/projects?isApproved=false", nil, suite.admin)
	suite.decode(env.Data, &body)
	suite.Len(body.Projects, 1)

	body = listBody{}
	_, env = suite.request(http.MethodGet, "/api/projects/public?search=IRRIGATION&limit=1", nil, nil)
	suite.decode(env.Data, &body)
	suite.Require().Len(body.Projects, 1)
	suite.Equal(daves, body.Projects[0].ID)
	suite.Equal(int64(1), body.Pagination.TotalItems)
	suite.Equal(1, body.Pagination.TotalPages)
	suite.False(body.Pagination.HasNext)
	suite.False(body.Pagination.HasPrev)

	body = listBody{}
	_, env = suite.request(http.MethodGet, "/api/projects/public", nil, nil)
	suite.decode(env.Data, &body)
	suite.Equal(12, body.Pagination.Limit)

	w, _ = suite.request(http.MethodGet, "/api/projects/public?year=abc", nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w, _ = suite.request(http.MethodGet, "/api/projects/batch/ISE2026", nil, alice)
	suite.Equal(http.StatusForbidden, w.Code)

	w, _ = suite.request(http.MethodGet, "/api/projects/admin/stats", nil, suite.admin)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestUserRoutes() {
	alice := suite.student("alice@x.edu", "CSE2027")
	bob := suite.student("bob@x.edu", "CSE2027")

	w, _ := suite.request(http.MethodGet, "/api/users", nil, alice)
	suite.Equal(http.StatusForbidden, w.Code)

	w, env := suite.request(http.MethodGet, "/api/users?role=student&search=ali", nil, suite.admin)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(string(env.Data), "alice@x.edu")
	suite.NotContains(string(env.Data), "bob@x.edu")

	w, _ = suite.request(http.MethodGet, "/api/users/"+bob.ID, nil, alice)
	suite.Equal(http.StatusForbidden, w.Code)

	w, env = suite.request(http.MethodGet, "/api/users/"+alice.ID, nil, alice)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(string(env.Data), `"projectCount":0`)

	w, env = suite.request(http.MethodPut, "/api/users/"+alice.ID, map[string]string{"email": "bob@x.edu"}, alice)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Email is already taken", env.Message)

	w, env = suite.request(http.MethodPost, "/api/users/change-password", map[string]string{
		"currentPassword": "nope", "newPassword": "secret99",
	}, alice)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Current password is incorrect", env.Message)

	w, env = suite.request(http.MethodPost, "/api/users/"+suite.admin.ID+"/deactivate", nil, suite.admin)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Cannot deactivate your own account", env.Message)

	w, _ = suite.request(http.MethodPost, "/api/users/"+bob.ID+"/deactivate", nil, suite.admin)
	suite.Equal(http.StatusOK, w.Code)
	w, _ = suite.request(http.MethodPost, "/api/users/"+bob.ID+"/reactivate", nil, suite.admin)
	suite.Equal(http.StatusOK, w.Code)

	w, env = suite.request(http.MethodGet, "/api/users/admin/stats", nil, suite.admin)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(string(env.Data), `"students":2`)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

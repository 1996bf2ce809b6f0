package tasks_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/QuickTask/QT-Backend/internal/auth"
	"github.com/QuickTask/QT-Backend/internal/config"
	"github.com/QuickTask/QT-Backend/internal/db"
	"github.com/QuickTask/QT-Backend/internal/middleware"
	"github.com/QuickTask/QT-Backend/internal/tasks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var dbAvailable bool
var testServer *httptest.Server

func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env.local")

	if os.Getenv("DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	os.Setenv("SECURE_COOKIES", "false")
	cfg := config.Load()

	db.Connect()
	dbAvailable = true

	auth.Init(cfg)
	tasks.Init()

	// Same wiring as main.go: auth at the root, tasks mounted under /tasks.
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	auth.RegisterRoutes(r)
	r.Mount("/tasks", tasks.SetupRoutes(cfg.SessionCookieName))

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

// signupUser registers a fresh account through the API so the cookie jar holds
// a live session, and cleans up the account, its sessions, and its tasks.
func signupUser(t *testing.T) (client *http.Client, userID string) {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	client = &http.Client{Jar: jar}

	email := fmt.Sprintf("taskuser_%s@example.com", uuid.New().String()[:8])
	body, _ := json.Marshal(map[string]string{"email": email, "password": "secret1"})
	resp, err := client.Post(testServer.URL+"/signup", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /signup: %v", err)
	}
	respBody := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup failed: %d %s", resp.StatusCode, respBody)
	}

	var user auth.User
	if err := db.DB.First(&user, "email = ?", email).Error; err != nil {
		t.Fatalf("look up signed-up user: %v", err)
	}

	t.Cleanup(func() {
		db.DB.Where("user_id = ?", user.UserID).Delete(&tasks.Task{})
		db.DB.Where("user_id = ?", user.UserID).Delete(&auth.Session{})
		db.DB.Where("user_id = ?", user.UserID).Delete(&auth.User{})
	})

	return client, user.UserID
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func newTask(userID, name string) tasks.Task {
	return tasks.Task{
		ID:       uuid.NewString(),
		Name:     name,
		Priority: tasks.PriorityLow,
		Status:   tasks.StatusInProgress,
		UserID:   userID,
	}
}

func createTask(t *testing.T, client *http.Client, task tasks.Task) {
	t.Helper()
	body, _ := json.Marshal(task)
	resp, err := client.Post(testServer.URL+"/tasks", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /tasks: %v", err)
	}
	respBody := readBody(t, resp)
	if resp.StatusCode != http.StatusOK || !strings.Contains(respBody, `"success":true`) {
		t.Fatalf("create task failed: %d %s", resp.StatusCode, respBody)
	}
}

func listTasks(t *testing.T, client *http.Client, userID string) []tasks.Task {
	t.Helper()
	resp, err := client.Get(testServer.URL + "/tasks?userId=" + url.QueryEscape(userID))
	if err != nil {
		t.Fatalf("GET /tasks: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list tasks failed: %d %s", resp.StatusCode, body)
	}

	var result struct {
		Tasks   []tasks.Task `json:"tasks"`
		Success bool         `json:"success"`
		Message string       `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("invalid JSON body: %s", body)
	}
	if !result.Success {
		t.Fatalf("list tasks unsuccessful: %s", result.Message)
	}
	return result.Tasks
}

func deleteTasks(t *testing.T, client *http.Client, userID string, payload map[string]any) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodDelete,
		testServer.URL+"/tasks?userId="+url.QueryEscape(userID), bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build DELETE /tasks: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("DELETE /tasks: %v", err)
	}
	return resp
}

// TestTasksRequireSession verifies that the task surface rejects a caller with
// no session cookie.
func TestTasksRequireSession(t *testing.T) {
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	resp, err := http.Get(testServer.URL + "/tasks?userId=anything")
	if err != nil {
		t.Fatalf("GET /tasks: %v", err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d; body: %s", resp.StatusCode, body)
	}
}

// TestCreateThenListKeepsFields verifies that a created task comes back from
// the list endpoint with every field unchanged.
func TestCreateThenListKeepsFields(t *testing.T) {
	client, userID := signupUser(t)

	task := tasks.Task{
		ID:       uuid.NewString(),
		Name:     "Buy milk",
		Priority: tasks.PriorityMedium,
		Status:   tasks.StatusInProgress,
		UserID:   userID,
	}
	createTask(t, client, task)

	list := listTasks(t, client, userID)
	if len(list) != 1 {
		t.Fatalf("expected 1 task, got %d", len(list))
	}
	if list[0] != task {
		t.Errorf("task fields changed in flight: sent %+v, got %+v", task, list[0])
	}
}

// TestCreateRejectsMissingFields verifies the 400 envelope when a required
// field is absent.
func TestCreateRejectsMissingFields(t *testing.T) {
	client, userID := signupUser(t)

	task := newTask(userID, "No priority")
	task.Priority = ""
	body, _ := json.Marshal(task)
	resp, err := client.Post(testServer.URL+"/tasks", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /tasks: %v", err)
	}
	respBody := readBody(t, resp)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d; body: %s", resp.StatusCode, respBody)
	}
	if !strings.Contains(respBody, "All fields are required") {
		t.Errorf("expected missing-fields message, got: %s", respBody)
	}
}

// TestCreateRejectsBadEnums verifies that out-of-range priority/status values
// fail validation instead of reaching storage.
func TestCreateRejectsBadEnums(t *testing.T) {
	client, userID := signupUser(t)

	task := newTask(userID, "Bad priority")
	task.Priority = "urgent"
	body, _ := json.Marshal(task)
	resp, err := client.Post(testServer.URL+"/tasks", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /tasks: %v", err)
	}
	respBody := readBody(t, resp)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d; body: %s", resp.StatusCode, respBody)
	}
	if list := listTasks(t, client, userID); len(list) != 0 {
		t.Error("invalid task must not be stored")
	}
}

// TestUpdateIsIdempotent verifies that marking a task completed twice leaves
// exactly the same final state, with the other fields untouched.
func TestUpdateIsIdempotent(t *testing.T) {
	client, userID := signupUser(t)

	task := newTask(userID, "Toggle me")
	createTask(t, client, task)

	task.Status = tasks.StatusCompleted
	for i := 0; i < 2; i++ {
		body, _ := json.Marshal(task)
		req, err := http.NewRequest(http.MethodPut, testServer.URL+"/tasks", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("build PUT /tasks: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("PUT /tasks: %v", err)
		}
		respBody := readBody(t, resp)
		if !strings.Contains(respBody, `"success":true`) {
			t.Fatalf("update %d failed: %s", i+1, respBody)
		}
	}

	list := listTasks(t, client, userID)
	if len(list) != 1 {
		t.Fatalf("expected 1 task, got %d", len(list))
	}
	if list[0] != task {
		t.Errorf("expected %+v after repeated update, got %+v", task, list[0])
	}
}

// TestUpdateUnknownTask verifies the not-found envelope.
func TestUpdateUnknownTask(t *testing.T) {
	client, userID := signupUser(t)

	task := newTask(userID, "Ghost")
	body, _ := json.Marshal(task)
	req, err := http.NewRequest(http.MethodPut, testServer.URL+"/tasks", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build PUT /tasks: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("PUT /tasks: %v", err)
	}
	respBody := readBody(t, resp)

	if !strings.Contains(respBody, "Task not found or update failed") {
		t.Errorf("expected not-found message, got: %s", respBody)
	}
}

// TestDeleteSingleTask verifies single-task deletion leaves the rest alone.
func TestDeleteSingleTask(t *testing.T) {
	client, userID := signupUser(t)

	doomed := newTask(userID, "Doomed")
	keeper := newTask(userID, "Keeper")
	createTask(t, client, doomed)
	createTask(t, client, keeper)

	resp := deleteTasks(t, client, userID, map[string]any{"option": "delete", "task": doomed})
	respBody := readBody(t, resp)
	if !strings.Contains(respBody, `"success":true`) {
		t.Fatalf("delete failed: %s", respBody)
	}

	list := listTasks(t, client, userID)
	if len(list) != 1 || list[0].ID != keeper.ID {
		t.Errorf("expected only %q to survive, got %+v", keeper.Name, list)
	}
}

// TestDeleteAllLeavesOtherOwnersAlone verifies delete-all empties one owner's
// list without touching another account's tasks.
func TestDeleteAllLeavesOtherOwnersAlone(t *testing.T) {
	client, userID := signupUser(t)
	otherClient, otherUserID := signupUser(t)

	createTask(t, client, newTask(userID, "Mine one"))
	createTask(t, client, newTask(userID, "Mine two"))
	createTask(t, otherClient, newTask(otherUserID, "Theirs"))

	resp := deleteTasks(t, client, userID, map[string]any{"option": "deleteAll"})
	respBody := readBody(t, resp)
	if !strings.Contains(respBody, `"success":true`) {
		t.Fatalf("deleteAll failed: %s", respBody)
	}

	if list := listTasks(t, client, userID); len(list) != 0 {
		t.Errorf("expected empty list after deleteAll, got %d tasks", len(list))
	}
	if list := listTasks(t, otherClient, otherUserID); len(list) != 1 {
		t.Errorf("other owner's tasks must be unaffected, got %d", len(list))
	}
}

// TestDeleteInvalidOption verifies the fallthrough envelope for a bad option.
func TestDeleteInvalidOption(t *testing.T) {
	client, userID := signupUser(t)

	resp := deleteTasks(t, client, userID, map[string]any{"option": "obliterate"})
	respBody := readBody(t, resp)
	if !strings.Contains(respBody, "Invalid option provided") {
		t.Errorf("expected invalid-option message, got: %s", respBody)
	}
}

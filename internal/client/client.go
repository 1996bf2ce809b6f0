// Package client is a Go consumer of the QuickTask HTTP surface. It keeps a
// local cache of the signed-in user and their task list, the way the web
// frontend's stores do. The cache is a convenience, never a source of truth:
// every mutation goes through the server first.
//
// A Client is an explicit state object. Callers hold a reference; there is no
// package-level singleton. It is not safe for concurrent use.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/QuickTask/QT-Backend/internal/auth"
	"github.com/QuickTask/QT-Backend/internal/tasks"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Client struct {
	baseURL string
	http    *http.Client

	user    *User
	tasks   []tasks.Task
	loading bool
}

// New builds a client whose cookie jar carries the session cookie between
// requests automatically.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar},
	}, nil
}

// User returns the cached identity, or nil when nobody is signed in.
func (c *Client) User() *User { return c.user }

// Tasks returns a copy of the cached task list in presentation order.
func (c *Client) Tasks() []tasks.Task {
	out := make([]tasks.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Loading reports whether an operation is in flight. Every operation resets
// it on the way out, success or failure.
func (c *Client) Loading() bool { return c.loading }

// CompletedCount counts cached tasks already marked completed.
func (c *Client) CompletedCount() int {
	n := 0
	for _, t := range c.tasks {
		if t.Status == tasks.StatusCompleted {
			n++
		}
	}
	return n
}

func (c *Client) TotalCount() int { return len(c.tasks) }

// Signup registers a new account and signs it in. The shape checks mirror
// the server's so obviously bad input fails before a round trip.
func (c *Client) Signup(email, password string) error {
	c.loading = true
	defer func() { c.loading = false }()

	if !auth.ValidEmail(email) {
		return fmt.Errorf("invalid email")
	}
	if !auth.ValidPassword(password) {
		return fmt.Errorf("invalid password")
	}

	if err := c.postCredentials("/signup", email, password); err != nil {
		return err
	}
	return c.refreshUser()
}

func (c *Client) Signin(email, password string) error {
	c.loading = true
	defer func() { c.loading = false }()

	if !auth.ValidEmail(email) {
		return fmt.Errorf("invalid email")
	}
	if !auth.ValidPassword(password) {
		return fmt.Errorf("invalid password")
	}

	if err := c.postCredentials("/signin", email, password); err != nil {
		return err
	}
	return c.refreshUser()
}

// ValidateUser asks the server who the cookie belongs to and caches the
// answer. Not being signed in is a normal outcome, not an error.
func (c *Client) ValidateUser() (bool, error) {
	c.loading = true
	defer func() { c.loading = false }()
	return c.refreshUserOK()
}

func (c *Client) Logout() error {
	c.loading = true
	defer func() { c.loading = false }()

	resp, err := c.http.Get(c.baseURL + "/logout")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("logout failed: %s", result.Error)
	}

	c.user = nil
	c.tasks = nil
	return nil
}

// FetchTasks reloads the cache from the server and applies the presentation
// order.
func (c *Client) FetchTasks() error {
	c.loading = true
	defer func() { c.loading = false }()

	if c.user == nil {
		return fmt.Errorf("no user signed in")
	}

	resp, err := c.http.Get(c.baseURL + "/tasks?userId=" + url.QueryEscape(c.user.ID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Tasks   []tasks.Task `json:"tasks"`
		Success bool         `json:"success"`
		Message string       `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("fetch tasks: %s", result.Message)
	}

	c.tasks = sortTasksByStatus(result.Tasks)
	return nil
}

// AddTask creates a task owned by the signed-in user. The task id is minted
// here, client-side. Duplicate names (case-insensitive, within this user's
// cached list) are refused here and only here — the API itself accepts them.
func (c *Client) AddTask(name, priority, status string) (tasks.Task, error) {
	c.loading = true
	defer func() { c.loading = false }()

	if c.user == nil {
		return tasks.Task{}, fmt.Errorf("no user signed in")
	}

	folded := cases.Fold().String(name)
	for _, t := range c.tasks {
		if cases.Fold().String(t.Name) == folded {
			return tasks.Task{}, fmt.Errorf("a task named %q already exists", t.Name)
		}
	}

	task := tasks.Task{
		ID:       uuid.NewString(),
		Name:     name,
		Priority: priority,
		Status:   status,
		UserID:   c.user.ID,
	}

	if err := c.doTask(http.MethodPost, task); err != nil {
		return tasks.Task{}, err
	}

	c.tasks = sortTasksByStatus(append(c.tasks, task))
	return task, nil
}

// UpdateTask sends the mutable fields to the server and patches the cache.
func (c *Client) UpdateTask(task tasks.Task) error {
	c.loading = true
	defer func() { c.loading = false }()

	if err := c.doTask(http.MethodPut, task); err != nil {
		return err
	}

	for i := range c.tasks {
		if c.tasks[i].ID == task.ID {
			c.tasks[i].Name = task.Name
			c.tasks[i].Priority = task.Priority
			c.tasks[i].Status = task.Status
			break
		}
	}
	c.tasks = sortTasksByStatus(c.tasks)
	return nil
}

// ToggleStatus flips one task between in progress and completed.
func (c *Client) ToggleStatus(task tasks.Task) error {
	if task.Status == tasks.StatusCompleted {
		task.Status = tasks.StatusInProgress
	} else {
		task.Status = tasks.StatusCompleted
	}
	return c.UpdateTask(task)
}

func (c *Client) DeleteTask(task tasks.Task) error {
	c.loading = true
	defer func() { c.loading = false }()

	if err := c.deleteTasks("delete", &task); err != nil {
		return err
	}

	kept := c.tasks[:0]
	for _, t := range c.tasks {
		if t.ID != task.ID {
			kept = append(kept, t)
		}
	}
	c.tasks = kept
	return nil
}

// DeleteAll clears every task the signed-in user owns.
func (c *Client) DeleteAll() error {
	c.loading = true
	defer func() { c.loading = false }()

	if err := c.deleteTasks("deleteAll", nil); err != nil {
		return err
	}

	c.tasks = nil
	return nil
}

func (c *Client) postCredentials(path, email, password string) error {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	return nil
}

func (c *Client) refreshUser() error {
	ok, err := c.refreshUserOK()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not authenticated")
	}
	return nil
}

func (c *Client) refreshUserOK() (bool, error) {
	resp, err := c.http.Get(c.baseURL + "/validate-user")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var result struct {
		IsAuthenticated bool  `json:"isAuthenticated"`
		User            *User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}

	if !result.IsAuthenticated || result.User == nil {
		c.user = nil
		return false, nil
	}
	c.user = result.User
	return true, nil
}

func (c *Client) doTask(method string, task tasks.Task) error {
	body, _ := json.Marshal(task)
	req, err := http.NewRequest(method, c.baseURL+"/tasks", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	return nil
}

func (c *Client) deleteTasks(option string, task *tasks.Task) error {
	if c.user == nil {
		return fmt.Errorf("no user signed in")
	}

	body, _ := json.Marshal(map[string]any{"option": option, "task": task})
	req, err := http.NewRequest(http.MethodDelete,
		c.baseURL+"/tasks?userId="+url.QueryEscape(c.user.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	return nil
}

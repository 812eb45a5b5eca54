package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/coursebay/course-marketplace/internal/core/domain"
)

type stubPurchaseService struct {
	purchaseFn      func(ctx context.Context, username, courseID string) error
	listPurchasedFn func(ctx context.Context, username string) ([]domain.Course, error)
}

func (s *stubPurchaseService) Purchase(ctx context.Context, username, courseID string) error {
	return s.purchaseFn(ctx, username, courseID)
}

func (s *stubPurchaseService) ListPurchased(ctx context.Context, username string) ([]domain.Course, error) {
	return s.listPurchasedFn(ctx, username)
}

func TestUserHandler_Signup_Success(t *testing.T) {
	accounts := &stubAccountService{
		signupFn: func(ctx context.Context, username, password string) (string, error) {
			return "token456", nil
		},
	}
	h := NewUserHandler(accounts, &stubCourseService{}, &stubPurchaseService{})

	c, rec := newTestContext(t, http.MethodPost, "/users/signup", `{"username":"alice","password":"pw"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["message"] != "User created successfully" || resp["token"] != "token456" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

// User signup has no required-field check: absent credentials flow through to
// the service as empty strings instead of failing with 400.
func TestUserHandler_Signup_NoRequiredFieldCheck(t *testing.T) {
	var gotUsername, gotPassword string
	accounts := &stubAccountService{
		signupFn: func(ctx context.Context, username, password string) (string, error) {
			gotUsername, gotPassword = username, password
			return "token", nil
		},
	}
	h := NewUserHandler(accounts, &stubCourseService{}, &stubPurchaseService{})

	c, rec := newTestContext(t, http.MethodPost, "/users/signup", `{}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUsername != "" || gotPassword != "" {
		t.Fatalf("expected empty credentials passed through, got %q %q", gotUsername, gotPassword)
	}
}

func TestUserHandler_Signup_Exists(t *testing.T) {
	accounts := &stubAccountService{
		signupFn: func(ctx context.Context, username, password string) (string, error) {
			return "", domain.ErrAccountExists
		},
	}
	h := NewUserHandler(accounts, &stubCourseService{}, &stubPurchaseService{})

	c, rec := newTestContext(t, http.MethodPost, "/users/signup", `{"username":"alice","password":"pw"}`)
	_ = h.Signup(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User already exists" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	accounts := &stubAccountService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(accounts, &stubCourseService{}, &stubPurchaseService{})

	c, rec := newTestContext(t, http.MethodPost, "/users/login", `{"username":"alice","password":"bad"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Invalid username or password" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_ListCourses_EmptyIsOK(t *testing.T) {
	courses := &stubCourseService{
		listPublishedFn: func(ctx context.Context) ([]domain.Course, error) {
			return []domain.Course{}, nil
		},
	}
	h := NewUserHandler(&stubAccountService{}, courses, &stubPurchaseService{})

	c, rec := newTestContext(t, http.MethodGet, "/users/courses", "")
	if err := h.ListCourses(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Courses []domain.Course `json:"courses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Courses == nil {
		t.Fatalf("expected courses key with empty array, got %s", rec.Body.String())
	}
	if len(resp.Courses) != 0 {
		t.Fatalf("expected no courses, got %d", len(resp.Courses))
	}
}

func TestUserHandler_PurchaseCourse_Success(t *testing.T) {
	purchases := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, username, courseID string) error {
			if username != "alice" || courseID != "abc123" {
				t.Fatalf("unexpected args: %s %s", username, courseID)
			}
			return nil
		},
	}
	h := NewUserHandler(&stubAccountService{}, &stubCourseService{}, purchases)

	c, rec := newTestContext(t, http.MethodPost, "/users/courses/abc123", "")
	c.Set("username", "alice")
	c.SetParamNames("courseId")
	c.SetParamValues("abc123")

	if err := h.PurchaseCourse(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Course purchased successfully" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_PurchaseCourse_CourseNotFound(t *testing.T) {
	purchases := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, username, courseID string) error {
			return domain.ErrCourseNotFound
		},
	}
	h := NewUserHandler(&stubAccountService{}, &stubCourseService{}, purchases)

	c, rec := newTestContext(t, http.MethodPost, "/users/courses/missing", "")
	c.Set("username", "alice")
	c.SetParamNames("courseId")
	c.SetParamValues("missing")
	_ = h.PurchaseCourse(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Course not found" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_PurchaseCourse_UserNotFound(t *testing.T) {
	purchases := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, username, courseID string) error {
			return domain.ErrAccountNotFound
		},
	}
	h := NewUserHandler(&stubAccountService{}, &stubCourseService{}, purchases)

	c, rec := newTestContext(t, http.MethodPost, "/users/courses/abc", "")
	c.Set("username", "ghost")
	c.SetParamNames("courseId")
	c.SetParamValues("abc")
	_ = h.PurchaseCourse(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User not found" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUserHandler_ListPurchased(t *testing.T) {
	purchases := &stubPurchaseService{
		listPurchasedFn: func(ctx context.Context, username string) ([]domain.Course, error) {
			if username != "alice" {
				t.Fatalf("unexpected username: %s", username)
			}
			return []domain.Course{{ID: "1", Title: "Go", Published: true}}, nil
		},
	}
	h := NewUserHandler(&stubAccountService{}, &stubCourseService{}, purchases)

	c, rec := newTestContext(t, http.MethodGet, "/users/purchasedCourses", "")
	c.Set("username", "alice")

	if err := h.ListPurchased(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		PurchasedCourses []domain.Course `json:"purchasedCourses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.PurchasedCourses) != 1 || resp.PurchasedCourses[0].Title != "Go" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_ListPurchased_UserNotFound(t *testing.T) {
	purchases := &stubPurchaseService{
		listPurchasedFn: func(ctx context.Context, username string) ([]domain.Course, error) {
			return nil, domain.ErrAccountNotFound
		},
	}
	h := NewUserHandler(&stubAccountService{}, &stubCourseService{}, purchases)

	c, rec := newTestContext(t, http.MethodGet, "/users/purchasedCourses", "")
	c.Set("username", "ghost")
	_ = h.ListPurchased(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "User not found" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursebay/course-marketplace/internal/core/domain"
	"github.com/coursebay/course-marketplace/internal/core/ports"
)

// UserHandler handles the user-scoped endpoints: account signup/login,
// published-course browsing, and purchases.
type UserHandler struct {
	accounts  ports.AccountService
	courses   ports.CourseService
	purchases ports.PurchaseService
}

func NewUserHandler(accounts ports.AccountService, courses ports.CourseService, purchases ports.PurchaseService) *UserHandler {
	return &UserHandler{accounts: accounts, courses: courses, purchases: purchases}
}

// Signup creates a new user account and returns a bearer token. Unlike the
// admin endpoint there is no required-field check: absent credentials flow
// through to storage as empty strings.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "User credentials"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}

	token, err := h.accounts.Signup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return c.JSON(http.StatusForbidden, messageResponse{Message: "User already exists"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User created successfully", Token: token})
}

// Login authenticates a user and returns a fresh bearer token.
//
// @Summary      User login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "User credentials"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}

	token, err := h.accounts.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusForbidden, messageResponse{Message: "Invalid username or password"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Logged in successfully", Token: token})
}

// ListCourses returns the published subset of the catalog. An empty result is
// an empty list, never an error.
//
// @Summary      List published courses
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userCoursesResponse
// @Router       /users/courses [get]
func (h *UserHandler) ListCourses(c echo.Context) error {
	courses, err := h.courses.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userCoursesResponse{Courses: courses})
}

// PurchaseCourse appends the course to the requesting user's history.
//
// @Summary      Purchase a course
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        courseId  path      string  true  "Course id"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  messageResponse
// @Router       /users/courses/{courseId} [post]
func (h *UserHandler) PurchaseCourse(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	if err := h.purchases.Purchase(c.Request().Context(), username, c.Param("courseId")); err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Course not found"})
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Course purchased successfully"})
}

// ListPurchased resolves the requesting user's purchase history to full
// course records, in purchase order, duplicates included.
//
// @Summary      List purchased courses
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  purchasedCoursesResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/purchasedCourses [get]
func (h *UserHandler) ListPurchased(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	courses, err := h.purchases.ListPurchased(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, purchasedCoursesResponse{PurchasedCourses: courses})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursebay/course-marketplace/internal/core/domain"
	"github.com/coursebay/course-marketplace/internal/core/ports"
)

// AdminHandler handles the admin-scoped endpoints: account signup/login and
// catalog management.
type AdminHandler struct {
	accounts ports.AccountService
	courses  ports.CourseService
}

func NewAdminHandler(accounts ports.AccountService, courses ports.CourseService) *AdminHandler {
	return &AdminHandler{accounts: accounts, courses: courses}
}

// Signup creates a new admin account and returns a bearer token.
//
// @Summary      Register a new admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Admin credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /admin/signup [post]
func (h *AdminHandler) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Username and password are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Username and password are required"})
	}

	token, err := h.accounts.Signup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return c.JSON(http.StatusForbidden, messageResponse{Message: "Admin already exists"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Admin created successfully", Token: token})
}

// Login authenticates an admin and returns a fresh bearer token.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Admin credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please provide credentials"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please provide credentials"})
	}

	token, err := h.accounts.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusForbidden, messageResponse{Message: "Invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Admin logged in successfully", Token: token})
}

// CreateCourse stores a new course from the request body as given.
//
// @Summary      Create a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /admin/courses [post]
func (h *AdminHandler) CreateCourse(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}

	id, err := h.courses.Create(c.Request().Context(), ports.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageLink:   req.ImageLink,
		Published:   req.Published,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Course created successfully", CourseID: id})
}

// UpdateCourse applies a partial field set to an existing course.
//
// @Summary      Update a course
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        courseId  path      string               true  "Course id"
// @Param        body      body      updateCourseRequest  true  "Fields to update"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  messageResponse
// @Router       /admin/courses/{courseId} [put]
func (h *AdminHandler) UpdateCourse(c echo.Context) error {
	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}

	err := h.courses.Update(c.Request().Context(), c.Param("courseId"), ports.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageLink:   req.ImageLink,
		Published:   req.Published,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Course not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Course updated successfully"})
}

// ListCourses returns every stored course. An empty catalog is a 404, not an
// empty list; the user-facing listing behaves the opposite way.
//
// @Summary      List all courses
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Course
// @Failure      404  {object}  messageResponse
// @Router       /admin/courses [get]
func (h *AdminHandler) ListCourses(c echo.Context) error {
	courses, err := h.courses.ListAll(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoCourses) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "No courses available"})
		}
		return err
	}

	return c.JSON(http.StatusOK, courses)
}

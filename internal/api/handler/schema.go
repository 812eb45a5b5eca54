package handler

import "github.com/coursebay/course-marketplace/internal/core/domain"

// messageResponse is the envelope used for every success and error body.
// Token and CourseID appear only where the endpoint contract includes them.
type messageResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token,omitempty"`
	CourseID string `json:"courseId,omitempty"`
}

// credentialsRequest is shared by all four signup/login endpoints. The
// required tags are only enforced on the admin endpoints; user signup and
// login pass absent fields through untouched.
type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageLink   string  `json:"imageLink"`
	Published   bool    `json:"published"`
}

// updateCourseRequest carries a partial update: nil fields are not touched.
type updateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageLink   *string  `json:"imageLink"`
	Published   *bool    `json:"published"`
}

type userCoursesResponse struct {
	Courses []domain.Course `json:"courses"`
}

type purchasedCoursesResponse struct {
	PurchasedCourses []domain.Course `json:"purchasedCourses"`
}

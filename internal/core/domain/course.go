package domain

import "errors"

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrNoCourses      = errors.New("no courses available")
)

// Course is a purchasable catalog entry. Published defaults to false: a
// course is invisible to users until an admin explicitly sets it true.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageLink   string  `json:"imageLink"`
	Published   bool    `json:"published"`
}

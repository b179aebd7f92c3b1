package dto

import "time"

type CourseCreateDTO struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"gte=0"`
	IsPublished bool    `json:"is_published"`
}

type CourseResponseDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	InstructorID string    `json:"instructor_id"`
	Price        float64   `json:"price"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
}

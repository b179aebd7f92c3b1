package service

import (
	"testing"

	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseService(t *testing.T) {
	f := newFixture(t)
	teacher := f.user("rob", model.RoleTeacher)
	student := f.user("ada", model.RoleStudent)
	svc := NewCourseService(f.courses, f.users)

	created, err := svc.Create(f.ctx, teacher.ID, dto.CourseCreateDTO{Title: "  Go Basics ", Category: "programming"})
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", created.Title)
	assert.Equal(t, teacher.ID, created.InstructorID)

	_, err = svc.Create(f.ctx, student.ID, dto.CourseCreateDTO{Title: "Sneaky"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(f.ctx, teacher.ID, dto.CourseCreateDTO{Title: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(f.ctx, "ghost", dto.CourseCreateDTO{Title: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "programming", got.Category)

	_, err = svc.Get(f.ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := svc.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

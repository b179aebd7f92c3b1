package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/lshigami/edulearn/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t           *testing.T
	ctx         context.Context
	users       repository.UserRepository
	courses     repository.CourseRepository
	assessments repository.AssessmentRepository
	attempts    repository.AttemptRepository
	certs       repository.CertificateRepository
}

func newFixture(t *testing.T) *fixture {
	db := testutil.OpenDB(t)
	return &fixture{
		t:           t,
		ctx:         context.Background(),
		users:       repository.NewUserRepository(db),
		courses:     repository.NewCourseRepository(db),
		assessments: repository.NewAssessmentRepository(db),
		attempts:    repository.NewAttemptRepository(db),
		certs:       repository.NewCertificateRepository(db),
	}
}

func (f *fixture) user(name, role string) *model.User {
	u := &model.User{FullName: name, Email: name + "@edulearn.test", Role: role}
	require.NoError(f.t, f.users.Create(f.ctx, u))
	return u
}

func (f *fixture) course(title string, instructor *model.User) *model.Course {
	c := &model.Course{Title: title, InstructorID: instructor.ID, IsPublished: true}
	require.NoError(f.t, f.courses.Create(f.ctx, c))
	return c
}

func (f *fixture) mcq(course *model.Course, title string, passing float64) *model.Assessment {
	a := &model.Assessment{
		CourseID:     course.ID,
		ModuleID:     "m1",
		Title:        title,
		Type:         model.AssessmentTypeMCQ,
		Questions:    twoQuestionKey(),
		PassingScore: passing,
	}
	require.NoError(f.t, f.assessments.Create(f.ctx, a))
	return a
}

func (f *fixture) assignment(course *model.Course, title string, passing float64) *model.Assessment {
	instructions := "Write a short essay about goroutines."
	a := &model.Assessment{
		CourseID:     course.ID,
		ModuleID:     "m2",
		Title:        title,
		Type:         model.AssessmentTypeAssignment,
		Questions:    []model.Question{{ID: "essay", Prompt: "Explain goroutines."}},
		PassingScore: passing,
		Instructions: &instructions,
	}
	require.NoError(f.t, f.assessments.Create(f.ctx, a))
	return a
}

func (f *fixture) attempt(userID string, a *model.Assessment, score float64, at time.Time) *model.Attempt {
	row := &model.Attempt{
		UserID:       userID,
		AssessmentID: a.ID,
		CourseID:     a.CourseID,
		Score:        score,
		Passed:       score >= a.PassingScore,
		AttemptDate:  at,
	}
	require.NoError(f.t, f.attempts.Create(f.ctx, row))
	return row
}

func (f *fixture) summaryService() CourseSummaryService {
	return NewCourseSummaryService(f.assessments, f.attempts)
}

func floatPtr(v float64) *float64 { return &v }

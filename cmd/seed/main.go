// Command seed loads a demo teacher, student, course and two assessments,
// then prints a bearer token for each user.
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/database"
	"github.com/lshigami/edulearn/internal/logger"
	"github.com/lshigami/edulearn/internal/middleware"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init("info", "console")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Database migration failed")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	assessments := repository.NewAssessmentRepository(db)

	teacher, err := ensureUser(ctx, users, "Grace Hopper", "teacher@edulearn.example", model.RoleTeacher)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed teacher")
	}
	student, err := ensureUser(ctx, users, "Alan Turing", "student@edulearn.example", model.RoleStudent)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed student")
	}

	course := &model.Course{
		Title:        "Concurrency in Go",
		Description:  "Goroutines, channels and the sync package.",
		Category:     "programming",
		InstructorID: teacher.ID,
		IsPublished:  true,
	}
	if err := courses.Create(ctx, course); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed course")
	}

	instructions := "Explain when you would choose a mutex over a channel."
	seeded := []*model.Assessment{
		{
			CourseID: course.ID,
			ModuleID: "module-1",
			Title:    "Goroutine basics",
			Type:     model.AssessmentTypeMCQ,
			Questions: []model.Question{
				{ID: "q1", Prompt: "Which keyword starts a goroutine?", Options: []string{"go", "async", "spawn"}, CorrectAnswer: "go"},
				{ID: "q2", Prompt: "Sending on a closed channel...", Options: []string{"blocks", "panics", "is ignored"}, CorrectAnswer: "panics"},
			},
			PassingScore: 50,
		},
		{
			CourseID:     course.ID,
			ModuleID:     "module-2",
			Title:        "Mutex or channel",
			Type:         model.AssessmentTypeAssignment,
			Questions:    []model.Question{{ID: "essay", Prompt: instructions}},
			PassingScore: 60,
			Instructions: &instructions,
		},
	}
	for _, a := range seeded {
		if err := assessments.Create(ctx, a); err != nil {
			log.Fatal().Err(err).Str("title", a.Title).Msg("Failed to seed assessment")
		}
	}

	auth := middleware.NewAuthenticator(cfg)
	expiry := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour))}
	for _, u := range []*model.User{teacher, student} {
		token, err := auth.Sign(u.ID, u.Role, expiry)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to sign token; is JWT_SECRET set?")
		}
		fmt.Printf("%-8s %s\n  Bearer %s\n", u.Role, u.Email, token)
	}
	log.Info().Uint("courseID", course.ID).Msg("Seed completed")
}

func ensureUser(ctx context.Context, users repository.UserRepository, name, email, role string) (*model.User, error) {
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	u := &model.User{FullName: name, Email: email, Role: role}
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

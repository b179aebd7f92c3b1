package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttempt(userID string, assessmentID, courseID uint, score float64, at time.Time) *model.Attempt {
	return &model.Attempt{
		UserID:       userID,
		AssessmentID: assessmentID,
		CourseID:     courseID,
		Score:        score,
		Passed:       score >= 50,
		AttemptDate:  at,
	}
}

func TestAttemptRepositoryBest(t *testing.T) {
	repo := NewAttemptRepository(testutil.OpenDB(t))
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	best, err := repo.Best(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Nil(t, best, "no attempts yet")

	low := newAttempt("u1", 1, 10, 40, base)
	high := newAttempt("u1", 1, 10, 80, base.Add(time.Minute))
	tiedLater := newAttempt("u1", 1, 10, 80, base.Add(2*time.Minute))
	lowest := newAttempt("u1", 1, 10, 10, base.Add(3*time.Minute))
	otherUser := newAttempt("u2", 1, 10, 100, base)
	for _, a := range []*model.Attempt{low, high, tiedLater, lowest, otherUser} {
		require.NoError(t, repo.Create(ctx, a))
	}

	best, err = repo.Best(ctx, "u1", 1)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, tiedLater.ID, best.ID, "equal scores resolve to the most recent attempt")
	assert.Equal(t, 80.0, best.Score)

	best, err = repo.Best(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestAttemptRepositoryBestSameTimestampPrefersLaterInsert(t *testing.T) {
	repo := NewAttemptRepository(testutil.OpenDB(t))
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	first := newAttempt("u1", 1, 10, 70, at)
	second := newAttempt("u1", 1, 10, 70, at)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	best, err := repo.Best(ctx, "u1", 1)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, second.ID, best.ID)
}

func TestAttemptRepositoryListings(t *testing.T) {
	repo := NewAttemptRepository(testutil.OpenDB(t))
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	a1 := newAttempt("u1", 1, 10, 30, base)
	a2 := newAttempt("u1", 2, 10, 90, base.Add(time.Hour))
	a3 := newAttempt("u1", 1, 10, 60, base.Add(2*time.Hour))
	other := newAttempt("u1", 3, 11, 100, base.Add(3*time.Hour))
	for _, a := range []*model.Attempt{a1, a2, a3, other} {
		require.NoError(t, repo.Create(ctx, a))
	}

	byCourse, err := repo.FindAllByUserAndCourse(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, byCourse, 3)
	assert.Equal(t, []uint{a3.ID, a2.ID, a1.ID}, []uint{byCourse[0].ID, byCourse[1].ID, byCourse[2].ID})

	byAssessment, err := repo.FindAllByUserAndAssessment(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, byAssessment, 2)
	assert.Equal(t, a3.ID, byAssessment[0].ID)

	count, err := repo.CountByUserAndAssessment(ctx, "u1", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	none, err := repo.FindAllByUserAndCourse(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAttemptRepositoryAnswersRoundTrip(t *testing.T) {
	repo := NewAttemptRepository(testutil.OpenDB(t))
	ctx := context.Background()

	a := newAttempt("u1", 1, 10, 50, time.Now().UTC())
	a.Answers = []model.SubmittedAnswer{{QuestionID: "q1", Answer: "A"}, {QuestionID: "q2", Answer: "C"}}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got.Answers, 2)
	assert.Equal(t, "q2", got.Answers[1].QuestionID)
	assert.Equal(t, "C", got.Answers[1].Answer)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttemptRepositoryUpdateGrade(t *testing.T) {
	repo := NewAttemptRepository(testutil.OpenDB(t))
	ctx := context.Background()

	spent := 25
	a := newAttempt("u1", 1, 10, 0, time.Now().UTC())
	a.TimeSpent = &spent
	a.Answers = []model.SubmittedAnswer{{QuestionID: "essay", Answer: "my essay"}}
	require.NoError(t, repo.Create(ctx, a))

	gradedAt := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateGrade(ctx, a.ID, model.Grade{
		Score:    88,
		Passed:   true,
		GradedBy: "teacher-1",
		GradedAt: gradedAt,
		Feedback: "well argued",
	}))

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 88.0, got.Score)
	assert.True(t, got.Passed)
	require.NotNil(t, got.GradedBy)
	assert.Equal(t, "teacher-1", *got.GradedBy)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "well argued", *got.Feedback)
	require.NotNil(t, got.TimeSpent)
	assert.Equal(t, 25, *got.TimeSpent, "unrelated columns are untouched")
	assert.Equal(t, "my essay", got.Answers[0].Answer)

	err = repo.UpdateGrade(ctx, 9999, model.Grade{Score: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/controller"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/middleware"
	"github.com/lshigami/edulearn/internal/service"
	"github.com/rs/zerolog/log"
)

type TestResultController struct {
	submissionService service.SubmissionService
	summaryService    service.CourseSummaryService
}

func NewTestResultController(submissionService service.SubmissionService, summaryService service.CourseSummaryService) *TestResultController {
	return &TestResultController{submissionService: submissionService, summaryService: summaryService}
}

// RegisterRoutes mounts the result routes on an authenticated group.
func (c *TestResultController) RegisterRoutes(authed *gin.RouterGroup) {
	results := authed.Group("/test-results")
	results.POST("/submit", c.Submit)
	results.GET("/assessment/:assessment_id", c.ListForAssessment)
	results.GET("/best-score/:assessment_id", c.BestScore)
	results.GET("/course-summary/:course_id", c.CourseSummary)
	results.GET("/check-eligibility/:course_id", c.CheckCompletion)
	results.GET("/user/:user_id/course/:course_id", c.ListForUserAndCourse)
	results.GET("/:result_id", c.GetResult)
}

// Submit godoc
// @Summary Submit answers for an assessment
// @Description Scores multiple-choice answers immediately. Assignment submissions are stored with a score of 0 until an instructor grades them.
// @Tags Test Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.SubmitTestDTO true "Assessment and answers"
// @Success 201 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-results/submit [post]
func (c *TestResultController) Submit(ctx *gin.Context) {
	var req dto.SubmitTestDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	userID := middleware.UserID(ctx)
	log.Info().Str("userID", userID).Uint("assessmentID", req.AssessmentID).Int("answerCount", len(req.Answers)).Msg("Received submission")

	res, err := c.submissionService.Submit(ctx.Request.Context(), userID, req)
	if err != nil {
		controller.RespondError(ctx, err, "submit test")
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

// ListForAssessment godoc
// @Summary List my attempts at an assessment
// @Description Newest attempt first.
// @Tags Test Results
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {array} dto.AttemptResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Assessment ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-results/assessment/{assessment_id} [get]
func (c *TestResultController) ListForAssessment(ctx *gin.Context) {
	assessmentID, ok := controller.UintParam(ctx, "assessment_id")
	if !ok {
		return
	}
	res, err := c.submissionService.ListForAssessment(ctx.Request.Context(), middleware.UserID(ctx), assessmentID)
	if err != nil {
		controller.RespondError(ctx, err, "fetch test results")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// BestScore godoc
// @Summary Get my best attempt at an assessment
// @Description Highest score; ties go to the most recent attempt.
// @Tags Test Results
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.AttemptResponseDTO
// @Failure 404 {object} dto.ErrorResponse "No attempts yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-results/best-score/{assessment_id} [get]
func (c *TestResultController) BestScore(ctx *gin.Context) {
	assessmentID, ok := controller.UintParam(ctx, "assessment_id")
	if !ok {
		return
	}
	res, err := c.submissionService.BestScore(ctx.Request.Context(), middleware.UserID(ctx), assessmentID)
	if err != nil {
		controller.RespondError(ctx, err, "fetch best score")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// CourseSummary godoc
// @Summary Summarize my progress in a course
// @Description Best score, pass status and attempt count for every assessment of the course.
// @Tags Test Results
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Course ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-results/course-summary/{course_id} [get]
func (c *TestResultController) CourseSummary(ctx *gin.Context) {
	courseID, ok := controller.UintParam(ctx, "course_id")
	if !ok {
		return
	}
	res, err := c.summaryService.Summarize(ctx.Request.Context(), middleware.UserID(ctx), courseID)
	if err != nil {
		controller.RespondError(ctx, err, "summarize course")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// CheckCompletion godoc
// @Summary Check whether I passed every assessment of a course
// @Tags Test Results
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseCompletionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Course ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-results/check-eligibility/{course_id} [get]
func (c *TestResultController) CheckCompletion(ctx *gin.Context) {
	courseID, ok := controller.UintParam(ctx, "course_id")
	if !ok {
		return
	}
	allPassed, err := c.summaryService.AllPassed(ctx.Request.Context(), middleware.UserID(ctx), courseID)
	if err != nil {
		controller.RespondError(ctx, err, "check course completion")
		return
	}
	ctx.JSON(http.StatusOK, dto.CourseCompletionDTO{CourseID: courseID, AllPassed: allPassed})
}

// ListForUserAndCourse godoc
// @Summary List a user's attempts in a course
// @Description Users may only list their own results; admins may list anyone's.
// @Tags Test Results
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.AttemptResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not your results"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-results/user/{user_id}/course/{course_id} [get]
func (c *TestResultController) ListForUserAndCourse(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	courseID, ok := controller.UintParam(ctx, "course_id")
	if !ok {
		return
	}
	if !middleware.IsSelfOrAdmin(ctx, userID) {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You can only view your own results"})
		return
	}
	res, err := c.submissionService.ListForUserAndCourse(ctx.Request.Context(), userID, courseID)
	if err != nil {
		controller.RespondError(ctx, err, "fetch test results")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GetResult godoc
// @Summary Get one of my test results
// @Tags Test Results
// @Produce json
// @Security BearerAuth
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.AttemptResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Result belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-results/{result_id} [get]
func (c *TestResultController) GetResult(ctx *gin.Context) {
	resultID, ok := controller.UintParam(ctx, "result_id")
	if !ok {
		return
	}
	res, err := c.submissionService.GetResult(ctx.Request.Context(), middleware.UserID(ctx), resultID)
	if err != nil {
		controller.RespondError(ctx, err, "fetch test result")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

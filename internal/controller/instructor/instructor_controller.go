package instructor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/controller"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/middleware"
	"github.com/lshigami/edulearn/internal/service"
	"github.com/rs/zerolog/log"
)

// InstructorController serves course authoring and grading. Course
// ownership is checked by the services.
type InstructorController struct {
	courseService     service.CourseService
	assessmentService service.AssessmentService
	submissionService service.SubmissionService
	assistantService  service.GradingAssistantService
}

func NewInstructorController(
	courseService service.CourseService,
	assessmentService service.AssessmentService,
	submissionService service.SubmissionService,
	assistantService service.GradingAssistantService,
) *InstructorController {
	return &InstructorController{
		courseService:     courseService,
		assessmentService: assessmentService,
		submissionService: submissionService,
		assistantService:  assistantService,
	}
}

// RegisterRoutes expects a group restricted to teachers and admins.
func (c *InstructorController) RegisterRoutes(instructor *gin.RouterGroup) {
	instructor.POST("/courses", c.CreateCourse)
	instructor.POST("/assessments", c.CreateAssessment)
	instructor.PUT("/assessments/:assessment_id", c.UpdateAssessment)
	instructor.DELETE("/assessments/:assessment_id", c.DeleteAssessment)
	instructor.PUT("/test-results/:result_id/grade", c.GradeAssignment)
	instructor.POST("/test-results/:result_id/grading-suggestion", c.SuggestGrade)
}

// CreateCourse godoc
// @Summary (Instructor) Create a course
// @Description The caller becomes the course instructor.
// @Tags Instructor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CourseCreateDTO true "Course"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Teachers only"
// @Router /instructor/courses [post]
func (c *InstructorController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	res, err := c.courseService.Create(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err, "create course")
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

// CreateAssessment godoc
// @Summary (Instructor) Create an assessment
// @Description Question IDs must be unique; every mcq question needs a correct answer.
// @Tags Instructor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment body dto.AssessmentCreateDTO true "Assessment"
// @Success 201 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /instructor/assessments [post]
func (c *InstructorController) CreateAssessment(ctx *gin.Context) {
	var req dto.AssessmentCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	res, err := c.assessmentService.Create(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err, "create assessment")
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

// UpdateAssessment godoc
// @Summary (Instructor) Update an assessment
// @Description Partial update. Questions cannot be replaced once the assessment has attempts.
// @Tags Instructor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Param assessment body dto.AssessmentUpdateDTO true "Fields to change"
// @Success 200 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Questions are frozen"
// @Router /instructor/assessments/{assessment_id} [put]
func (c *InstructorController) UpdateAssessment(ctx *gin.Context) {
	assessmentID, ok := controller.UintParam(ctx, "assessment_id")
	if !ok {
		return
	}
	var req dto.AssessmentUpdateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	res, err := c.assessmentService.Update(ctx.Request.Context(), middleware.UserID(ctx), assessmentID, req)
	if err != nil {
		controller.RespondError(ctx, err, "update assessment")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// DeleteAssessment godoc
// @Summary (Instructor) Delete an assessment
// @Description Soft delete; recorded attempts are kept.
// @Tags Instructor
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /instructor/assessments/{assessment_id} [delete]
func (c *InstructorController) DeleteAssessment(ctx *gin.Context) {
	assessmentID, ok := controller.UintParam(ctx, "assessment_id")
	if !ok {
		return
	}
	if err := c.assessmentService.Delete(ctx.Request.Context(), middleware.UserID(ctx), assessmentID); err != nil {
		controller.RespondError(ctx, err, "delete assessment")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Assessment deleted successfully"})
}

// GradeAssignment godoc
// @Summary (Instructor) Grade an assignment submission
// @Tags Instructor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result_id path int true "Result ID"
// @Param grade body dto.GradeAssignmentDTO true "Score 0-100 and feedback"
// @Success 200 {object} dto.GradeResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid score or not an assignment"
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /instructor/test-results/{result_id}/grade [put]
func (c *InstructorController) GradeAssignment(ctx *gin.Context) {
	resultID, ok := controller.UintParam(ctx, "result_id")
	if !ok {
		return
	}
	var req dto.GradeAssignmentDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	res, err := c.submissionService.GradeAssignment(ctx.Request.Context(), middleware.UserID(ctx), resultID, req)
	if err != nil {
		controller.RespondError(ctx, err, "grade assignment")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// SuggestGrade godoc
// @Summary (Instructor) Ask the AI assistant for a suggested grade
// @Description The suggestion is not saved; apply it through the grade endpoint.
// @Tags Instructor
// @Produce json
// @Security BearerAuth
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.GradeSuggestionDTO
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 503 {object} dto.ErrorResponse "Assistant not configured"
// @Router /instructor/test-results/{result_id}/grading-suggestion [post]
func (c *InstructorController) SuggestGrade(ctx *gin.Context) {
	resultID, ok := controller.UintParam(ctx, "result_id")
	if !ok {
		return
	}
	log.Info().Uint("resultID", resultID).Str("graderID", middleware.UserID(ctx)).Msg("Grading suggestion requested")
	res, err := c.assistantService.SuggestGrade(ctx.Request.Context(), middleware.UserID(ctx), resultID)
	if err != nil {
		controller.RespondError(ctx, err, "suggest grade")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

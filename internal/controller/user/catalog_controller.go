package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/controller"
	"github.com/lshigami/edulearn/internal/service"
)

// CatalogController serves the public course and assessment listings.
type CatalogController struct {
	courseService     service.CourseService
	assessmentService service.AssessmentService
}

func NewCatalogController(courseService service.CourseService, assessmentService service.AssessmentService) *CatalogController {
	return &CatalogController{courseService: courseService, assessmentService: assessmentService}
}

func (c *CatalogController) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/courses", c.ListCourses)
	public.GET("/courses/:course_id", c.GetCourse)
	public.GET("/assessments/course/:course_id", c.ListCourseAssessments)
	public.GET("/assessments/module/:course_id/:module_id", c.ListModuleAssessments)
	public.GET("/assessments/:assessment_id", c.GetAssessment)
}

// ListCourses godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	res, err := c.courseService.List(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "fetch courses")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GetCourse godoc
// @Summary Get a course
// @Tags Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	courseID, ok := controller.UintParam(ctx, "course_id")
	if !ok {
		return
	}
	res, err := c.courseService.Get(ctx.Request.Context(), courseID)
	if err != nil {
		controller.RespondError(ctx, err, "fetch course")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// ListCourseAssessments godoc
// @Summary List the assessments of a course
// @Description Correct answers are never included.
// @Tags Assessments
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Course ID format"
// @Router /assessments/course/{course_id} [get]
func (c *CatalogController) ListCourseAssessments(ctx *gin.Context) {
	courseID, ok := controller.UintParam(ctx, "course_id")
	if !ok {
		return
	}
	res, err := c.assessmentService.ListByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		controller.RespondError(ctx, err, "fetch assessments")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// ListModuleAssessments godoc
// @Summary List the assessments of a course module
// @Tags Assessments
// @Produce json
// @Param course_id path int true "Course ID"
// @Param module_id path string true "Module ID"
// @Success 200 {array} dto.AssessmentResponseDTO
// @Router /assessments/module/{course_id}/{module_id} [get]
func (c *CatalogController) ListModuleAssessments(ctx *gin.Context) {
	courseID, ok := controller.UintParam(ctx, "course_id")
	if !ok {
		return
	}
	res, err := c.assessmentService.ListByModule(ctx.Request.Context(), courseID, ctx.Param("module_id"))
	if err != nil {
		controller.RespondError(ctx, err, "fetch assessments")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GetAssessment godoc
// @Summary Get an assessment
// @Tags Assessments
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{assessment_id} [get]
func (c *CatalogController) GetAssessment(ctx *gin.Context) {
	assessmentID, ok := controller.UintParam(ctx, "assessment_id")
	if !ok {
		return
	}
	res, err := c.assessmentService.Get(ctx.Request.Context(), assessmentID)
	if err != nil {
		controller.RespondError(ctx, err, "fetch assessment")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

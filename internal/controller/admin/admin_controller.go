package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/controller"
	"github.com/lshigami/edulearn/internal/service"
)

type AdminController struct {
	certificateService service.CertificateService
	assessmentService  service.AssessmentService
}

func NewAdminController(certificateService service.CertificateService, assessmentService service.AssessmentService) *AdminController {
	return &AdminController{certificateService: certificateService, assessmentService: assessmentService}
}

// RegisterRoutes expects a group already restricted to admins.
func (c *AdminController) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/certificates", c.ListCertificates)
	admin.GET("/assessments", c.ListAssessments)
}

// ListCertificates godoc
// @Summary (Admin) List every issued certificate
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CertificateDTO
// @Failure 403 {object} dto.ErrorResponse "Admins only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/certificates [get]
func (c *AdminController) ListCertificates(ctx *gin.Context) {
	res, err := c.certificateService.ListAll(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "fetch certificates")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// ListAssessments godoc
// @Summary (Admin) List every assessment with its answer key
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AssessmentResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Admins only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments [get]
func (c *AdminController) ListAssessments(ctx *gin.Context) {
	res, err := c.assessmentService.ListAll(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "fetch assessments")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

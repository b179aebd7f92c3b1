package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/controller"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/middleware"
	"github.com/lshigami/edulearn/internal/service"
)

type CertificateController struct {
	certificateService service.CertificateService
}

func NewCertificateController(certificateService service.CertificateService) *CertificateController {
	return &CertificateController{certificateService: certificateService}
}

func (c *CertificateController) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.POST("/certificates/verify", c.Verify)
	public.GET("/certificates/:certificate_id", c.GetPublic)

	authed.POST("/certificates/generate", c.Generate)
	authed.GET("/certificates/check-eligibility/:course_id", c.CheckEligibility)
	authed.GET("/certificates/user/:user_id", c.ListByUser)
}

// Verify godoc
// @Summary Verify a certificate
// @Description Look a certificate up by its certificate ID or its verification code. The certificate ID is used when both are given.
// @Tags Certificates
// @Accept json
// @Produce json
// @Param identifiers body dto.VerifyCertificateDTO true "certificate_id or verification_code"
// @Success 200 {object} dto.VerificationResultDTO
// @Failure 400 {object} dto.ErrorResponse "Neither identifier given"
// @Failure 404 {object} dto.ErrorResponse "No such certificate"
// @Router /certificates/verify [post]
func (c *CertificateController) Verify(ctx *gin.Context) {
	var req dto.VerifyCertificateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	res, err := c.certificateService.Verify(ctx.Request.Context(), req.CertificateID, req.VerificationCode)
	if err != nil {
		controller.RespondError(ctx, err, "verify certificate")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GetPublic godoc
// @Summary Get a certificate by its public ID
// @Tags Certificates
// @Produce json
// @Param certificate_id path string true "Certificate ID, e.g. CERT-20250101-AB12CD34"
// @Success 200 {object} dto.PublicCertificateDTO
// @Failure 404 {object} dto.ErrorResponse "No such certificate"
// @Router /certificates/{certificate_id} [get]
func (c *CertificateController) GetPublic(ctx *gin.Context) {
	res, err := c.certificateService.GetByCertificateID(ctx.Request.Context(), ctx.Param("certificate_id"))
	if err != nil {
		controller.RespondError(ctx, err, "fetch certificate")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// Generate godoc
// @Summary Generate my certificate for a course
// @Description Issues the certificate once every assessment of the course is passed.
// @Tags Certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateCertificateDTO true "Course"
// @Success 201 {object} dto.GenerateCertificateResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Certificate already issued"
// @Failure 422 {object} dto.ErrorResponse "Not all assessments passed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /certificates/generate [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	var req dto.GenerateCertificateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	res, err := c.certificateService.GenerateForUser(ctx.Request.Context(), middleware.UserID(ctx), req.CourseID)
	if err != nil {
		controller.RespondError(ctx, err, "generate certificate")
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

// CheckEligibility godoc
// @Summary Check whether I can get a certificate for a course
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.EligibilityDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /certificates/check-eligibility/{course_id} [get]
func (c *CertificateController) CheckEligibility(ctx *gin.Context) {
	courseID, ok := controller.UintParam(ctx, "course_id")
	if !ok {
		return
	}
	res, err := c.certificateService.CheckEligibility(ctx.Request.Context(), middleware.UserID(ctx), courseID)
	if err != nil {
		controller.RespondError(ctx, err, "check eligibility")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// ListByUser godoc
// @Summary List a user's certificates
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.CertificateDTO
// @Failure 403 {object} dto.ErrorResponse "Not your certificates"
// @Router /certificates/user/{user_id} [get]
func (c *CertificateController) ListByUser(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	if !middleware.IsSelfOrAdmin(ctx, userID) {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You can only view your own certificates"})
		return
	}
	res, err := c.certificateService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "fetch certificates")
		return
	}
	ctx.JSON(http.StatusOK, res)
}

package payroll

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateRun(c *gin.Context) {
	organizationID := c.GetString("organization_id")

	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), organizationID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAllRuns(c *gin.Context) {
	ctx := c.Request.Context()
	organizationID := c.GetString("organization_id")

	resp, err := h.service.GetAll(ctx, organizationID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRunById(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	organizationID := c.GetString("organization_id")

	resp, err := h.service.GetByID(ctx, organizationID, targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ProcessRun(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	organizationID := c.GetString("organization_id")
	actorID := c.GetString("employee_id")

	var req ProcessRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Process(ctx, organizationID, actorID, targetID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateRunStatus(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	organizationID := c.GetString("organization_id")

	var req UpdateRunStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.UpdateStatus(ctx, organizationID, targetID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteRun(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	organizationID := c.GetString("organization_id")

	if err := h.service.Delete(ctx, organizationID, targetID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetRunPayslips(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	organizationID := c.GetString("organization_id")

	resp, err := h.service.GetPayslips(ctx, organizationID, targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPayslipById(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	organizationID := c.GetString("organization_id")

	resp, err := h.service.GetPayslip(ctx, organizationID, targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	organizationID := c.GetString("organization_id")

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.UpdatePaymentStatus(ctx, organizationID, targetID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	ctx := c.Request.Context()
	targetID := c.Param("id")
	organizationID := c.GetString("organization_id")

	pdf, err := h.service.RenderPayslip(ctx, organizationID, targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payslip.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

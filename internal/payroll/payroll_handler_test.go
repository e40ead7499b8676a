package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	createFn              func(ctx context.Context, organizationID string, req payroll.CreateRunRequest) (payroll.RunResponse, error)
	getAllFn              func(ctx context.Context, organizationID string) ([]payroll.RunResponse, error)
	getByIDFn             func(ctx context.Context, organizationID, id string) (payroll.RunResponse, error)
	processFn             func(ctx context.Context, organizationID, actorID, runID string, req payroll.ProcessRunRequest) (payroll.ProcessRunResponse, error)
	updateStatusFn        func(ctx context.Context, organizationID, runID string, req payroll.UpdateRunStatusRequest) (payroll.RunResponse, error)
	deleteFn              func(ctx context.Context, organizationID, runID string) error
	getPayslipsFn         func(ctx context.Context, organizationID, runID string) ([]payroll.PayslipResponse, error)
	getPayslipFn          func(ctx context.Context, organizationID, payslipID string) (payroll.PayslipResponse, error)
	updatePaymentStatusFn func(ctx context.Context, organizationID, payslipID string, req payroll.UpdatePaymentStatusRequest) (payroll.PayslipResponse, error)
	renderPayslipFn       func(ctx context.Context, organizationID, payslipID string) ([]byte, error)
}

func (f *fakePayrollService) Create(ctx context.Context, organizationID string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	return f.createFn(ctx, organizationID, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context, organizationID string) ([]payroll.RunResponse, error) {
	return f.getAllFn(ctx, organizationID)
}

func (f *fakePayrollService) GetByID(ctx context.Context, organizationID, id string) (payroll.RunResponse, error) {
	return f.getByIDFn(ctx, organizationID, id)
}

func (f *fakePayrollService) Process(ctx context.Context, organizationID, actorID, runID string, req payroll.ProcessRunRequest) (payroll.ProcessRunResponse, error) {
	return f.processFn(ctx, organizationID, actorID, runID, req)
}

func (f *fakePayrollService) UpdateStatus(ctx context.Context, organizationID, runID string, req payroll.UpdateRunStatusRequest) (payroll.RunResponse, error) {
	return f.updateStatusFn(ctx, organizationID, runID, req)
}

func (f *fakePayrollService) Delete(ctx context.Context, organizationID, runID string) error {
	return f.deleteFn(ctx, organizationID, runID)
}

func (f *fakePayrollService) GetPayslips(ctx context.Context, organizationID, runID string) ([]payroll.PayslipResponse, error) {
	return f.getPayslipsFn(ctx, organizationID, runID)
}

func (f *fakePayrollService) GetPayslip(ctx context.Context, organizationID, payslipID string) (payroll.PayslipResponse, error) {
	return f.getPayslipFn(ctx, organizationID, payslipID)
}

func (f *fakePayrollService) UpdatePaymentStatus(ctx context.Context, organizationID, payslipID string, req payroll.UpdatePaymentStatusRequest) (payroll.PayslipResponse, error) {
	return f.updatePaymentStatusFn(ctx, organizationID, payslipID, req)
}

func (f *fakePayrollService) RenderPayslip(ctx context.Context, organizationID, payslipID string) ([]byte, error) {
	return f.renderPayslipFn(ctx, organizationID, payslipID)
}

func TestPayrollHandler_CreateRun(t *testing.T) {
	organizationID := uuid.New().String()

	svc := &fakePayrollService{
		createFn: func(ctx context.Context, oid string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
			assert.Equal(t, organizationID, oid)
			assert.Equal(t, 3, req.Month)
			assert.Equal(t, 2025, req.Year)
			return payroll.RunResponse{ID: uuid.New().String(), Status: "DRAFT", Month: req.Month, Year: req.Year}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"month":3,"year":2025}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("organization_id", organizationID)

	h.CreateRun(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_CreateRun_Conflict(t *testing.T) {
	svc := &fakePayrollService{
		createFn: func(ctx context.Context, oid string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrRunExistsForPeriod
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"month":3,"year":2025}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("organization_id", uuid.New().String())

	h.CreateRun(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPayrollHandler_CreateRun_ValidationError(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"month":13,"year":2025}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("organization_id", uuid.New().String())

	h.CreateRun(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_ProcessRun(t *testing.T) {
	organizationID := uuid.New().String()
	actorID := uuid.New().String()
	runID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		processFn: func(ctx context.Context, oid, aid, rid string, req payroll.ProcessRunRequest) (payroll.ProcessRunResponse, error) {
			assert.Equal(t, organizationID, oid)
			assert.Equal(t, actorID, aid)
			assert.Equal(t, runID, rid)
			assert.Equal(t, []string{employeeID}, req.EmployeeIDs)
			return payroll.ProcessRunResponse{
				Run: payroll.RunResponse{ID: rid, Status: "COMPLETED"},
				Results: []payroll.EmployeeResult{
					{EmployeeID: employeeID, Status: payroll.ResultGenerated},
				},
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_ids":["` + employeeID + `"]}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs/"+runID+"/process", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: runID}}
	c.Set("organization_id", organizationID)
	c.Set("employee_id", actorID)

	h.ProcessRun(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_UpdateRunStatus_InvalidState(t *testing.T) {
	svc := &fakePayrollService{
		updateStatusFn: func(ctx context.Context, oid, rid string, req payroll.UpdateRunStatusRequest) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrInvalidRunTransition
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"status":"PAID"}`
	c.Request = httptest.NewRequest(http.MethodPatch, "/payroll-runs/123/status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("organization_id", uuid.New().String())

	h.UpdateRunStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestPayrollHandler_UpdatePaymentStatus(t *testing.T) {
	organizationID := uuid.New().String()
	payslipID := uuid.New().String()

	svc := &fakePayrollService{
		updatePaymentStatusFn: func(ctx context.Context, oid, pid string, req payroll.UpdatePaymentStatusRequest) (payroll.PayslipResponse, error) {
			assert.Equal(t, "PAID", req.PaymentStatus)
			ref := "PAY-7-202503"
			return payroll.PayslipResponse{ID: pid, PaymentStatus: "PAID", PaymentReference: &ref}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"payment_status":"PAID"}`
	c.Request = httptest.NewRequest(http.MethodPatch, "/payslips/"+payslipID+"/payment-status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: payslipID}}
	c.Set("organization_id", organizationID)

	h.UpdatePaymentStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	svc := &fakePayrollService{
		renderPayslipFn: func(ctx context.Context, oid, pid string) ([]byte, error) {
			return []byte("%PDF-1.4\nfake"), nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/123/pdf", nil)
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("organization_id", uuid.New().String())

	h.DownloadPayslip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-1.4"))
}

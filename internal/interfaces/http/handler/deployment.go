package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appdeployment "github.com/talentflow/backend/internal/application/deployment"
)

// DeploymentHandler handles deployment notices and the deployment ledger
type DeploymentHandler struct {
	BaseHandler
	noticeService *appdeployment.NoticeService
	ledgerService *appdeployment.LedgerService
}

// NewDeploymentHandler creates a new deployment handler
func NewDeploymentHandler(noticeService *appdeployment.NoticeService, ledgerService *appdeployment.LedgerService) *DeploymentHandler {
	return &DeploymentHandler{
		noticeService: noticeService,
		ledgerService: ledgerService,
	}
}

// SendNoticeRequest is the deployment notice request body
type SendNoticeRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`

	CandidateName  string     `json:"candidate_name"`
	CandidateEmpID string     `json:"candidate_emp_id"`
	Role           string     `json:"role"`
	Email          string     `json:"email" binding:"omitempty,email"`
	Office         string     `json:"office"`
	ModeOfHire     string     `json:"mode_of_hire"`
	FromTeam       string     `json:"from_team"`
	ToTeam         string     `json:"to_team"`
	Client         string     `json:"client"`
	BU             string     `json:"bu"`
	ReportingTo    string     `json:"reporting_to"`
	AccountManager string     `json:"account_manager"`
	DeploymentDate *time.Time `json:"deployment_date"`
	Track          string     `json:"track"`
	HRName         string     `json:"hr_name"`
	WorkLocation   string     `json:"work_location"`
	DOJ            *time.Time `json:"doj"`
	Extension      string     `json:"extension"`
	LeadOrNonLead  string     `json:"lead_or_non_lead"`

	EmailSubject    string   `json:"email_subject" binding:"required"`
	EmailContent    string   `json:"email_content"`
	RecipientEmails []string `json:"recipient_emails" binding:"required,min=1"`
	CCEmails        []string `json:"cc_emails"`
}

// ExitRequest is the exit processing request body
type ExitRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// TransferRequest is the internal transfer request body
type TransferRequest struct {
	TransferDate time.Time `json:"transfer_date" binding:"required"`
}

// TransferNoticeRequest is the internal transfer email request body
type TransferNoticeRequest struct {
	TransferDate    *time.Time `json:"transfer_date"`
	EmailSubject    string     `json:"email_subject"`
	EmailContent    string     `json:"email_content"`
	RecipientEmails []string   `json:"recipient_emails" binding:"required,min=1"`
	CCEmails        []string   `json:"cc_emails"`
}

// UpdateRecordStatusRequest is the lifecycle status update request body
type UpdateRecordStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// RecordListQuery is the deployment ledger query string
type RecordListQuery struct {
	Search     string `form:"search"`
	Client     string `form:"client"`
	ToTeam     string `form:"to_team"`
	MailStatus string `form:"mail_status"`
	EmpID      string `form:"emp_id"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	SortBy     string `form:"sort_by"`
	SortDesc   bool   `form:"sort_desc"`
}

// SendNotice sends the deployment email for a candidate and records the
// outcome in the ledger
func (h *DeploymentHandler) SendNotice(c *gin.Context) {
	actorID, err := getEmployeeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SendNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	result, err := h.noticeService.SendNotice(c.Request.Context(), appdeployment.SendNoticeInput{
		CandidateID:    candidateID,
		CandidateName:  req.CandidateName,
		CandidateEmpID: req.CandidateEmpID,
		Role:           req.Role,
		Email:          req.Email,
		Office:         req.Office,
		ModeOfHire:     req.ModeOfHire,
		FromTeam:       req.FromTeam,
		ToTeam:         req.ToTeam,
		Client:         req.Client,
		BU:             req.BU,
		ReportingTo:    req.ReportingTo,
		AccountManager: req.AccountManager,
		DeploymentDate: req.DeploymentDate,
		Track:          req.Track,
		HRName:         req.HRName,
		WorkLocation:   req.WorkLocation,
		DOJ:            req.DOJ,
		Extension:      req.Extension,
		LeadOrNonLead:  req.LeadOrNonLead,

		EmailSubject:    req.EmailSubject,
		EmailContent:    req.EmailContent,
		RecipientEmails: req.RecipientEmails,
		CCEmails:        req.CCEmails,
	}, actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns a tab of the deployment ledger
func (h *DeploymentHandler) List(c *gin.Context) {
	var q RecordListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	records, total, err := h.ledgerService.ListByTab(c.Request.Context(), c.Query("tab"), appdeployment.RecordListFilter{
		Search:     q.Search,
		Client:     q.Client,
		ToTeam:     q.ToTeam,
		MailStatus: q.MailStatus,
		EmpID:      q.EmpID,
		Page:       q.Page,
		PageSize:   q.PageSize,
		SortBy:     q.SortBy,
		SortDesc:   q.SortDesc,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, records, total, q.Page, q.PageSize)
}

// GetByID returns a single ledger record
func (h *DeploymentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	record, err := h.ledgerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// GetByCandidateID returns the ledger record for a candidate
func (h *DeploymentHandler) GetByCandidateID(c *gin.Context) {
	candidateID, err := uuid.Parse(c.Param("candidateId"))
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	record, err := h.ledgerService.GetByCandidateID(c.Request.Context(), candidateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// ProcessExit marks a deployed candidate as exited
func (h *DeploymentHandler) ProcessExit(c *gin.Context) {
	actorID, err := getEmployeeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	var req ExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.ledgerService.ProcessExit(c.Request.Context(), id, appdeployment.ExitInput{
		Reason: req.Reason,
	}, actorID, getEmployeeName(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// InternalTransfer records an internal transfer on a ledger record
func (h *DeploymentHandler) InternalTransfer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.ledgerService.InternalTransfer(c.Request.Context(), id, appdeployment.TransferInput{
		TransferDate: req.TransferDate,
	}, getEmployeeName(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// SendTransferNotice sends the internal transfer email for a ledger record
// and stamps the transfer audit on it
func (h *DeploymentHandler) SendTransferNotice(c *gin.Context) {
	actorID, err := getEmployeeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	var req TransferNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.noticeService.SendTransferNotice(c.Request.Context(), appdeployment.SendTransferNoticeInput{
		RecordID:        id,
		TransferDate:    req.TransferDate,
		EmailSubject:    req.EmailSubject,
		EmailContent:    req.EmailContent,
		RecipientEmails: req.RecipientEmails,
		CCEmails:        req.CCEmails,
	}, actorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateStatus updates the lifecycle status of a ledger record
func (h *DeploymentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	var req UpdateRecordStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.ledgerService.UpdateStatus(c.Request.Context(), id, appdeployment.UpdateStatusInput{
		Status: req.Status,
		Notes:  req.Notes,
	}, getEmployeeName(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

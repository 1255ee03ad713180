package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/adapter/export"
	"requisicoes/internal/adapter/http/dto/request"
	"requisicoes/internal/adapter/http/dto/response"
	"requisicoes/internal/adapter/http/middleware"
	"requisicoes/internal/domain/entities"
	"requisicoes/internal/domain/wizard"
	"requisicoes/internal/usecase"
	"requisicoes/internal/usecase/interfaces"
	"requisicoes/pkg"
	"requisicoes/pkg/listing"
)

const (
	maxAttachments    = 10
	maxAttachmentSize = 10 << 20
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_REQUISITION_INPUT", "Invalid requisition payload", http.StatusBadRequest)
	errTooManyAttachments  = pkg.NewDomainErrorSimple("TOO_MANY_ATTACHMENTS", fmt.Sprintf("At most %d attachments are allowed", maxAttachments), http.StatusBadRequest)
	errAttachmentTooLarge  = pkg.NewDomainErrorSimple("ATTACHMENT_TOO_LARGE", "Attachment exceeds 10MB", http.StatusBadRequest)
	errEmptySelection      = pkg.NewDomainErrorSimple("EMPTY_SELECTION", "No requisition selected for export", http.StatusBadRequest)
	errRequisitionNotFound = pkg.NewDomainErrorSimple("REQUISITION_NOT_FOUND", "Requisition not found", http.StatusNotFound)
)

// RequisitionHandler handles HTTP requests for purchase requisitions.
//
// Requesters (role solicitante) only ever see their own requisitions; a foreign id
// answers 404 as if it did not exist.

type RequisitionHandler struct {
	usecase   usecase.IRequisitionUseCase
	validator *wizard.Validator
	exporter  *export.Exporter
	catalog   entities.StatusCatalog
	log       logrus.FieldLogger
}

func NewRequisitionHandler(uc usecase.IRequisitionUseCase, catalog entities.StatusCatalog, logger logrus.FieldLogger) *RequisitionHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RequisitionHandler{
		usecase:   uc,
		validator: wizard.NewValidator(),
		exporter:  export.NewExporter(catalog),
		catalog:   catalog,
		log:       logger,
	}
}

// Create submits the wizard.
//
// @Summary      Create requisition
// @Description  Accepts the wizard draft as JSON, or as multipart with the draft in the "data" field and files in "attachments".
// @Tags         requisitions
// @Accept       json,mpfd
// @Produce      json
// @Param        request body wizard.Draft true "Wizard draft"
// @Success      201 {object} response.RequisitionResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /requisitions [post]
func (h *RequisitionHandler) Create(c *gin.Context) {
	payload, closeFiles, appErr := readWizardPayload(c)
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	defer closeFiles()

	claims, _ := middleware.ClaimsFrom(c)
	if !isStaff(claims) {
		payload.Draft.RequesterEmail = claims.Email
	}

	created, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		h.log.WithError(err).Warn("[requisition][handler] create failed")
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRequisition(created, h.catalog))
}

// ValidateStep runs the validation of one wizard step without creating anything. When
// an earlier step is invalid, the response points at that step instead.
//
// @Summary      Validate wizard step
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        request body request.WizardValidateRequest true "Step and draft"
// @Success      200 {object} response.WizardValidationResponse
// @Security     Bearer
// @Router       /requisitions/wizard/validate [post]
func (h *RequisitionHandler) ValidateStep(c *gin.Context) {
	var req request.WizardValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidDraftPayload)
		return
	}
	if req.Step == nil {
		draft := req.Data
		draft.Normalize()
		errs := h.validator.ValidateAll(draft)
		c.JSON(http.StatusOK, response.WizardValidationResponse{Valid: len(errs) == 0, Step: len(wizard.Steps()) - 1, Errors: errs})
		return
	}

	// a step is only reachable when every step before it is valid
	ctrl := wizard.NewController(h.validator)
	ctrl.Update(req.Data)
	target := *req.Step
	if target < 0 || target >= len(wizard.Steps()) {
		respondError(c, errInvalidRequest)
		return
	}
	if reached := ctrl.AdvanceTo(target); reached < target {
		c.JSON(http.StatusOK, response.WizardValidationResponse{Valid: false, Step: reached, Errors: ctrl.Errors()})
		return
	}
	valid := ctrl.Validate()
	c.JSON(http.StatusOK, response.WizardValidationResponse{Valid: valid, Step: ctrl.Index(), Errors: ctrl.Errors()})
}

// List returns one page of requisitions, newest first.
//
// @Summary      List requisitions
// @Tags         requisitions
// @Produce      json
// @Param        page query int false "Page (1-based)"
// @Param        page_size query int false "Page size"
// @Param        status query string false "Status filter"
// @Success      200 {object} listing.Page[response.RequisitionResponse]
// @Security     Bearer
// @Router       /requisitions [get]
func (h *RequisitionHandler) List(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	items, err := h.usecase.List(c.Request.Context(), h.filter(c, q.ResolveStatus()))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}

	pager := listing.NewPager(q.PageSize)
	pager.SetTotal(len(items))
	pager.SetPage(q.Page)
	c.JSON(http.StatusOK, response.FromRequisitionPage(listing.Apply(pager, items), h.catalog))
}

// Stats counts requisitions per status.
//
// @Summary      Requisition counters
// @Tags         requisitions
// @Produce      json
// @Success      200 {object} response.StatsResponse
// @Security     Bearer
// @Router       /requisitions/stats [get]
func (h *RequisitionHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), h.filter(c, "").RequesterEmail)
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStats(stats))
}

// GetByID
//
// @Summary      Get requisition
// @Tags         requisitions
// @Produce      json
// @Param        id path string true "Requisition id"
// @Success      200 {object} response.RequisitionResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /requisitions/{id} [get]
func (h *RequisitionHandler) GetByID(c *gin.Context) {
	r, ok := h.readable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromRequisition(r, h.catalog))
}

// History lists the value changes of a requisition, oldest first.
//
// @Summary      Value history
// @Tags         requisitions
// @Produce      json
// @Param        id path string true "Requisition id"
// @Success      200 {array} response.ValueHistoryResponse
// @Security     Bearer
// @Router       /requisitions/{id}/history [get]
func (h *RequisitionHandler) History(c *gin.Context) {
	if _, ok := h.readable(c); !ok {
		return
	}
	entries, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromValueHistory(entries))
}

// Timeline
//
// @Summary      Lifecycle timeline
// @Tags         requisitions
// @Produce      json
// @Param        id path string true "Requisition id"
// @Success      200 {object} lifecycle.Timeline
// @Security     Bearer
// @Router       /requisitions/{id}/timeline [get]
func (h *RequisitionHandler) Timeline(c *gin.Context) {
	if _, ok := h.readable(c); !ok {
		return
	}
	tl, err := h.usecase.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusOK, tl)
}

// UpdateStatus
//
// @Summary      Change status
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        id path string true "Requisition id"
// @Param        request body request.UpdateStatusRequest true "New status"
// @Success      200 {object} response.StatusChangeResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /requisitions/{id}/status [patch]
func (h *RequisitionHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), req.ResolveStatus(), req.ToMeta(actor(c)))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChange(res, h.catalog))
}

// Revert moves the requisition back to an earlier timeline stage.
//
// @Summary      Revert to an earlier stage
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        id path string true "Requisition id"
// @Param        request body request.RevertRequest true "Target stage"
// @Success      200 {object} response.StatusChangeResponse
// @Failure      409 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /requisitions/{id}/revert [post]
func (h *RequisitionHandler) Revert(c *gin.Context) {
	var req request.RevertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.Revert(c.Request.Context(), c.Param("id"), req.ResolveStage(), actor(c))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChange(res, h.catalog))
}

// Reopen
//
// @Summary      Reopen a rejected or cancelled requisition
// @Tags         requisitions
// @Produce      json
// @Param        id path string true "Requisition id"
// @Success      200 {object} response.StatusChangeResponse
// @Failure      409 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /requisitions/{id}/reopen [post]
func (h *RequisitionHandler) Reopen(c *gin.Context) {
	res, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChange(res, h.catalog))
}

// UpdateValue
//
// @Summary      Set budgeted or final value
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        id path string true "Requisition id"
// @Param        request body request.UpdateValueRequest true "Field and value"
// @Success      200 {object} response.RequisitionResponse
// @Security     Bearer
// @Router       /requisitions/{id}/value [patch]
func (h *RequisitionHandler) UpdateValue(c *gin.Context) {
	var req request.UpdateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	value, err := req.ResolveValue()
	if err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.UpdateValue(c.Request.Context(), c.Param("id"), req.ResolveField(), value, actor(c))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequisition(updated, h.catalog))
}

// UpdateSupplierName is the plain HTTP alternative to the websocket autosave.
func (h *RequisitionHandler) UpdateSupplierName(c *gin.Context) {
	var req request.SupplierNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.UpdateSupplierName(c.Request.Context(), c.Param("id"), req.SupplierName)
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequisition(updated, h.catalog))
}

// Export writes the selected requisitions as CSV or XLSX.
//
// @Summary      Export requisitions
// @Tags         requisitions
// @Produce      octet-stream
// @Param        format query string false "csv (default) or xlsx"
// @Param        ids query string false "Comma separated ids"
// @Param        all query bool false "Export every listed requisition"
// @Param        status query string false "Status filter"
// @Success      200 {file} file
// @Security     Bearer
// @Router       /requisitions/export [get]
func (h *RequisitionHandler) Export(c *gin.Context) {
	var q request.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	format, err := export.ParseFormat(q.Format)
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_FORMAT", "Unsupported export format", http.StatusBadRequest))
		return
	}

	items, err := h.usecase.List(c.Request.Context(), h.filter(c, q.ResolveStatus()))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return
	}

	ids := make([]string, 0, len(items))
	for _, r := range items {
		ids = append(ids, r.ID)
	}
	selection := listing.NewSelection(ids)
	if q.All {
		selection.SelectAll()
	} else {
		for _, id := range q.ResolveIDs() {
			if !selection.IsSelected(id) {
				selection.Toggle(id)
			}
		}
	}
	if selection.Len() == 0 {
		respondError(c, errEmptySelection)
		return
	}

	selected := make([]entities.Requisition, 0, selection.Len())
	for _, r := range items {
		if selection.IsSelected(r.ID) {
			selected = append(selected, r)
		}
	}

	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, format, selected); err != nil {
		h.log.WithError(err).WithField("format", format).Error("[requisition][handler] export failed")
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	h.log.WithFields(logrus.Fields{"format": format, "rows": len(selected)}).Info("[requisition][handler] export")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.Filename()))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// filter scopes listings to the caller's own requisitions unless the caller is staff.
func (h *RequisitionHandler) filter(c *gin.Context, status entities.RequisitionStatus) interfaces.RequisitionFilter {
	claims, _ := middleware.ClaimsFrom(c)
	f := interfaces.RequisitionFilter{Status: status}
	if isStaff(claims) {
		f.RequesterEmail = c.Query("requester_email")
	} else {
		f.RequesterEmail = claims.Email
	}
	return f
}

// readable loads the path requisition and checks the caller may see it. It writes the
// error response itself.
func (h *RequisitionHandler) readable(c *gin.Context) (entities.Requisition, bool) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapRequisitionError(err))
		return entities.Requisition{}, false
	}
	claims, _ := middleware.ClaimsFrom(c)
	if !isStaff(claims) && !r.BelongsTo(claims.Email) {
		respondError(c, errRequisitionNotFound)
		return entities.Requisition{}, false
	}
	return r, true
}

func readWizardPayload(c *gin.Context) (wizard.Payload, func(), *pkg.AppError) {
	noop := func() {}
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		var draft wizard.Draft
		if err := c.ShouldBindJSON(&draft); err != nil {
			return wizard.Payload{}, noop, errInvalidDraftPayload
		}
		return wizard.Payload{Draft: draft}, noop, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return wizard.Payload{}, noop, errInvalidDraftPayload
	}
	var draft wizard.Draft
	if err := json.Unmarshal([]byte(c.PostForm("data")), &draft); err != nil {
		return wizard.Payload{}, noop, errInvalidDraftPayload
	}

	headers := form.File["attachments"]
	if len(headers) > maxAttachments {
		return wizard.Payload{}, noop, errTooManyAttachments
	}
	var closers []io.Closer
	closeAll := func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}
	files := make([]wizard.File, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > maxAttachmentSize {
			closeAll()
			return wizard.Payload{}, noop, errAttachmentTooLarge
		}
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return wizard.Payload{}, noop, errInvalidDraftPayload
		}
		closers = append(closers, f)
		files = append(files, wizard.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return wizard.Payload{Draft: draft, Files: files}, closeAll, nil
}

func mapRequisitionError(err error) *pkg.AppError {
	var verr *usecase.DraftValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewValidationError(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidRequisitionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid requisition id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRejectionReasonRequired):
		return pkg.NewDomainErrorSimple("REJECTION_REASON_REQUIRED", "Rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidValueField), errors.Is(err, usecase.ErrInvalidValue):
		return pkg.NewDomainErrorSimple("INVALID_VALUE", "Invalid value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequisitionNotFound):
		return errRequisitionNotFound
	case errors.Is(err, usecase.ErrRevertNotAllowed):
		return pkg.NewDomainErrorSimple("REVERT_NOT_ALLOWED", "Requisition can only go back to an earlier stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrReopenNotAllowed):
		return pkg.NewDomainErrorSimple("REOPEN_NOT_ALLOWED", "Only rejected or cancelled requisitions can be reopened", http.StatusConflict)
	case errors.Is(err, usecase.ErrTerminalStatus):
		return pkg.NewDomainErrorSimple("TERMINAL_STATUS", "Rejected or cancelled requisitions must be reopened first", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

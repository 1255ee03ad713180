package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/domain/lifecycle"
	"requisicoes/internal/domain/wizard"
	"requisicoes/internal/usecase/interfaces"
)

var (
	ErrRequisitionNotFound     = errors.New("requisition not found")
	ErrInvalidRequisitionID    = errors.New("invalid requisition id")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrRevertNotAllowed        = errors.New("revert only allowed to an earlier stage")
	ErrReopenNotAllowed        = errors.New("only rejected or cancelled requisitions can be reopened")
	ErrTerminalStatus          = errors.New("rejected or cancelled requisitions can only be reopened")
	ErrInvalidValueField       = errors.New("invalid value field")
	ErrInvalidValue            = errors.New("invalid value")
	ErrDraftInvalid            = errors.New("invalid requisition draft")
)

// DraftValidationError carries the per-field messages of a rejected draft.
type DraftValidationError struct {
	Fields map[string]string
}

func (e *DraftValidationError) Error() string { return ErrDraftInvalid.Error() }
func (e *DraftValidationError) Unwrap() error { return ErrDraftInvalid }

// StatusMeta is the optional data accompanying a status change.
type StatusMeta struct {
	RejectionReason  string
	BuyerName        string
	SupplierName     string
	ExpectedDelivery *time.Time
	Notify           bool
	Actor            string
}

// StatusChangeResult is the updated record plus a non-fatal warning, e.g. when the
// status email could not be delivered.
type StatusChangeResult struct {
	Requisition entities.Requisition
	Warning     string
}

// IRequisitionUseCase exposes the requisition lifecycle.
//
//   - Create is the wizard submission target.
//   - UpdateStatus is the status-update collaborator; Revert and Reopen go through it.
//   - UpdateSupplierName is the debounced autosave target.

type IRequisitionUseCase interface {
	Create(ctx context.Context, payload wizard.Payload) (entities.Requisition, error)
	GetByID(ctx context.Context, id string) (entities.Requisition, error)
	List(ctx context.Context, filter interfaces.RequisitionFilter) ([]entities.Requisition, error)
	Stats(ctx context.Context, requesterEmail string) (map[entities.RequisitionStatus]int, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequisitionStatus, meta StatusMeta) (StatusChangeResult, error)
	Revert(ctx context.Context, id string, target lifecycle.StageKey, actor string) (StatusChangeResult, error)
	Reopen(ctx context.Context, id string, actor string) (StatusChangeResult, error)
	UpdateValue(ctx context.Context, id string, field entities.ValueField, value decimal.Decimal, actor string) (entities.Requisition, error)
	History(ctx context.Context, id string) ([]entities.ValueHistoryEntry, error)
	UpdateSupplierName(ctx context.Context, id string, name string) (entities.Requisition, error)
	Timeline(ctx context.Context, id string) (lifecycle.Timeline, error)
}

// RequisitionDeps groups the collaborators of RequisitionUseCase. Storage, Feed, Email
// and Metrics are optional.
type RequisitionDeps struct {
	Repo      interfaces.IRequisitionRepository
	History   interfaces.IValueHistoryRepository
	Storage   interfaces.IAttachmentStorage
	Feed      interfaces.IChangeFeed
	Email     IStatusEmailUseCase
	Validator *wizard.Validator
	Catalog   entities.StatusCatalog
	Metrics   interfaces.IMetricsRecorder
	Logger    logrus.FieldLogger
}

type RequisitionUseCase struct {
	repo      interfaces.IRequisitionRepository
	history   interfaces.IValueHistoryRepository
	storage   interfaces.IAttachmentStorage
	feed      interfaces.IChangeFeed
	email     IStatusEmailUseCase
	validator *wizard.Validator
	catalog   entities.StatusCatalog
	metrics   interfaces.IMetricsRecorder
	log       logrus.FieldLogger
	now       func() time.Time
}

var (
	_ IRequisitionUseCase = (*RequisitionUseCase)(nil)
	_ wizard.Creator      = (*RequisitionUseCase)(nil)
)

func NewRequisitionUseCase(deps RequisitionDeps) *RequisitionUseCase {
	if deps.Validator == nil {
		deps.Validator = wizard.NewValidator()
	}
	if deps.Metrics == nil {
		deps.Metrics = noopMetrics{}
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	return &RequisitionUseCase{
		repo:      deps.Repo,
		history:   deps.History,
		storage:   deps.Storage,
		feed:      deps.Feed,
		email:     deps.Email,
		validator: deps.Validator,
		catalog:   deps.Catalog,
		metrics:   deps.Metrics,
		log:       deps.Logger,
		now:       time.Now,
	}
}

func (u *RequisitionUseCase) Create(ctx context.Context, payload wizard.Payload) (entities.Requisition, error) {
	draft := payload.Draft
	draft.Normalize()
	if errs := u.validator.ValidateAll(draft); len(errs) > 0 {
		return entities.Requisition{}, &DraftValidationError{Fields: errs}
	}

	now := u.now().UTC()
	r := draft.Requisition()
	r.ID = uuid.NewString()
	protocol, err := newProtocol(now)
	if err != nil {
		return entities.Requisition{}, err
	}
	r.Protocol = protocol
	r.Status = entities.StatusPendente
	r.CreatedAt = now
	r.UpdatedAt = now

	fields := logrus.Fields{"requisition_id": r.ID, "protocol": r.Protocol}
	u.log.WithFields(fields).WithField("files", len(payload.Files)).Info("[requisition][usecase] create start")

	for _, f := range payload.Files {
		if u.storage == nil {
			u.log.WithFields(fields).Warn("[requisition][usecase] attachment storage not configured; skipping files")
			break
		}
		key := attachmentKey(r.ID, f.Name)
		url, err := u.storage.Upload(ctx, key, f.ContentType, f.Body, f.Size)
		if err != nil {
			u.log.WithFields(fields).WithError(err).WithField("file", f.Name).Error("[requisition][usecase] attachment upload failed")
			return entities.Requisition{}, fmt.Errorf("upload %s: %w", f.Name, err)
		}
		r.Attachments = append(r.Attachments, entities.Attachment{
			Name:        f.Name,
			Key:         key,
			URL:         url,
			ContentType: f.ContentType,
			Size:        f.Size,
		})
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Error("[requisition][usecase] create failed")
		return entities.Requisition{}, err
	}
	u.publish(entities.ChangeInsert, nil, created)
	u.log.WithFields(fields).Info("[requisition][usecase] create success")
	return created, nil
}

func (u *RequisitionUseCase) GetByID(ctx context.Context, id string) (entities.Requisition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Requisition{}, ErrInvalidRequisitionID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Requisition{}, err
	}
	if r.ID == "" {
		return entities.Requisition{}, ErrRequisitionNotFound
	}
	return r, nil
}

// List returns matching requisitions, newest first.
func (u *RequisitionUseCase) List(ctx context.Context, filter interfaces.RequisitionFilter) ([]entities.Requisition, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	filter.RequesterEmail = strings.ToLower(strings.TrimSpace(filter.RequesterEmail))
	items, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// Stats counts requisitions per status. Every status is present in the result.
func (u *RequisitionUseCase) Stats(ctx context.Context, requesterEmail string) (map[entities.RequisitionStatus]int, error) {
	items, err := u.List(ctx, interfaces.RequisitionFilter{RequesterEmail: requesterEmail})
	if err != nil {
		return nil, err
	}
	out := make(map[entities.RequisitionStatus]int, len(entities.AllStatuses()))
	for _, s := range entities.AllStatuses() {
		out[s] = 0
	}
	for _, r := range items {
		out[r.Status]++
	}
	return out, nil
}

func (u *RequisitionUseCase) UpdateStatus(ctx context.Context, id string, status entities.RequisitionStatus, meta StatusMeta) (StatusChangeResult, error) {
	if !status.Valid() {
		return StatusChangeResult{}, ErrInvalidStatus
	}
	meta.RejectionReason = strings.TrimSpace(meta.RejectionReason)
	if status == entities.StatusRejeitado && meta.RejectionReason == "" {
		return StatusChangeResult{}, ErrRejectionReasonRequired
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return StatusChangeResult{}, err
	}
	if current.Status.IsTerminal() && status != current.Status {
		if target, _ := lifecycle.ReopenTarget(current.Status); status != target {
			return StatusChangeResult{}, ErrTerminalStatus
		}
	}
	previous := current
	fields := logrus.Fields{"requisition_id": current.ID, "from": current.Status, "to": status, "actor": meta.Actor}
	u.log.WithFields(fields).Info("[requisition][usecase] update-status start")

	next := current
	next.ApplyStatus(status, u.now())
	if status == entities.StatusRejeitado {
		next.RejectionReason = meta.RejectionReason
	}
	if name := strings.TrimSpace(meta.BuyerName); name != "" {
		next.BuyerName = name
	}
	if name := strings.TrimSpace(meta.SupplierName); name != "" {
		next.SupplierName = name
	}
	if meta.ExpectedDelivery != nil {
		d := meta.ExpectedDelivery.UTC()
		next.ExpectedDelivery = &d
	}

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Error("[requisition][usecase] update-status failed")
		return StatusChangeResult{}, err
	}
	if previous.Status != updated.Status {
		u.metrics.StatusTransition(previous.Status, updated.Status)
	}
	u.publish(entities.ChangeUpdate, &previous, updated)

	res := StatusChangeResult{Requisition: updated}
	if meta.Notify && u.email != nil {
		outcome, err := u.email.Send(ctx, EmailFromRequisition(updated))
		switch {
		case err != nil:
			u.log.WithFields(fields).WithError(err).Warn("[requisition][usecase] status email rejected")
			res.Warning = warningEmailFailed
		case outcome.Warning != "":
			res.Warning = outcome.Warning
		}
	}
	u.log.WithFields(fields).Info("[requisition][usecase] update-status success")
	return res, nil
}

// Revert moves the requisition back to an earlier stage. Targets at or after the
// current stage are rejected and nothing is persisted.
func (u *RequisitionUseCase) Revert(ctx context.Context, id string, target lifecycle.StageKey, actor string) (StatusChangeResult, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return StatusChangeResult{}, err
	}
	status, ok := lifecycle.RevertTarget(current.Status, target)
	if !ok {
		u.log.WithFields(logrus.Fields{"requisition_id": current.ID, "status": current.Status, "target": target}).Info("[requisition][usecase] revert ignored")
		return StatusChangeResult{}, ErrRevertNotAllowed
	}
	return u.UpdateStatus(ctx, current.ID, status, StatusMeta{Actor: actor})
}

func (u *RequisitionUseCase) Reopen(ctx context.Context, id string, actor string) (StatusChangeResult, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return StatusChangeResult{}, err
	}
	status, ok := lifecycle.ReopenTarget(current.Status)
	if !ok {
		return StatusChangeResult{}, ErrReopenNotAllowed
	}
	return u.UpdateStatus(ctx, current.ID, status, StatusMeta{Actor: actor})
}

// UpdateValue sets the budgeted or final value and appends a history entry.
func (u *RequisitionUseCase) UpdateValue(ctx context.Context, id string, field entities.ValueField, value decimal.Decimal, actor string) (entities.Requisition, error) {
	if !field.Valid() {
		return entities.Requisition{}, ErrInvalidValueField
	}
	if value.IsNegative() {
		return entities.Requisition{}, ErrInvalidValue
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Requisition{}, err
	}

	next := current
	var previous decimal.NullDecimal
	switch field {
	case entities.ValueFieldBudgeted:
		previous = current.BudgetedValue
		next.BudgetedValue = decimal.NewNullDecimal(value)
	case entities.ValueFieldFinal:
		previous = current.FinalValue
		next.FinalValue = decimal.NewNullDecimal(value)
	}
	if previous.Valid && previous.Decimal.Equal(value) {
		return current, nil
	}
	next.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Requisition{}, err
	}

	entry := entities.ValueHistoryEntry{
		ID:            uuid.NewString(),
		RequisitionID: updated.ID,
		Field:         field,
		PreviousValue: previous,
		NewValue:      value,
		Actor:         strings.TrimSpace(actor),
		CreatedAt:     next.UpdatedAt,
	}
	if u.history != nil {
		if _, err := u.history.Append(ctx, entry); err != nil {
			u.log.WithError(err).WithField("requisition_id", updated.ID).Error("[requisition][usecase] value history append failed")
			return entities.Requisition{}, fmt.Errorf("append value history: %w", err)
		}
	}
	u.publish(entities.ChangeUpdate, &current, updated)
	u.log.WithFields(logrus.Fields{"requisition_id": updated.ID, "field": field, "value": value.StringFixed(2)}).Info("[requisition][usecase] value updated")
	return updated, nil
}

// History lists the value changes of a requisition, oldest first.
func (u *RequisitionUseCase) History(ctx context.Context, id string) ([]entities.ValueHistoryEntry, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.history == nil {
		return []entities.ValueHistoryEntry{}, nil
	}
	entries, err := u.history.ListByRequisitionID(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries, nil
}

func (u *RequisitionUseCase) UpdateSupplierName(ctx context.Context, id string, name string) (entities.Requisition, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Requisition{}, err
	}
	name = strings.TrimSpace(name)
	if current.SupplierName == name {
		return current, nil
	}
	next := current
	next.SupplierName = name
	next.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Requisition{}, err
	}
	u.publish(entities.ChangeUpdate, &current, updated)
	return updated, nil
}

func (u *RequisitionUseCase) Timeline(ctx context.Context, id string) (lifecycle.Timeline, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return lifecycle.Timeline{}, err
	}
	return lifecycle.Build(r.Status, r.RejectionReason, u.catalog), nil
}

func (u *RequisitionUseCase) publish(kind string, old *entities.Requisition, r entities.Requisition) {
	if u.feed == nil {
		return
	}
	u.feed.Publish(entities.ChangeEvent{
		Table: entities.TableRequisitions,
		Type:  kind,
		Old:   old,
		New:   r,
		At:    u.now().UTC(),
	})
}

// newProtocol returns REQ-<year>-<6 upper hex chars>.
func newProtocol(now time.Time) (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("REQ-%d-%s", now.Year(), strings.ToUpper(hex.EncodeToString(b))), nil
}

func attachmentKey(requisitionID, filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "arquivo"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("requisitions/%s/%s-%s", requisitionID, uuid.NewString(), name)
}

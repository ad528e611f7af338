package orders

import (
	"context"
	"errors"
	"sync"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/dto/responses"
	"labdesk-service/internal/pkg/exceptions"
	"labdesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type orderUsecase struct {
	OrderRepository contracts.OrderRepository
	CatalogUsecase  contracts.CatalogUsecase
	DraftStore      DraftStore
	Log             *zap.Logger
}

var (
	orderUsecaseInstance contracts.OrderUsecase
	onceOrderUsecase     sync.Once
)

func NewOrderUsecase(
	orderRepository contracts.OrderRepository,
	catalogUsecase contracts.CatalogUsecase,
	draftStore DraftStore,
	logger *zap.Logger,
) contracts.OrderUsecase {
	onceOrderUsecase.Do(func() {
		instance := &orderUsecase{
			OrderRepository: orderRepository,
			CatalogUsecase:  catalogUsecase,
			DraftStore:      draftStore,
			Log:             logger,
		}
		orderUsecaseInstance = instance
	})
	return orderUsecaseInstance
}

func (uc *orderUsecase) CreateDraftSession(ctx context.Context) (*responses.OrderDraftSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	draft := NewOrderDraft(utils.GenerateRequestID(), time.Now())
	err := uc.DraftStore.Save(ctx, draft)
	if err != nil {
		uc.Log.Error("orderUsecase.CreateDraftSession error saving draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("orderUsecase.CreateDraftSession created draft session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, draft.SessionID),
	)
	return buildDraftResponse(draft), nil
}

func (uc *orderUsecase) GetDraftSession(ctx context.Context, sessionID string) (*responses.OrderDraftSession, error) {
	draft, err := uc.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildDraftResponse(draft), nil
}

func (uc *orderUsecase) ApplyTransition(ctx context.Context, sessionID string, request *requests.OrderDraftTransition) (*responses.OrderDraftSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.ApplyTransition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String("action", request.Action),
	)

	draft, err := uc.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	err = uc.applyTransition(ctx, draft, request)
	if err != nil {
		uc.Log.Error("orderUsecase.ApplyTransition transition rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String("action", request.Action),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.DraftStore.Save(ctx, draft)
	if err != nil {
		return nil, err
	}
	return buildDraftResponse(draft), nil
}

func (uc *orderUsecase) applyTransition(ctx context.Context, draft *OrderDraft, request *requests.OrderDraftTransition) error {
	switch request.Action {
	case requests.OrderActionSelectPatient:
		if request.Patient == nil {
			return exceptions.ErrInputValidation(nil)
		}
		draft.SelectPatient(models.PatientRef{
			ID:          request.Patient.ID,
			Name:        request.Patient.Name,
			InsuranceID: request.Patient.InsuranceID,
		})
	case requests.OrderActionSelectClinician:
		if request.Clinician == nil {
			return exceptions.ErrInputValidation(nil)
		}
		draft.SelectClinician(models.ClinicianRef{
			ID:         request.Clinician.ID,
			Name:       request.Clinician.Name,
			Department: request.Clinician.Department,
		})
	case requests.OrderActionToggleTest:
		test, err := uc.CatalogUsecase.FindTestByID(ctx, request.TestID)
		if err != nil {
			return err
		}
		if test == nil {
			return exceptions.ErrLabTestNotFound(request.TestID)
		}
		draft.ToggleTest(*test)
	case requests.OrderActionSetTestFlags:
		if request.Flags == nil {
			return exceptions.ErrInputValidation(nil)
		}
		ok := draft.SetTestFlags(request.TestID, request.Flags.IsUrgent, request.Flags.IsStat, request.Flags.RequiresFasting, request.Flags.Notes)
		if !ok {
			return exceptions.ErrLabTestNotFound(request.TestID)
		}
	case requests.OrderActionSetPriority:
		if request.Priority == "" {
			return exceptions.ErrInputValidation(nil)
		}
		draft.SetPriority(models.OrderPriority(request.Priority))
	case requests.OrderActionSetCollectionDate:
		date, err := utils.ParseDate(request.CollectionDate)
		if err != nil {
			return exceptions.ErrCannotParseDate(err)
		}
		draft.SetCollectionDate(date)
	case requests.OrderActionSetClinicalNotes:
		draft.SetClinicalNotes(request.ClinicalNotes)
	case requests.OrderActionSetUrgentJustification:
		draft.SetUrgentJustification(request.UrgentJustification)
	case requests.OrderActionAdvance:
		if err := draft.Advance(); err != nil {
			return mapGuardError(err)
		}
	case requests.OrderActionBack:
		draft.Back()
	default:
		return exceptions.ErrUnknownTransition(request.Action)
	}
	return nil
}

// Submit converts the draft into an immutable OrderRequest, persists it
// exactly once and discards the draft.
func (uc *orderUsecase) Submit(ctx context.Context, sessionID string) (*responses.SubmittedOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	draft, err := uc.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orderRequest, err := draft.Submit(time.Now())
	if err != nil {
		uc.Log.Error("orderUsecase.Submit submission rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, mapGuardError(err)
	}

	order := &models.Order{
		ID:                     utils.GenerateOrderID(),
		Patient:                orderRequest.Patient,
		Clinician:              orderRequest.Clinician,
		Tests:                  orderRequest.Tests,
		Priority:               orderRequest.Priority,
		CollectionDate:         orderRequest.CollectionDate,
		ClinicalNotes:          orderRequest.ClinicalNotes,
		UrgentJustification:    orderRequest.UrgentJustification,
		TotalCost:              orderRequest.TotalCost,
		MaxProcessingTimeHours: orderRequest.MaxProcessingTimeHours,
		UrgentTestCount:        orderRequest.UrgentTestCount,
		ExpectedDeliveryDate:   orderRequest.ExpectedDeliveryDate,
		CreatedAt:              orderRequest.SubmittedAt,
	}
	err = uc.OrderRepository.Insert(ctx, order)
	if err != nil {
		uc.Log.Error("orderUsecase.Submit error persisting order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.DraftStore.Delete(ctx, sessionID)
	if err != nil {
		// The order is already persisted; an expired draft key is harmless.
		uc.Log.Error("orderUsecase.Submit error discarding draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}

	uc.Log.Info("orderUsecase.Submit order persisted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
	)
	return &responses.SubmittedOrder{
		OrderID: order.ID,
		Request: *orderRequest,
	}, nil
}

func (uc *orderUsecase) CloseDraftSession(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.CloseDraftSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.DraftStore.Delete(ctx, sessionID)
}

func (uc *orderUsecase) FindOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}
	return order, nil
}

func (uc *orderUsecase) loadDraft(ctx context.Context, sessionID string) (*OrderDraft, error) {
	draft, err := uc.DraftStore.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, exceptions.ErrOrderDraftNotFound(nil)
	}
	return draft, nil
}

func mapGuardError(err error) error {
	var guardErr *GuardError
	if errors.As(err, &guardErr) {
		if guardErr.Guard == GuardUrgentJustified {
			return exceptions.ErrSubmitValidationFailed(guardErr.Guard)
		}
		return exceptions.ErrStepGuardFailed(guardErr.Guard)
	}
	return err
}

func buildDraftResponse(draft *OrderDraft) *responses.OrderDraftSession {
	response := &responses.OrderDraftSession{
		SessionID:           draft.SessionID,
		Step:                draft.Step.String(),
		StepNumber:          int(draft.Step),
		Patient:             draft.Patient,
		Clinician:           draft.Clinician,
		SelectedTests:       draft.SelectedTests,
		Priority:            draft.Priority,
		ClinicalNotes:       draft.ClinicalNotes,
		UrgentJustification: draft.UrgentJustification,
		Derived: responses.OrderDraftDerived{
			TotalCost:              draft.TotalCost(),
			MaxProcessingTimeHours: draft.MaxProcessingTimeHours(),
			UrgentTestCount:        draft.UrgentTestCount(),
			ExpectedDeliveryDate:   utils.FormatDate(draft.ExpectedDeliveryDate()),
		},
	}
	if !draft.CollectionDate.IsZero() {
		response.CollectionDate = utils.FormatDate(draft.CollectionDate)
	}
	return response
}

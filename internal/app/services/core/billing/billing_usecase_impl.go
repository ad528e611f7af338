package billing

import (
	"context"
	"errors"
	"sync"
	"time"

	"labdesk-service/internal/app/config"
	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/dto/responses"
	"labdesk-service/internal/pkg/exceptions"
	"labdesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type billingUsecase struct {
	OrderRepository  contracts.OrderRepository
	SessionStore     SessionStore
	PaymentProcessor contracts.PaymentProcessor
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	billingUsecaseInstance contracts.BillingUsecase
	onceBillingUsecase     sync.Once
)

func NewBillingUsecase(
	orderRepository contracts.OrderRepository,
	sessionStore SessionStore,
	paymentProcessor contracts.PaymentProcessor,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BillingUsecase {
	onceBillingUsecase.Do(func() {
		instance := &billingUsecase{
			OrderRepository:  orderRepository,
			SessionStore:     sessionStore,
			PaymentProcessor: paymentProcessor,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
		billingUsecaseInstance = instance
	})
	return billingUsecaseInstance
}

// CreateSession seeds one line item per ordered test and, when the patient
// carries insurance identifiers without a configured claim, a default claim
// scaffold from the billing config.
func (uc *billingUsecase) CreateSession(ctx context.Context, request *requests.CreateBillingSession) (*responses.BillingSessionState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
	)

	order, err := uc.OrderRepository.FindByID(ctx, request.OrderID)
	if err != nil {
		uc.Log.Error("billingUsecase.CreateSession error fetching order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.OrderID),
			zap.Error(err),
		)
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}

	items := make([]models.BillingLineItem, 0, len(order.Tests))
	for _, entry := range order.Tests {
		items = append(items, models.BillingLineItem{
			TestID:       entry.Test.ID,
			TestName:     entry.Test.Name,
			UnitPrice:    entry.Test.Price,
			Quantity:     1,
			DiscountKind: models.DiscountFixed,
		})
	}

	var claim *models.InsuranceClaim
	if order.Patient.InsuranceID != "" {
		claim = &models.InsuranceClaim{
			CoveragePercentage: uc.InternalConfig.Billing.DefaultCoveragePercentage,
			MaxCoverage:        uc.InternalConfig.Billing.DefaultMaxCoverage,
			Deductible:         uc.InternalConfig.Billing.DefaultDeductible,
		}
	}

	session := NewSession(
		utils.GenerateRequestID(),
		order.ID,
		items,
		claim,
		uc.InternalConfig.Billing.DefaultTaxRatePercent,
		time.Now(),
	)
	err = uc.SessionStore.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("billingUsecase.CreateSession session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
	)
	return buildSessionResponse(session), nil
}

func (uc *billingUsecase) GetSession(ctx context.Context, sessionID string) (*responses.BillingSessionState, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildSessionResponse(session), nil
}

func (uc *billingUsecase) ApplyInput(ctx context.Context, sessionID string, request *requests.BillingSessionUpdate) (*responses.BillingSessionState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.ApplyInput called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String("action", request.Action),
	)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	err = applyInput(session, request)
	if err != nil {
		uc.Log.Error("billingUsecase.ApplyInput input rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String("action", request.Action),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.SessionStore.Save(ctx, session)
	if err != nil {
		return nil, err
	}
	return buildSessionResponse(session), nil
}

func applyInput(session *Session, request *requests.BillingSessionUpdate) error {
	switch request.Action {
	case requests.BillingActionSetItemDiscount:
		if request.ItemDiscount == nil {
			return exceptions.ErrInputValidation(nil)
		}
		ok := session.SetItemDiscount(request.TestID, models.DiscountKind(request.ItemDiscount.Kind), request.ItemDiscount.Value)
		if !ok {
			return exceptions.ErrLabTestNotFound(request.TestID)
		}
	case requests.BillingActionSetGlobalDiscount:
		if request.GlobalDiscount == nil {
			return exceptions.ErrInputValidation(nil)
		}
		session.SetGlobalDiscount(models.Discount{
			Kind:  models.DiscountKind(request.GlobalDiscount.Kind),
			Value: request.GlobalDiscount.Value,
		})
	case requests.BillingActionSetTaxRate:
		if request.TaxRatePercent == nil {
			return exceptions.ErrInputValidation(nil)
		}
		session.SetTaxRate(*request.TaxRatePercent)
	case requests.BillingActionSetInsurance:
		if request.Claim == nil {
			return exceptions.ErrInputValidation(nil)
		}
		session.SetClaim(&models.InsuranceClaim{
			CoveragePercentage:   request.Claim.CoveragePercentage,
			MaxCoverage:          request.Claim.MaxCoverage,
			Deductible:           request.Claim.Deductible,
			PreAuthorizationCode: request.Claim.PreAuthorizationCode,
		})
	case requests.BillingActionToggleInsurance:
		if request.PayingWithInsurance == nil {
			return exceptions.ErrInputValidation(nil)
		}
		session.SetPayingWithInsurance(*request.PayingWithInsurance)
	case requests.BillingActionAdvance:
		if err := session.Advance(); err != nil {
			return mapGateError(err)
		}
	case requests.BillingActionBack:
		session.Back()
	default:
		return exceptions.ErrUnknownTransition(request.Action)
	}
	return nil
}

// Pay runs the processor between the gate check and the state transition, so
// a processing failure leaves the session in the Payment step untouched.
func (uc *billingUsecase) Pay(ctx context.Context, sessionID string, request *requests.PayRequest) (*responses.PaymentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.Pay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	record, err := session.PreparePayment(models.PaymentMethod(request.Method), request.Amount, time.Now())
	if err != nil {
		return nil, mapGateError(err)
	}

	err = uc.PaymentProcessor.Process(ctx, record)
	if err != nil {
		uc.Log.Error("billingUsecase.Pay payment processing failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentFailed(err)
	}

	session.CommitPayment(record)
	err = uc.SessionStore.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("billingUsecase.Pay payment recorded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingOrderIDKey, record.OrderID),
		zap.Float64("amount_charged", record.AmountCharged),
		zap.String("status", string(record.Status)),
	)
	return &responses.PaymentResult{
		Record:      *record,
		Computation: session.Compute(),
	}, nil
}

func (uc *billingUsecase) loadSession(ctx context.Context, sessionID string) (*Session, error) {
	session, err := uc.SessionStore.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrBillingSessionNotFound(nil)
	}
	return session, nil
}

func mapGateError(err error) error {
	var gateErr *GateError
	if errors.As(err, &gateErr) {
		switch gateErr.Reason {
		case GateAmountNonNegative, GateMethodSelected:
			return exceptions.ErrPaymentInputInvalid(gateErr.Reason)
		default:
			return exceptions.ErrStepGuardFailed(gateErr.Reason)
		}
	}
	return err
}

func buildSessionResponse(session *Session) *responses.BillingSessionState {
	return &responses.BillingSessionState{
		SessionID:           session.SessionID,
		OrderID:             session.OrderID,
		Step:                session.Step.String(),
		Items:               session.Items,
		GlobalDiscount:      session.GlobalDiscount,
		TaxRatePercent:      session.TaxRatePercent,
		Claim:               session.Claim,
		PayingWithInsurance: session.PayingWithInsurance,
		Computation:         session.Compute(),
		Payment:             session.Payment,
	}
}

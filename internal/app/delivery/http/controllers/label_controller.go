package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/exceptions"
	"labdesk-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LabelController struct {
	Log          *zap.Logger
	LabelUsecase contracts.LabelUsecase
}

var (
	labelControllerInstance *LabelController
	onceLabelController     sync.Once
)

func NewLabelController(logger *zap.Logger, labelUsecase contracts.LabelUsecase) *LabelController {
	onceLabelController.Do(func() {
		instance := &LabelController{
			Log:          logger,
			LabelUsecase: labelUsecase,
		}
		labelControllerInstance = instance
	})
	return labelControllerInstance
}

func (ctrl *LabelController) GenerateLabels(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LabelController.GenerateLabels requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing("orderID"))
		return
	}

	request := new(requests.GenerateLabels)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("LabelController.GenerateLabels error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if request.Copies == 0 {
		request.Copies = 1
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("LabelController.GenerateLabels called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	labels, err := ctrl.LabelUsecase.GenerateLabels(ctx, orderID, request)
	if err != nil {
		ctrl.Log.Error("LabelController.GenerateLabels error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SampleLabelsGeneratedMessage, labels)
}

func (ctrl *LabelController) ListSamples(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LabelController.ListSamples requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing("orderID"))
		return
	}

	ctrl.Log.Info("LabelController.ListSamples called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := ctrl.LabelUsecase.ListSamples(ctx, orderID)
	if err != nil {
		ctrl.Log.Error("LabelController.ListSamples error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SamplesFetchedMessage, records)
}

package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/exceptions"
	"labdesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

var (
	catalogControllerInstance *CatalogController
	onceCatalogController     sync.Once
)

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	onceCatalogController.Do(func() {
		instance := &CatalogController{
			Log:            logger,
			CatalogUsecase: catalogUsecase,
		}
		catalogControllerInstance = instance
	})
	return catalogControllerInstance
}

func (ctrl *CatalogController) ListLabTests(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CatalogController.ListLabTests requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	search := utils.TruncateRunes(r.URL.Query().Get("search"), constvars.AppMaxCatalogSearchLen)
	ctrl.Log.Info("CatalogController.ListLabTests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, search),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	tests, err := ctrl.CatalogUsecase.ListTests(ctx, search)
	if err != nil {
		ctrl.Log.Error("CatalogController.ListLabTests error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabTestListSuccessMessage, tests)
}

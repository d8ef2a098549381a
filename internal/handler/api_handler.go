package handler

import (
	"mini-crm/api"
	"mini-crm/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*AuthHandler
	*LeadHandler
	*PipelineHandler
	*TransferHandler
}

func NewAPIHandler(
	authUseCase domain.AuthUseCase,
	leadUseCase domain.LeadUseCase,
	transferUseCase domain.TransferUseCase,
	importMaxBytes int64,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		AuthHandler:     NewAuthHandler(authUseCase, logger),
		LeadHandler:     NewLeadHandler(leadUseCase, logger),
		PipelineHandler: NewPipelineHandler(leadUseCase, logger),
		TransferHandler: NewTransferHandler(transferUseCase, importMaxBytes, logger),
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cob-engineering/plan-review-api/internal/dto"
	"github.com/cob-engineering/plan-review-api/internal/service"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
	"github.com/cob-engineering/plan-review-api/pkg/response"
)

// QAHandler exposes drainage manual question answering and ingestion.
type QAHandler struct {
	qa     *service.QAService
	ingest *service.IngestService
}

// NewQAHandler constructs handler.
func NewQAHandler(qa *service.QAService, ingest *service.IngestService) *QAHandler {
	return &QAHandler{qa: qa, ingest: ingest}
}

// Ask answers a question against the ingested manual.
func (h *QAHandler) Ask(c *gin.Context) {
	var req dto.QARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	result, err := h.qa.Ask(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Ingest loads a manual section into the vector store.
func (h *QAHandler) Ingest(c *gin.Context) {
	var req dto.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	resp, err := h.ingest.Ingest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// Stats reports how many manual chunks are stored.
func (h *QAHandler) Stats(c *gin.Context) {
	count, err := h.ingest.ChunkCount(c.Request.Context())
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count manual chunks"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"chunks": count, "available": h.qa.Available()}, nil)
}

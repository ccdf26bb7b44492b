// controllers/embedding_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/services"
)

// EmbeddingController exposes the indexing queue to the admin console
type EmbeddingController struct {
	embeddings *services.EmbeddingService
}

func NewEmbeddingController(embeddings *services.EmbeddingService) *EmbeddingController {
	return &EmbeddingController{embeddings: embeddings}
}

// GetQueue lists the queue entries, most recently touched first
func (ec *EmbeddingController) GetQueue(c echo.Context) error {
	entries, err := ec.embeddings.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Queue retrieved successfully",
		Data:    entries,
	})
}

// SyncEmbeddings claims a batch of pending entries for processing. The
// optional limit query parameter caps the batch size.
func (ec *EmbeddingController) SyncEmbeddings(c echo.Context) error {
	limit := services.DefaultClaimLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid limit parameter",
			})
		}
		limit = parsed
	}

	entries, err := ec.embeddings.ClaimBatch(c.Request().Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Claimed " + strconv.Itoa(len(entries)) + " queue entries",
		Data:    entries,
	})
}

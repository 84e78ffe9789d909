package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create author")
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get author")
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /v1/authors?search=&sortBy=&order=&page=&limit=
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	var filter author.AuthorFilter
	// Malformed query values degrade to defaults inside Normalize, they
	// never fail the request.
	_ = c.ShouldBindQuery(&filter)
	filter.Normalize()

	authors, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "Failed to list authors")
		return
	}

	authorResponses := make([]author.AuthorResponse, len(authors))
	for i, a := range authors {
		authorResponses[i] = *a.ToResponse()
	}

	response.SuccessPaginated(c, http.StatusOK, authorResponses, filter.PaginationMeta(total))
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update author")
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete author")
		return
	}

	c.Status(http.StatusNoContent)
}

// ════════════════════════════════════════════════════════════════
// BOOKS: GET /v1/authors/:id/books
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetBooks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	books, err := h.service.GetBooks(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get author books")
		return
	}

	response.Success(c, http.StatusOK, response.Data{Data: books})
}

// ════════════════════════════════════════════════════════════════
// STATS: GET /v1/authors/:id/stats
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetStats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get author stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// respondError maps domain errors to status codes. Unexpected errors
// are logged and surfaced as a generic message, never as internals.
func (h *AuthorHandler) respondError(c *gin.Context, err error, logMsg string) {
	status := author.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(logMsg)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Error(c, status, err.Error())
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return uuid.Nil, false
	}

	return id, true
}

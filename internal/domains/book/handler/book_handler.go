package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest

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
		h.respondError(c, err, "Failed to create book")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get book")
		return
	}

	response.Success(c, http.StatusOK, b)
}

// ════════════════════════════════════════════════════════════════
// SEARCH: GET /v1/books/search?search=&genre=&authorName=&page=&limit=&sortBy=&order=
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Search(c *gin.Context) {
	params := book.NewSearchParams(
		c.Query("search"),
		c.Query("genre"),
		c.Query("authorName"),
		c.Query("page"),
		c.Query("limit"),
		c.Query("sortBy"),
		c.Query("order"),
	)

	books, pagination, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err, "Failed to search books")
		return
	}

	response.SuccessPaginated(c, http.StatusOK, books, pagination)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
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
		h.respondError(c, err, "Failed to update book")
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete book")
		return
	}

	c.Status(http.StatusNoContent)
}

// respondError maps domain errors to status codes. Unexpected errors
// are logged and surfaced as a generic message, never as internals.
func (h *BookHandler) respondError(c *gin.Context, err error, logMsg string) {
	status := book.ToHTTPStatus(err)
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
		response.BadRequest(c, "Invalid book ID")
		return uuid.Nil, false
	}

	return id, true
}

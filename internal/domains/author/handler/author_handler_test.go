package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
)

type mockAuthorService struct {
	mock.Mock
}

func (m *mockAuthorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockAuthorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockAuthorService) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]author.Author), args.Get(1).(int64), args.Error(2)
}

func (m *mockAuthorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockAuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAuthorService) GetBooks(ctx context.Context, id uuid.UUID) ([]book.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]book.Book), args.Error(1)
}

func (m *mockAuthorService) GetStats(ctx context.Context, id uuid.UUID) (*author.Stats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Stats), args.Error(1)
}

func setupRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthorHandler(svc)
	r := gin.New()

	authors := r.Group("/api/v1/authors")
	{
		authors.POST("", h.Create)
		authors.GET("", h.GetAll)
		authors.GET("/:id", h.GetByID)
		authors.PUT("/:id", h.Update)
		authors.DELETE("/:id", h.Delete)
		authors.GET("/:id/books", h.GetBooks)
		authors.GET("/:id/stats", h.GetStats)
	}

	return r
}

func TestCreate_Success(t *testing.T) {
	svc := new(mockAuthorService)
	created := &author.Author{ID: uuid.New(), Name: "Isabel Allende", Email: "isabel@example.com"}
	svc.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	body := `{"name":"Isabel Allende","email":"isabel@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/authors", bytes.NewBufferString(body))
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp author.AuthorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Isabel Allende", resp.Name)
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc := new(mockAuthorService)

	body := `{"name":"","email":"isabel@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/authors", bytes.NewBufferString(body))
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := new(mockAuthorService)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, author.ErrDuplicateEmail)

	body := `{"name":"Isabel Allende","email":"isabel@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/authors", bytes.NewBufferString(body))
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetByID_InvalidUUID(t *testing.T) {
	svc := new(mockAuthorService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors/not-a-uuid", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid author ID"}`, w.Body.String())
}

func TestGetByID_NotFound(t *testing.T) {
	svc := new(mockAuthorService)
	svc.On("GetByID", mock.Anything, mock.Anything).Return(nil, author.ErrAuthorNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors/"+uuid.NewString(), nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Autor no encontrado"}`, w.Body.String())
}

func TestGetAll_PaginatedEnvelope(t *testing.T) {
	svc := new(mockAuthorService)
	authors := []author.Author{
		{ID: uuid.New(), Name: "A", Email: "a@example.com"},
		{ID: uuid.New(), Name: "B", Email: "b@example.com"},
	}
	svc.On("GetAll", mock.Anything, mock.Anything).Return(authors, int64(25), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors?page=2&limit=10", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []author.AuthorResponse `json:"data"`
		Pagination book.PaginationMeta     `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, int64(25), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestDelete_Success(t *testing.T) {
	svc := new(mockAuthorService)
	svc.On("Delete", mock.Anything, mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/authors/"+uuid.NewString(), nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetBooks_DataEnvelope(t *testing.T) {
	svc := new(mockAuthorService)
	books := []book.Book{{ID: uuid.New(), Title: "Cien años de soledad", Genre: "Novela"}}
	svc.On("GetBooks", mock.Anything, mock.Anything).Return(books, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors/"+uuid.NewString()+"/books", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []book.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Cien años de soledad", resp.Data[0].Title)
}

func TestGetStats_Success(t *testing.T) {
	svc := new(mockAuthorService)
	id := uuid.New()
	stats := &author.Stats{
		AuthorID:   id,
		AuthorName: "Gabriel García Márquez",
		TotalBooks: 2,
		Genres:     []string{"Novela"},
	}
	svc.On("GetStats", mock.Anything, id).Return(stats, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors/"+id.String()+"/stats", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp author.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalBooks)
	assert.Equal(t, []string{"Novela"}, resp.Genres)
}

func TestGetStats_NotFound(t *testing.T) {
	svc := new(mockAuthorService)
	svc.On("GetStats", mock.Anything, mock.Anything).Return(nil, author.ErrAuthorNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors/"+uuid.NewString()+"/stats", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Autor no encontrado"}`, w.Body.String())
}

func TestGetStats_InternalErrorIsGeneric(t *testing.T) {
	svc := new(mockAuthorService)
	svc.On("GetStats", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors/"+uuid.NewString()+"/stats", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal details must never leak to the client.
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

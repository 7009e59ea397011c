package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/export"
	"webaudit-srv/internal/middleware"
	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session"
	"webaudit-srv/internal/session/mocks"
	"webaudit-srv/pkg/log"
	"webaudit-srv/pkg/minio"
)

var now = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := mocks.NewUseCase(t)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), middleware.Middleware{})
	return r, uc
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreate(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Create", mock.Anything).Return(model.Session{
		ID: "s-1", State: model.StateIdle, History: []model.ChatMessage{}, CreatedAt: now, UpdatedAt: now,
	}, nil)

	w := do(r, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeData[sessionResp](t, w)
	assert.Equal(t, "s-1", got.ID)
	assert.Equal(t, "IDLE", got.State)
	assert.NotNil(t, got.History)
	assert.Nil(t, got.Error)
}

func TestGet(t *testing.T) {
	t.Run("error state", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Get", mock.Anything, "s-1").Return(model.Session{
			ID:           "s-1",
			State:        model.StateError,
			TargetURL:    "https://example.com",
			ErrorKind:    audit.KindServiceUnavailable,
			ErrorMessage: "try later",
		}, nil)

		w := do(r, http.MethodGet, "/api/v1/sessions/s-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		got := decodeData[sessionResp](t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, audit.KindServiceUnavailable, got.Error.Kind)
		assert.Equal(t, "try later", got.Error.Message)
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Get", mock.Anything, "gone").Return(model.Session{}, session.ErrNotFound)

		w := do(r, http.MethodGet, "/api/v1/sessions/gone", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDelete(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Delete", mock.Anything, "s-1").Return(nil)

	w := do(r, http.MethodDelete, "/api/v1/sessions/s-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmit(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Submit", mock.Anything, session.SubmitInput{SessionID: "s-1", URL: "example.com"}).
		Return(model.Session{ID: "s-1", State: model.StateScanning, TargetURL: "https://example.com"}, nil)

	w := do(r, http.MethodPost, "/api/v1/sessions/s-1/audit", `{"url": "example.com"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	got := decodeData[sessionResp](t, w)
	assert.Equal(t, "SCANNING", got.State)
	assert.Equal(t, "https://example.com", got.TargetURL)
}

func TestSubmitErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid url", audit.ErrInvalidURL, http.StatusBadRequest},
		{"in progress", session.ErrScanInProgress, http.StatusConflict},
		{"not idle", session.ErrNotIdle, http.StatusConflict},
		{"not found", session.ErrNotFound, http.StatusNotFound},
		{"shutting down", session.ErrShuttingDown, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newTestRouter(t)
			uc.On("Submit", mock.Anything, mock.Anything).Return(model.Session{}, tt.err)

			w := do(r, http.MethodPost, "/api/v1/sessions/s-1/audit", `{"url": "x"}`)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("missing url", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := do(r, http.MethodPost, "/api/v1/sessions/s-1/audit", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReset(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.On("Reset", mock.Anything, "s-1").Return(model.Session{ID: "s-1", State: model.StateIdle}, nil)

	w := do(r, http.MethodPost, "/api/v1/sessions/s-1/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "IDLE", decodeData[sessionResp](t, w).State)
}

func TestChat(t *testing.T) {
	r, uc := newTestRouter(t)
	reply := model.ChatMessage{Role: model.ChatRoleModel, Text: "Use a CDN.", Timestamp: now}
	uc.On("Chat", mock.Anything, session.ChatInput{SessionID: "s-1", Message: "How?"}).
		Return(session.ChatOutput{
			Reply: reply,
			History: []model.ChatMessage{
				{Role: model.ChatRoleModel, Text: "Hello!"},
				{Role: model.ChatRoleUser, Text: "How?"},
				reply,
			},
		}, nil)

	w := do(r, http.MethodPost, "/api/v1/sessions/s-1/chat", `{"message": "How?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeData[chatResp](t, w)
	assert.Equal(t, "Use a CDN.", got.Message.Text)
	assert.Len(t, got.History, 3)
	assert.False(t, got.Dropped)
}

func TestChatErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"pending", session.ErrReplyPending, http.StatusConflict},
		{"no report", session.ErrNoReport, http.StatusConflict},
		{"too long", chat.ErrMessageTooLong, http.StatusBadRequest},
		{"blank", chat.ErrMessageRequired, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newTestRouter(t)
			uc.On("Chat", mock.Anything, mock.Anything).Return(session.ChatOutput{}, tt.err)

			w := do(r, http.MethodPost, "/api/v1/sessions/s-1/chat", `{"message": "x"}`)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestGenerateAds(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("GenerateAds", mock.Anything, "s-1").
			Return(model.AdCampaign{Headlines: []string{"Fast"}, Descriptions: []string{"Cheap"}}, nil)

		w := do(r, http.MethodPost, "/api/v1/sessions/s-1/ads", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Fast"}, decodeData[model.AdCampaign](t, w).Headlines)
	})

	t.Run("model unavailable", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("GenerateAds", mock.Anything, "s-1").
			Return(model.AdCampaign{}, fmt.Errorf("%w: timeout", audit.ErrServiceUnavailable))

		w := do(r, http.MethodPost, "/api/v1/sessions/s-1/ads", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestExport(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Export", mock.Anything, session.ExportInput{SessionID: "s-1", Format: "keywords"}).
			Return(export.File{Name: "keywords_example.com.txt", ContentType: export.ContentTypeText, Data: []byte("Commercial Keywords:\n")}, nil)

		w := do(r, http.MethodGet, "/api/v1/sessions/s-1/export/keywords", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "keywords_example.com.txt")
		assert.Equal(t, "Commercial Keywords:\n", w.Body.String())
	})

	t.Run("unsupported format", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Export", mock.Anything, mock.Anything).Return(export.File{}, export.ErrUnsupportedFormat)

		w := do(r, http.MethodGet, "/api/v1/sessions/s-1/export/xml", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArchive(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Archive", mock.Anything, session.ExportInput{SessionID: "s-1", Format: "pdf"}).
			Return(session.ArchiveOutput{
				URL:        "https://minio.local/reports/x.pdf",
				ExpiresAt:  now.Add(24 * time.Hour),
				ObjectName: "reports/x.pdf",
				FileName:   "x.pdf",
			}, nil)

		w := do(r, http.MethodPost, "/api/v1/sessions/s-1/archive/pdf", "")
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeData[archiveResp](t, w)
		assert.Equal(t, "https://minio.local/reports/x.pdf", got.URL)
		assert.Equal(t, "x.pdf", got.FileName)
	})

	t.Run("disabled", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Archive", mock.Anything, mock.Anything).Return(session.ArchiveOutput{}, session.ErrArchiveDisabled)

		w := do(r, http.MethodPost, "/api/v1/sessions/s-1/archive/pdf", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.On("Archive", mock.Anything, mock.Anything).
			Return(session.ArchiveOutput{}, minio.NewConnectionError(fmt.Errorf("dial tcp: refused")))

		w := do(r, http.MethodPost, "/api/v1/sessions/s-1/archive/pdf", "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

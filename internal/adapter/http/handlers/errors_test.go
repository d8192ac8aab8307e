package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"romaneio_api/internal/adapter/http/handlers/mocks"
	"romaneio_api/internal/adapter/http/middleware"
	"romaneio_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRespondError_LogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	uc := mocks.NewMockIDriverUseCase(ctrl)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Driver(nil), errors.New("connection refused"))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/v1/motoristas", NewDriverHandler(uc).ListDrivers)

	req := httptest.NewRequest(http.MethodGet, "/v1/motoristas", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := buf.String(); !strings.Contains(got, "request_id=req-123") || !strings.Contains(got, "connection refused") {
		t.Fatalf("expected request id and cause in log, got %q", got)
	}
}

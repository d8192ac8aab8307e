package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"romaneio_api/internal/adapter/http/handlers/mocks"
	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	"romaneio_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newManifestRouter(uc usecase.IManifestUseCase) *gin.Engine {
	h := NewManifestHandler(uc)
	r := gin.New()
	r.POST("/v1/romaneios", h.CreateManifest)
	r.GET("/v1/romaneios", h.ListManifests)
	r.GET("/v1/romaneios/:id", h.GetManifest)
	r.PATCH("/v1/romaneios/:id/status", h.UpdateManifestStatus)
	r.DELETE("/v1/romaneios/:id", h.DeleteManifest)
	return r
}

func TestManifestHandler_CreateManifest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManifestUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		r := newManifestRouter(uc)

		w := doJSON(r, http.MethodPost, "/v1/romaneios", `{"numeroRomaneio":"ROM-1","dataEmissao":"16/10/2025","motoristaId":1,"veiculo":"ABC-1234"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing motoristaId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newManifestRouter(mocks.NewMockIManifestUseCase(ctrl))

		w := doJSON(r, http.MethodPost, "/v1/romaneios", `{"numeroRomaneio":"ROM-1","dataEmissao":"2025-10-16","veiculo":"ABC-1234"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		msgs, ok := decodeError(t, w).Message.([]any)
		if !ok || len(msgs) != 1 || msgs[0] != "motoristaId is required" {
			t.Fatalf("unexpected messages: %#v", decodeError(t, w).Message)
		}
	})

	t.Run("unknown driver is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManifestUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Manifest{}, domainerr.NewNotFoundError("driver with id %d not found", 77))
		r := newManifestRouter(uc)

		w := doJSON(r, http.MethodPost, "/v1/romaneios", `{"numeroRomaneio":"ROM-1","dataEmissao":"2025-10-16","motoristaId":77,"veiculo":"ABC-1234"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "driver with id 77 not found" {
			t.Fatalf("unexpected envelope: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManifestUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateManifestInput{})).DoAndReturn(
			func(_ context.Context, in usecase.CreateManifestInput) (entities.Manifest, error) {
				if !in.IssueDate.Equal(time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)) || in.DriverID != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Manifest{ID: 3, Number: in.Number, IssueDate: in.IssueDate, DriverID: in.DriverID, Vehicle: in.Vehicle, Status: entities.ManifestStatusAberto}, nil
			},
		)
		r := newManifestRouter(uc)

		w := doJSON(r, http.MethodPost, "/v1/romaneios", `{"numeroRomaneio":"ROM-1","dataEmissao":"2025-10-16","motoristaId":1,"veiculo":"ABC-1234"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Aberto" || body["numeroRomaneio"] != "ROM-1" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, present := body["entregas"]; present {
			t.Fatalf("entregas must be omitted on create: %v", body)
		}
	})
}

func TestManifestHandler_GetManifest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIManifestUseCase(ctrl)
	uc.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Manifest{ID: 3, Status: entities.ManifestStatusAberto, Deliveries: []entities.Delivery{}}, nil)
	r := newManifestRouter(uc)

	w := doJSON(r, http.MethodGet, "/v1/romaneios/3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if list, ok := body["entregas"].([]any); !ok || len(list) != 0 {
		t.Fatalf("expected empty entregas list, got %v", body["entregas"])
	}
}

func TestManifestHandler_ListManifests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIManifestUseCase(ctrl)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Manifest{{ID: 1}, {ID: 2}}, nil)
	r := newManifestRouter(uc)

	w := doJSON(r, http.MethodGet, "/v1/romaneios", "")
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if _, present := body[0]["entregas"]; present {
		t.Fatalf("listing must not include entregas")
	}
}

func TestManifestHandler_UpdateManifestStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManifestUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		r := newManifestRouter(uc)

		w := doJSON(r, http.MethodPatch, "/v1/romaneios/1/status", `{"status":"Cancelado"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManifestUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), int64(1), entities.ManifestStatusEmTransito).Return(entities.Manifest{},
			domainerr.NewValidationError("invalid status transition: cannot move from '%s' to '%s'", entities.ManifestStatusFinalizado, entities.ManifestStatusEmTransito))
		r := newManifestRouter(uc)

		w := doJSON(r, http.MethodPatch, "/v1/romaneios/1/status", `{"status":"Em trânsito"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "VALIDATION_ERROR" || body.Message != "invalid status transition: cannot move from 'Finalizado' to 'Em trânsito'" {
			t.Fatalf("unexpected envelope: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManifestUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), int64(1), entities.ManifestStatusFinalizado).Return(entities.Manifest{ID: 1, Status: entities.ManifestStatusFinalizado}, nil)
		r := newManifestRouter(uc)

		w := doJSON(r, http.MethodPatch, "/v1/romaneios/1/status", `{"status":"Finalizado"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestManifestHandler_DeleteManifest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManifestUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
		r := newManifestRouter(uc)

		w := doJSON(r, http.MethodDelete, "/v1/romaneios/4", "")
		if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
			t.Fatalf("expected empty 204, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManifestUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), int64(4)).Return(domainerr.NewNotFoundError("manifest with id %d not found", 4))
		r := newManifestRouter(uc)

		w := doJSON(r, http.MethodDelete, "/v1/romaneios/4", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

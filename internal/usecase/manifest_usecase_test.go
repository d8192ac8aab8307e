package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	mock_interfaces "romaneio_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestManifestUseCase_Create(t *testing.T) {
	issued := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	in := CreateManifestInput{Number: "ROM-1", IssueDate: issued, DriverID: 5, Vehicle: "ABC-1234"}

	t.Run("unknown driver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		drivers := mock_interfaces.NewMockIDriverRepository(ctrl)
		uc := NewManifestUseCase(repo, drivers)

		drivers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(entities.Driver{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Create(context.Background(), in)
		if !domainerr.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if err.Error() != "driver with id 5 not found" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("driver lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		drivers := mock_interfaces.NewMockIDriverRepository(ctrl)
		uc := NewManifestUseCase(repo, drivers)

		drivers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(entities.Driver{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), in); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success forces Aberto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		drivers := mock_interfaces.NewMockIDriverRepository(ctrl)
		uc := NewManifestUseCase(repo, drivers)

		drivers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(entities.Driver{ID: 5}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Manifest{})).DoAndReturn(
			func(_ context.Context, m entities.Manifest) (entities.Manifest, error) {
				if m.Status != entities.ManifestStatusAberto {
					t.Fatalf("expected status Aberto, got %q", m.Status)
				}
				if m.Number != "ROM-1" || m.DriverID != 5 || m.Vehicle != "ABC-1234" || !m.IssueDate.Equal(issued) {
					t.Fatalf("unexpected manifest: %+v", m)
				}
				m.ID = 10
				return m, nil
			},
		)

		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 10 || res.Status != entities.ManifestStatusAberto {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestManifestUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewManifestUseCase(repo, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(entities.Manifest{}, nil)

		_, err := uc.GetByID(context.Background(), 9)
		if !domainerr.IsNotFound(err) || err.Error() != "manifest with id 9 not found" {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("deliveries always loaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewManifestUseCase(repo, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(entities.Manifest{ID: 9}, nil)

		res, err := uc.GetByID(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Deliveries == nil || len(res.Deliveries) != 0 {
			t.Fatalf("expected empty deliveries, got %#v", res.Deliveries)
		}
	})
}

func TestManifestUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIManifestRepository(ctrl)
	uc := NewManifestUseCase(repo, nil)

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Manifest{{ID: 1, Deliveries: []entities.Delivery{{ID: 1}}}}, nil)

	res, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].Deliveries != nil {
		t.Fatalf("bulk list must not carry deliveries: %+v", res)
	}

	repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	res, err = uc.List(context.Background())
	if err != nil || res == nil || len(res) != 0 {
		t.Fatalf("expected empty slice, got %#v %v", res, err)
	}
}

func TestManifestUseCase_UpdateStatus(t *testing.T) {
	statuses := entities.ManifestStatuses()
	allowed := map[[2]entities.ManifestStatus]bool{
		{entities.ManifestStatusAberto, entities.ManifestStatusEmTransito}:     true,
		{entities.ManifestStatusAberto, entities.ManifestStatusFinalizado}:     true,
		{entities.ManifestStatusEmTransito, entities.ManifestStatusFinalizado}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			from, to := from, to
			t.Run(string(from)+" to "+string(to), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIManifestRepository(ctrl)
				uc := NewManifestUseCase(repo, nil)

				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Manifest{ID: 1, Status: from}, nil)
				if allowed[[2]entities.ManifestStatus{from, to}] {
					repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), to).Return(entities.Manifest{ID: 1, Status: to}, nil)
				} else {
					repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				}

				res, err := uc.UpdateStatus(context.Background(), 1, to)
				if allowed[[2]entities.ManifestStatus{from, to}] {
					if err != nil || res.Status != to {
						t.Fatalf("expected success, got %+v %v", res, err)
					}
					return
				}
				if !domainerr.IsValidation(err) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				want := "invalid status transition: cannot move from '" + string(from) + "' to '" + string(to) + "'"
				if err.Error() != want {
					t.Fatalf("expected %q, got %q", want, err.Error())
				}
			})
		}
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewManifestUseCase(repo, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Manifest{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), 1, entities.ManifestStatusFinalizado); !domainerr.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewManifestUseCase(repo, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Manifest{ID: 1, Status: entities.ManifestStatusAberto}, nil)

		if _, err := uc.UpdateStatus(context.Background(), 1, "Cancelado"); !domainerr.IsValidation(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("repo update error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewManifestUseCase(repo, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Manifest{ID: 1, Status: entities.ManifestStatusAberto}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), entities.ManifestStatusEmTransito).Return(entities.Manifest{}, errors.New("db"))

		if _, err := uc.UpdateStatus(context.Background(), 1, entities.ManifestStatusEmTransito); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestManifestUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewManifestUseCase(repo, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(entities.Manifest{}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		if err := uc.Delete(context.Background(), 4); !domainerr.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewManifestUseCase(repo, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(entities.Manifest{ID: 4}, nil)
		repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

		if err := uc.Delete(context.Background(), 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo delete error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewManifestUseCase(repo, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(entities.Manifest{ID: 4}, nil)
		repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(errors.New("db"))

		if err := uc.Delete(context.Background(), 4); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"
	mock_interfaces "romaneio_api/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDeliveryUseCase_Create(t *testing.T) {
	input := func(value string) CreateDeliveryInput {
		return CreateDeliveryInput{ManifestID: 2, Client: "X", Address: "Y", Value: decimal.RequireFromString(value)}
	}

	t.Run("unknown manifest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
		manifests := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewDeliveryUseCase(repo, manifests)

		manifests.EXPECT().FindByID(gomock.Any(), int64(2)).Return(entities.Manifest{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Create(context.Background(), input("10"))
		if !domainerr.IsNotFound(err) || err.Error() != "manifest with id 2 not found" {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	for _, v := range []string{"0", "-0.01", "-100"} {
		v := v
		t.Run("non positive value "+v, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
			manifests := mock_interfaces.NewMockIManifestRepository(ctrl)
			uc := NewDeliveryUseCase(repo, manifests)

			manifests.EXPECT().FindByID(gomock.Any(), int64(2)).Return(entities.Manifest{ID: 2}, nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.Create(context.Background(), input(v))
			if !domainerr.IsValidation(err) || err.Error() != "delivery value must be positive" {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	rejected := []struct {
		value string
		msg   string
	}{
		{"0.004", "delivery value must have at most 2 decimal places"},
		{"0.001", "delivery value must have at most 2 decimal places"},
		{"10.005", "delivery value must have at most 2 decimal places"},
		{"10000000000", "delivery value must be less than 10000000000"},
		{"10000000000.01", "delivery value must be less than 10000000000"},
	}
	for _, tc := range rejected {
		tc := tc
		t.Run("rejected value "+tc.value, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
			manifests := mock_interfaces.NewMockIManifestRepository(ctrl)
			uc := NewDeliveryUseCase(repo, manifests)

			manifests.EXPECT().FindByID(gomock.Any(), int64(2)).Return(entities.Manifest{ID: 2}, nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.Create(context.Background(), input(tc.value))
			if !domainerr.IsValidation(err) || err.Error() != tc.msg {
				t.Fatalf("expected ValidationError %q, got %v", tc.msg, err)
			}
		})
	}

	for _, v := range []string{"9999999999.99", "1.50000"} {
		v := v
		t.Run("accepted value "+v, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
			manifests := mock_interfaces.NewMockIManifestRepository(ctrl)
			uc := NewDeliveryUseCase(repo, manifests)

			manifests.EXPECT().FindByID(gomock.Any(), int64(2)).Return(entities.Manifest{ID: 2}, nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, d entities.Delivery) (entities.Delivery, error) {
					d.ID = 1
					return d, nil
				},
			)

			if _, err := uc.Create(context.Background(), input(v)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	t.Run("smallest positive value forces Pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
		manifests := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewDeliveryUseCase(repo, manifests)

		manifests.EXPECT().FindByID(gomock.Any(), int64(2)).Return(entities.Manifest{ID: 2}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Delivery{})).DoAndReturn(
			func(_ context.Context, d entities.Delivery) (entities.Delivery, error) {
				if d.Status != entities.DeliveryStatusPendente {
					t.Fatalf("expected Pendente, got %q", d.Status)
				}
				if d.ManifestID != 2 || !d.Value.Equal(decimal.RequireFromString("0.01")) {
					t.Fatalf("unexpected delivery: %+v", d)
				}
				d.ID = 1
				return d, nil
			},
		)

		res, err := uc.Create(context.Background(), input("0.01"))
		if err != nil || res.ID != 1 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("manifest lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
		manifests := mock_interfaces.NewMockIManifestRepository(ctrl)
		uc := NewDeliveryUseCase(repo, manifests)

		manifests.EXPECT().FindByID(gomock.Any(), int64(2)).Return(entities.Manifest{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), input("1")); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDeliveryUseCase_ListByManifestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
	uc := NewDeliveryUseCase(repo, nil)

	repo.EXPECT().ListByManifestID(gomock.Any(), int64(404)).Return(nil, nil)

	res, err := uc.ListByManifestID(context.Background(), 404)
	if err != nil {
		t.Fatalf("unknown manifest must not be an error: %v", err)
	}
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty slice, got %#v", res)
	}
}

func TestDeliveryUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
		uc := NewDeliveryUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.UpdateStatus(context.Background(), 1, "Extraviada")
		if !domainerr.IsValidation(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if err.Error() != "invalid status; allowed values: Pendente, Entregue, Cancelada" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("not found comes from the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
		uc := NewDeliveryUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(8), entities.DeliveryStatusEntregue).
			Return(entities.Delivery{}, domainerr.NewNotFoundError("delivery with id %d not found", 8))

		_, err := uc.UpdateStatus(context.Background(), 8, entities.DeliveryStatusEntregue)
		if !domainerr.IsNotFound(err) || err.Error() != "delivery with id 8 not found" {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	for _, s := range entities.DeliveryStatuses() {
		s := s
		t.Run("any status accepted "+string(s), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIDeliveryRepository(ctrl)
			uc := NewDeliveryUseCase(repo, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), int64(8), s).Return(entities.Delivery{ID: 8, Status: s}, nil)

			res, err := uc.UpdateStatus(context.Background(), 8, s)
			if err != nil || res.Status != s {
				t.Fatalf("unexpected result: %+v %v", res, err)
			}
		})
	}
}

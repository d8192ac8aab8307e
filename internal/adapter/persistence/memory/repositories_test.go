package memory

import (
	"context"
	"testing"
	"time"

	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestRepositories_ManifestLifecycle(t *testing.T) {
	ctx := context.Background()
	drivers, manifests, deliveries := NewStore().Repositories()

	d, err := drivers.Create(ctx, entities.Driver{Name: "Ana Souza", CPF: "11111111111", Phone: "11900000000"})
	if err != nil || d.ID != 1 {
		t.Fatalf("unexpected driver create result: %+v %v", d, err)
	}
	if _, err := drivers.Create(ctx, entities.Driver{CPF: "11111111111"}); !domainerr.IsConflict(err) {
		t.Fatalf("expected conflict on duplicate cpf, got %v", err)
	}

	m, err := manifests.Create(ctx, entities.Manifest{Number: "ROM-1", IssueDate: time.Now(), DriverID: d.ID, Vehicle: "ABC-1234", Status: entities.ManifestStatusAberto})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := manifests.Create(ctx, entities.Manifest{DriverID: 99}); !domainerr.IsNotFound(err) {
		t.Fatalf("expected not found for unknown driver, got %v", err)
	}

	for _, v := range []string{"10.50", "0.01"} {
		if _, err := deliveries.Create(ctx, entities.Delivery{ManifestID: m.ID, Client: "X", Address: "Y", Value: decimal.RequireFromString(v), Status: entities.DeliveryStatusPendente}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	loaded, err := manifests.FindByID(ctx, m.ID)
	if err != nil || len(loaded.Deliveries) != 2 {
		t.Fatalf("expected 2 deliveries attached, got %+v %v", loaded, err)
	}
	if !loaded.Deliveries[0].Value.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("value not preserved: %s", loaded.Deliveries[0].Value)
	}

	listed, _ := manifests.ListAll(ctx)
	if len(listed) != 1 || listed[0].Deliveries != nil {
		t.Fatalf("bulk list must not carry deliveries: %+v", listed)
	}

	if err := manifests.Delete(ctx, m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	left, _ := deliveries.ListByManifestID(ctx, m.ID)
	if len(left) != 0 {
		t.Fatalf("expected cascade delete, got %+v", left)
	}
	if gone, _ := manifests.FindByID(ctx, m.ID); gone.ID != 0 {
		t.Fatalf("expected manifest to be gone")
	}
}

func TestRepositories_UpdatesOnMissingRows(t *testing.T) {
	ctx := context.Background()
	drivers, manifests, deliveries := NewStore().Repositories()

	if _, err := drivers.Update(ctx, 1, entities.DriverUpdate{}); !domainerr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := manifests.UpdateStatus(ctx, 1, entities.ManifestStatusFinalizado); !domainerr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	_, err := deliveries.UpdateStatus(ctx, 42, entities.DeliveryStatusEntregue)
	if !domainerr.IsNotFound(err) || err.Error() != "delivery with id 42 not found" {
		t.Fatalf("expected delivery not found, got %v", err)
	}
}

func TestDriverRepository_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	drivers, _, _ := NewStore().Repositories()

	d, _ := drivers.Create(ctx, entities.Driver{Name: "Ana Souza", CPF: "11111111111", Phone: "11900000000"})
	phone := "11988887777"
	updated, err := drivers.Update(ctx, d.ID, entities.DriverUpdate{Phone: &phone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Ana Souza" || updated.Phone != phone || updated.CPF != "11111111111" {
		t.Fatalf("unexpected driver: %+v", updated)
	}
	if updated.UpdatedAt.IsZero() {
		t.Fatalf("expected updated_at to be refreshed")
	}
}

package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"romaneio_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromDriver(t *testing.T) {
	now := time.Now().UTC()
	res := FromDriver(entities.Driver{ID: 1, Name: "Ana", CPF: "11111111111", Phone: "11900000000", CreatedAt: now, UpdatedAt: now})
	if res.ID != 1 || res.Nome != "Ana" || res.CPF != "11111111111" || res.Telefone != "11900000000" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if got := FromDrivers(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFromDelivery(t *testing.T) {
	res := FromDelivery(entities.Delivery{ID: 3, ManifestID: 2, Client: "X", Address: "Y", Value: decimal.RequireFromString("10.5"), Status: entities.DeliveryStatusPendente})
	if res.RomaneioID != 2 || res.Cliente != "X" || res.Endereco != "Y" || res.Status != "Pendente" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Valor != "10.50" {
		t.Fatalf("expected 10.50, got %q", res.Valor)
	}
}

func TestFromManifest_Entregas(t *testing.T) {
	base := entities.Manifest{ID: 1, Number: "ROM-1", DriverID: 5, Vehicle: "ABC-1234", Status: entities.ManifestStatusEmTransito}

	t.Run("not loaded omits entregas", func(t *testing.T) {
		raw, _ := json.Marshal(FromManifest(base))
		if strings.Contains(string(raw), "entregas") {
			t.Fatalf("entregas must be omitted: %s", raw)
		}
		if !strings.Contains(string(raw), `"status":"Em trânsito"`) {
			t.Fatalf("unexpected status rendering: %s", raw)
		}
	})

	t.Run("loaded but empty renders empty list", func(t *testing.T) {
		m := base
		m.Deliveries = []entities.Delivery{}
		raw, _ := json.Marshal(FromManifest(m))
		if !strings.Contains(string(raw), `"entregas":[]`) {
			t.Fatalf("expected empty entregas list: %s", raw)
		}
	})

	t.Run("loaded with deliveries", func(t *testing.T) {
		m := base
		m.Deliveries = []entities.Delivery{{ID: 1, ManifestID: 1, Value: decimal.NewFromInt(3)}}
		res := FromManifest(m)
		if res.Entregas == nil || len(*res.Entregas) != 1 || (*res.Entregas)[0].Valor != "3.00" {
			t.Fatalf("unexpected entregas: %+v", res.Entregas)
		}
	})
}

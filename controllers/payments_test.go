package controllers_test

import (
	"net/http"
	"testing"

	"github.com/Iliketoeatsalmon/WiMaRC/models"
)

func paymentPayload(stationID string) map[string]interface{} {
	return map[string]interface{}{
		"station_id": stationID,
		"sim_number": "089-xxx-1234",
		"provider":   "AIS",
		"amount":     350.0,
		"due_date":   "2026-09-15",
		"status":     "pending",
	}
}

func TestCreateSimPayment(t *testing.T) {
	r, db := setupAPI(t)
	seedStation(t, db, "station-001")

	w := doJSON(t, r, "POST", "/sim-payments", paymentPayload("station-001"))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var payment models.SimPayment
	decode(t, w, &payment)
	if payment.Amount != 350.0 || payment.Status != "pending" {
		t.Errorf("payment = %+v", payment)
	}
	if payment.DueDate.Format("2006-01-02") != "2026-09-15" {
		t.Errorf("due_date = %v, want 2026-09-15", payment.DueDate)
	}
}

func TestCreateSimPayment_UnknownStation(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, "POST", "/sim-payments", paymentPayload("station-nope"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListSimPayments_Filters(t *testing.T) {
	r, db := setupAPI(t)
	seedStation(t, db, "station-001")
	seedStation(t, db, "station-002")

	pending := paymentPayload("station-001")
	paid := paymentPayload("station-001")
	paid["status"] = "paid"
	other := paymentPayload("station-002")

	for _, payload := range []map[string]interface{}{pending, paid, other} {
		if w := doJSON(t, r, "POST", "/sim-payments", payload); w.Code != http.StatusCreated {
			t.Fatalf("seed payment: %d", w.Code)
		}
	}

	w := doJSON(t, r, "GET", "/sim-payments?station_id=station-001&status=pending", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var payments []models.SimPayment
	decode(t, w, &payments)
	if len(payments) != 1 {
		t.Fatalf("len(payments) = %d, want 1", len(payments))
	}
	if payments[0].StationID != "station-001" || payments[0].Status != "pending" {
		t.Errorf("payment = %+v, want pending on station-001", payments[0])
	}
}

func TestUpdateSimPayment_MarkPaid(t *testing.T) {
	r, db := setupAPI(t)
	seedStation(t, db, "station-001")

	w := doJSON(t, r, "POST", "/sim-payments", paymentPayload("station-001"))
	var created models.SimPayment
	decode(t, w, &created)

	w = doJSON(t, r, "PUT", "/sim-payments/"+created.ID, map[string]interface{}{
		"status":    "paid",
		"paid_date": "2026-09-01",
		"notes":     "ชำระผ่านโอนเงิน",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var updated models.SimPayment
	decode(t, w, &updated)
	if updated.Status != "paid" {
		t.Errorf("status = %q, want paid", updated.Status)
	}
	if updated.PaidDate == nil || updated.PaidDate.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("paid_date = %v, want 2026-09-01", updated.PaidDate)
	}
	if updated.SimNumber != created.SimNumber || updated.Amount != created.Amount {
		t.Errorf("partial update touched unrelated fields: %+v", updated)
	}
}

func TestDeleteSimPayment_NotFound(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, "DELETE", "/sim-payments/sim-nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

package spacetraders

import (
	"encoding/json"
	"testing"
	"time"
)

func TestShipUnmarshalDefaultsLocation(t *testing.T) {
	data := []byte(`{"id":"ship-1","type":"JW-MK-I","flightPlanId":"fp-1"}`)

	var ship Ship
	if err := json.Unmarshal(data, &ship); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if ship.Location != InTransit {
		t.Errorf("Location = %q, want %q", ship.Location, InTransit)
	}
	if ship.FlightPlanID != "fp-1" {
		t.Errorf("FlightPlanID = %q, want %q", ship.FlightPlanID, "fp-1")
	}
}

func TestShipUnmarshalKeepsLocation(t *testing.T) {
	data := []byte(`{"id":"ship-1","location":"OE-PM-TR","x":20,"y":-25}`)

	var ship Ship
	if err := json.Unmarshal(data, &ship); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if ship.Location != "OE-PM-TR" {
		t.Errorf("Location = %q, want %q", ship.Location, "OE-PM-TR")
	}
	if ship.X != 20 || ship.Y != -25 {
		t.Errorf("coordinates = (%d, %d), want (20, -25)", ship.X, ship.Y)
	}
}

func TestLoanUnmarshal(t *testing.T) {
	data := []byte(`{"id":"loan-1","due":"2021-04-20T12:00:00.000Z","repaymentAmount":280000,"status":"CURRENT","type":"STARTUP"}`)

	var loan Loan
	if err := json.Unmarshal(data, &loan); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	want := time.Date(2021, 4, 20, 12, 0, 0, 0, time.UTC)
	if !loan.Due.Equal(want) {
		t.Errorf("Due = %v, want %v", loan.Due, want)
	}
	if loan.RepaymentAmount != 280000 {
		t.Errorf("RepaymentAmount = %d, want 280000", loan.RepaymentAmount)
	}
}

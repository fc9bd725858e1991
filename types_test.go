package spacetraders

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestTypesGoods(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/types/goods" {
			t.Errorf("path = %s, want /types/goods", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"goods": []map[string]any{{"symbol": "FUEL", "name": "Fuel", "volumePerUnit": 1}},
		})
	}))

	goods, err := client.Types.Goods(context.Background())
	if err != nil {
		t.Fatalf("Goods() error = %v", err)
	}
	if len(goods) != 1 || goods[0].Symbol != "FUEL" {
		t.Errorf("goods = %+v", goods)
	}
}

func TestTypesShipsClassFilter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/types/ships" {
			t.Errorf("path = %s, want /types/ships", r.URL.Path)
		}
		if got := r.URL.Query().Get("class"); got != "MK-II" {
			t.Errorf("class query = %q, want %q", got, "MK-II")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"ships": []map[string]any{{"type": "GR-MK-II", "class": "MK-II"}},
		})
	}))

	ships, err := client.Types.Ships(context.Background(), "MK-II")
	if err != nil {
		t.Fatalf("Ships() error = %v", err)
	}
	if len(ships) != 1 || ships[0].Class != "MK-II" {
		t.Errorf("ships = %+v", ships)
	}
}

func TestTypesLoans(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/types/loans" {
			t.Errorf("path = %s, want /types/loans", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"loans": []map[string]any{
				{"type": "STARTUP", "amount": 200000, "rate": 40, "termInDays": 2, "collateralRequired": false},
			},
		})
	}))

	loans, err := client.Types.Loans(context.Background())
	if err != nil {
		t.Fatalf("Loans() error = %v", err)
	}
	if len(loans) != 1 || loans[0].Amount != 200000 {
		t.Errorf("loans = %+v", loans)
	}
}

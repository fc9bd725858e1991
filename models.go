package spacetraders

import (
	"encoding/json"
	"time"
)

// InTransit is the placeholder Location for a ship the API reports without
// one: a ship between locations has no coordinates until it arrives.
const InTransit = "IN TRANSIT"

// User is the account record: credits plus owned ships and loans.
type User struct {
	Username string `json:"username"`
	Credits  int    `json:"credits"`
	Ships    []Ship `json:"ships"`
	Loans    []Loan `json:"loans"`
}

// Cargo is one good held in a ship's hold.
type Cargo struct {
	Good        string `json:"good"`
	Quantity    int    `json:"quantity"`
	TotalVolume int    `json:"totalVolume"`
}

// Ship is an owned vessel. Location is InTransit and X/Y are zero while the
// ship is flying; FlightPlanID is empty when the ship is idle.
type Ship struct {
	ID             string  `json:"id"`
	Manufacturer   string  `json:"manufacturer"`
	Class          string  `json:"class"`
	Type           string  `json:"type"`
	Location       string  `json:"location"`
	X              int     `json:"x"`
	Y              int     `json:"y"`
	FlightPlanID   string  `json:"flightPlanId"`
	Speed          int     `json:"speed"`
	Plating        int     `json:"plating"`
	Weapons        int     `json:"weapons"`
	MaxCargo       int     `json:"maxCargo"`
	SpaceAvailable int     `json:"spaceAvailable"`
	Cargo          []Cargo `json:"cargo"`
}

// UnmarshalJSON decodes a ship, defaulting Location for in-flight ships
// that the API returns without one.
func (s *Ship) UnmarshalJSON(data []byte) error {
	type alias Ship
	aux := alias{Location: InTransit}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Ship(aux)
	return nil
}

// Loan is a loan the user has taken.
type Loan struct {
	ID              string    `json:"id"`
	Due             time.Time `json:"due"`
	RepaymentAmount int       `json:"repaymentAmount"`
	Status          string    `json:"status"`
	Type            string    `json:"type"`
}

// LoanType describes a loan available to take.
type LoanType struct {
	Type               string `json:"type"`
	Amount             int    `json:"amount"`
	Rate               int    `json:"rate"`
	TermInDays         int    `json:"termInDays"`
	CollateralRequired bool   `json:"collateralRequired"`
}

// Location is a point of interest within a system.
type Location struct {
	Symbol             string      `json:"symbol"`
	Type               string      `json:"type"`
	Name               string      `json:"name"`
	X                  int         `json:"x"`
	Y                  int         `json:"y"`
	AllowsConstruction bool        `json:"allowsConstruction"`
	Structures         []Structure `json:"structures"`
}

// Structure is a built structure, either the user's or another player's.
type Structure struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// StructureType describes a structure available to build.
type StructureType struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Good describes a tradable good type.
type Good struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	VolumePerUnit int    `json:"volumePerUnit"`
}

// MarketplaceGood is one listing at a location's marketplace.
type MarketplaceGood struct {
	Symbol               string `json:"symbol"`
	VolumePerUnit        int    `json:"volumePerUnit"`
	PricePerUnit         int    `json:"pricePerUnit"`
	PurchasePricePerUnit int    `json:"purchasePricePerUnit"`
	SellPricePerUnit     int    `json:"sellPricePerUnit"`
	QuantityAvailable    int    `json:"quantityAvailable"`
}

// System is a star system.
type System struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// FlightPlan is an active or completed flight.
type FlightPlan struct {
	ID                     string    `json:"id"`
	ShipID                 string    `json:"shipId"`
	CreatedAt              time.Time `json:"createdAt"`
	ArrivesAt              time.Time `json:"arrivesAt"`
	Departure              string    `json:"departure"`
	Destination            string    `json:"destination"`
	Distance               int       `json:"distance"`
	FuelConsumed           int       `json:"fuelConsumed"`
	FuelRemaining          int       `json:"fuelRemaining"`
	TerminatedAt           time.Time `json:"terminatedAt"`
	TimeRemainingInSeconds int       `json:"timeRemainingInSeconds"`
}

// DockedShip is the public view of a ship docked at a location.
type DockedShip struct {
	ShipID   string `json:"shipId"`
	Username string `json:"username"`
	ShipType string `json:"shipType"`
}

// PurchaseLocation is a place a ship type can be bought, with its local
// price.
type PurchaseLocation struct {
	System   string `json:"system"`
	Location string `json:"location"`
	Price    int    `json:"price"`
}

// ShipListing describes a ship type for sale.
type ShipListing struct {
	Type              string             `json:"type"`
	Class             string             `json:"class"`
	Manufacturer      string             `json:"manufacturer"`
	MaxCargo          int                `json:"maxCargo"`
	Speed             int                `json:"speed"`
	Plating           int                `json:"plating"`
	Weapons           int                `json:"weapons"`
	PurchaseLocations []PurchaseLocation `json:"purchaseLocations"`
}

// NetWorthEntry is one row of the net-worth leaderboard.
type NetWorthEntry struct {
	Username string `json:"username"`
	NetWorth int    `json:"netWorth"`
	Rank     int    `json:"rank"`
}

// Order is the result line of a purchase or sell order.
type Order struct {
	Good         string `json:"good"`
	Quantity     int    `json:"quantity"`
	PricePerUnit int    `json:"pricePerUnit"`
	Total        int    `json:"total"`
}

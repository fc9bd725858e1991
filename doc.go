// Package spacetraders provides a Go client SDK for the SpaceTraders game
// API: ships, systems, locations, markets, loans, flight plans, and the v2
// agent surface.
//
// All requests go through one shared dispatcher that authenticates with the
// account's bearer token and paces outbound traffic with a client-side rate
// limiter, so the server never has to throttle the client.
//
// Basic usage:
//
//	client, err := spacetraders.New("your-username", "your-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ships, err := client.Ships.List(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, ship := range ships {
//	    fmt.Println(ship.ID, ship.Location)
//	}
//
// Passing an empty token claims one automatically for the username; every
// service on the client shares the claimed token.
package spacetraders

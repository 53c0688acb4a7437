package models

import "encoding/json"

// RawMatch is one ball-by-ball match document as published upstream:
// match metadata plus innings -> overs -> deliveries nesting.
type RawMatch struct {
	Info    MatchInfo    `json:"info"`
	Innings []RawInnings `json:"innings"`
}

// MatchInfo carries the match metadata the pipeline needs.
type MatchInfo struct {
	Venue string   `json:"venue"`
	Dates []string `json:"dates"`
	Teams []string `json:"teams"`
}

// RawInnings is one innings: the batting side and its overs in order.
type RawInnings struct {
	Team  string    `json:"team"`
	Overs []RawOver `json:"overs"`
}

// RawOver is one over; Over is the 0-based index from the raw record.
type RawOver struct {
	Over       int           `json:"over"`
	Deliveries []RawDelivery `json:"deliveries"`
}

// RawDelivery is a single delivery. Extras keys seen upstream: wides,
// noballs, byes, legbyes, penalty. Wickets content is not inspected;
// only its presence matters.
type RawDelivery struct {
	Batter  string            `json:"batter"`
	Bowler  string            `json:"bowler"`
	Runs    DeliveryRuns      `json:"runs"`
	Extras  map[string]int    `json:"extras,omitempty"`
	Wickets []json.RawMessage `json:"wickets,omitempty"`
}

// DeliveryRuns is the runs breakdown for one delivery.
type DeliveryRuns struct {
	Batter int `json:"batter"`
	Extras int `json:"extras"`
	Total  int `json:"total"`
}

package models

// Trip is the single current trip-planning record.
type Trip struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// Dates is the legacy freeform field kept for backends that predate the
	// structured start/end pair.
	Dates              string `json:"dates"`
	AdultsOnly         bool   `json:"adults_only"`
	LodgingBooked      bool   `json:"lodging_booked"`
	ChildcareConfirmed bool   `json:"childcare_confirmed"`
	Notes              string `json:"notes"`
	UpdatedAt          string `json:"updated_at"`
}

// TripUpdate is the payload for PUT /api/relationship/trip. Every save also
// appends a history snapshot server-side.
type TripUpdate struct {
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Dates              string `json:"dates"`
	AdultsOnly         bool   `json:"adults_only"`
	LodgingBooked      bool   `json:"lodging_booked"`
	ChildcareConfirmed bool   `json:"childcare_confirmed"`
	Notes              string `json:"notes"`
}

// TripHistoryEntry is one append-only snapshot, newest first.
type TripHistoryEntry struct {
	ID        string `json:"id"`
	TripID    string `json:"trip_id"`
	CreatedAt string `json:"created_at"`
	Snapshot  Trip   `json:"snapshot"`
}

// Gift is one logged gift or gesture, listed per calendar month.
type Gift struct {
	ID          string  `json:"id"`
	Day         string  `json:"day"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}

// GiftCreate is the payload for POST /api/relationship/gifts.
type GiftCreate struct {
	Day         string  `json:"day"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

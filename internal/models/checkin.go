package models

// CheckIn is one daily record of the three habit flags plus notes. The backend
// enforces one record per day; day is the natural key.
type CheckIn struct {
	ID            string `json:"id"`
	Day           string `json:"day"`
	Wakeup5AM     bool   `json:"wakeup_5am"`
	Workout       bool   `json:"workout"`
	VideoCaptured bool   `json:"video_captured"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// CheckInUpsert is the payload for POST /api/checkins/upsert.
type CheckInUpsert struct {
	Day           string `json:"day"`
	Wakeup5AM     bool   `json:"wakeup_5am"`
	Workout       bool   `json:"workout"`
	VideoCaptured bool   `json:"video_captured"`
	Notes         string `json:"notes"`
}

package domain

import "time"

type PackageType string

const (
	PackageTennisOnly        PackageType = "tennis_only"
	PackageStayAndPlay       PackageType = "stay_and_play"
	PackageLuxuryStayAndPlay PackageType = "luxury_stay_and_play"
	PackageNoTennis          PackageType = "no_tennis"
)

// DefaultMaxPlayers applies when a camp has no explicit capacity.
const DefaultMaxPlayers = 8

type Camp struct {
	ID          uint        `json:"id"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	PackageType PackageType `json:"package_type"`
	MaxPlayers  int         `json:"max_players"`
	CoachID     *uint       `json:"coach_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Capacity returns the configured capacity, falling back to
// DefaultMaxPlayers when unset.
func (c *Camp) Capacity() int {
	if c.MaxPlayers <= 0 {
		return DefaultMaxPlayers
	}
	return c.MaxPlayers
}

type Availability struct {
	IsFull         bool `json:"isFull"`
	AvailableSpots int  `json:"availableSpots"`
	ConfirmedCount int  `json:"confirmedCount"`
	MaxPlayers     int  `json:"maxPlayers"`
}

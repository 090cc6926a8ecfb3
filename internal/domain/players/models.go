package players

import "fmt"

const photoURLFormat = "https://cdn.nba.com/headshots/nba/latest/1040x760/%d.png"

// RosterEntry is one player on a team roster as served by /api/players/{teamId}.
type RosterEntry struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Position  string `json:"position"`
	Number    string `json:"number"`
	PhotoURL  string `json:"photo"`
}

// PhotoURL returns the NBA CDN headshot for a player id.
func PhotoURL(playerID int) string {
	return fmt.Sprintf(photoURLFormat, playerID)
}

// ListResponse is the /api/players/{teamId} payload.
type ListResponse struct {
	Response []RosterEntry `json:"response"`
	Results  int           `json:"results"`
}

// NewListResponse wraps roster entries with their count.
func NewListResponse(items []RosterEntry) ListResponse {
	if items == nil {
		items = []RosterEntry{}
	}
	return ListResponse{Response: items, Results: len(items)}
}

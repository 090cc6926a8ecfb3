package teams

// Team is the normalized franchise shape returned by /api/teams.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
}

// ListResponse is the /api/teams payload.
type ListResponse struct {
	Response []Team `json:"response"`
	Results  int    `json:"results"`
}

// NewListResponse wraps teams with their count.
func NewListResponse(items []Team) ListResponse {
	if items == nil {
		items = []Team{}
	}
	return ListResponse{Response: items, Results: len(items)}
}

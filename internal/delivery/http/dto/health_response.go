package dto

type HealthResponse struct {
	Status   string `json:"status"`
	Store    string `json:"store"`
	Strategy string `json:"strategy"`
	Clients  int    `json:"clients"`
}

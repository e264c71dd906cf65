package models

// InfoRecord describes the API. Its contents are static and identical
// across requests.
type InfoRecord struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
}

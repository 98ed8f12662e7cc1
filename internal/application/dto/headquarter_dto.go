package dto

// HeadquarterResponse salida de una sede.
type HeadquarterResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

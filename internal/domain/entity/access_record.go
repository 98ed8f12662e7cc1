package entity

import "time"

// AccessRecord es la marca de auditoría de un login exitoso.
// Se crea exactamente una por login aceptado; solo inserción, nunca se
// actualiza ni se borra desde este sistema.
type AccessRecord struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

package entity

// Window es una pantalla/página de la aplicación, identificada por nombre.
// El login la busca por coincidencia exacta de Name.
type Window struct {
	ID     int
	Name   string
	Status string // active, inactive
}

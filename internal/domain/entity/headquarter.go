package entity

// Headquarter es una sede/unidad organizativa a la que un usuario puede
// estar vinculado. Es ortogonal a la autorización: no participa en el
// grafo de roles/ventanas del login.
type Headquarter struct {
	ID     int
	Name   string
	Status string // active, inactive
}

// HeadquarterUser es el vínculo usuario↔sede. Contabilidad de membresía,
// no permisos.
type HeadquarterUser struct {
	Email         string
	HeadquarterID int
}

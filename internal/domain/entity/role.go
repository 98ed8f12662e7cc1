package entity

// RoleAssignment vincula un User con un Role. No tiene atributos propios:
// la actividad de la asignación se deriva por completo del estado del rol.
type RoleAssignment struct {
	Role Role
}

// Role es un paquete de permisos con nombre y estado propio.
// Windows contiene un WindowPermission por cada ventana que el rol toca.
type Role struct {
	ID      int
	Name    string
	Status  string // active, inactive
	Windows []WindowPermission
}

// WindowPermission vincula un Role con una Window concreta.
// Read y Write vienen del modelo fuente como 1/0; el login solo consulta Read.
type WindowPermission struct {
	Window Window
	Read   int
	Write  int
}

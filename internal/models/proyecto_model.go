package models

import "time"

// Valid values for Proyecto.Tipo.
const (
	ProyectoInstalacion   = "instalacion"
	ProyectoMantenimiento = "mantenimiento"
	ProyectoConsultoria   = "consultoria"
	ProyectoVenta         = "venta"
)

// Ubicacion is the geographic location of a project.
type Ubicacion struct {
	Lat          float64 `json:"lat" firestore:"lat"`
	Lng          float64 `json:"lng" firestore:"lng"`
	Ciudad       string  `json:"ciudad" firestore:"ciudad"`
	Departamento string  `json:"departamento" firestore:"departamento"`
}

// Proyecto is a completed or ongoing field project.
type Proyecto struct {
	DocID             string    `json:"docId" firestore:"-"`
	ID                int       `json:"id" firestore:"id"`
	Nombre            string    `json:"nombre" firestore:"nombre"`
	Descripcion       string    `json:"descripcion" firestore:"descripcion"`
	Tipo              string    `json:"tipo" firestore:"tipo"`
	Ubicacion         Ubicacion `json:"ubicacion" firestore:"ubicacion"`
	Fecha             string    `json:"fecha" firestore:"fecha"`
	Detalles          string    `json:"detalles,omitempty" firestore:"detalles,omitempty"`
	Capacidad         string    `json:"capacidad,omitempty" firestore:"capacidad,omitempty"`
	Historia          string    `json:"historia,omitempty" firestore:"historia,omitempty"`
	ImagenPrincipal   string    `json:"imagenPrincipal" firestore:"imagenPrincipal"`
	Imagen30Proyectos []string  `json:"imagen30proyectos,omitempty" firestore:"imagen30proyectos,omitempty"`
	ImagenesEquipos   []string  `json:"imagenesEquipos,omitempty" firestore:"imagenesEquipos,omitempty"`
	Equipos           []string  `json:"equipos,omitempty" firestore:"equipos,omitempty"`
	Resumen           string    `json:"resumen,omitempty" firestore:"resumen,omitempty"`
	LinkNoticia       string    `json:"linkNoticia,omitempty" firestore:"linkNoticia,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// ValidTipoProyecto reports whether tipo is one of the accepted project types.
func ValidTipoProyecto(tipo string) bool {
	switch tipo {
	case ProyectoInstalacion, ProyectoMantenimiento, ProyectoConsultoria, ProyectoVenta:
		return true
	}
	return false
}

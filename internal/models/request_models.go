package models

// Request payloads bound from the admin UI. Forms submit the full field
// set on both create and update, mirroring the document shape minus the
// store-managed fields (docId, id, timestamps).

// ProductoRequest is the payload for creating or updating a product.
type ProductoRequest struct {
	Nombre           string       `json:"nombre" binding:"required"`
	Descripcion      string       `json:"descripcion"`
	DescripcionLarga string       `json:"descripcionLarga"`
	Imagen           string       `json:"imagen"`
	Imagenes         []string     `json:"imagenes"`
	Categoria        string       `json:"categoria"`
	Modelo3D         string       `json:"modelo3d"`
	Marcadores3D     []Marcador3D `json:"marcadores3d"`
	PDF              string       `json:"pdf"`
	QR               string       `json:"qr"`
	FormURL          string       `json:"formUrl"`
	Marca            string       `json:"marca"`
	AliadoID         string       `json:"aliadoId"`
}

// SubProductoRequest is the payload for creating or updating a subproduct.
type SubProductoRequest struct {
	Nombre           string       `json:"nombre" binding:"required"`
	Descripcion      string       `json:"descripcion"`
	DescripcionLarga string       `json:"descripcionLarga"`
	Imagen           string       `json:"imagen"`
	Modelo3D         string       `json:"modelo3d"`
	Marcadores3D     []Marcador3D `json:"marcadores3d"`
	PDF              string       `json:"pdf"`
	QR               string       `json:"qr"`
	FormURL          string       `json:"formUrl"`
	Marca            string       `json:"marca"`
	AliadoID         string       `json:"aliadoId"`
}

// SetAliadoRequest assigns a canonical ally to a product or subproduct.
// The handler resolves the ally and writes aliadoId and marca together in
// a single update.
type SetAliadoRequest struct {
	AliadoDocID string `json:"aliadoDocId" binding:"required"`
}

// AliadoRequest is the payload for creating or updating an ally.
type AliadoRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	Logo   string `json:"logo"`
	URL    string `json:"url"`
}

// CategoriaRequest is the payload for creating or updating a category.
type CategoriaRequest struct {
	Nombre string `json:"nombre" binding:"required"`
}

// NoticiaRequest is the payload for creating or updating a news entry.
type NoticiaRequest struct {
	Titulo           string          `json:"titulo" binding:"required"`
	Resumen          string          `json:"resumen"`
	Imagenes         []string        `json:"imagenes"`
	Contenido        string          `json:"contenido"`
	EnlacesOficiales []EnlaceOficial `json:"enlacesOficiales"`
}

// ProyectoRequest is the payload for creating or updating a project.
type ProyectoRequest struct {
	Nombre            string    `json:"nombre" binding:"required"`
	Descripcion       string    `json:"descripcion"`
	Tipo              string    `json:"tipo" binding:"required"`
	Ubicacion         Ubicacion `json:"ubicacion"`
	Fecha             string    `json:"fecha"`
	Detalles          string    `json:"detalles"`
	Capacidad         string    `json:"capacidad"`
	Historia          string    `json:"historia"`
	ImagenPrincipal   string    `json:"imagenPrincipal"`
	Imagen30Proyectos []string  `json:"imagen30proyectos"`
	ImagenesEquipos   []string  `json:"imagenesEquipos"`
	Equipos           []string  `json:"equipos"`
	Resumen           string    `json:"resumen"`
	LinkNoticia       string    `json:"linkNoticia"`
}

// EmpresaRequest is the payload for updating the company-info singleton.
// Sections are merged into the existing document.
type EmpresaRequest struct {
	SobreNosotros SeccionEmpresa `json:"sobreNosotros"`
	Mision        SeccionEmpresa `json:"mision"`
	Vision        SeccionEmpresa `json:"vision"`
	Objetivos     SeccionEmpresa `json:"objetivos"`
}

// CreateAdminUserRequest creates a Firebase Auth account plus its mirror
// record in the admin collection.
type CreateAdminUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

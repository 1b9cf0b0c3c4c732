package models

import "time"

// MarcadorLabel is a single text label attached to a 3D marker.
type MarcadorLabel struct {
	Nombre string `json:"nombre" firestore:"nombre"`
}

// Marcador3D is an annotation anchored to a point of a product's 3D model.
type Marcador3D struct {
	X     float64         `json:"x" firestore:"x"`
	Y     float64         `json:"y" firestore:"y"`
	Z     float64         `json:"z" firestore:"z"`
	Label []MarcadorLabel `json:"label" firestore:"label"`
}

// Producto is a catalog product. ID is the application-level sequential
// integer, distinct from the Firestore document ID (DocID).
type Producto struct {
	DocID            string       `json:"docId" firestore:"-"`
	ID               int          `json:"id" firestore:"id"`
	Nombre           string       `json:"nombre" firestore:"nombre"`
	Descripcion      string       `json:"descripcion" firestore:"descripcion"`
	DescripcionLarga string       `json:"descripcionLarga" firestore:"descripcionLarga"`
	Imagen           string       `json:"imagen" firestore:"imagen"`
	Imagenes         []string     `json:"imagenes" firestore:"imagenes"`
	Slug             string       `json:"slug" firestore:"slug"`
	Categoria        string       `json:"categoria" firestore:"categoria"`
	Modelo3D         string       `json:"modelo3d,omitempty" firestore:"modelo3d,omitempty"`
	Marcadores3D     []Marcador3D `json:"marcadores3d,omitempty" firestore:"marcadores3d,omitempty"`
	PDF              string       `json:"pdf,omitempty" firestore:"pdf,omitempty"`
	QR               string       `json:"qr,omitempty" firestore:"qr,omitempty"`
	FormURL          string       `json:"formUrl,omitempty" firestore:"formUrl,omitempty"`
	// Marca is the legacy free-text brand name. AliadoID is the canonical
	// reference to an Aliado document; when both are set they must agree
	// (marca == the referenced ally's nombre).
	Marca    string `json:"marca,omitempty" firestore:"marca,omitempty"`
	AliadoID string `json:"aliadoId,omitempty" firestore:"aliadoId,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`

	// Subproductos live in the "subproductos" subcollection of the product
	// document; they are hydrated on reads, never stored inline.
	Subproductos []*SubProducto `json:"subproductos" firestore:"-"`
}

// SubProducto is a variant nested under a parent product. Its ID is the
// string "sub-<n>" where <n> is sequential within the parent's
// subcollection only.
type SubProducto struct {
	DocID            string       `json:"docId" firestore:"-"`
	ID               string       `json:"id" firestore:"id"`
	Nombre           string       `json:"nombre" firestore:"nombre"`
	Descripcion      string       `json:"descripcion" firestore:"descripcion"`
	DescripcionLarga string       `json:"descripcionLarga" firestore:"descripcionLarga"`
	Imagen           string       `json:"imagen" firestore:"imagen"`
	Slug             string       `json:"slug" firestore:"slug"`
	Modelo3D         string       `json:"modelo3d,omitempty" firestore:"modelo3d,omitempty"`
	Marcadores3D     []Marcador3D `json:"marcadores3d,omitempty" firestore:"marcadores3d,omitempty"`
	PDF              string       `json:"pdf,omitempty" firestore:"pdf,omitempty"`
	QR               string       `json:"qr,omitempty" firestore:"qr,omitempty"`
	FormURL          string       `json:"formUrl,omitempty" firestore:"formUrl,omitempty"`
	Marca            string       `json:"marca,omitempty" firestore:"marca,omitempty"`
	AliadoID         string       `json:"aliadoId,omitempty" firestore:"aliadoId,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

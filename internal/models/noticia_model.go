package models

import "time"

// EnlaceOficial is an external reference link attached to a news entry.
type EnlaceOficial struct {
	Titulo string `json:"titulo" firestore:"titulo"`
	URL    string `json:"url" firestore:"url"`
}

// Noticia is a news entry. Listings are newest-first (id descending).
type Noticia struct {
	DocID            string          `json:"docId" firestore:"-"`
	ID               int             `json:"id" firestore:"id"`
	Titulo           string          `json:"titulo" firestore:"titulo"`
	Resumen          string          `json:"resumen" firestore:"resumen"`
	Slug             string          `json:"slug" firestore:"slug"`
	Imagenes         []string        `json:"imagenes" firestore:"imagenes"`
	Contenido        string          `json:"contenido" firestore:"contenido"`
	EnlacesOficiales []EnlaceOficial `json:"enlacesOficiales,omitempty" firestore:"enlacesOficiales,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

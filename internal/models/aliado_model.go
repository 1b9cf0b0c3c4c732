package models

import "time"

// Aliado is a business partner/brand. Products reference it through
// AliadoID (the Firestore document ID), while legacy records duplicate
// Nombre into the product's marca field.
type Aliado struct {
	DocID  string `json:"docId" firestore:"-"`
	ID     int    `json:"id" firestore:"id"`
	Nombre string `json:"nombre" firestore:"nombre"`
	Logo   string `json:"logo" firestore:"logo"`
	URL    string `json:"url,omitempty" firestore:"url,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Categoria is a product category. Products reference it by Nombre, not by
// id, so renaming a category breaks the join until products are updated.
type Categoria struct {
	DocID  string `json:"docId" firestore:"-"`
	ID     int    `json:"id" firestore:"id"`
	Nombre string `json:"nombre" firestore:"nombre"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

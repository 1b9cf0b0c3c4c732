package models

import "time"

// EmpresaDocID is the fixed document ID of the company-info singleton.
const EmpresaDocID = "empresa_info"

// SeccionEmpresa is one named section of the company page.
type SeccionEmpresa struct {
	Titulo string `json:"titulo" firestore:"titulo"`
	Texto  string `json:"texto" firestore:"texto"`
	Imagen string `json:"imagen,omitempty" firestore:"imagen,omitempty"`
}

// Empresa is the company-info singleton document.
type Empresa struct {
	DocID         string         `json:"docId" firestore:"-"`
	SobreNosotros SeccionEmpresa `json:"sobreNosotros" firestore:"sobreNosotros"`
	Mision        SeccionEmpresa `json:"mision" firestore:"mision"`
	Vision        SeccionEmpresa `json:"vision" firestore:"vision"`
	Objetivos     SeccionEmpresa `json:"objetivos" firestore:"objetivos"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// DefaultEmpresa returns the document written the first time the company
// page is opened and no record exists yet.
func DefaultEmpresa() *Empresa {
	return &Empresa{
		SobreNosotros: SeccionEmpresa{Titulo: "Sobre Nosotros"},
		Mision:        SeccionEmpresa{Titulo: "MISIÓN"},
		Vision:        SeccionEmpresa{Titulo: "VISIÓN"},
		Objetivos:     SeccionEmpresa{Titulo: "NUESTRO OBJETIVO"},
	}
}

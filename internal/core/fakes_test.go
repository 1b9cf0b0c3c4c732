package core

// In-memory repository fakes shared by the service tests. They mimic the
// store semantics the services rely on: sequential ids, field-map updates
// applied onto the stored document, ErrNotFound for missing documents,
// and injectable per-operation failures.

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

type fakeProductoRepo struct {
	productos map[string]*models.Producto
	order     []string
	subs      map[string]map[string]*models.SubProducto
	subOrder  map[string][]string

	updateErr    error
	subDeleteErr map[string]error

	updatedDocs    []string
	updatedSubDocs []string
	deletedDocs    []string
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{
		productos:    map[string]*models.Producto{},
		subs:         map[string]map[string]*models.SubProducto{},
		subOrder:     map[string][]string{},
		subDeleteErr: map[string]error{},
	}
}

func (r *fakeProductoRepo) List(ctx context.Context) ([]*models.Producto, error) {
	out := make([]*models.Producto, 0, len(r.order))
	for _, docID := range r.order {
		p := r.productos[docID]
		subs, _ := r.ListSubproductos(ctx, docID)
		p.Subproductos = subs
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductoRepo) GetByID(_ context.Context, docID string) (*models.Producto, error) {
	p, ok := r.productos[docID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductoRepo) Create(_ context.Context, producto *models.Producto) (string, error) {
	ids := make([]int, 0, len(r.order))
	for _, docID := range r.order {
		ids = append(ids, r.productos[docID].ID)
	}
	producto.ID = db.NextSequentialID(ids)
	docID := fmt.Sprintf("prod-doc-%d", producto.ID)
	producto.DocID = docID
	r.productos[docID] = producto
	r.order = append(r.order, docID)
	return docID, nil
}

// applyFields mirrors the merge-write: known fields land on the stored
// document so a second reconciliation pass sees the corrected values.
func applyProductoFields(p *models.Producto, fields map[string]any) {
	if v, ok := fields["marca"].(string); ok {
		p.Marca = v
	}
	if v, ok := fields["aliadoId"].(string); ok {
		p.AliadoID = v
	}
	if v, ok := fields["nombre"].(string); ok {
		p.Nombre = v
	}
}

func (r *fakeProductoRepo) Update(_ context.Context, docID string, fields map[string]any) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	p, ok := r.productos[docID]
	if !ok {
		return db.ErrNotFound
	}
	applyProductoFields(p, fields)
	r.updatedDocs = append(r.updatedDocs, docID)
	return nil
}

func (r *fakeProductoRepo) Delete(_ context.Context, docID string) error {
	if _, ok := r.productos[docID]; !ok {
		return db.ErrNotFound
	}
	delete(r.productos, docID)
	for i, id := range r.order {
		if id == docID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.deletedDocs = append(r.deletedDocs, docID)
	return nil
}

func (r *fakeProductoRepo) ListSubproductos(_ context.Context, productoDocID string) ([]*models.SubProducto, error) {
	out := make([]*models.SubProducto, 0, len(r.subOrder[productoDocID]))
	for _, subDocID := range r.subOrder[productoDocID] {
		out = append(out, r.subs[productoDocID][subDocID])
	}
	return out, nil
}

func (r *fakeProductoRepo) CreateSubproducto(_ context.Context, productoDocID string, sub *models.SubProducto) (string, error) {
	if _, ok := r.productos[productoDocID]; !ok {
		return "", db.ErrNotFound
	}
	ids := make([]int, 0, len(r.subOrder[productoDocID]))
	for _, subDocID := range r.subOrder[productoDocID] {
		ids = append(ids, db.SubIDNumber(r.subs[productoDocID][subDocID].ID))
	}
	sub.ID = fmt.Sprintf("sub-%d", db.NextSequentialID(ids))
	subDocID := "doc-" + sub.ID
	sub.DocID = subDocID
	if r.subs[productoDocID] == nil {
		r.subs[productoDocID] = map[string]*models.SubProducto{}
	}
	r.subs[productoDocID][subDocID] = sub
	r.subOrder[productoDocID] = append(r.subOrder[productoDocID], subDocID)
	return subDocID, nil
}

func (r *fakeProductoRepo) UpdateSubproducto(_ context.Context, productoDocID, subDocID string, fields map[string]any) error {
	sub, ok := r.subs[productoDocID][subDocID]
	if !ok {
		return db.ErrNotFound
	}
	if v, ok := fields["marca"].(string); ok {
		sub.Marca = v
	}
	if v, ok := fields["aliadoId"].(string); ok {
		sub.AliadoID = v
	}
	r.updatedSubDocs = append(r.updatedSubDocs, subDocID)
	return nil
}

func (r *fakeProductoRepo) DeleteSubproducto(_ context.Context, productoDocID, subDocID string) error {
	if err := r.subDeleteErr[subDocID]; err != nil {
		return err
	}
	if _, ok := r.subs[productoDocID][subDocID]; !ok {
		return db.ErrNotFound
	}
	delete(r.subs[productoDocID], subDocID)
	for i, id := range r.subOrder[productoDocID] {
		if id == subDocID {
			r.subOrder[productoDocID] = append(r.subOrder[productoDocID][:i], r.subOrder[productoDocID][i+1:]...)
			break
		}
	}
	return nil
}

type fakeAliadoRepo struct {
	aliados map[string]*models.Aliado
	order   []string
}

func newFakeAliadoRepo(aliados ...*models.Aliado) *fakeAliadoRepo {
	r := &fakeAliadoRepo{aliados: map[string]*models.Aliado{}}
	for _, a := range aliados {
		r.aliados[a.DocID] = a
		r.order = append(r.order, a.DocID)
	}
	return r
}

func (r *fakeAliadoRepo) List(_ context.Context) ([]*models.Aliado, error) {
	out := make([]*models.Aliado, 0, len(r.order))
	for _, docID := range r.order {
		out = append(out, r.aliados[docID])
	}
	return out, nil
}

func (r *fakeAliadoRepo) GetByID(_ context.Context, docID string) (*models.Aliado, error) {
	a, ok := r.aliados[docID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return a, nil
}

func (r *fakeAliadoRepo) Create(_ context.Context, aliado *models.Aliado) (string, error) {
	docID := fmt.Sprintf("aliado-doc-%d", len(r.order)+1)
	aliado.DocID = docID
	r.aliados[docID] = aliado
	r.order = append(r.order, docID)
	return docID, nil
}

func (r *fakeAliadoRepo) Update(_ context.Context, docID string, fields map[string]any) error {
	a, ok := r.aliados[docID]
	if !ok {
		return db.ErrNotFound
	}
	if v, ok := fields["nombre"].(string); ok {
		a.Nombre = v
	}
	return nil
}

func (r *fakeAliadoRepo) Delete(_ context.Context, docID string) error {
	if _, ok := r.aliados[docID]; !ok {
		return db.ErrNotFound
	}
	delete(r.aliados, docID)
	return nil
}

type fakeAdminRepo struct {
	users     map[string]*models.AdminUser
	createErr error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{users: map[string]*models.AdminUser{}}
}

func (r *fakeAdminRepo) List(_ context.Context) ([]*models.AdminUser, error) {
	out := make([]*models.AdminUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeAdminRepo) GetByUID(_ context.Context, uid string) (*models.AdminUser, error) {
	for _, u := range r.users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *fakeAdminRepo) Create(_ context.Context, user *models.AdminUser) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	docID := fmt.Sprintf("admin-doc-%d", len(r.users)+1)
	user.DocID = docID
	r.users[docID] = user
	return docID, nil
}

func (r *fakeAdminRepo) Delete(_ context.Context, docID string) error {
	if _, ok := r.users[docID]; !ok {
		return db.ErrNotFound
	}
	delete(r.users, docID)
	return nil
}

type fakeAuthCreator struct {
	created []string
	err     error
}

func (f *fakeAuthCreator) CreateUser(_ context.Context, _ *auth.UserToCreate) (*auth.UserRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	uid := fmt.Sprintf("uid-%d", len(f.created)+1)
	f.created = append(f.created, uid)
	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: uid}}, nil
}

type fakeEmpresaRepo struct {
	doc    *models.Empresa
	getErr error
}

func (r *fakeEmpresaRepo) Get(_ context.Context) (*models.Empresa, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.doc == nil {
		return nil, db.ErrNotFound
	}
	return r.doc, nil
}

func (r *fakeEmpresaRepo) Create(_ context.Context, empresa *models.Empresa) error {
	empresa.DocID = models.EmpresaDocID
	r.doc = empresa
	return nil
}

func (r *fakeEmpresaRepo) Update(_ context.Context, fields map[string]any) error {
	if r.doc == nil {
		return db.ErrNotFound
	}
	if v, ok := fields["mision"].(models.SeccionEmpresa); ok {
		r.doc.Mision = v
	}
	if v, ok := fields["vision"].(models.SeccionEmpresa); ok {
		r.doc.Vision = v
	}
	if v, ok := fields["sobreNosotros"].(models.SeccionEmpresa); ok {
		r.doc.SobreNosotros = v
	}
	if v, ok := fields["objetivos"].(models.SeccionEmpresa); ok {
		r.doc.Objetivos = v
	}
	return nil
}

type fakeImporter struct {
	nextIDs   map[string]int
	inserted  map[string][]map[string]any
	subDocs   map[string][]map[string]any
	insertErr error
}

func newFakeImporter() *fakeImporter {
	return &fakeImporter{
		nextIDs:  map[string]int{},
		inserted: map[string][]map[string]any{},
		subDocs:  map[string][]map[string]any{},
	}
}

func (f *fakeImporter) NextID(_ context.Context, collection string) (int, error) {
	f.nextIDs[collection]++
	return f.nextIDs[collection], nil
}

func (f *fakeImporter) InsertRaw(_ context.Context, collection string, doc map[string]any) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted[collection] = append(f.inserted[collection], doc)
	return fmt.Sprintf("%s-doc-%d", collection, len(f.inserted[collection])), nil
}

func (f *fakeImporter) InsertSubproductoRaw(_ context.Context, productoDocID string, doc map[string]any) (string, error) {
	f.subDocs[productoDocID] = append(f.subDocs[productoDocID], doc)
	return fmt.Sprintf("%s-sub-%d", productoDocID, len(f.subDocs[productoDocID])), nil
}

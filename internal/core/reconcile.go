package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// The live catalog carries a legacy misspelling of one ally: products
// written before the aliados collection existed hold the free-text brand
// "XS Solutions" where the canonical ally is named "X2 Solutions". The
// reconciler rewrites the legacy name and fills in the missing aliadoId
// references across productos and their subproductos. The alias stays
// hardcoded: it is a one-time data correction, not a runtime rule.
const legacyAliasMarca = "xs solutions"
const canonicalAliasMarca = "x2 solutions"

// ReconcileSummary holds the counters reported after a reconciliation run.
type ReconcileSummary struct {
	TotalProductos           int
	ProductosActualizados    int
	SubproductosActualizados int
	ProductosConAliado       int
	Errores                  int
}

// aliadoIndex resolves brand names to allies during a reconciliation pass.
type aliadoIndex struct {
	// canonical is the ally targeted by the legacy-alias correction.
	canonical *models.Aliado
	// byNombre maps lowercased nombre to the ally.
	byNombre map[string]*models.Aliado
}

// buildAliadoIndex prepares the lookup tables for a pass. It fails when
// the canonical ally cannot be found, since the alias correction would
// have nothing to point at.
func buildAliadoIndex(aliados []*models.Aliado) (*aliadoIndex, error) {
	idx := &aliadoIndex{byNombre: make(map[string]*models.Aliado, len(aliados))}
	for _, a := range aliados {
		lower := strings.ToLower(a.Nombre)
		idx.byNombre[lower] = a
		if idx.canonical == nil && (strings.Contains(lower, canonicalAliasMarca) || strings.Contains(lower, legacyAliasMarca)) {
			idx.canonical = a
		}
	}
	if idx.canonical == nil {
		return nil, fmt.Errorf("canonical ally for alias '%s' not found among %d aliados", legacyAliasMarca, len(aliados))
	}
	return idx, nil
}

func matchesLegacyAlias(marca string) bool {
	return marca != "" && strings.Contains(strings.ToLower(marca), legacyAliasMarca)
}

// planProducto computes the field updates for one product, plus the
// effective aliadoId and marca its subproducts inherit. The effective
// values are derived from the planned updates before they are applied, so
// a failed parent write does not change what the children receive.
//
// Rule order: an explicit legacy-alias match rewrites both marca and
// aliadoId; otherwise a product that already has an aliadoId is left
// alone; otherwise an exact (case-insensitive) nombre match fills in the
// missing aliadoId.
func planProducto(p *models.Producto, idx *aliadoIndex) (updates map[string]any, effAliadoID, effMarca string) {
	updates = map[string]any{}

	if matchesLegacyAlias(p.Marca) {
		updates["marca"] = idx.canonical.Nombre
		updates["aliadoId"] = idx.canonical.DocID
	} else if p.AliadoID == "" && p.Marca != "" {
		if a := idx.byNombre[strings.ToLower(p.Marca)]; a != nil {
			updates["aliadoId"] = a.DocID
		}
	}

	effAliadoID = p.AliadoID
	if v, ok := updates["aliadoId"].(string); ok {
		effAliadoID = v
	}
	effMarca = p.Marca
	if v, ok := updates["marca"].(string); ok {
		effMarca = v
	}
	if effMarca == "" && effAliadoID == idx.canonical.DocID {
		effMarca = idx.canonical.Nombre
	}

	if len(updates) == 0 {
		updates = nil
	}
	return updates, effAliadoID, effMarca
}

// planSubproducto computes the field updates for one subproduct. A direct
// legacy-alias match takes priority; next the subproduct inherits the
// parent's effective aliadoId when its own is missing or disagrees
// (together with the parent's marca when its own is empty or differs);
// finally an exact nombre match fills in a missing aliadoId.
func planSubproducto(sub *models.SubProducto, idx *aliadoIndex, parentAliadoID, parentMarca string) map[string]any {
	updates := map[string]any{}

	if matchesLegacyAlias(sub.Marca) {
		updates["marca"] = idx.canonical.Nombre
		updates["aliadoId"] = idx.canonical.DocID
	} else if parentAliadoID != "" && sub.AliadoID != parentAliadoID {
		updates["aliadoId"] = parentAliadoID
		if parentMarca != "" && sub.Marca != parentMarca {
			updates["marca"] = parentMarca
		}
	} else if sub.AliadoID == "" && sub.Marca != "" {
		if a := idx.byNombre[strings.ToLower(sub.Marca)]; a != nil {
			updates["aliadoId"] = a.DocID
		}
	}

	if len(updates) == 0 {
		return nil
	}
	return updates
}

// Reconciler aligns free-text marca fields with canonical aliadoId
// references across the whole catalog. It is meant to run as a single
// offline pass with no concurrent writers; a rerun after convergence
// performs zero writes.
type Reconciler struct {
	productoRepo db.ProductoRepository
	aliadoRepo   db.AliadoRepository
	logger       *zap.SugaredLogger
}

// NewReconciler creates a Reconciler over the given repositories.
func NewReconciler(pr db.ProductoRepository, ar db.AliadoRepository, logger *zap.SugaredLogger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Reconciler{productoRepo: pr, aliadoRepo: ar, logger: logger}
}

// Run executes one reconciliation pass. Per-record failures are logged and
// counted but do not abort the pass; only a failure to load the aliados or
// productos collections is fatal.
func (r *Reconciler) Run(ctx context.Context) (*ReconcileSummary, error) {
	aliados, err := r.aliadoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aliados: %w", err)
	}
	idx, err := buildAliadoIndex(aliados)
	if err != nil {
		return nil, err
	}
	r.logger.Infow("canonical ally resolved", "nombre", idx.canonical.Nombre, "docId", idx.canonical.DocID)

	productos, err := r.productoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load productos: %w", err)
	}

	summary := &ReconcileSummary{TotalProductos: len(productos)}
	for _, p := range productos {
		updates, effAliadoID, effMarca := planProducto(p, idx)

		if updates != nil {
			r.logger.Infow("updating producto", "nombre", p.Nombre, "docId", p.DocID, "updates", updates)
			if err := r.productoRepo.Update(ctx, p.DocID, updates); err != nil {
				r.logger.Errorw("failed to update producto", "docId", p.DocID, "error", err)
				summary.Errores++
			} else {
				summary.ProductosActualizados++
			}
		}

		if effAliadoID != "" && len(p.Subproductos) > 0 {
			summary.ProductosConAliado++
		}

		for _, sub := range p.Subproductos {
			subUpdates := planSubproducto(sub, idx, effAliadoID, effMarca)
			if subUpdates == nil {
				continue
			}
			r.logger.Infow("updating subproducto", "nombre", sub.Nombre, "docId", sub.DocID, "updates", subUpdates)
			if err := r.productoRepo.UpdateSubproducto(ctx, p.DocID, sub.DocID, subUpdates); err != nil {
				r.logger.Errorw("failed to update subproducto", "productoDocId", p.DocID, "docId", sub.DocID, "error", err)
				summary.Errores++
			} else {
				summary.SubproductosActualizados++
			}
		}
	}

	return summary, nil
}

package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"waterwises-admin-go/internal/db"
)

// ImportSummary holds the per-run counters of the catalog importer.
type ImportSummary struct {
	Created    int
	SubCreated int
	Errores    int
}

// CatalogImportService seeds collections from decoded JSON documents, the
// way the original one-shot migration scripts populated the store. Seed
// documents keep their own id when they carry one; documents without an id
// get the next sequential value for the target collection. Product seeds
// may nest their subproducts under a "subproductos" key.
type CatalogImportService struct {
	importer db.CatalogImporter
	logger   *zap.SugaredLogger
}

// NewCatalogImportService creates a new CatalogImportService.
func NewCatalogImportService(imp db.CatalogImporter, logger *zap.SugaredLogger) *CatalogImportService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CatalogImportService{importer: imp, logger: logger}
}

func docName(doc map[string]any) string {
	if s, ok := doc["nombre"].(string); ok && s != "" {
		return s
	}
	if s, ok := doc["titulo"].(string); ok && s != "" {
		return s
	}
	return "(sin nombre)"
}

func hasSeedID(doc map[string]any) bool {
	switch v := doc["id"].(type) {
	case float64:
		return v > 0
	case int:
		return v > 0
	case string:
		return v != ""
	default:
		return false
	}
}

// ImportCollection inserts the given documents into a top-level
// collection. Per-record failures are logged, counted, and skipped;
// the run keeps going (best-effort batch semantics).
func (s *CatalogImportService) ImportCollection(ctx context.Context, collection string, docs []map[string]any) ImportSummary {
	var summary ImportSummary
	for _, doc := range docs {
		if err := s.importDoc(ctx, collection, doc, &summary); err != nil {
			s.logger.Errorw("failed to import document", "collection", collection, "nombre", docName(doc), "error", err)
			summary.Errores++
		}
	}
	return summary
}

func (s *CatalogImportService) importDoc(ctx context.Context, collection string, doc map[string]any, summary *ImportSummary) error {
	// Subproducts are stored in a subcollection, never inline.
	subs, _ := doc["subproductos"].([]any)
	delete(doc, "subproductos")

	// Generated sub ids start above the highest seeded suffix so they
	// cannot collide with an explicit "sub-<n>" later in the list.
	nextSub := 0
	for _, raw := range subs {
		if sub, ok := raw.(map[string]any); ok {
			if id, ok := sub["id"].(string); ok {
				if n := db.SubIDNumber(id); n > nextSub {
					nextSub = n
				}
			}
		}
	}

	if !hasSeedID(doc) {
		id, err := s.importer.NextID(ctx, collection)
		if err != nil {
			return err
		}
		doc["id"] = id
	}

	s.logger.Infow("importing document", "collection", collection, "nombre", docName(doc), "id", doc["id"])
	docID, err := s.importer.InsertRaw(ctx, collection, doc)
	if err != nil {
		return err
	}
	summary.Created++

	for i, raw := range subs {
		sub, ok := raw.(map[string]any)
		if !ok {
			s.logger.Errorw("skipping malformed subproducto entry", "producto", docName(doc), "index", i)
			summary.Errores++
			continue
		}
		if !hasSeedID(sub) {
			nextSub++
			sub["id"] = fmt.Sprintf("sub-%d", nextSub)
		}
		if _, err := s.importer.InsertSubproductoRaw(ctx, docID, sub); err != nil {
			s.logger.Errorw("failed to import subproducto", "producto", docName(doc), "nombre", docName(sub), "error", err)
			summary.Errores++
			continue
		}
		summary.SubCreated++
	}
	return nil
}

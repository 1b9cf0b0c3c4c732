package db

import (
	"context"
	"fmt"
	"regexp"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Sequential integer IDs are assigned by scanning the target collection for
// the current maximum and adding one. The read-max-then-write sequence is
// not atomic: two concurrent creates can observe the same maximum and
// produce a duplicate id. The admin UI issues one write at a time, so this
// is accepted rather than coordinated with a counter document.

var trailingDigits = regexp.MustCompile(`\d+$`)

// NextSequentialID returns max(ids)+1, or 1 for an empty collection.
// Missing or non-numeric stored ids must be passed as 0.
func NextSequentialID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// NumericID coerces a stored id value to int. Documents written through
// the typed models hold integer ids, but documents seeded from JSON hold
// doubles (json.Decoder produces float64 and the client stores it as a
// double), so both numeric kinds must count toward the maximum. Anything
// else contributes 0.
func NumericID(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// SubIDNumber extracts the numeric component of a subproduct id of the form
// "sub-<n>" by matching trailing digits. IDs without a trailing number
// contribute 0, so they are ignored by the max computation.
func SubIDNumber(id string) int {
	m := trailingDigits.FindString(id)
	if m == "" {
		return 0
	}
	n := 0
	for _, c := range m {
		n = n*10 + int(c-'0')
	}
	return n
}

// nextID computes the next sequential integer id for a top-level
// collection. A failed read propagates: falling back to a default id here
// would silently collide with existing documents.
func nextID(ctx context.Context, coll *firestore.CollectionRef) (int, error) {
	iter := coll.Documents(ctx)
	defer iter.Stop()

	var ids []int
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to scan collection '%s' for next id: %w", coll.ID, err)
		}
		ids = append(ids, NumericID(doc.Data()["id"]))
	}
	return NextSequentialID(ids), nil
}

// nextSubID computes the next numeric suffix for a "sub-<n>" id within a
// product's subproductos subcollection.
func nextSubID(ctx context.Context, coll *firestore.CollectionRef) (int, error) {
	iter := coll.Documents(ctx)
	defer iter.Stop()

	var ids []int
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to scan subcollection '%s' for next id: %w", coll.ID, err)
		}
		raw, _ := doc.Data()["id"].(string)
		ids = append(ids, SubIDNumber(raw))
	}
	return NextSequentialID(ids), nil
}

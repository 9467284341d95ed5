// Package impl contains the implementation of the application's business logic.
package impl

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// slugify derives the URL identifier from a title: lowercase with each
// run of whitespace collapsed to a single dash. The mapping is not
// injective, so distinct titles can contend for one slug; the unique
// index on the slug column is the arbiter.
func slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// recycledSlug produces the opaque replacement slug written during a
// soft delete. It hashes the row ID and original slug so the value is
// stable, never collides with a human-readable slug in practice, and
// frees the original for reuse.
func recycledSlug(id int64, slug string) string {
	h := fnv.New64a()
	h.Write([]byte(slug))
	h.Write([]byte(strconv.FormatInt(id, 10)))

	return strconv.FormatUint(h.Sum64(), 10)
}

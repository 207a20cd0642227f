package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashRecord computes the deterministic content hash of one raw row. Keys
// are serialized in sorted order so the digest depends only on row content,
// never on the column ordering of the export that produced it. Re-imports of
// overlapping files therefore hash identical rows identically.
func HashRecord(rec map[string]string) string {
	// encoding/json marshals map keys in sorted order, which is exactly the
	// canonical serialization needed here.
	b, err := json.Marshal(rec)
	if err != nil {
		// A map[string]string cannot fail to marshal; keep the signature
		// convenient for callers.
		b = []byte("{}")
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Package dedup flags likely duplicate transactions, e.g. the same receipt
// imported once from a bank statement and once from a photo. Detection runs
// in two stages: exact fingerprint equality, then a fuzzy pass over merchant
// strings. It only reports candidates; deciding what to merge is up to the
// caller.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/dhruvm/spendwise/internal/model"
)

const (
	maxDaysApart   = 7
	fuzzyThreshold = 0.4
)

// Fingerprint hashes date, amount and normalized merchant into a stable
// identity: SHA256("{date}|{amount:.2f}|{lowercased trimmed merchant}").
func Fingerprint(tx model.Transaction) string {
	normalized := strings.ToLower(strings.TrimSpace(tx.Merchant))
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%.2f|%s", tx.Date, tx.Amount, normalized))
	return hex.EncodeToString(sum[:])
}

// CandidatePair is a possible duplicate with a similarity score in (0,1].
type CandidatePair struct {
	A          model.Transaction
	B          model.Transaction
	Similarity float64
}

// FindCandidates scans all pairs. Exact fingerprint matches score 1.0;
// otherwise a pair qualifies when the amounts are equal, the dates are at
// most a week apart and the normalized levenshtein distance between the
// merchant strings is under the fuzzy threshold.
func FindCandidates(txs []model.Transaction) []CandidatePair {
	var out []CandidatePair
	for i := 0; i < len(txs); i++ {
		for j := i + 1; j < len(txs); j++ {
			a, b := txs[i], txs[j]
			if Fingerprint(a) == Fingerprint(b) {
				out = append(out, CandidatePair{A: a, B: b, Similarity: 1})
				continue
			}
			if sim, ok := fuzzyMatch(a, b); ok {
				out = append(out, CandidatePair{A: a, B: b, Similarity: sim})
			}
		}
	}
	return out
}

func fuzzyMatch(a, b model.Transaction) (float64, bool) {
	if a.Amount != b.Amount {
		return 0, false
	}
	if daysApart(a.Date, b.Date) > maxDaysApart {
		return 0, false
	}
	ma := strings.ToUpper(strings.TrimSpace(a.Merchant))
	mb := strings.ToUpper(strings.TrimSpace(b.Merchant))
	maxlen := len(ma)
	if len(mb) > maxlen {
		maxlen = len(mb)
	}
	if maxlen == 0 {
		return 0, false
	}
	ratio := float64(levenshtein.ComputeDistance(ma, mb)) / float64(maxlen)
	if ratio >= fuzzyThreshold {
		return 0, false
	}
	return 1 - ratio, true
}

func daysApart(a, b string) int {
	da, errA := time.Parse("2006-01-02", a)
	db, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		return maxDaysApart + 1
	}
	d := da.Sub(db)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}

package badger

import (
	"fmt"

	"github.com/avallon/claimlens/core"
)

// Key prefixes for different data types
const (
	claimRecordPrefix = "clmrec"
)

// makeClaimRecordKey generates a key for a claim record by ID.
func makeClaimRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", claimRecordPrefix, id))
}

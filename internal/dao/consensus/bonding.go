// Package consensus holds the shared bonding consensus rules. Both functions
// must produce bit-identical results across all implementations; do not
// change them without a protocol version bump.
package consensus

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// HashFromOpReturnData derives the 20 byte bond hash from the raw OP_RETURN
// payload of a lockup transaction: RIPEMD-160 over the SHA-256 of the payload.
func HashFromOpReturnData(opReturnData []byte) []byte {
	sha := sha256.Sum256(opReturnData)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// IsLockTimeOver reports whether an unlock tx output became spendable.
// unlockBlockHeight is the height of the unlock tx plus the lock time of the
// bond; the boundary block itself already counts as unlocked.
func IsLockTimeOver(unlockBlockHeight, currentChainHeight int32) bool {
	return currentChainHeight >= unlockBlockHeight
}

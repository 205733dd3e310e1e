package vesting

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeLeaf returns the hex digest committing a single allocation entry.
// The preimage is "<project>|<user>|<percentage>" so the same triple always
// hashes to the same leaf regardless of who builds the tree.
func ComputeLeaf(project uint64, user string, percentage uint64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s|%d", project, user, percentage)))
	return hex.EncodeToString(sum[:])
}

// hashPair hashes two hex digests in sorted order, so verification needs no
// left/right direction bits alongside the proof.
func hashPair(a, b string) string {
	if b < a {
		a, b = b, a
	}
	sum := sha256.Sum256([]byte(a + b))
	return hex.EncodeToString(sum[:])
}

// VerifyProof folds the sibling path over the leaf and compares the result
// against the committed root.
func VerifyProof(leaf string, proof []string, root string) bool {
	computed := leaf
	for _, sibling := range proof {
		computed = hashPair(computed, sibling)
	}
	return computed == root
}

// BuildMerkleTree builds the tree bottom-up and returns the root together
// with one sibling path per input leaf, indexed like the input. An unpaired
// node at the end of a level is promoted unchanged, so its path simply skips
// that level.
func BuildMerkleTree(leaves []string) (string, [][]string) {
	if len(leaves) == 0 {
		return "", nil
	}

	proofs := make([][]string, len(leaves))
	positions := make([]int, len(leaves))
	for i := range leaves {
		positions[i] = i
	}

	level := make([]string, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		for leaf, pos := range positions {
			sibling := pos ^ 1
			if sibling < len(level) {
				proofs[leaf] = append(proofs[leaf], level[sibling])
			}
			positions[leaf] = pos / 2
		}

		next := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashPair(level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		level = next
	}

	return level[0], proofs
}

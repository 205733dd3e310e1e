package vesting_test

import (
	"fmt"
	"testing"

	"github.com/Chirpleyai/ChirpPadContracts/vesting"
	"github.com/stretchr/testify/require"
)

func treeLeaves(count int) []string {
	leaves := make([]string, count)
	for i := range leaves {
		user := fmt.Sprintf("0x%040x", i+1)
		leaves[i] = vesting.ComputeLeaf(1, user, uint64(i+1))
	}
	return leaves
}

func TestComputeLeafDeterministic(t *testing.T) {
	t.Parallel()

	leaf := vesting.ComputeLeaf(7, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 25)
	again := vesting.ComputeLeaf(7, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 25)
	require.Equal(t, leaf, again)
	require.Len(t, leaf, 64)

	otherPercentage := vesting.ComputeLeaf(7, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 26)
	require.NotEqual(t, leaf, otherPercentage)

	otherProject := vesting.ComputeLeaf(8, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 25)
	require.NotEqual(t, leaf, otherProject)
}

func TestBuildMerkleTreeEmpty(t *testing.T) {
	t.Parallel()

	root, proofs := vesting.BuildMerkleTree(nil)
	require.Empty(t, root)
	require.Nil(t, proofs)
}

func TestBuildMerkleTreeSingleLeaf(t *testing.T) {
	t.Parallel()

	leaves := treeLeaves(1)
	root, proofs := vesting.BuildMerkleTree(leaves)

	require.Equal(t, leaves[0], root)
	require.Len(t, proofs, 1)
	require.Empty(t, proofs[0])
	require.True(t, vesting.VerifyProof(leaves[0], proofs[0], root))
}

func TestBuildMerkleTreeRoundTrip(t *testing.T) {
	t.Parallel()

	// Odd and even sizes exercise both the paired and the promoted node
	// paths.
	for _, count := range []int{2, 3, 4, 5, 6, 7, 8} {
		count := count
		t.Run(fmt.Sprintf("%d leaves", count), func(t *testing.T) {
			t.Parallel()

			leaves := treeLeaves(count)
			root, proofs := vesting.BuildMerkleTree(leaves)
			require.Len(t, proofs, count)

			for i, leaf := range leaves {
				require.True(t, vesting.VerifyProof(leaf, proofs[i], root),
					"leaf %d must verify against the root", i)
			}
		})
	}
}

func TestVerifyProofRejectsWrongLeaf(t *testing.T) {
	t.Parallel()

	leaves := treeLeaves(5)
	root, proofs := vesting.BuildMerkleTree(leaves)

	imposter := vesting.ComputeLeaf(1, "0x9999999999999999999999999999999999999999", 99)
	for i := range leaves {
		require.False(t, vesting.VerifyProof(imposter, proofs[i], root))
	}
}

func TestVerifyProofRejectsTamperedProof(t *testing.T) {
	t.Parallel()

	leaves := treeLeaves(6)
	root, proofs := vesting.BuildMerkleTree(leaves)

	require.NotEmpty(t, proofs[2])
	tampered := make([]string, len(proofs[2]))
	copy(tampered, proofs[2])
	tampered[0] = vesting.ComputeLeaf(42, "0x9999999999999999999999999999999999999999", 1)

	require.False(t, vesting.VerifyProof(leaves[2], tampered, root))
}

func TestVerifyProofRejectsForeignProof(t *testing.T) {
	t.Parallel()

	leaves := treeLeaves(4)
	root, proofs := vesting.BuildMerkleTree(leaves)

	// A valid proof for one leaf must not verify another.
	require.False(t, vesting.VerifyProof(leaves[0], proofs[3], root))
}

package model

import "math/rand"

// splitIndices partitions [0,n) into train and test index sets using a
// seeded shuffle. The same n, fraction, and seed always produce the same
// partition.
func splitIndices(n int, testFraction float64, seed int64) (train, test []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	nTest := int(float64(n) * testFraction)
	if nTest == 0 && n > 1 {
		nTest = 1
	}

	test = append([]int(nil), perm[:nTest]...)
	train = append([]int(nil), perm[nTest:]...)
	return train, test
}

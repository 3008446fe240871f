package model

import "testing"

func TestSplitIndicesDeterministic(t *testing.T) {
	t.Parallel()

	trainA, testA := splitIndices(100, 0.2, 42)
	trainB, testB := splitIndices(100, 0.2, 42)

	if len(testA) != 20 || len(trainA) != 80 {
		t.Fatalf("unexpected partition sizes: train=%d test=%d", len(trainA), len(testA))
	}
	for i := range trainA {
		if trainA[i] != trainB[i] {
			t.Fatalf("train partition differs at %d: %d vs %d", i, trainA[i], trainB[i])
		}
	}
	for i := range testA {
		if testA[i] != testB[i] {
			t.Fatalf("test partition differs at %d: %d vs %d", i, testA[i], testB[i])
		}
	}
}

func TestSplitIndicesDisjointAndComplete(t *testing.T) {
	t.Parallel()

	train, test := splitIndices(10, 0.2, 42)

	seen := map[int]int{}
	for _, idx := range train {
		seen[idx]++
	}
	for _, idx := range test {
		seen[idx]++
	}

	if len(seen) != 10 {
		t.Fatalf("expected every index covered, got %d", len(seen))
	}
	for idx, count := range seen {
		if count != 1 {
			t.Fatalf("index %d appears %d times", idx, count)
		}
	}
}

func TestSplitIndicesSmallInputKeepsTestRow(t *testing.T) {
	t.Parallel()

	train, test := splitIndices(3, 0.2, 7)
	if len(test) != 1 || len(train) != 2 {
		t.Fatalf("expected 2/1 split for n=3, got train=%d test=%d", len(train), len(test))
	}
}

func TestSplitIndicesSeedChangesPartition(t *testing.T) {
	t.Parallel()

	_, testA := splitIndices(100, 0.2, 1)
	_, testB := splitIndices(100, 0.2, 2)

	same := len(testA) == len(testB)
	if same {
		for i := range testA {
			if testA[i] != testB[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatalf("different seeds produced identical partitions")
	}
}

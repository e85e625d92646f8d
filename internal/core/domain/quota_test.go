package domain

import "testing"

// TestSplitClicksEven covers the documented example: 1000 units at
// coefficient 3.0 spread over 3 campaigns.
func TestSplitClicksEven(t *testing.T) {
	total := RequiredClicks(1000, 3.0)
	if total != 3000 {
		t.Fatalf("expected 3000 required clicks, got %d", total)
	}
	quotas := SplitClicks(total, 3)
	for i, q := range quotas {
		if q != 1000 {
			t.Fatalf("quota %d: expected 1000, got %d", i, q)
		}
	}
}

// TestSplitClicksRemainder checks that the remainder goes to the first
// campaigns in order: 4000 over 3 -> {1334, 1333, 1333}.
func TestSplitClicksRemainder(t *testing.T) {
	quotas := SplitClicks(RequiredClicks(1000, 4.0), 3)
	want := []int64{1334, 1333, 1333}
	for i := range want {
		if quotas[i] != want[i] {
			t.Fatalf("quota %d: expected %d, got %d", i, want[i], quotas[i])
		}
	}
}

// TestSplitClicksConservation sweeps a range of totals and pool sizes and
// verifies the quotas always sum back to the total.
func TestSplitClicksConservation(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for total := int64(0); total < 100; total++ {
			quotas := SplitClicks(total, n)
			if len(quotas) != n {
				t.Fatalf("expected %d quotas, got %d", n, len(quotas))
			}
			var sum int64
			for _, q := range quotas {
				sum += q
			}
			if sum != total {
				t.Fatalf("total %d over %d campaigns: quotas sum to %d", total, n, sum)
			}
		}
	}
}

func TestSplitClicksEmptyPool(t *testing.T) {
	if quotas := SplitClicks(100, 0); quotas != nil {
		t.Fatalf("expected nil quotas for empty pool, got %v", quotas)
	}
}

func TestRequiredClicksRounding(t *testing.T) {
	if got := RequiredClicks(333, 3.0); got != 999 {
		t.Fatalf("expected 999, got %d", got)
	}
	// 0.5 rounds away from zero
	if got := RequiredClicks(1, 3.5); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

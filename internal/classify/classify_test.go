package classify

import (
	"testing"

	"github.com/icrphysics/RS-License-Viewer/internal/model"
)

// rec builds a record with usage counters for test tables.
func rec(feature, used, max string) model.LicenseRecord {
	return model.LicenseRecord{Feature: feature, Used: used, Max: max}
}

// TestFilterByName tests the ignore/protect name rules.
func TestFilterByName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		records []model.LicenseRecord
		ignore  []string
		protect []string
		want    []string
	}{
		{
			name:    "no rules keeps everything",
			records: []model.LicenseRecord{rec("rayArc", "1", "4"), rec("rayPlan", "2", "4")},
			want:    []string{"rayArc", "rayPlan"},
		},
		{
			name:    "ignore substring drops record",
			records: []model.LicenseRecord{rec("rayPhysicsBase", "1", "4"), rec("rayArc", "1", "4")},
			ignore:  []string{"rayPhysicsBase"},
			want:    []string{"rayArc"},
		},
		{
			name:    "ignore matches anywhere in the name",
			records: []model.LicenseRecord{rec("8_0_0-Clinical-rayArc", "1", "4")},
			ignore:  []string{"8_0_0"},
			want:    []string{},
		},
		{
			name:    "protect overrides ignore",
			records: []model.LicenseRecord{rec("rayPhysicsBaseSpecial", "1", "4")},
			ignore:  []string{"rayPhysicsBase"},
			protect: []string{"Special"},
			want:    []string{"rayPhysicsBaseSpecial"},
		},
		{
			name:    "protect wins regardless of which ignore entry matched",
			records: []model.LicenseRecord{rec("rayPlanKeep", "1", "4")},
			ignore:  []string{"rayPlan", "Keep"},
			protect: []string{"Keep"},
			want:    []string{"rayPlanKeep"},
		},
		{
			name:    "protect without ignore match is inert",
			records: []model.LicenseRecord{rec("rayArc", "1", "4")},
			protect: []string{"rayArc"},
			want:    []string{"rayArc"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := FilterByName(tc.records, tc.ignore, tc.protect)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d records, got %d", len(tc.want), len(got))
			}
			for i, w := range tc.want {
				if got[i].Feature != w {
					t.Errorf("record %d: expected %q, got %q", i, w, got[i].Feature)
				}
			}
		})
	}
}

// TestIsFullyUsed tests red classification.
func TestIsFullyUsed(t *testing.T) {
	t.Parallel()

	c := New(Thresholds{OrangeLimit: 1})

	testCases := []struct {
		name string
		rec  model.LicenseRecord
		want bool
	}{
		{"all seats used", rec("rayArc", "4", "4"), true},
		{"seats free", rec("rayArc", "3", "4"), false},
		{"zero of zero", rec("rayArc", "0", "0"), true},
		{"user list does not matter", model.LicenseRecord{Feature: "rayArc", Used: "4", Max: "4", Users: []string{"a", "b"}}, true},
		{"absent counters are never fully used", model.LicenseRecord{Feature: "rayArc"}, false},
		{"absent max only", model.LicenseRecord{Feature: "rayArc", Used: "4"}, false},
		{"non-numeric used", rec("rayArc", "four", "4"), false},
		{"non-numeric max", rec("rayArc", "4", "many"), false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := c.IsFullyUsed(tc.rec); got != tc.want {
				t.Errorf("IsFullyUsed(%+v) = %v, want %v", tc.rec, got, tc.want)
			}
		})
	}
}

// TestIsNearLimit tests orange classification including the
// single-capacity guard.
func TestIsNearLimit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		rec           model.LicenseRecord
		threshold     int
		triggerSingle bool
		want          bool
	}{
		{"one seat left at threshold one", rec("rayArc", "3", "4"), 1, false, true},
		{"two seats left at threshold one", rec("rayArc", "2", "4"), 1, false, false},
		{"zero seats left", rec("rayArc", "4", "4"), 1, false, true},
		{"single-capacity excluded by default", rec("rayArc", "0", "1"), 1, false, false},
		{"single-capacity included when triggered", rec("rayArc", "0", "1"), 1, true, true},
		{"capacity equal to threshold excluded", rec("rayArc", "0", "2"), 2, false, false},
		{"capacity above threshold included", rec("rayArc", "2", "3"), 1, false, true},
		{"absent counters never near limit", model.LicenseRecord{Feature: "rayArc"}, 1, false, false},
		{"non-numeric counters never near limit", rec("rayArc", "x", "4"), 1, false, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := New(Thresholds{OrangeLimit: tc.threshold, TriggerSingleCapacity: tc.triggerSingle})
			if got := c.IsNearLimit(tc.rec); got != tc.want {
				t.Errorf("IsNearLimit(%+v) = %v, want %v", tc.rec, got, tc.want)
			}
		})
	}
}

// TestExtractMatching tests the pure partition operation.
func TestExtractMatching(t *testing.T) {
	t.Parallel()

	t.Run("splits pool without losing records", func(t *testing.T) {
		t.Parallel()

		pool := []model.LicenseRecord{
			rec("a", "4", "4"),
			rec("b", "1", "4"),
			rec("c", "4", "4"),
		}

		matches, remaining := ExtractMatching(pool, func(r model.LicenseRecord) bool {
			return r.Used == r.Max
		})

		if len(matches)+len(remaining) != len(pool) {
			t.Fatalf("partition lost records: %d + %d != %d", len(matches), len(remaining), len(pool))
		}
		if len(matches) != 2 || matches[0].Feature != "a" || matches[1].Feature != "c" {
			t.Errorf("unexpected matches: %+v", matches)
		}
		if len(remaining) != 1 || remaining[0].Feature != "b" {
			t.Errorf("unexpected remaining: %+v", remaining)
		}
	})

	t.Run("input pool is untouched", func(t *testing.T) {
		t.Parallel()

		pool := []model.LicenseRecord{rec("a", "4", "4"), rec("b", "1", "4")}
		ExtractMatching(pool, func(model.LicenseRecord) bool { return true })

		if pool[0].Feature != "a" || pool[1].Feature != "b" {
			t.Errorf("input pool was mutated: %+v", pool)
		}
	})

	t.Run("duplicate feature names are evaluated independently", func(t *testing.T) {
		t.Parallel()

		// Two records sharing a name must not confuse the split; each goes
		// where its own counters dictate.
		pool := []model.LicenseRecord{rec("dup", "4", "4"), rec("dup", "1", "4")}

		matches, remaining := ExtractMatching(pool, func(r model.LicenseRecord) bool {
			return r.Used == r.Max
		})

		if len(matches) != 1 || matches[0].Used != "4" {
			t.Errorf("unexpected matches: %+v", matches)
		}
		if len(remaining) != 1 || remaining[0].Used != "1" {
			t.Errorf("unexpected remaining: %+v", remaining)
		}
	})
}

// TestPartition tests the full red/orange/green split.
func TestPartition(t *testing.T) {
	t.Parallel()

	t.Run("exhaustive and disjoint", func(t *testing.T) {
		t.Parallel()

		pool := []model.LicenseRecord{
			rec("full", "4", "4"),
			rec("near", "3", "4"),
			rec("healthy", "1", "4"),
			rec("single", "0", "1"),
		}

		c := New(Thresholds{OrangeLimit: 1})
		buckets := c.Partition(pool)

		total := len(buckets.Red) + len(buckets.Orange) + len(buckets.Green)
		if total != len(pool) {
			t.Fatalf("expected %d records across buckets, got %d", len(pool), total)
		}

		if len(buckets.Red) != 1 || buckets.Red[0].Feature != "full" {
			t.Errorf("unexpected red bucket: %+v", buckets.Red)
		}
		if len(buckets.Orange) != 1 || buckets.Orange[0].Feature != "near" {
			t.Errorf("unexpected orange bucket: %+v", buckets.Orange)
		}
		if len(buckets.Green) != 2 {
			t.Errorf("unexpected green bucket: %+v", buckets.Green)
		}
	})

	t.Run("fully used record is red only, never double counted", func(t *testing.T) {
		t.Parallel()

		// A fully used feature also satisfies the near-limit predicate;
		// red extraction must win because it runs first.
		pool := []model.LicenseRecord{rec("full", "4", "4")}

		c := New(Thresholds{OrangeLimit: 1})
		buckets := c.Partition(pool)

		if len(buckets.Red) != 1 {
			t.Errorf("expected record in red, got %+v", buckets)
		}
		if len(buckets.Orange) != 0 {
			t.Errorf("record double counted in orange: %+v", buckets.Orange)
		}
	})

	t.Run("records with conversion faults stay green", func(t *testing.T) {
		t.Parallel()

		pool := []model.LicenseRecord{
			rec("bad", "NaN", "4"),
			{Feature: "gap"},
		}

		c := New(Thresholds{OrangeLimit: 1})
		buckets := c.Partition(pool)

		if len(buckets.Green) != 2 {
			t.Errorf("expected faulty records in green, got %+v", buckets)
		}
	})

	t.Run("empty pool yields empty buckets", func(t *testing.T) {
		t.Parallel()

		c := New(Thresholds{OrangeLimit: 1})
		buckets := c.Partition(nil)

		if len(buckets.Red)+len(buckets.Orange)+len(buckets.Green) != 0 {
			t.Errorf("expected empty buckets, got %+v", buckets)
		}
	})
}

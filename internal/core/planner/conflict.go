package planner

import "github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// intervals do not overlap.
func Overlaps(a, b domain.Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// HasConflict reports whether candidate overlaps any block in existing, ignoring
// the block whose ID equals excludeID. The result is advisory.
func HasConflict(candidate domain.Interval, existing []domain.TimeBlock, excludeID string) bool {
	for _, block := range existing {
		if excludeID != "" && block.ID == excludeID {
			continue
		}
		if Overlaps(candidate, block.Interval()) {
			return true
		}
	}
	return false
}

// Conflicts returns every block in existing that overlaps candidate.
func Conflicts(candidate domain.Interval, existing []domain.TimeBlock, excludeID string) []domain.TimeBlock {
	var out []domain.TimeBlock
	for _, block := range existing {
		if excludeID != "" && block.ID == excludeID {
			continue
		}
		if Overlaps(candidate, block.Interval()) {
			out = append(out, block)
		}
	}
	return out
}

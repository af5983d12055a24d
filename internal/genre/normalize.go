package genre

import "strings"

// Translate maps a raw genre string, typically from an external metadata
// source, onto the canonical set. Matching tiers, first hit wins:
//
//  1. empty input -> catch-all
//  2. already canonical -> returned as-is
//  3. exact synonym match
//  4. case-insensitive synonym match
//  5. segment split on "/", "&" and " - ", exact then case-insensitive
//     match per segment in order
//  6. longest-key-wins substring match across all segments, bidirectional
//     and case-insensitive (ties broken by lexicographic key order)
//  7. catch-all
//
// The result is always a member of the canonical set, so Translate is
// idempotent: Translate(Translate(x)) == Translate(x).
func Translate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CatchAll
	}

	if IsCanonical(trimmed) {
		return trimmed
	}

	if canonical, ok := synonyms[trimmed]; ok {
		return canonical
	}
	if canonical, ok := foldedSynonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}

	segments := splitSegments(trimmed)
	for _, seg := range segments {
		if IsCanonical(seg) {
			return seg
		}
		if canonical, ok := synonyms[seg]; ok {
			return canonical
		}
		if canonical, ok := foldedSynonyms[strings.ToLower(seg)]; ok {
			return canonical
		}
	}

	if canonical, ok := longestSubstringMatch(segments); ok {
		return canonical
	}

	return CatchAll
}

// Normalize returns value unchanged when it is already canonical and
// translates it otherwise. This is what the stores call before assigning
// Book.Genre.
func Normalize(value string) string {
	if IsCanonical(value) {
		return value
	}
	return Translate(value)
}

// splitSegments breaks a multi-part category string such as
// "Juvenile Fiction / Fantasy / Epic" into its parts. Separators are "/",
// "&" and hyphens surrounded by spaces; bare hyphens inside words
// ("Sci-Fi") are kept.
func splitSegments(s string) []string {
	normalized := strings.ReplaceAll(s, " - ", "/")
	normalized = strings.ReplaceAll(normalized, "&", "/")

	parts := strings.Split(normalized, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) == 0 {
		return []string{strings.TrimSpace(s)}
	}
	return segments
}

// longestSubstringMatch scans the synonym table for keys that contain, or
// are contained in, any segment. The entry with the longest key wins so
// "Science Fiction" beats "Fiction" for the segment "Science Fiction";
// equal-length candidates fall back to lexicographic key order to keep the
// result independent of map iteration order.
func longestSubstringMatch(segments []string) (string, bool) {
	// Very short strings make containment checks meaningless.
	const minLen = 3

	folded := make([]string, 0, len(segments))
	for _, seg := range segments {
		if s := strings.ToLower(seg); len(s) >= minLen {
			folded = append(folded, s)
		}
	}

	var bestKey, bestCanonical string
	for raw, canonical := range synonyms {
		key := strings.ToLower(raw)
		if len(key) < minLen {
			continue
		}
		for _, seg := range folded {
			if !strings.Contains(seg, key) && !strings.Contains(key, seg) {
				continue
			}
			if len(key) > len(bestKey) || (len(key) == len(bestKey) && key < bestKey) {
				bestKey, bestCanonical = key, canonical
			}
			break
		}
	}

	return bestCanonical, bestKey != ""
}

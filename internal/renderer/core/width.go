package core

import "github.com/rivo/uniseg"

// StringWidth returns the number of terminal columns s occupies,
// counting grapheme clusters and East Asian wide characters.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// RuneWidth returns the display width of a single rune.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}

// Truncate shortens s to at most width columns, keeping whole grapheme
// clusters. When keepRight is set the leftmost clusters are dropped.
func Truncate(s string, width int, keepRight bool) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(s) <= width {
		return s
	}

	var clusters []string
	var widths []int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
		widths = append(widths, g.Width())
	}

	used := 0
	if keepRight {
		i := len(clusters)
		for i > 0 && used+widths[i-1] <= width {
			i--
			used += widths[i]
		}
		return joinClusters(clusters[i:])
	}
	i := 0
	for i < len(clusters) && used+widths[i] <= width {
		used += widths[i]
		i++
	}
	return joinClusters(clusters[:i])
}

func joinClusters(cs []string) string {
	n := 0
	for _, c := range cs {
		n += len(c)
	}
	b := make([]byte, 0, n)
	for _, c := range cs {
		b = append(b, c...)
	}
	return string(b)
}

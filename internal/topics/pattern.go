package topics

import "regexp"

// Three line shapes, matched per line and case-insensitively:
//
//	Unit 3: Sorting        (unit|module|section|part, number, title remainder)
//	2. Binary Search       (numbered list item)
//	- Recursion            (bulleted list item)
//
// List-item titles are letters, blanks and commas. Blank runs are [ \t] rather
// than \s so a match never spills onto the next line.
var syllabusLinePattern = regexp.MustCompile(
	`(?im)^[ \t]*(?:unit|module|section|part)[ \t]*\d+[:. \t-]*[ \t]*(.+)` +
		`|^[ \t]*\d+\.[ \t]+([A-Za-z \t,]+)` +
		`|^[ \t]*-[ \t]+([A-Za-z \t,]+)`,
)

// PatternExtractor is the regular-expression heuristic. It says nothing about
// whether a numbered line is a list item or a sentence that happens to start
// with a number.
type PatternExtractor struct {
	pattern *regexp.Regexp
}

func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{pattern: syllabusLinePattern}
}

// Candidates returns the first non-empty capture of every match, in text order.
func (p *PatternExtractor) Candidates(text string) []string {
	var candidates []string
	for _, groups := range p.pattern.FindAllStringSubmatch(text, -1) {
		for _, g := range groups[1:] {
			if g != "" {
				candidates = append(candidates, g)
				break
			}
		}
	}
	return candidates
}

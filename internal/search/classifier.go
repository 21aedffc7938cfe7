package search

import (
	"regexp"
	"sort"
)

// ClassificationResult carries the tags derived from a posting's text.
// Stacks are sorted for determinism; Seniority and WorkMode are empty when
// no rule matched.
type ClassificationResult struct {
	Stacks    []string
	Seniority string
	WorkMode  string
}

type taggedPattern struct {
	tag string
	re  *regexp.Regexp
}

// Seniority rules are evaluated in this exact order and a later match
// overwrites an earlier one, so the highest-precedence tag wins: a posting
// mentioning both "junior" and "senior" classifies as "senior".
var seniorityRules = []taggedPattern{
	{"intern", regexp.MustCompile(`\b(estagio|estagiario|intern(ship)?)\b`)},
	{"junior", regexp.MustCompile(`\b(junior|jr)\b`)},
	{"mid", regexp.MustCompile(`\b(pleno|mid|middle)\b`)},
	{"senior", regexp.MustCompile(`\b(senior|sr)\b`)},
	{"lead", regexp.MustCompile(`\b(lead|tech lead|principal|staff|head)\b`)},
}

// Work-mode rules are evaluated in this constant order and the first match
// wins; a posting gets at most one work mode.
var workModeRules = []taggedPattern{
	{"remote", regexp.MustCompile(`\b(100%\s*)?(remote|remoto|work\s*from\s*home|anywhere)\b`)},
	{"hybrid", regexp.MustCompile(`\b(hybrid|hibrido)\b`)},
	{"onsite", regexp.MustCompile(`\b(onsite|on-site|presencial)\b`)},
}

// Classifier derives stack, seniority and work-mode tags from posting text.
// Stack patterns are compiled once per catalog at startup.
type Classifier struct {
	stacks []taggedPattern
}

func NewClassifier(cat *Catalog) *Classifier {
	c := &Classifier{}
	for _, stack := range cat.Stacks() {
		c.stacks = append(c.stacks, taggedPattern{
			tag: stack,
			re:  regexp.MustCompile(`\b` + regexp.QuoteMeta(stack) + `\b`),
		})
	}
	return c
}

// Classify loose-normalizes the text and applies the rule tables. It is a
// pure function of its input: identical text yields identical output.
func (c *Classifier) Classify(text string) ClassificationResult {
	folded := NormalizeLoose(text)

	var res ClassificationResult

	// Whole-word matches only, so "golang" never also tags "go".
	for _, p := range c.stacks {
		if p.re.MatchString(folded) {
			res.Stacks = append(res.Stacks, p.tag)
		}
	}
	sort.Strings(res.Stacks)

	for _, p := range seniorityRules {
		if p.re.MatchString(folded) {
			res.Seniority = p.tag
		}
	}

	for _, p := range workModeRules {
		if p.re.MatchString(folded) {
			res.WorkMode = p.tag
			break
		}
	}

	return res
}

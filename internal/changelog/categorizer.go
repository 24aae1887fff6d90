package changelog

import (
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/Tomas-vilte/MateChangelog/internal/regex"
)

type keywordRule struct {
	pattern  *regexp.Regexp
	category models.Category
}

// keywordLadder is checked top to bottom; the first hit wins, so the order
// decides which section a subject matching several keywords lands in.
var keywordLadder = []keywordRule{
	{regex.FixKeywords, models.CategoryFix},
	{regex.FeatKeywords, models.CategoryFeat},
	{regex.DocsKeywords, models.CategoryDocs},
	{regex.TestKeywords, models.CategoryTest},
	{regex.RefactorKeywords, models.CategoryRefactor},
	{regex.StyleKeywords, models.CategoryStyle},
	{regex.PerfKeywords, models.CategoryPerf},
	{regex.ChoreKeywords, models.CategoryChore},
}

// Categorize assigns exactly one category to the commit based on its subject:
// a recognized conventional-commit type first, then the keyword ladder.
func Categorize(commit models.Commit) models.Category {
	subject := strings.ToLower(commit.Subject)

	if matches := regex.ConventionalCommit.FindStringSubmatch(subject); len(matches) > 0 {
		if models.IsConventionalType(matches[1]) {
			return models.Category(matches[1])
		}
	}

	for _, rule := range keywordLadder {
		if rule.pattern.MatchString(subject) {
			return rule.category
		}
	}

	return models.CategoryOther
}

// GroupByCategory buckets commits per category, preserving input order inside
// each bucket.
func GroupByCategory(commits []models.Commit) map[models.Category][]models.Commit {
	groups := make(map[models.Category][]models.Commit)
	for _, commit := range commits {
		category := Categorize(commit)
		groups[category] = append(groups[category], commit)
	}
	return groups
}

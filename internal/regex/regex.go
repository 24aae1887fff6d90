package regex

import "regexp"

var (
	// Commit subject patterns. ConventionalCommit accepts any word token as the
	// type; callers decide whether the token is a recognized one.
	ConventionalCommit = regexp.MustCompile(`^(\w+)(\(.+\))?\s*:\s*(.+)`)
	ConventionalPrefix = regexp.MustCompile(`^\w+(\([^)]*\))?!?\s*:\s*`)

	// Keyword ladder, checked in this order against the lowercased subject.
	FixKeywords      = regexp.MustCompile(`fix|bug|patch`)
	FeatKeywords     = regexp.MustCompile(`feat|add|implement`)
	DocsKeywords     = regexp.MustCompile(`doc|readme`)
	TestKeywords     = regexp.MustCompile(`test|spec`)
	RefactorKeywords = regexp.MustCompile(`refactor|restructure`)
	StyleKeywords    = regexp.MustCompile(`style|format`)
	PerfKeywords     = regexp.MustCompile(`perf|optimize`)
	ChoreKeywords    = regexp.MustCompile(`chore|update|bump`)

	// Date filters accepted by the in-process backend.
	ISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

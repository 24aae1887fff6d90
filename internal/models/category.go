package models

// Category is the changelog section a commit is grouped under.
type Category string

const (
	CategoryFeat     Category = "feat"
	CategoryFix      Category = "fix"
	CategoryDocs     Category = "docs"
	CategoryStyle    Category = "style"
	CategoryRefactor Category = "refactor"
	CategoryPerf     Category = "perf"
	CategoryTest     Category = "test"
	CategoryChore    Category = "chore"
	CategoryCI       Category = "ci"
	CategoryBuild    Category = "build"
	CategoryRevert   Category = "revert"
	CategoryOther    Category = "other"
)

var categoryNames = map[Category]string{
	CategoryFeat:     "Features",
	CategoryFix:      "Bug Fixes",
	CategoryDocs:     "Documentation",
	CategoryStyle:    "Styles",
	CategoryRefactor: "Code Refactoring",
	CategoryPerf:     "Performance Improvements",
	CategoryTest:     "Tests",
	CategoryChore:    "Chores",
	CategoryCI:       "CI/CD",
	CategoryBuild:    "Build System",
	CategoryRevert:   "Reverts",
	CategoryOther:    "Other",
}

// CategoryOrder is the order sections appear in the markdown changelog.
func CategoryOrder() []Category {
	return []Category{
		CategoryFeat,
		CategoryFix,
		CategoryPerf,
		CategoryRefactor,
		CategoryDocs,
		CategoryStyle,
		CategoryTest,
		CategoryChore,
		CategoryCI,
		CategoryBuild,
		CategoryRevert,
		CategoryOther,
	}
}

// DisplayName returns the section heading for the category.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryOther]
}

// IsConventionalType reports whether token is one of the recognized
// conventional-commit types ("other" is not).
func IsConventionalType(token string) bool {
	c := Category(token)
	if c == CategoryOther {
		return false
	}
	_, ok := categoryNames[c]
	return ok
}

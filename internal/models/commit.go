package models

type (
	// Commit is one record of the git log, in the order git returned it.
	Commit struct {
		Hash    string `json:"hash"`
		Subject string `json:"subject"`
		Author  string `json:"author"`
		Date    string `json:"date"`
		Body    string `json:"body"`
	}

	// LogOptions are the filters passed to the log fetcher.
	LogOptions struct {
		Since    string
		Until    string
		Branch   string
		MaxCount int
		RepoPath string
	}
)

const DefaultBranch = "HEAD"

// ShortHash returns the first 8 characters of the hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// RevisionOrDefault returns the branch to read, HEAD when none was given.
func (o LogOptions) RevisionOrDefault() string {
	if o.Branch == "" {
		return DefaultBranch
	}
	return o.Branch
}

package classifier

// DefaultMediumPatterns are the path and repository-name fragments that mark
// a finding as likely test or example material rather than a live credential.
// Matching is case-insensitive substring matching.
var DefaultMediumPatterns = []string{
	"example",
	"demo",
	"test",
	"tests",
	"testing",
	"sample",
	"samples",
	"mock",
	"fixture",
	"playground",
	"tutorial",
	"skeleton",
	"template",
	"stub",
	"dummy",
	"spec",
}

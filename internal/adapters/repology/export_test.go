package repology

// Export functions for testing
var (
	ExtractSearch  = extractSearch
	ExtractProject = extractProject
)

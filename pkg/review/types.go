// File: pkg/review/types.go
package review

// DefaultExtensions is the extension set recognized as source files when the
// configuration does not override it: Swift sources, headers, and
// Objective-C implementation files.
var DefaultExtensions = []string{".swift", ".h", ".m"}

// ReportSuffix is appended to a project name to form its report file name.
const ReportSuffix = "_code_review.txt"

// Config holds the settings for one analysis run.
type Config struct {
	BaseFolder    string   // Directory containing the project directories.
	Extensions    []string // File name suffixes selected for extraction.
	Exclude       []string // Glob patterns pruned from traversal.
	MaxFileSizeKB int      // Maximum size of files to process in KB; 0 disables the limit.
}

// Record is one report entry for a processed source file.
type Record struct {
	Category string   // Folder-derived label within the project.
	FilePath string   // Full path of the source file.
	Lines    []string // Filtered content lines, terminators included.
}

// ProjectStat summarizes one project for the projects listing.
type ProjectStat struct {
	Name        string // Project directory name.
	SourceFiles int    // Files matching the extension set.
	Records     int    // Records already present in the report.
	HasReport   bool   // Whether the report file exists.
}

package model

// Report records the outcome of one edit applied to one file.
type Report struct {
	Source File
	Edit   string
	Status EditStatus
	Diff   *string
}

// FileResult holds the reports produced for a single source file.
type FileResult struct {
	Source  File
	Code    string
	Reports []Report
}

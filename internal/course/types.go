package course

// --- UseCase Inputs ---

// UploadInput is an uploaded outline file.
type UploadInput struct {
	FileName string
	PDF      []byte
}

// --- UseCase Outputs ---

// ExportICSOutput is a rendered iCalendar file.
type ExportICSOutput struct {
	FileName string
	Content  string
}

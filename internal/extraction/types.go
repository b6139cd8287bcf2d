package extraction

// ExtractInput is the uploaded outline.
type ExtractInput struct {
	FileName string
	PDF      []byte
}

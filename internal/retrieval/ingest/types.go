package ingest

const (
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 200
	DefaultBatchSize    = 64
)

// File types recorded in chunk metadata.
const (
	FileTypeText = "text"
	FileTypePDF  = "pdf"
)

// Options controls chunking and how many chunks go to the writer at once.
type Options struct {
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
}

// Request describes one collection to (re)build from a directory.
type Request struct {
	CollectionKey string
	Dir           string
	Clear         bool
}

// Result counts what was written.
type Result struct {
	Files  int
	Chunks int
}

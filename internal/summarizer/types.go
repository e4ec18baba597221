package summarizer

// EmptyCollectionAnswer is returned when a collection has nothing to summarize.
const EmptyCollectionAnswer = "No documents found in this collection."

// DefaultMaxCharsPerBatch bounds the text sent in one batch call.
const DefaultMaxCharsPerBatch = 2500

// Options selects the models for each stage.
type Options struct {
	BatchModel       string
	FinalModel       string
	MaxCharsPerBatch int
}

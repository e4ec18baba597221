package usecase

// Log prefixes
const (
	logPrefixHandle = "internal.orchestrator.usecase.Handle"
	logPrefixQA     = "internal.orchestrator.usecase.answerQuestion"
)

const (
	unknownSender    = "(unknown sender)"
	emailStubMessage = "(email_latest stub) I detected that you want the latest email from '%s', " +
		"but the email integration is not wired into the orchestrator yet."
)

// Speculative retrieval outcomes reported to metrics
const (
	speculativeReused    = "reused"
	speculativeDiscarded = "discarded"
	speculativeEmpty     = "empty"
)

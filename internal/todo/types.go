package todo

// --- UseCase Inputs ---

type AddInput struct {
	Text string
	Date string
}

type UpdateInput struct {
	ID   int64
	Text string
	Date string
}

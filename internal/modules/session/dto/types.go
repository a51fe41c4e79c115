package dto

type RecordOutput struct {
	Command  string
	Calories float64
}

type RunOutput struct {
	Records []RecordOutput
	// Closed is set when input ended before the exit command.
	Closed bool
}

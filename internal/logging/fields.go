package logging

const (
	// FieldComponent names the subsystem that emitted the record.
	FieldComponent = "component"
	// FieldRunID carries the build run identifier.
	FieldRunID = "run_id"
	// FieldDataset carries the dataset label.
	FieldDataset = "dataset"
	// FieldModel carries the similarity model, optionally with its parameter.
	FieldModel = "model"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldAlert flags anomalies that should stand out.
	FieldAlert = "alert"
)

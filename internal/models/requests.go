package models

// CreateExerciseRequest is the body of a catalog insert.
type CreateExerciseRequest struct {
	Activity    string `json:"activity" binding:"required" example:"Running"`
	Description string `json:"description" example:"morning"`
}

// ExerciseLogPayload uses pointers so that an absent key can be told apart
// from a zero value. A JSON null counts as absent.
type ExerciseLogPayload struct {
	ID         *uint   `json:"id,omitempty" example:"3"`
	Duration   *string `json:"duration,omitempty" example:"30"`
	Intensity  *string `json:"intensity,omitempty" example:"Moderate"`
	ExerciseID *uint   `json:"exerciseId,omitempty" example:"1"`
}

// UpdateExerciseLogRequest edits an entry when exerciseLog.id is present and creates one otherwise.
type UpdateExerciseLogRequest struct {
	// ID is the parent log id, read only when a new entry is created.
	ID          *uint               `json:"id,omitempty" example:"7"`
	ExerciseLog *ExerciseLogPayload `json:"exerciseLog" binding:"required"`
}

// ExerciseLogIDRequest addresses an entry or a parent log by id. Zero is a
// valid id, only a missing or null key is rejected.
type ExerciseLogIDRequest struct {
	ID *uint `json:"id" binding:"required" example:"3"`
}

// MessageResponse is the confirmation body of a successful delete.
type MessageResponse struct {
	Message string `json:"message" example:"Successfully deleted"`
}

// ErrorResponse documents the JSON error envelope.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"exercise log 3 not found"`
}

package manage_participants

// AddParticipantRequest is the HTTP request model.
type AddParticipantRequest struct {
	UserID int64 `json:"userId"`
}

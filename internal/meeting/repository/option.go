package repository

// CreateMeetingOptions holds parameters for persisting a meeting descriptor.
type CreateMeetingOptions struct {
	SessionID string
	EventID   string
	Subject   string
	StartTime string
	EndTime   string
	JoinLink  string
}

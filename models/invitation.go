package models

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationRejected InvitationStatus = "REJECTED"
)

/*
 * 'Invitation' is an invitation from one player to another to play a game.
 * SessionID is set by the server once the invitation is accepted.
 */
type Invitation struct {
	ID        string           `json:"id"`
	InviterID string           `json:"inviterId"`
	InviteeID string           `json:"inviteeId"`
	GameID    string           `json:"gameId"`
	Status    InvitationStatus `json:"status"`
	SessionID string           `json:"sessionId,omitempty"`
}

type NewInvitation struct {
	InviterID string `json:"inviterId"`
	InviteeID string `json:"inviteeId"`
	GameID    string `json:"gameId"`
}

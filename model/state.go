package model

// Stage ...
type Stage int

const (
	// StageNone nothing sent yet
	StageNone Stage = 0

	// StageInitialSent initial message sent
	StageInitialSent Stage = 1

	// StageFollowUp1Sent first follow-up sent
	StageFollowUp1Sent Stage = 2

	// StageFollowUp2Sent second follow-up sent, terminal
	StageFollowUp2Sent Stage = 3
)

// CampaignState is the durable per-contact campaign record, keyed by the
// contact's match key. The zero value is a fresh record.
type CampaignState struct {
	StartedAt *int64 `json:"started_at"`
	Stage     Stage  `json:"stage"`
	NextDue   *int64 `json:"next_due"`
	Halted    bool   `json:"halted"`
}

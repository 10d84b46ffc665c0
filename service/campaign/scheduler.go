package campaign

import (
	"context"
	"time"

	"github.com/QuangTung97/textdrip/model"
	"github.com/QuangTung97/textdrip/pkg/msgfmt"
)

const secondsPerDay = 86400

// Action is the scheduler's decision for one contact: the state to record,
// and the message to deliver when Send is true.
type Action struct {
	Message string
	State   model.CampaignState
	Send    bool
}

// Scheduler decides the next campaign step for a single contact. It never
// persists anything itself.
type Scheduler interface {
	Next(ctx context.Context, contact model.Contact, state model.CampaignState, now time.Time) Action
}

type schedulerImpl struct {
	oracle Oracle
}

// NewScheduler ...
func NewScheduler(oracle Oracle) Scheduler {
	return &schedulerImpl{oracle: oracle}
}

// Next ...
func (s *schedulerImpl) Next(
	ctx context.Context, contact model.Contact, state model.CampaignState, now time.Time,
) Action {
	if state.Halted {
		return Action{State: state}
	}

	// halted is one-way: once a reply is recorded the oracle is never
	// consulted again, even if it would later report no reply
	if state.StartedAt != nil && s.oracle.HasReplySince(ctx, contact.MatchKey, *state.StartedAt) {
		state.Halted = true
		return Action{State: state}
	}

	nowUnix := now.Unix()

	switch {
	case state.Stage == model.StageNone && contact.Msg1 != "":
		state.StartedAt = &nowUnix
		state.Stage = model.StageInitialSent
		state.NextDue = followUpDue(nowUnix, contact.Fup1Days, contact.Fup1Msg)
		return Action{
			Message: msgfmt.Format(contact.Msg1, contact.Fields),
			State:   state,
			Send:    true,
		}

	case state.Stage == model.StageInitialSent && contact.Fup1Msg != "" && isDue(state.NextDue, nowUnix):
		state.Stage = model.StageFollowUp1Sent
		state.NextDue = followUpDue(nowUnix, contact.Fup2Days, contact.Fup2Msg)
		return Action{
			Message: msgfmt.Format(contact.Fup1Msg, contact.Fields),
			State:   state,
			Send:    true,
		}

	case state.Stage == model.StageFollowUp1Sent && contact.Fup2Msg != "" && isDue(state.NextDue, nowUnix):
		state.Stage = model.StageFollowUp2Sent
		state.NextDue = nil
		return Action{
			Message: msgfmt.Format(contact.Fup2Msg, contact.Fields),
			State:   state,
			Send:    true,
		}
	}

	return Action{State: state}
}

// followUpDue schedules the next follow-up, or nothing when its template
// is empty.
func followUpDue(nowUnix int64, days int, template string) *int64 {
	if template == "" {
		return nil
	}
	due := nowUnix + int64(days)*secondsPerDay
	return &due
}

func isDue(nextDue *int64, nowUnix int64) bool {
	return nextDue != nil && *nextDue <= nowUnix
}

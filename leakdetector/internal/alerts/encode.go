package alerts

import (
	"errors"
	"fmt"

	"profit_leak/leakdetector/fbs/LeakMessages"

	flatbuffers "github.com/google/flatbuffers/go"
)

// Alert is the message broadcast when an analysis finds leaks.
type Alert struct {
	AlertID    string
	BusinessID string
	Revenue    float64
	TrueProfit float64
	Timestamp  int64
	Leaks      []AlertLeak
}

// AlertLeak is one ranked leak inside an Alert. Rank starts at 1.
type AlertLeak struct {
	Name   string
	Amount float64
	Action string
	Rank   int32
}

// Encode serializes an alert into a LeakMessages.LeakAlert flatbuffer.
func Encode(a Alert) []byte {
	builder := flatbuffers.NewBuilder(1024)

	leakOffsets := make([]flatbuffers.UOffsetT, 0, len(a.Leaks))
	for _, leak := range a.Leaks {
		name := builder.CreateString(leak.Name)
		action := builder.CreateString(leak.Action)

		LeakMessages.LeakEntryStart(builder)
		LeakMessages.LeakEntryAddName(builder, name)
		LeakMessages.LeakEntryAddAmount(builder, leak.Amount)
		LeakMessages.LeakEntryAddAction(builder, action)
		LeakMessages.LeakEntryAddRank(builder, leak.Rank)
		leakOffsets = append(leakOffsets, LeakMessages.LeakEntryEnd(builder))
	}

	LeakMessages.LeakAlertStartLeaksVector(builder, len(leakOffsets))
	for i := len(leakOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(leakOffsets[i])
	}
	leaksVec := builder.EndVector(len(leakOffsets))

	alertID := builder.CreateString(a.AlertID)
	businessID := builder.CreateString(a.BusinessID)

	LeakMessages.LeakAlertStart(builder)
	LeakMessages.LeakAlertAddAlertId(builder, alertID)
	LeakMessages.LeakAlertAddBusinessId(builder, businessID)
	LeakMessages.LeakAlertAddRevenue(builder, a.Revenue)
	LeakMessages.LeakAlertAddTrueProfit(builder, a.TrueProfit)
	LeakMessages.LeakAlertAddLeaks(builder, leaksVec)
	LeakMessages.LeakAlertAddTimestamp(builder, a.Timestamp)
	root := LeakMessages.LeakAlertEnd(builder)

	builder.Finish(root)
	return builder.FinishedBytes()
}

// Decode reads an alert back from its flatbuffer form.
func Decode(buf []byte) (a Alert, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return Alert{}, errors.New("alert payload too short")
	}
	// The generated accessors panic on out-of-range offsets.
	defer func() {
		if r := recover(); r != nil {
			a = Alert{}
			err = fmt.Errorf("malformed alert payload: %v", r)
		}
	}()

	msg := LeakMessages.GetRootAsLeakAlert(buf, 0)
	a = Alert{
		AlertID:    string(msg.AlertId()),
		BusinessID: string(msg.BusinessId()),
		Revenue:    msg.Revenue(),
		TrueProfit: msg.TrueProfit(),
		Timestamp:  msg.Timestamp(),
		Leaks:      make([]AlertLeak, 0, msg.LeaksLength()),
	}

	var entry LeakMessages.LeakEntry
	for i := 0; i < msg.LeaksLength(); i++ {
		if !msg.Leaks(&entry, i) {
			continue
		}
		a.Leaks = append(a.Leaks, AlertLeak{
			Name:   string(entry.Name()),
			Amount: entry.Amount(),
			Action: string(entry.Action()),
			Rank:   entry.Rank(),
		})
	}
	return a, nil
}

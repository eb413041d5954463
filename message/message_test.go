package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencircuit/boarddrc/message"
)

func TestSeverityDefaults(t *testing.T) {
	cases := map[message.Kind]message.Severity{
		message.KindMinimumWidthViolation:          message.Warning,
		message.KindCopperCopperClearanceViolation: message.Warning,
		message.KindMinimumAnnularRingViolation:    message.Warning,
		message.KindForbiddenSlot:                  message.Error,
		message.KindInvalidPadConnection:           message.Error,
		message.KindMissingDevice:                  message.Error,
		message.KindMissingConnection:              message.Error,
		message.KindEmptyNetSegment:                message.Hint,
		message.KindUnconnectedJunction:            message.Hint,
	}
	for kind, want := range cases {
		m := message.New(kind, "x", "", nil)
		assert.Equal(t, want, m.Severity, "kind %d", kind)
	}
}

func TestDedupSink_DropsDuplicates(t *testing.T) {
	rec := &message.Recorder{}
	sink := message.NewDedupSink(rec)

	m := message.New(message.KindCopperCopperClearanceViolation, "a vs b", "top_copper", []string{"a", "b"})
	sink.OnMessage(m)
	sink.OnMessage(m)

	assert.Len(t, rec.Messages, 1)
	assert.Equal(t, 1, sink.Count())
}

func TestDedupSink_DistinguishesLayerAndObjects(t *testing.T) {
	rec := &message.Recorder{}
	sink := message.NewDedupSink(rec)

	sink.OnMessage(message.New(message.KindCopperCopperClearanceViolation, "t", "top_copper", []string{"a", "b"}))
	sink.OnMessage(message.New(message.KindCopperCopperClearanceViolation, "t", "bot_copper", []string{"a", "b"}))
	sink.OnMessage(message.New(message.KindCopperCopperClearanceViolation, "t", "top_copper", []string{"a", "c"}))
	sink.OnMessage(message.New(message.KindCopperBoardClearanceViolation, "t", "top_copper", []string{"a", "b"}))

	assert.Len(t, rec.Messages, 4)
	assert.Equal(t, 4, sink.Count())
}

func TestDedupSink_ForwardsLifecycle(t *testing.T) {
	rec := &message.Recorder{}
	sink := message.NewDedupSink(rec)

	sink.OnStarted()
	sink.OnProgress(2)
	sink.OnStatus("checking")
	sink.OnProgress(100)
	sink.OnFinished(0)

	assert.True(t, rec.Started)
	assert.Equal(t, []int{2, 100}, rec.Progress)
	assert.Equal(t, []string{"checking"}, rec.Statuses)
	assert.True(t, rec.Finished)
}

func TestRecorder_ByKind(t *testing.T) {
	rec := &message.Recorder{}
	rec.OnMessage(message.New(message.KindMissingDevice, "m1", "", []string{"c1"}))
	rec.OnMessage(message.New(message.KindEmptyNetSegment, "m2", "", []string{"s1"}))
	rec.OnMessage(message.New(message.KindMissingDevice, "m3", "", []string{"c2"}))

	got := rec.ByKind(message.KindMissingDevice)
	assert.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].Text)
	assert.Equal(t, "m3", got[1].Text)
}

package message

// Recorder is a Sink that stores everything it receives, in emission order.
// Hosts use it to collect a run's output for later display; the engine's
// own tests assert against it directly.
type Recorder struct {
	Started       bool
	Progress      []int
	Statuses      []string
	Messages      []DrcMessage
	Finished      bool
	FinishedCount int
}

func (r *Recorder) OnStarted()             { r.Started = true }
func (r *Recorder) OnProgress(percent int) { r.Progress = append(r.Progress, percent) }
func (r *Recorder) OnStatus(text string)   { r.Statuses = append(r.Statuses, text) }
func (r *Recorder) OnMessage(msg DrcMessage) {
	r.Messages = append(r.Messages, msg)
}
func (r *Recorder) OnFinished(count int) {
	r.Finished = true
	r.FinishedCount = count
}

// ByKind returns the recorded messages of one kind, in emission order.
func (r *Recorder) ByKind(kind Kind) []DrcMessage {
	out := make([]DrcMessage, 0)
	for _, m := range r.Messages {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

package engine

// Recorder is a Sink that keeps every event it receives, in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Inject(key int, press bool) {
	r.Events = append(r.Events, Event{Key: key, Press: press})
}

// Take returns the recorded events and clears the recorder.
func (r *Recorder) Take() []Event {
	ev := r.Events
	r.Events = nil
	return ev
}

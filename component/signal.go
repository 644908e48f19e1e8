package component

// Signal dispatches a payload-less notification to its listeners.
type Signal struct {
	listeners []func()
}

// Connect appends a listener. Listeners run in registration order.
func (s *Signal) Connect(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Emit calls every listener synchronously before returning.
func (s *Signal) Emit() {
	if s == nil || len(s.listeners) == 0 {
		return
	}
	for _, fn := range s.listeners {
		fn()
	}
}

// Len reports how many listeners are connected.
func (s *Signal) Len() int {
	if s == nil {
		return 0
	}
	return len(s.listeners)
}

// BoolSignal dispatches a boolean payload to its listeners.
type BoolSignal struct {
	listeners []func(bool)
}

// Connect appends a listener. Listeners run in registration order.
func (s *BoolSignal) Connect(fn func(bool)) {
	if s == nil || fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Emit calls every listener synchronously with v before returning.
func (s *BoolSignal) Emit(v bool) {
	if s == nil || len(s.listeners) == 0 {
		return
	}
	for _, fn := range s.listeners {
		fn(v)
	}
}

// Len reports how many listeners are connected.
func (s *BoolSignal) Len() int {
	if s == nil {
		return 0
	}
	return len(s.listeners)
}

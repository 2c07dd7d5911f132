package screentrack

// LifecycleBridge forwards the host UI layer's lifecycle signals to a
// TrackingSession. It holds no state beyond the session reference; each
// method is pure forwarding. The hosting layer calls these explicitly,
// keeping the core decoupled from any UI framework's notification
// mechanism.
type LifecycleBridge struct {
	session *TrackingSession
}

// NewLifecycleBridge creates a bridge forwarding to the given session.
func NewLifecycleBridge(session *TrackingSession) *LifecycleBridge {
	return &LifecycleBridge{session: session}
}

// OnScreenEnter is a hook for the host's appearance callback. Entry time
// is captured when the session is created, so nothing happens here; the
// hook exists to give hosts a symmetric enter/exit pair to wire.
func (b *LifecycleBridge) OnScreenEnter() {}

// OnScreenExit forwards the view-disappearance signal.
func (b *LifecycleBridge) OnScreenExit() {
	b.session.FinalizeVisit()
}

// OnWillResignActive forwards the will-resign-active signal.
func (b *LifecycleBridge) OnWillResignActive() {
	b.session.LogLifecycleTransition(LifecycleWillResignActive)
}

// OnWillTerminate forwards the will-terminate signal.
func (b *LifecycleBridge) OnWillTerminate() {
	b.session.LogLifecycleTransition(LifecycleWillTerminate)
}

// OnWillEnterForeground forwards the will-enter-foreground signal.
func (b *LifecycleBridge) OnWillEnterForeground() {
	b.session.LogLifecycleTransition(LifecycleWillEnterForeground)
}

// OnDidBecomeActive forwards the did-become-active signal.
func (b *LifecycleBridge) OnDidBecomeActive() {
	b.session.LogLifecycleTransition(LifecycleDidBecomeActive)
}

package ecs

// System is one step of a frame. Systems may declare Singleton fields, which
// the Scheduler binds on registration, and keep their own state between
// frames.
type System interface {
	Execute(frame *UpdateFrame)
}

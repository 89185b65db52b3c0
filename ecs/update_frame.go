package ecs

import "time"

type UpdateFrame struct {
	DeltaTime time.Duration
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt time.Duration, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}

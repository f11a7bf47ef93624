package core

import "log"

var (
	ChangesSavedMessage = "changes saved"
	BindingsMessage     = "key bindings reloaded"
)

func (e *editor) DispatchMessage(args ...string) {
	if len(args) == 0 {
		return
	}
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case e.updateSignal <- MessageSignal{id, value}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}

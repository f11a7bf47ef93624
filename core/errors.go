package core

import (
	"errors"
	"fmt"
	"log"
)

var (
	ErrNoLineToJoin  = errors.New("no line to join")
	ErrUnknownKey    = errors.New("unknown key name")
	ErrEmptyRegister = errors.New("register is empty")
)

type ErrorId int

const (
	ErrNoLineToJoinId ErrorId = iota
	ErrEmptyRegisterId
	ErrFailedToPasteId
	ErrCopyFailedId
	ErrConfigReloadId
)

// Fault is raised (as a panic value) when an internal invariant is broken:
// a text object resolved against missing indices, an inverted range, the
// bounds of CancelOp/None requested. It indicates a defect, not bad input.
type Fault struct {
	Op  string
	Msg string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", f.Op, f.Msg)
}

func fault(op, format string, args ...any) {
	panic(&Fault{Op: op, Msg: fmt.Sprintf(format, args...)})
}

func (e *editor) DispatchError(id ErrorId, err error) {
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}

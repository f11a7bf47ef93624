package core

// InsertAction is the closed set of Insert mode actions. Typing a literal
// character is InsertWrite; the character comes from the key event.
type InsertAction uint8

const (
	InsertNone InsertAction = iota
	InsertWrite
	InsertDelForw
	InsertDelBack
	InsertNewLine
	InsertIndent
	InsertUp
	InsertDown
	InsertLeft
	InsertRight
	InsertNormalMode
)

// NormalAction is the closed set of Normal mode actions.
type NormalAction uint8

const (
	NormalNone NormalAction = iota
	NormalReplaceChar
	NormalDelete
	NormalDeleteChar
	NormalChange
	NormalYank
	NormalPut
	NormalLineStart
	NormalLineEnd
	NormalUp
	NormalDown
	NormalLeft
	NormalRight
	NormalInsertMode
	NormalVisualMode
	NormalExit
)

// VisualAction is the closed set of Visual mode actions.
type VisualAction uint8

const (
	VisualNone VisualAction = iota
	VisualReplaceChar
	VisualDelete
	VisualDeleteChar
	VisualChange
	VisualYank
	VisualLineStart
	VisualLineEnd
	VisualUp
	VisualDown
	VisualLeft
	VisualRight
	VisualNormalMode
	VisualExit
)

// Operator is an action that needs one more key before it can run.
type Operator uint8

const (
	OpDelete Operator = iota
	OpChange
	OpYank
	OpReplaceChar
)

var insertActionNames = []string{
	InsertNone:       "none",
	InsertWrite:      "write",
	InsertDelForw:    "delforw",
	InsertDelBack:    "delback",
	InsertNewLine:    "newline",
	InsertIndent:     "indent",
	InsertUp:         "up",
	InsertDown:       "down",
	InsertLeft:       "left",
	InsertRight:      "right",
	InsertNormalMode: "normalmode",
}

var normalActionNames = []string{
	NormalNone:        "none",
	NormalReplaceChar: "replacechar",
	NormalDelete:      "delete",
	NormalDeleteChar:  "deletechar",
	NormalChange:      "change",
	NormalYank:        "yank",
	NormalPut:         "put",
	NormalLineStart:   "linestart",
	NormalLineEnd:     "lineend",
	NormalUp:          "up",
	NormalDown:        "down",
	NormalLeft:        "left",
	NormalRight:       "right",
	NormalInsertMode:  "insertmode",
	NormalVisualMode:  "visualmode",
	NormalExit:        "exit",
}

var visualActionNames = []string{
	VisualNone:        "none",
	VisualReplaceChar: "replacechar",
	VisualDelete:      "delete",
	VisualDeleteChar:  "deletechar",
	VisualChange:      "change",
	VisualYank:        "yank",
	VisualLineStart:   "linestart",
	VisualLineEnd:     "lineend",
	VisualUp:          "up",
	VisualDown:        "down",
	VisualLeft:        "left",
	VisualRight:       "right",
	VisualNormalMode:  "normalmode",
	VisualExit:        "exit",
}

var operatorNames = []string{
	OpDelete:      "delete",
	OpChange:      "change",
	OpYank:        "yank",
	OpReplaceChar: "replace",
}

func (a InsertAction) String() string { return nameOf(insertActionNames, int(a)) }
func (a NormalAction) String() string { return nameOf(normalActionNames, int(a)) }
func (a VisualAction) String() string { return nameOf(visualActionNames, int(a)) }
func (o Operator) String() string     { return nameOf(operatorNames, int(o)) }

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "none"
	}
	return names[i]
}

// ParseInsertAction looks up an Insert action by its configuration name.
func ParseInsertAction(name string) (InsertAction, bool) {
	i, ok := indexOf(insertActionNames, name)
	return InsertAction(i), ok && InsertAction(i) != InsertNone && InsertAction(i) != InsertWrite
}

// ParseNormalAction looks up a Normal action by its configuration name.
func ParseNormalAction(name string) (NormalAction, bool) {
	i, ok := indexOf(normalActionNames, name)
	return NormalAction(i), ok && NormalAction(i) != NormalNone
}

// ParseVisualAction looks up a Visual action by its configuration name.
func ParseVisualAction(name string) (VisualAction, bool) {
	i, ok := indexOf(visualActionNames, name)
	return VisualAction(i), ok && VisualAction(i) != VisualNone
}

// ParseObjectKind looks up a text object template by its configuration name.
func ParseObjectKind(name string) (ObjectKind, bool) {
	for kind, n := range objectKindNames {
		if n == name {
			return kind, true
		}
	}
	return ObjectNone, false
}

func indexOf(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

package command

import (
	"github.com/dshills/inkwell/internal/engine/document"
	"github.com/dshills/inkwell/internal/engine/history"
)

// Command is the history command contract bound to the drawing document.
type Command = history.Command[*document.Document]

// Record is the history record contract bound to the drawing document.
type Record = history.Record[*document.Document]

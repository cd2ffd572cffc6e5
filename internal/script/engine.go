// Package script exposes the editing session to Lua. Scripts drive the
// same command layer as interactive editing, so every scripted edit is
// undoable, and the atomic() binding groups a whole Lua function into one
// composite history entry with rollback on error.
package script

import (
	"fmt"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/app"
	"github.com/dshills/inkwell/internal/engine/command"
	"github.com/dshills/inkwell/internal/engine/document"
	"github.com/dshills/inkwell/internal/engine/geometry"
)

// ModuleName is the global table scripts use to reach the engine.
const ModuleName = "ink"

// Engine runs Lua scripts against an editing session.
//
// gopher-lua's LState is not goroutine-safe; an Engine must be used from a
// single goroutine, matching the session's own ownership model.
type Engine struct {
	L       *lua.LState
	session *app.Session
	log     *slog.Logger

	// exec is non-nil while an atomic() body is running; bindings route
	// commands through it so the whole body becomes one composite.
	exec *command.Executor
}

// NewEngine creates a sandboxed Lua engine bound to the session.
func NewEngine(session *app.Session, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = slog.Default()
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Open only the safe library subset.
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("opening lua lib %s: %w", lib.name, err)
		}
	}

	// Remove escape hatches the base library leaves behind.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	e := &Engine{L: L, session: session, log: log}
	e.register()
	return e, nil
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.L.Close()
}

// RunFile executes a script file.
func (e *Engine) RunFile(path string) error {
	e.log.Debug("running script", "path", path)
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

// RunString executes script source.
func (e *Engine) RunString(src string) error {
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// register installs the ink module table.
func (e *Engine) register() {
	mod := e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"rect":                  e.luaRect,
		"circle":                e.luaCircle,
		"move":                  e.luaMove,
		"recolor":               e.luaRecolor,
		"delete":                e.luaDelete,
		"to_front":              e.luaToFront,
		"select":                e.luaSelect,
		"select_all":            e.luaSelectAll,
		"toggle":                e.luaToggle,
		"select_rect":           e.luaSelectRect,
		"duplicate_move":        e.luaDuplicateMove,
		"duplicate_move_select": e.luaDuplicateMoveSelect,
		"triplicate":            e.luaTriplicate,
		"atomic":                e.luaAtomic,
		"undo":                  e.luaUndo,
		"redo":                  e.luaRedo,
		"can_undo":              e.luaCanUndo,
		"can_redo":              e.luaCanRedo,
		"shape_count":           e.luaShapeCount,
		"selected_count":        e.luaSelectedCount,
	})
	e.L.SetGlobal(ModuleName, mod)
}

// run routes a command through the active executor when inside atomic(),
// otherwise through the session. Errors become Lua errors so scripts can
// pcall around failing edits.
func (e *Engine) run(L *lua.LState, cmd command.Command) bool {
	if e.exec != nil {
		if err := e.exec.Run(cmd); err != nil {
			L.RaiseError("%s", err)
		}
		return true
	}

	changed, err := e.session.Execute(cmd)
	if err != nil {
		L.RaiseError("%s", err)
	}
	return changed
}

// checkColor reads an optional hex color argument at position n,
// defaulting to the configured shape color.
func (e *Engine) checkColor(L *lua.LState, n int) colorful.Color {
	if L.GetTop() < n {
		cfg := e.session.Config()
		return cfg.DefaultColor()
	}

	col, err := colorful.Hex(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return col
}

func (e *Engine) luaRect(L *lua.LState) int {
	origin := geometry.Point{X: float64(L.CheckNumber(1)), Y: float64(L.CheckNumber(2))}
	w := float64(L.CheckNumber(3))
	h := float64(L.CheckNumber(4))
	s := document.NewRectangle(origin, w, h, e.checkColor(L, 5))

	e.run(L, command.AddShape{Shape: s})
	L.Push(lua.LString(s.ID))
	return 1
}

func (e *Engine) luaCircle(L *lua.LState) int {
	center := geometry.Point{X: float64(L.CheckNumber(1)), Y: float64(L.CheckNumber(2))}
	r := float64(L.CheckNumber(3))
	s := document.NewCircle(center, r, e.checkColor(L, 4))

	e.run(L, command.AddShape{Shape: s})
	L.Push(lua.LString(s.ID))
	return 1
}

func (e *Engine) luaMove(L *lua.LState) int {
	cmd := command.MoveShape{
		ID: document.ShapeID(L.CheckString(1)),
		Delta: geometry.Point{
			X: float64(L.CheckNumber(2)),
			Y: float64(L.CheckNumber(3)),
		},
	}
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

func (e *Engine) luaRecolor(L *lua.LState) int {
	cmd := command.SetColor{
		ID:    document.ShapeID(L.CheckString(1)),
		Color: e.checkColor(L, 2),
	}
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

func (e *Engine) luaDelete(L *lua.LState) int {
	cmd := command.DeleteShape{ID: document.ShapeID(L.CheckString(1))}
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

func (e *Engine) luaToFront(L *lua.LState) int {
	cmd := command.BringToFront{ID: document.ShapeID(L.CheckString(1))}
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

func (e *Engine) luaSelect(L *lua.LState) int {
	tbl := L.CheckTable(1)
	var ids []document.ShapeID
	tbl.ForEach(func(_, v lua.LValue) {
		ids = append(ids, document.ShapeID(v.String()))
	})
	L.Push(lua.LBool(e.run(L, command.SetSelection{IDs: ids})))
	return 1
}

func (e *Engine) luaSelectAll(L *lua.LState) int {
	L.Push(lua.LBool(e.run(L, command.SelectAll{})))
	return 1
}

func (e *Engine) luaToggle(L *lua.LState) int {
	cmd := command.ToggleSelection{ID: document.ShapeID(L.CheckString(1))}
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

func (e *Engine) luaSelectRect(L *lua.LState) int {
	cmd := command.RectSelect{
		Area: geometry.NewRect(
			float64(L.CheckNumber(1)),
			float64(L.CheckNumber(2)),
			float64(L.CheckNumber(3)),
			float64(L.CheckNumber(4)),
		),
		Toggle: L.OptBool(5, false),
	}
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

func (e *Engine) luaDuplicateMove(L *lua.LState) int {
	cmd := command.DuplicateAndMove(
		document.ShapeID(L.CheckString(1)),
		geometry.Point{X: float64(L.CheckNumber(2)), Y: float64(L.CheckNumber(3))},
	)
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

func (e *Engine) luaDuplicateMoveSelect(L *lua.LState) int {
	cmd := command.DuplicateMoveSelect(
		document.ShapeID(L.CheckString(1)),
		geometry.Point{X: float64(L.CheckNumber(2)), Y: float64(L.CheckNumber(3))},
	)
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

func (e *Engine) luaTriplicate(L *lua.LState) int {
	cmd := command.Triplicate(
		document.ShapeID(L.CheckString(1)),
		geometry.Point{X: float64(L.CheckNumber(2)), Y: float64(L.CheckNumber(3))},
	)
	L.Push(lua.LBool(e.run(L, cmd)))
	return 1
}

// luaAtomic runs a Lua function as one composite command. Edits made
// inside the function undo as a single unit, and an error rolls back
// everything the function had already applied.
func (e *Engine) luaAtomic(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	comp := command.NewComposite(name, func(x *command.Executor) error {
		prev := e.exec
		e.exec = x
		defer func() { e.exec = prev }()

		return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	})

	L.Push(lua.LBool(e.run(L, comp)))
	return 1
}

func (e *Engine) luaUndo(L *lua.LState) int {
	if e.exec != nil {
		L.RaiseError("undo is not allowed inside atomic()")
	}
	L.Push(lua.LBool(e.session.Undo()))
	return 1
}

func (e *Engine) luaRedo(L *lua.LState) int {
	if e.exec != nil {
		L.RaiseError("redo is not allowed inside atomic()")
	}
	L.Push(lua.LBool(e.session.Redo()))
	return 1
}

func (e *Engine) luaCanUndo(L *lua.LState) int {
	L.Push(lua.LBool(e.session.CanUndo()))
	return 1
}

func (e *Engine) luaCanRedo(L *lua.LState) int {
	L.Push(lua.LBool(e.session.CanRedo()))
	return 1
}

func (e *Engine) luaShapeCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.session.Document().Len()))
	return 1
}

func (e *Engine) luaSelectedCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.session.Document().SelectionCount()))
	return 1
}

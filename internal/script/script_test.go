package script

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/inkwell/internal/app"
	"github.com/dshills/inkwell/internal/config"
)

func writeFile(t *testing.T, path, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
}

func newTestEngine(t *testing.T) (*Engine, *app.Session) {
	t.Helper()
	session := app.New(config.Default())
	eng, err := NewEngine(session, nil)
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return eng, session
}

func TestRunStringCreatesShapes(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		local r = ink.rect(0, 0, 10, 10, "#ff0000")
		local c = ink.circle(50, 50, 5)
		assert(type(r) == "string" and #r > 0)
		assert(type(c) == "string" and #c > 0)
	`)
	require.NoError(t, err)

	assert.Equal(t, 2, session.Document().Len())
	assert.Equal(t, 2, session.UndoCount())
}

func TestMoveReturnsChanged(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.RunString(`
		local id = ink.rect(0, 0, 10, 10)
		assert(ink.move(id, 5, 3) == true)
		assert(ink.move(id, 0, 0) == false)
	`)
	require.NoError(t, err)
}

func TestMoveMissingShapeRaises(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.RunString(`ink.move("no-such-id", 1, 1)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape not found")
}

func TestErrorsAreCatchable(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.RunString(`
		local ok = pcall(function() ink.move("no-such-id", 1, 1) end)
		assert(ok == false)
	`)
	require.NoError(t, err)
}

func TestRecolorAndDelete(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		local id = ink.rect(0, 0, 10, 10, "#112233")
		assert(ink.recolor(id, "#445566") == true)
		assert(ink.recolor(id, "#445566") == false)
		assert(ink.delete(id) == true)
		assert(ink.delete(id) == false)
	`)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Document().Len())
}

func TestSelectionBindings(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.RunString(`
		local a = ink.rect(0, 0, 10, 10)
		local b = ink.rect(100, 100, 10, 10)
		ink.select({a})
		assert(ink.selected_count() == 1)
		ink.toggle(b)
		assert(ink.selected_count() == 2)
		ink.select_all()
		assert(ink.selected_count() == 2)
		assert(ink.select_rect(0, 0, 20, 20) == true)
		assert(ink.selected_count() == 1)
	`)
	require.NoError(t, err)
}

func TestUndoRedoBindings(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		ink.rect(0, 0, 10, 10)
		assert(ink.can_undo() == true)
		assert(ink.undo() == true)
		assert(ink.shape_count() == 0)
		assert(ink.can_redo() == true)
		assert(ink.redo() == true)
		assert(ink.shape_count() == 1)
		assert(ink.undo() == true)
		assert(ink.undo() == false)
	`)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Document().Len())
}

func TestAtomicGroupsIntoOneEntry(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		local changed = ink.atomic("scatter", function()
			ink.rect(0, 0, 10, 10)
			ink.circle(50, 50, 5)
			ink.rect(100, 100, 10, 10)
		end)
		assert(changed == true)
	`)
	require.NoError(t, err)

	assert.Equal(t, 3, session.Document().Len())
	require.Equal(t, 1, session.UndoCount())

	require.True(t, session.Undo())
	assert.Equal(t, 0, session.Document().Len())
	require.True(t, session.Redo())
	assert.Equal(t, 3, session.Document().Len())
}

func TestAtomicRollsBackOnError(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		ink.atomic("doomed", function()
			ink.rect(0, 0, 10, 10)
			ink.move("no-such-id", 1, 1)
		end)
	`)
	require.Error(t, err)

	assert.Equal(t, 0, session.Document().Len())
	assert.Equal(t, 0, session.UndoCount())
}

func TestUndoInsideAtomicRaises(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		ink.atomic("bad", function()
			ink.rect(0, 0, 10, 10)
			ink.undo()
		end)
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed inside atomic")
	assert.Equal(t, 0, session.Document().Len())
}

func TestAtomicAllNoOpsLeavesHistoryAlone(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		local id = ink.rect(0, 0, 10, 10)
		local changed = ink.atomic("nothing", function()
			ink.move(id, 0, 0)
		end)
		assert(changed == false)
	`)
	require.NoError(t, err)
	assert.Equal(t, 1, session.UndoCount())
}

func TestNestedAtomicJoinsOuterGroup(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		ink.atomic("outer", function()
			ink.rect(0, 0, 10, 10)
			ink.atomic("inner", function()
				ink.circle(50, 50, 5)
			end)
		end)
	`)
	require.NoError(t, err)

	assert.Equal(t, 2, session.Document().Len())
	require.Equal(t, 1, session.UndoCount())
	require.True(t, session.Undo())
	assert.Equal(t, 0, session.Document().Len())
}

func TestCompositeBindings(t *testing.T) {
	eng, session := newTestEngine(t)

	err := eng.RunString(`
		local id = ink.rect(0, 0, 10, 10)
		assert(ink.duplicate_move(id, 20, 0) == true)
		assert(ink.triplicate(id, 0, 20) == true)
		assert(ink.duplicate_move_select(id, 40, 40) == true)
		assert(ink.selected_count() == 1)
	`)
	require.NoError(t, err)
	// 1 original + 1 duplicate + 2 triplicate copies + 1 selected duplicate.
	assert.Equal(t, 5, session.Document().Len())
}

func TestSandboxRemovesLoaders(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.RunString(`
		assert(dofile == nil)
		assert(loadfile == nil)
		assert(load == nil)
		assert(loadstring == nil)
	`)
	require.NoError(t, err)
}

func TestRunFile(t *testing.T) {
	eng, session := newTestEngine(t)

	path := t.TempDir() + "/draw.lua"
	writeFile(t, path, `ink.rect(0, 0, 10, 10)`)

	require.NoError(t, eng.RunFile(path))
	assert.Equal(t, 1, session.Document().Len())

	err := eng.RunFile(t.TempDir() + "/missing.lua")
	require.Error(t, err)
}

func TestBadColorIsArgError(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.RunString(`ink.rect(0, 0, 10, 10, "not-a-color")`)
	require.Error(t, err)
}

package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rtltext/farsitext/engine/text/editbuf"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.cli")
	defer teardown()
	//
	cmd := parseCommand("سلام دنیا")
	assert.Equal(t, INSERT, cmd.code)
	assert.Equal(t, "سلام دنیا", cmd.text)
	cmd = parseCommand(":key PASTE با هم")
	assert.Equal(t, KEY, cmd.code)
	assert.Equal(t, []string{"PASTE", "با", "هم"}, cmd.args)
	assert.Equal(t, QUIT, parseCommand(":q").code)
	assert.Equal(t, HELP, parseCommand(":").code)
	assert.Equal(t, HELP, parseCommand(":jump").code)
	assert.Equal(t, OP, parseCommand(":op LineUp").code)
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.cli")
	defer teardown()
	//
	ts := &terminalSink{name: "main"}
	buf := editbuf.New("", ts)
	buf.InsertText("سلام\nلا")
	buf.MoveLineUp()
	out := ts.render()
	lines := strings.Split(out, "\n")
	if assert.Len(t, lines, 5) {
		assert.Equal(t, "┌─ main", lines[0])
		assert.Equal(t, "│ "+string([]rune{0xFEE1, 0xFEFC, 0xFEB3}), lines[1])
		assert.Equal(t, "│  ^", lines[2])
		assert.Equal(t, "│ "+string(rune(0xFEFB)), lines[3])
		assert.Equal(t, "└─ [line 0, 2 steps]", lines[4])
	}
}

func TestDumpHelpers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.cli")
	defer teardown()
	//
	assert.Equal(t, "U+0628 'ب' | ⏎", unicoded("ب\n"))
	assert.Equal(t, "&#xfefb;&#x31;", htmlEntities("ﻻ1"))
	assert.Equal(t, "ligature", kindOf(0xFEFB))
	assert.Equal(t, "presentation form", kindOf(0xFE91))
	assert.Equal(t, "letter", kindOf('ب'))
	assert.Equal(t, "foreign", kindOf('x'))
	assert.Equal(t, "لا", lettersOf(0xFEFC))
}

func TestCaretColumns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.cli")
	defer teardown()
	//
	assert.Equal(t, 3, columns([]rune("abc")))
	assert.Equal(t, 0, columns(nil))
	assert.Equal(t, "  ^", caretLine([]rune("abcd"), 2))
	assert.Equal(t, "^", caretLine([]rune("ab"), 5))
}

package arabic

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestShapeSingleLetters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	assert.Equal(t, []rune{0xFE8F}, Shape([]rune("ب")))
	assert.Equal(t, []rune{0xFEEF}, Shape([]rune("ی")))
	assert.Equal(t, []rune{0xFE8D}, Shape([]rune("ا")))
	assert.Empty(t, Shape(nil))
}

func TestShapeContextualForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	for _, tc := range []struct {
		logical string
		display []rune
	}{
		{"سلام", []rune{0xFEE1, 0xFEFC, 0xFEB3}},
		{"بیت", []rune{0xFE96, 0xFEF4, 0xFE91}},
		{"دو", []rune{0xFEED, 0xFEA9}},
		{"خط", []rune{0xFEC2, 0xFEA7}},
	} {
		assert.Equal(t, tc.display, Shape([]rune(tc.logical)), "shaping %q", tc.logical)
	}
}

func TestYehFormsAreNotUniform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	// Farsi Yeh: initial is isolated+4 and medial is isolated+5
	assert.Equal(t, []rune{0xFE90, 0xFEF3}, Shape([]rune("یب")))
	assert.Equal(t, []rune{0xFE90, 0xFEF4, 0xFE91}, Shape([]rune("بیب")))
	assert.Equal(t, []rune{0xFEF0, 0xFE91}, Shape([]rune("بی")))
	assert.Equal(t, []rune{0xFEEF, 0xFEF0, 0xFEF3, 0xFEF4}, letters[FarsiYeh].Forms())
}

func TestLamAlefLigature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	display, fused := ShapeCount([]rune("لا"))
	assert.Equal(t, []rune{0xFEFB}, display)
	assert.Equal(t, 1, fused)
	assert.Equal(t, []rune("لا"), Unshape([]rune{0xFEFB}))
	assert.Equal(t, []rune("لا"), Unshape([]rune{0xFEFC}))
	// connected form after an initial-capable letter
	assert.Equal(t, []rune{0xFEFC, 0xFEB3}, Shape([]rune("سلا")))
	// no connected form after a letter which only connects backwards
	assert.Equal(t, []rune{0xFEFB, 0xFEA9}, Shape([]rune("دلا")))
	for _, lig := range []struct {
		alef  rune
		glyph rune
	}{
		{Alef, 0xFEFB}, {AlefHamza, 0xFEF7}, {AlefHamzaLow, 0xFEF9}, {AlefMadda, 0xFEF5},
	} {
		assert.Equal(t, []rune{lig.glyph}, Shape([]rune{Lam, lig.alef}))
		assert.Equal(t, []rune{Lam, lig.alef}, Unshape([]rune{lig.glyph}))
	}
}

func TestAdjacentLamAlefSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	// Alef never starts a ligature, so consumption cannot overlap
	display, fused := ShapeCount([]rune("لالا"))
	assert.Equal(t, []rune{0xFEFB, 0xFEFB}, display)
	assert.Equal(t, 2, fused)
	// the first Lam has no Alef following and stays a letter
	display, fused = ShapeCount([]rune("للا"))
	assert.Equal(t, []rune{0xFEFC, 0xFEDF}, display)
	assert.Equal(t, 1, fused)
	assert.Equal(t, []rune("للا"), Unshape(display))
}

func TestDigitRunsKeepOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	display := Shape([]rune("سلام 123 دنیا"))
	assert.Equal(t, []rune{0xFE8E, 0xFEF4, 0xFEE7, 0xFEA9, ' ', '1', '2', '3', ' ',
		0xFEE1, 0xFEFC, 0xFEB3}, display)
	assert.Contains(t, string(display), "123")
	display = Shape([]rune("12 سلام"))
	assert.Equal(t, []rune{0xFEE1, 0xFEFC, 0xFEB3, ' ', '1', '2'}, display)
}

func TestForeignRunsKeepOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	display := Shape([]rune("سlA Bم"))
	assert.Equal(t, []rune{0xFEE1, 'l', 'A', ' ', 'B', 0xFEB1}, display)
	display = Shape([]rune("a . ب"))
	assert.Equal(t, []rune{0xFE8F, ' ', '.', ' ', 'a'}, display)
}

func TestPunctuationAndSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	display := Shape([]rune("سلام، دنیا!"))
	assert.Equal(t, []rune{'!', 0xFE8E, 0xFEF4, 0xFEE7, 0xFEA9, ' ', '،',
		0xFEE1, 0xFEFC, 0xFEB3}, display)
	display = Shape([]rune("(سلام)"))
	assert.Equal(t, []rune{')', 0xFEE1, 0xFEFC, 0xFEB3, '('}, display)
}

func TestShapeLeavesLinesReversed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	raw := Shape([]rune("خط یک\nخط دو\nخط سه"))
	assert.Equal(t, []rune{0xFEEA, 0xFEB3, ' ', 0xFEC2, 0xFEA7, '\n',
		0xFEED, 0xFEA9, ' ', 0xFEC2, 0xFEA7, '\n',
		0xFB8F, 0xFEF3, ' ', 0xFEC2, 0xFEA7}, raw)
	lines := Lines(FixLineOrder(raw))
	if assert.Len(t, lines, 3) {
		assert.Equal(t, []rune{0xFB8F, 0xFEF3, ' ', 0xFEC2, 0xFEA7}, lines[0])
		assert.Equal(t, []rune{0xFEED, 0xFEA9, ' ', 0xFEC2, 0xFEA7}, lines[1])
		assert.Equal(t, []rune{0xFEEA, 0xFEB3, ' ', 0xFEC2, 0xFEA7}, lines[2])
	}
}

func TestShapeEmitsOnlyInvertibleForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "farsitext.arabic")
	defer teardown()
	//
	for r := range letters {
		for _, form := range letters[r].Forms() {
			if _, ok := reverse[form]; !ok {
				t.Errorf("form %#U of %#U has no reverse entry", form, r)
			}
		}
	}
	for _, lig := range ligatures {
		assert.Equal(t, []rune{lig.First, lig.Second}, reverse[lig.Isolated])
		assert.Equal(t, []rune{lig.First, lig.Second}, reverse[lig.Isolated+1])
	}
}

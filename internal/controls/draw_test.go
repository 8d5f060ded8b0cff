package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlider_Draw(t *testing.T) {
	s := NewSlider("crop left", Rect{X: 50, Y: 200, Width: 150, Height: 20}, 0, 1000, 500, 50)
	ops := s.Draw()
	require.Len(t, ops, 4)

	assert.Equal(t, "crop left", ops[0].Text)
	assert.Equal(t, float32(180), ops[0].Bounds.Y)
	assert.Equal(t, "500", ops[1].Text)
	assert.Equal(t, float32(210), ops[1].Bounds.X)

	handle := ops[3]
	assert.Equal(t, InkHandle, handle.Ink)
	assert.Equal(t, float32(50+75-5), handle.Bounds.X)
}

func TestButton_DrawPressed(t *testing.T) {
	b := NewButton("run", Rect{X: 0, Y: 0, Width: 100, Height: 50}, 28)

	idle := b.Draw(fixedMeasurer, false)
	require.Len(t, idle, 2)
	assert.Equal(t, OpRectOutline, idle[0].Kind)

	pressed := b.Draw(fixedMeasurer, true)
	require.Len(t, pressed, 3)
	assert.Equal(t, OpRect, pressed[0].Kind)
	assert.Equal(t, InkPressed, pressed[0].Ink)

	label := pressed[2]
	// "run" is 3 * 14 = 42 wide and 28 tall with fixedMeasurer
	assert.Equal(t, float32(50-21), label.Bounds.X)
	assert.Equal(t, float32(25-14), label.Bounds.Y)
}

func TestRadioGroup_Draw(t *testing.T) {
	g := NewRadioGroup("", Rect{X: 20, Y: 300}, []string{"A", "B"}, fixedMeasurer)
	g.Select(1)

	ops := g.Draw()
	require.Len(t, ops, 5)
	assert.Equal(t, OpCircleOutline, ops[0].Kind)
	assert.Equal(t, OpCircle, ops[2].Kind)
	assert.Equal(t, Point{X: 35, Y: 310 + 12 + 5 + 5}, ops[2].Center)

	frame := ops[4]
	assert.Equal(t, OpRectOutline, frame.Kind)
	assert.Equal(t, float32(12+12+5+20), frame.Bounds.Height)
}

func TestPanel_DrawIncludesEveryControl(t *testing.T) {
	p := newTestPanel()
	ops := p.Draw(fixedMeasurer)

	var texts []string
	for _, op := range ops {
		if op.Kind == OpText {
			texts = append(texts, op.Text)
		}
	}
	assert.Contains(t, texts, "crf")
	assert.Contains(t, texts, "crop top")
	assert.Contains(t, texts, "run")
	assert.Contains(t, texts, "CLONE RIGHT")
}

package tui

import (
	"strings"

	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/farm"
)

const (
	promptWidth  = 46
	cancelOption = "Cancel"
)

// PromptView presents the game's head prompt as an overlay and turns
// prompt actions into answers.
type PromptView struct {
	cursor int  // Choice: selected row, len(Options) is Cancel
	no     bool // Confirm: No is selected
}

// Reset prepares the view for a newly shown prompt.
func (v *PromptView) Reset() {
	v.cursor = 0
	v.no = false
}

// Cursor returns the selected choice row.
func (v PromptView) Cursor() int {
	return v.cursor
}

// Handle applies an action to prompt p. It returns the response and true
// once the prompt is answered.
func (v *PromptView) Handle(p farm.Prompt, a PromptAction) (farm.Response, bool) {
	switch p.Kind {
	case farm.PromptNotice:
		switch a {
		case PromptActionSelect, PromptActionCancel, PromptActionYes, PromptActionNo:
			return farm.Response{}, true
		}

	case farm.PromptConfirm:
		switch a {
		case PromptActionToggle, PromptActionUp, PromptActionDown:
			v.no = !v.no
		case PromptActionYes:
			return farm.Response{Yes: true}, true
		case PromptActionNo:
			return farm.Response{Yes: false}, true
		case PromptActionSelect:
			return farm.Response{Yes: !v.no}, true
		case PromptActionCancel:
			return farm.Response{Cancelled: true}, true
		}

	case farm.PromptChoice:
		rows := len(p.Options) + 1
		switch a {
		case PromptActionUp:
			v.cursor = (v.cursor - 1 + rows) % rows
		case PromptActionDown, PromptActionToggle:
			v.cursor = (v.cursor + 1) % rows
		case PromptActionSelect:
			if v.cursor >= len(p.Options) {
				return farm.Response{Cancelled: true}, true
			}
			return farm.Response{Option: p.Options[v.cursor]}, true
		case PromptActionCancel:
			return farm.Response{Cancelled: true}, true
		}
	}
	return farm.Response{}, false
}

// Draw renders prompt p centred on dst.
func (v PromptView) Draw(dst *core.Screen, p farm.Prompt) {
	lines := wrap(p.Message, promptWidth-4)
	height := len(lines) + 4
	switch p.Kind {
	case farm.PromptConfirm:
		height += 2
	case farm.PromptChoice:
		height += len(p.Options) + 2
	default:
		height += 2
	}

	width := core.Min(promptWidth, dst.Width())
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawBox(box, core.ColorBrightWhite)
	if p.Title != "" {
		dst.DrawTextColored(box.X+2, box.Y, " "+p.Title+" ", core.ColorBrightYellow)
	}

	y := box.Y + 2
	for _, line := range lines {
		dst.DrawTextColored(box.X+2, y, line, core.ColorWhite)
		y++
	}
	y++

	switch p.Kind {
	case farm.PromptConfirm:
		yes, no := "  Yes  ", "  No  "
		yesColor, noColor := core.ColorGray, core.ColorGray
		if !v.no {
			yes, yesColor = "[ Yes ]", core.ColorBrightGreen
		} else {
			no, noColor = "[ No ]", core.ColorBrightGreen
		}
		dst.DrawTextColored(box.X+2, y, yes, yesColor)
		dst.DrawTextColored(box.X+12, y, no, noColor)
	case farm.PromptChoice:
		options := append(append([]string(nil), p.Options...), cancelOption)
		for i, opt := range options {
			prefix, c := "  ", core.ColorWhite
			if i == v.cursor {
				prefix, c = "> ", core.ColorBrightGreen
			}
			dst.DrawTextColored(box.X+2, y+i, prefix+opt, c)
		}
	default:
		dst.DrawTextColored(box.X+2, y, "[ OK ]", core.ColorBrightGreen)
	}
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line strings.Builder
		for _, word := range strings.Fields(para) {
			if line.Len() > 0 && line.Len()+1+len(word) > width {
				lines = append(lines, line.String())
				line.Reset()
			}
			if line.Len() > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(word)
		}
		lines = append(lines, line.String())
	}
	return lines
}

package ui

import (
	"image/color"

	cfg "github.com/automoto/invaders/config"
	"github.com/automoto/invaders/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Choice is one button on a menu screen.
type Choice struct {
	Label   string
	Danger  bool // quit style hover colour
	OnClick func()
}

// MenuUI is a centred title, optional lines of text and a column of buttons.
// The main menu, victory and defeat screens are all built from it.
type MenuUI struct {
	UI      *ebitenui.UI
	choices []Choice

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the screen. titleColor tints the title only.
func NewMenuUI(title string, titleColor color.RGBA, lines []string, choices []Choice) *MenuUI {
	mui := &MenuUI{
		choices:    choices,
		titleFace:  fonts.Title.Face(),
		normalFace: fonts.Menu.Face(),
		smallFace:  fonts.Small.Face(),
	}
	mui.buildUI(title, titleColor, lines)
	return mui
}

// NewMainMenuUI is the PLAY / QUIT title screen.
func NewMainMenuUI(onPlay, onQuit func()) *MenuUI {
	return NewMenuUI("SPACE INVADERS", cfg.Outcome.MenuTitleColor, nil, []Choice{
		{Label: "PLAY", OnClick: onPlay},
		{Label: "QUIT", Danger: true, OnClick: onQuit},
	})
}

// NewVictoryUI is shown after a level is cleared. level is the one just
// completed, zero based.
func NewVictoryUI(level int, onContinue, onQuit func()) *MenuUI {
	return NewMenuUI(LevelTitle(level, true), cfg.Outcome.VictoryTitleColor, nil, []Choice{
		{Label: "CONTINUE", OnClick: onContinue},
		{Label: "QUIT", Danger: true, OnClick: onQuit},
	})
}

// NewDefeatUI is shown after a round is lost.
func NewDefeatUI(level, score int, onRetry, onQuit func()) *MenuUI {
	return NewMenuUI(LevelTitle(level, false), cfg.Outcome.DefeatTitleColor, []string{ScoreLine(score)}, []Choice{
		{Label: "PLAY AGAIN?", OnClick: onRetry},
		{Label: "QUIT", Danger: true, OnClick: onQuit},
	})
}

func (mui *MenuUI) buildUI(title string, titleColor color.RGBA, lines []string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(title, &mui.titleFace, &widget.LabelColor{
			Idle: titleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, line := range lines {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &mui.normalFace, &widget.LabelColor{
				Idle: cfg.Outcome.TextColor,
			}),
		))
	}

	for _, choice := range mui.choices {
		contentContainer.AddChild(mui.buildButton(choice))
	}

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildButton(choice Choice) *widget.Button {
	hover := cfg.Outcome.ButtonHoverColor
	if choice.Danger {
		hover = cfg.Outcome.QuitHoverColor
	}
	onClick := choice.OnClick

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 44),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(choice.Label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Outcome.ButtonColor,
			Hover:   hover,
			Pressed: hover,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// Choose triggers choice i as if it had been clicked. Out of range is a no-op.
func (mui *MenuUI) Choose(i int) {
	if i < 0 || i >= len(mui.choices) || mui.choices[i].OnClick == nil {
		return
	}
	mui.choices[i].OnClick()
}

// Choices returns how many buttons the screen has.
func (mui *MenuUI) Choices() int {
	return len(mui.choices)
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

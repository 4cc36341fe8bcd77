package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// newGamePrompt is the New Game button shown over the scene after a crash.
type newGamePrompt struct {
	ui      *ebitenui.UI
	visible bool
	clicks  chan struct{}
}

func newNewGamePrompt() *newGamePrompt {
	p := &newGamePrompt{clicks: make(chan struct{}, 1)}
	p.ui = p.build()
	return p
}

// build lays out a single centered button. It uses colored nine-slices and
// the built-in basic font, so no theme assets are needed.
func (p *newGamePrompt) build() *ebitenui.UI {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	button := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("New Game", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 40),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			select {
			case p.clicks <- struct{}{}:
			default:
			}
		}),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(button)

	return &ebitenui.UI{Container: root}
}

func (p *newGamePrompt) Show() (<-chan struct{}, error) {
	p.visible = true
	return p.clicks, nil
}

// Hide removes the button and forgets clicks that were not consumed.
func (p *newGamePrompt) Hide() error {
	p.visible = false
	for {
		select {
		case <-p.clicks:
		default:
			return nil
		}
	}
}

func (p *newGamePrompt) Update() {
	if p.visible {
		p.ui.Update()
	}
}

func (p *newGamePrompt) Draw(screen *ebiten.Image) {
	if p.visible {
		p.ui.Draw(screen)
	}
}

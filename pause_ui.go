package main

import (
	"image/color"
	"log"
	"sync"

	"github.com/milk9111/platformer/common"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// clipboard.Init must run once per process.
var clipboardInit = sync.OnceValue(clipboard.Init)

// NewPauseUI builds a centered pause menu: resume, copy the player tuning as
// yaml, respawn and quit.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	status := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 16, Right: 16}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	resumeBtn := button("Resume", func() {
		g.paused = false
		status.Label = ""
	})
	copyBtn := button("Copy tuning", func() {
		status.Label = copyTuning(g)
	})
	respawnBtn := button("Respawn", func() {
		g.Respawn()
		g.paused = false
		status.Label = ""
	})
	quitBtn := button("Quit", func() {
		g.quit = true
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(copyBtn)
	panel.AddChild(respawnBtn)
	panel.AddChild(quitBtn)
	panel.AddChild(status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// copyTuning puts the player prefab on the clipboard and returns a status
// line for the menu.
func copyTuning(g *Game) string {
	data, err := g.tuningYAML()
	if err != nil {
		log.Printf("pause: %v", err)
		return "copy failed"
	}
	if err := clipboardInit(); err != nil {
		log.Printf("pause: clipboard unavailable: %v", err)
		return "clipboard unavailable"
	}
	clipboard.Write(clipboard.FmtText, data)
	return "tuning copied"
}

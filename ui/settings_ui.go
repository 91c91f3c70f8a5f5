package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI is the mouse-driven Mute / Fullscreen panel on the start screen.
type SettingsUI struct {
	UI *ebitenui.UI

	OnMuteChanged       func(muted bool)
	OnFullscreenChanged func(fullscreen bool)

	muted      bool
	fullscreen bool

	muteBtn       *widget.Button
	fullscreenBtn *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

func NewSettingsUI(muted, fullscreen bool, onMute func(bool), onFullscreen func(bool)) *SettingsUI {
	ui := &SettingsUI{
		OnMuteChanged:       onMute,
		OnFullscreenChanged: onFullscreen,
		muted:               muted,
		fullscreen:          fullscreen,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "err", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (ui *SettingsUI) buildUI() {
	// No background: the start screen shows through.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Settings", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	ui.muteBtn = ui.newToggleButton(ui.muteLabel(), func() {
		ui.muted = !ui.muted
		ui.muteBtn.Text().Label = ui.muteLabel()
		if ui.OnMuteChanged != nil {
			ui.OnMuteChanged(ui.muted)
		}
	})
	panel.AddChild(ui.muteBtn)

	ui.fullscreenBtn = ui.newToggleButton(ui.fullscreenLabel(), func() {
		ui.fullscreen = !ui.fullscreen
		ui.fullscreenBtn.Text().Label = ui.fullscreenLabel()
		if ui.OnFullscreenChanged != nil {
			ui.OnFullscreenChanged(ui.fullscreen)
		}
	})
	panel.AddChild(ui.fullscreenBtn)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SettingsUI) newToggleButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 220, 160, 255},
			Pressed: color.RGBA{200, 170, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *SettingsUI) muteLabel() string {
	return fmt.Sprintf("Sound: %s", onOff(!ui.muted))
}

func (ui *SettingsUI) fullscreenLabel() string {
	return fmt.Sprintf("Fullscreen: %s", onOff(ui.fullscreen))
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func (ui *SettingsUI) Update() {
	ui.UI.Update()
}

func (ui *SettingsUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}

package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/brawler/roster"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SelectUI is the fighter select screen: one button per fighter and a panel
// describing the highlighted one.
type SelectUI struct {
	UI *ebitenui.UI

	OnSelect func(fighterID string)

	buttons     []*widget.Button
	nameLabel   *widget.Label
	moveLabel   *widget.Label
	detailLabel *widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewSelectUI(fighters []roster.Fighter, onSelect func(fighterID string)) *SelectUI {
	ui := &SelectUI{OnSelect: onSelect}
	ui.loadFonts()
	ui.buildUI(fighters)
	return ui
}

func (ui *SelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *SelectUI) buildUI(fighters []roster.Fighter) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CHOOSE YOUR FIGHTER", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
		)),
	)
	row.AddChild(ui.buildFighterButtons(fighters))
	row.AddChild(ui.buildDetailPanel())
	contentContainer.AddChild(row)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("Up/Down to choose, Enter to fight", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SelectUI) buildFighterButtons(fighters []roster.Fighter) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	for _, f := range fighters {
		id := f.ID
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 32)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
				Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
				Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
				Disabled: image.NewNineSliceColor(color.RGBA{100, 180, 255, 255}),
			}),
			widget.ButtonOpts.Text(f.Name, &ui.normalFace, &widget.ButtonTextColor{
				Idle:     color.RGBA{255, 255, 255, 255},
				Hover:    color.RGBA{200, 255, 200, 255},
				Pressed:  color.RGBA{150, 200, 150, 255},
				Disabled: color.RGBA{20, 20, 30, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if ui.OnSelect != nil {
					ui.OnSelect(id)
				}
			}),
		)
		ui.buttons = append(ui.buttons, btn)
		container.AddChild(btn)
	}
	return container
}

func (ui *SelectUI) buildDetailPanel() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(520, 200)),
	)

	ui.nameLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{100, 180, 255, 255},
		}),
	)
	ui.moveLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	ui.detailLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(ui.nameLabel)
	panel.AddChild(ui.moveLabel)
	panel.AddChild(ui.detailLabel)
	return panel
}

// Highlight marks the i-th fighter and shows its details.
func (ui *SelectUI) Highlight(i int, f roster.Fighter) {
	for j, btn := range ui.buttons {
		btn.GetWidget().Disabled = j == i
	}
	ui.nameLabel.Label = f.Name
	ui.moveLabel.Label = fmt.Sprintf("Special move: %s", f.SpecialMove)
	ui.detailLabel.Label = f.Description
}

func (ui *SelectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *SelectUI) Update() {
	ui.UI.Update()
}

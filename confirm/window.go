package confirm

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// WindowPresenter shows confirmations as Fyne dialogs over a window. It
// must be used from the Fyne goroutine.
type WindowPresenter struct {
	parent fyne.Window
}

// NewWindowPresenter returns a presenter drawing over parent.
func NewWindowPresenter(parent fyne.Window) *WindowPresenter {
	return &WindowPresenter{parent: parent}
}

func (w *WindowPresenter) Present(p Presentation, resolve func(Result, error)) error {
	if w == nil || w.parent == nil || w.parent.Canvas() == nil {
		return ErrNoWindow
	}

	message := widget.NewRichTextFromMarkdown(p.Message)
	message.Wrapping = fyne.TextWrapWord

	icon := widget.NewIcon(iconResource(p.Icon))
	content := container.NewBorder(nil, nil, container.NewCenter(icon), nil, message)

	d := dialog.NewCustomConfirm(p.Title, p.ConfirmText, p.CancelText, content, func(ok bool) {
		if ok {
			resolve(Confirmed, nil)
			return
		}
		resolve(Cancelled, nil)
	}, w.parent)
	d.SetConfirmImportance(confirmImportance(p.Emphasis))

	width := p.Width
	if limit := w.parent.Canvas().Size().Width * p.MaxWidthRatio; p.MaxWidthRatio > 0 && limit > 0 && width > limit {
		width = limit
	}
	d.Resize(fyne.NewSize(width, d.MinSize().Height))
	d.Show()
	return nil
}

var iconResources = map[string]func() fyne.Resource{
	"warning":  theme.WarningIcon,
	"error":    theme.ErrorIcon,
	"help":     theme.HelpIcon,
	"info":     theme.InfoIcon,
	"question": theme.QuestionIcon,
	"delete":   theme.DeleteIcon,
}

func iconResource(name string) fyne.Resource {
	if res, ok := iconResources[name]; ok {
		return res()
	}
	return theme.QuestionIcon()
}

func confirmImportance(e Emphasis) widget.Importance {
	if e == EmphasisWarn {
		return widget.DangerImportance
	}
	return widget.HighImportance
}

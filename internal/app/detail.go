package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/reviewer/review"
)

// drilldownDialog walks the nine category prompts for the row currently
// under review, one question at a time. It is modal over the overview
// dialog; the cursor only sees the merged result when it closes.
type drilldownDialog struct {
	o  *overviewDialog
	dd *review.Drilldown

	dlg    dialog.Dialog
	answer *widget.Select
}

func showDrilldown(o *overviewDialog, dd *review.Drilldown) {
	d := &drilldownDialog{o: o, dd: dd}

	promptScroll := container.NewVScroll(widget.NewRichTextFromMarkdown(""))
	d.answer = widget.NewSelect([]string{string(review.No), string(review.Yes)}, nil)

	nextBtn := widget.NewButton("Next", func() { d.onAdvance(promptScroll) })
	finishBtn := widget.NewButton("Finish", func() { d.onFinish() })

	content := container.NewBorder(
		nil,
		container.NewVBox(
			container.NewHBox(widget.NewLabel("Answer:"), d.answer),
			container.NewHBox(nextBtn, finishBtn),
		),
		nil, nil,
		promptScroll,
	)

	title := fmt.Sprintf("Classification Help - Row %d/%d", o.cur.Index()+1, o.cur.Total())
	d.dlg = dialog.NewCustomWithoutButtons(title, content, o.u.w)
	d.dlg.Resize(fyne.NewSize(600, 400))
	d.show(promptScroll)
	d.dlg.Show()
}

// show presents the current category's prompt and seeded answer.
func (d *drilldownDialog) show(promptScroll *container.Scroll) {
	promptScroll.Content = widget.NewRichTextFromMarkdown(d.dd.Prompt())
	promptScroll.Refresh()
	d.answer.SetSelected(string(d.dd.Current()))
}

func (d *drilldownDialog) selected() review.Answer {
	return review.NormalizeAnswer(d.answer.Selected)
}

func (d *drilldownDialog) onAdvance(promptScroll *container.Scroll) {
	if d.dd.Advance(d.selected()) {
		dialog.ShowInformation("Done", "All 9 questions answered.", d.o.u.w)
		d.accept()
		return
	}
	d.show(promptScroll)
}

func (d *drilldownDialog) onFinish() {
	d.dd.Finish(d.selected())
	d.accept()
}

// accept merges the drill-down result back into the cursor's working
// answers and refreshes the overview selects.
func (d *drilldownDialog) accept() {
	d.o.cur.Resume(d.dd.Answers())
	d.o.refresh()
	d.dlg.Hide()
}

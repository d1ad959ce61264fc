package app

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/reviewer/review"
)

// overviewDialog is the row-by-row annotation window: three read-only text
// panes, one Yes/No select per category and the navigation buttons.
type overviewDialog struct {
	u   *uiState
	cur *review.Cursor
	dlg dialog.Dialog

	rowLabel *widget.Label
	question *widget.Entry
	trueAns  *widget.Entry
	predAns  *widget.Entry

	selects   map[review.Category]*widget.Select
	detailBtn *widget.Button

	finished bool
}

func showOverview(u *uiState, cur *review.Cursor) {
	o := &overviewDialog{u: u, cur: cur}

	o.rowLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	o.question = newReadOnlyEntry()
	o.trueAns = newReadOnlyEntry()
	o.predAns = newReadOnlyEntry()

	o.selects = make(map[review.Category]*widget.Select, review.CategoryCount)
	form := widget.NewForm()
	for _, cat := range review.Categories() {
		cat := cat
		sel := widget.NewSelect([]string{string(review.No), string(review.Yes)}, func(val string) {
			// Locked rows keep their selects disabled; the error only
			// fires on a stale callback and is safe to ignore.
			_ = o.cur.SetAnswer(cat, review.Answer(val))
		})
		o.selects[cat] = sel
		form.Append(string(cat), sel)
	}

	o.detailBtn = widget.NewButton("Open Detailed Classification", o.onDetail)
	prevBtn := widget.NewButton("Previous Row", o.onPrevious)
	nextBtn := widget.NewButton("Next Row", o.onNext)
	finishBtn := widget.NewButton("Finish All", o.onFinishAll)

	content := container.NewVBox(
		o.rowLabel,
		widget.NewLabel("Question:"),
		o.question,
		widget.NewLabel("GSM8K (true_answer):"),
		o.trueAns,
		widget.NewLabel("Model's Answer (predicted_answer_full):"),
		o.predAns,
		widget.NewCard("", "Error Classifications (Yes/No)", form),
		container.NewHBox(o.detailBtn, prevBtn, nextBtn, finishBtn),
	)

	o.dlg = dialog.NewCustomWithoutButtons("Row Overview", container.NewVScroll(content), u.w)
	o.dlg.Resize(fyne.NewSize(900, 600))
	// Any exit path commits the in-view row; closing the dialog without
	// Finish All must not discard the edits made so far.
	o.dlg.SetOnClosed(func() {
		if !o.finished {
			o.cur.Finish()
		}
		u.refreshTable()
	})
	o.refresh()
	o.dlg.Show()
}

func newReadOnlyEntry() *widget.Entry {
	e := widget.NewMultiLineEntry()
	e.Wrapping = fyne.TextWrapWord
	e.Disable()
	return e
}

// refresh fills the widgets from the cursor's current state.
func (o *overviewDialog) refresh() {
	rec := o.cur.Record()
	o.rowLabel.SetText(fmt.Sprintf("Row %d of %d", o.cur.Index()+1, o.cur.Total()))
	o.question.SetText(rec.Question())
	o.trueAns.SetText(rec.TrueAnswer())
	o.predAns.SetText(rec.PredictedAnswer())

	answers := o.cur.Answers()
	locked := o.cur.Locked()
	for cat, sel := range o.selects {
		sel.SetSelected(string(answers[cat]))
		if locked {
			sel.Disable()
		} else {
			sel.Enable()
		}
	}
	if locked {
		o.detailBtn.Disable()
	} else {
		o.detailBtn.Enable()
	}
}

func (o *overviewDialog) onNext() {
	err := o.cur.Next()
	if errors.Is(err, review.ErrNoMoreRows) {
		dialog.ShowInformation("Done", "No more rows to annotate.", o.u.w)
		o.finished = true
		o.cur.Finish()
		o.dlg.Hide()
		return
	}
	o.refresh()
}

func (o *overviewDialog) onPrevious() {
	err := o.cur.Previous()
	if errors.Is(err, review.ErrNoPreviousRow) {
		dialog.ShowInformation("At First Row", "No previous row available.", o.u.w)
		return
	}
	o.refresh()
}

func (o *overviewDialog) onFinishAll() {
	o.cur.Finish()
	o.finished = true
	o.dlg.Hide()
}

func (o *overviewDialog) onDetail() {
	dd, err := o.cur.OpenDrilldown()
	if err != nil {
		var lockedErr *review.LockedRowError
		if errors.As(err, &lockedErr) {
			dialog.ShowInformation("Skipped", "This row is correct. No classification needed.", o.u.w)
			return
		}
		dialog.ShowError(err, o.u.w)
		return
	}
	showDrilldown(o, dd)
}

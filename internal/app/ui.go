package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/reviewer/review"
)

const tableCellLimit = 100

type uiState struct {
	cfg review.Config

	w       fyne.Window
	tbl     *widget.Table
	status  *widget.Label
	logView *widget.Label
	logBind binding.String
	logger  *log.Logger

	loadBtn     *widget.Button
	annotateBtn *widget.Button
	saveBtn     *widget.Button

	set      *review.RecordSet
	filePath string
}

func buildUI(a fyne.App, cfg review.Config) *uiState {
	u := &uiState{cfg: cfg}
	u.w = a.NewWindow("CSV Reviewer")
	u.w.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	u.logBind = binding.NewString()
	capture := newLogCapture(u.logBind, 200)
	u.logger = log.New(io.MultiWriter(os.Stdout, capture), "", log.LstdFlags)

	u.status = widget.NewLabel("Ready")

	u.loadBtn = widget.NewButtonWithIcon("Load CSV", theme.FolderOpenIcon(), func() { u.onLoadFile() })
	u.annotateBtn = widget.NewButtonWithIcon("Annotate Rows", theme.DocumentIcon(), func() { u.onAnnotate() })
	u.saveBtn = widget.NewButtonWithIcon("Save CSV", theme.DocumentSaveIcon(), func() { u.onSave() })
	u.annotateBtn.Disable()
	u.saveBtn.Disable()

	u.tbl = widget.NewTable(
		func() (int, int) {
			if u.set == nil {
				return 0, 0
			}
			return u.set.Len() + 1, len(u.set.Columns())
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if u.set == nil {
				lbl.SetText("")
				return
			}
			columns := u.set.Columns()
			if id.Col >= len(columns) {
				lbl.SetText("")
				return
			}
			if id.Row == 0 {
				lbl.SetText(columns[id.Col])
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			lbl.SetText(truncateText(u.set.Value(id.Row-1, columns[id.Col]), tableCellLimit))
		},
	)

	u.logView = widget.NewLabelWithData(u.logBind)
	u.logView.Wrapping = fyne.TextWrapWord
	logContainer := container.NewVScroll(u.logView)
	logContainer.SetMinSize(fyne.NewSize(200, 100))

	top := container.NewHBox(u.loadBtn, u.annotateBtn, u.saveBtn, u.status)
	bottom := container.NewVBox(widget.NewSeparator(), widget.NewLabel("Log"), logContainer)
	u.w.SetContent(container.NewBorder(top, bottom, nil, nil, u.tbl))
	return u
}

func (u *uiState) refreshTable() {
	if u.set != nil {
		for col := range u.set.Columns() {
			width := float32(150)
			if col == 0 {
				width = 260
			}
			u.tbl.SetColumnWidth(col, width)
		}
	}
	u.tbl.Refresh()
}

func (u *uiState) setStatus(text string) {
	u.status.SetText(text)
}

func (u *uiState) saveConfig() {
	if err := review.SaveConfig("", u.cfg); err != nil {
		u.logger.Printf("failed to save config: %v", err)
	}
}

func (u *uiState) onLoadFile() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		path := rc.URI().Path()
		set, err := review.LoadFile(path)
		if err != nil {
			var missingErr *review.MissingColumnsError
			if errors.As(err, &missingErr) {
				dialog.ShowInformation("Missing Columns",
					fmt.Sprintf("CSV is missing required columns:\n%v", missingErr.Missing), u.w)
				return
			}
			dialog.ShowError(fmt.Errorf("failed to load CSV: %w", err), u.w)
			return
		}
		u.set = set
		u.filePath = path
		u.cfg.LastFile = path
		u.saveConfig()
		u.annotateBtn.Enable()
		u.saveBtn.Enable()
		u.refreshTable()
		u.setStatus(fmt.Sprintf("Loaded %d rows", set.Len()))
		u.logger.Printf("loaded %s (%d rows)", path, set.Len())
	}, u.w)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	fd.Show()
}

func (u *uiState) onAnnotate() {
	if u.set == nil {
		return
	}
	cur, err := review.NewCursor(u.set, u.cfg.StartRow)
	if err != nil {
		if errors.Is(err, review.ErrEmptyDataset) {
			dialog.ShowInformation("No Data", "No rows to annotate.", u.w)
			return
		}
		dialog.ShowError(err, u.w)
		return
	}
	showOverview(u, cur)
}

func (u *uiState) onSave() {
	if u.set == nil || u.filePath == "" {
		dialog.ShowInformation("No Data", "No CSV loaded.", u.w)
		return
	}
	outPath, err := u.set.SaveAnnotated(u.filePath, u.cfg)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to save CSV: %w", err), u.w)
		return
	}
	u.logger.Printf("saved %s", outPath)
	dialog.ShowInformation("Saved", fmt.Sprintf("CSV saved to: %s", outPath), u.w)
}

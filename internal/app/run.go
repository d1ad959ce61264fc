package app

import (
	fyneapp "fyne.io/fyne/v2/app"

	"yashubustudio/reviewer/review"
)

const fyneAppID = "studio.yashubu.reviewer"

// Run loads the persisted settings and starts the desktop UI.
func Run() error {
	cfg, err := review.LoadConfig("")
	if err != nil {
		return err
	}

	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, cfg)
	u.w.ShowAndRun()
	return nil
}

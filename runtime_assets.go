package mform

import (
	"io/fs"

	"github.com/goliatone/go-mform/pkg/themes"
)

// ThemeAssetsFS exposes the bundled theme stylesheets rooted at the themes
// directory, matching the URLs reported in Result.Stylesheets.
//
// Typical mount:
//
//	mux.Handle("/assets/addons/mform/themes/",
//	  http.StripPrefix("/assets/addons/mform/themes/",
//	    http.FileServerFS(mform.ThemeAssetsFS()),
//	  ),
//	)
func ThemeAssetsFS() fs.FS {
	return themes.AssetsFS()
}

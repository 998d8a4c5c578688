package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
  __                  __                __
 / /____ ____ _____ / /___  __  ______/ /
/ __/ __ '/ __ '/ ___/ / __ \/ / / / __  /
/ /_/ /_/ / /_/ / /__/ / /_/ / /_/ / /_/ /
\__/\__,_/\__, /\___/_/\____/\__,_/\__,_/
         /____/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates tagcloud
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("tagcloud", version)()
	}
}

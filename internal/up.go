package internal

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const releasesURL = "https://github.com/differential-bio/diffcolors/releases/latest"

// CheckForUpdates compares the latest released tag with the running version
// and writes a notice to ch, or an empty string when up to date or offline.
// Meant to run in a goroutine while the command does its work.
func CheckForUpdates(currentVersion string, ch *chan string) {
	client := http.Client{Timeout: 3 * time.Second}
	res, err := client.Get(releasesURL)
	if err != nil {
		*ch <- ""
		return
	}
	defer res.Body.Close()

	// github redirects /releases/latest to the tagged release page
	finalURL := res.Request.URL.String()
	latest := finalURL[strings.LastIndex(finalURL, "/")+1:]

	if !semver.IsValid(latest) || semver.Compare(latest, currentVersion) <= 0 {
		*ch <- ""
		return
	}

	message := "A new version of diffcolors is available: " + latest + " (current " + currentVersion + ")"
	if NO_COLOR {
		*ch <- message
	} else {
		*ch <- YELLOW + message + RESET
	}
}

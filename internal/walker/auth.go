package walker

import "errors"

// ErrNotAuthorized is returned when a live walk was requested without
// explicit consent.
var ErrNotAuthorized = errors.New("not executing the walk since the --execute argument is not set")

// AuthorizeSwitch checks the app-switcher flags. The walk may run when any of
// dryRun, execute or title is given. A title forces dry-run off. It returns
// the effective dry-run mode.
func AuthorizeSwitch(dryRun, execute bool, title string) (bool, error) {
	if !dryRun && !execute && title == "" {
		return false, ErrNotAuthorized
	}
	if title != "" {
		return false, nil
	}
	return dryRun, nil
}

// AuthorizeSend checks the messaging flags. Sending always targets a fixed
// title, which forces dry-run off, so execute is required.
func AuthorizeSend(dryRun, execute bool) (bool, error) {
	if !execute {
		return false, ErrNotAuthorized
	}
	return false, nil
}

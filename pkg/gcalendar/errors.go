package gcalendar

import "errors"

var (
	ErrEmptyEventID  = errors.New("gcalendar: event id is required")
	ErrTokenNotFound = errors.New("gcalendar: OAuth credentials need a saved token, run `taskctl calendar auth` first")
)

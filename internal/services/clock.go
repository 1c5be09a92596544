package services

import "time"

// timeNow stamps created/updated times. A variable so tests can pin it.
var timeNow = func() time.Time { return time.Now().UTC() }

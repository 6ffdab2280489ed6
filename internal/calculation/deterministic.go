package calculation

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests). Nil restores time.Now.
func SetNowFunc(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	nowFunc = f
}

func defaultIDFunc() string { return uuid.NewString() }

// idFunc returns a new report identifier.
var idFunc = defaultIDFunc

// SetIDFunc overrides the report id provider (use only in tests). Nil restores random ids.
func SetIDFunc(f func() string) {
	if f == nil {
		f = defaultIDFunc
	}
	idFunc = f
}

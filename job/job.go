package job

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Job identifies a background job that must not run concurrently with itself
type Job string

const (
	Collect Job = "collect"
	Process Job = "process"
	Relate  Job = "relate"
	Purge   Job = "purge"
)

// Jobs lists every known job
var Jobs = []Job{Collect, Process, Relate, Purge}

// Parse returns the job with the given name
func Parse(name string) (Job, error) {
	for _, j := range Jobs {
		if string(j) == name {
			return j, nil
		}
	}

	return "", errors.Errorf("unknown job: %q", name)
}

// JobLock contains the data associated with a held job lock stored in the
// database. At most one lock exists per job
type JobLock struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	Job          Job       `gorm:"size:16;unique_index;not null" json:"job"`
	LockDatetime time.Time `gorm:"not null" json:"lock_datetime"`
}

// TableName overrides the gorm table name
func (JobLock) TableName() string {
	return "joblock"
}

// BeforeCreate defaults the lock time to now
func (l *JobLock) BeforeCreate() error {
	if l.LockDatetime.IsZero() {
		l.LockDatetime = time.Now().UTC()
	}

	return nil
}

// Expired reports whether the lock was taken more than timeout before now
func (l *JobLock) Expired(timeout time.Duration, now time.Time) bool {
	return l.LockDatetime.Before(now.Add(-timeout))
}

func (l *JobLock) String() string {
	return fmt.Sprintf(
		"<Job '%s' locked at %s>",
		l.Job,
		l.LockDatetime.Format(time.RFC3339))
}

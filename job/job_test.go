package job_test

import (
	"testing"
	"ticker/job"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReturnsKnownJobs(t *testing.T) {
	for _, j := range job.Jobs {
		parsed, err := job.Parse(string(j))
		assert.NoError(t, err)
		assert.Equal(t, j, parsed)
	}
}

func TestParseRejectsUnknownJob(t *testing.T) {
	_, err := job.Parse("dance")
	assert.EqualError(t, err, `unknown job: "dance"`)
}

func TestBeforeCreateDefaultsLockTime(t *testing.T) {
	l := &job.JobLock{Job: job.Collect}
	assert.NoError(t, l.BeforeCreate())
	assert.False(t, l.LockDatetime.IsZero())

	fixed := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	l = &job.JobLock{Job: job.Collect, LockDatetime: fixed}
	assert.NoError(t, l.BeforeCreate())
	assert.Equal(t, fixed, l.LockDatetime)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	l := &job.JobLock{Job: job.Process, LockDatetime: now.Add(-10 * time.Minute)}

	assert.True(t, l.Expired(5*time.Minute, now))
	assert.False(t, l.Expired(15*time.Minute, now))
}

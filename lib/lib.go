package lib

import (
	"context"
	"ticker/db"
	"ticker/feed"
	"ticker/job"
	"ticker/parser"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	DefaultLockTimeout   = 10 * time.Minute
	DefaultCollectWindow = 24 * time.Hour
	DefaultMaxAge        = 7 * 24 * time.Hour
	DefaultBatchSize     = 500
)

// ErrLocked is returned when another run of the same job holds a fresh lock
var ErrLocked = errors.New("job is locked")

var now = time.Now

// CollectOptions configures a collect run. Items published more than Window
// ago, or in the future, are skipped
type CollectOptions struct {
	LockTimeout time.Duration
	Window      time.Duration
}

// CollectResult summarizes a collect run. Idle counts the feeds that were not
// due yet
type CollectResult struct {
	Feeds    int `json:"feeds"`
	Idle     int `json:"idle"`
	Failed   int `json:"failed"`
	Ingested int `json:"ingested"`
	Skipped  int `json:"skipped"`
}

// PurgeOptions configures a purge run
type PurgeOptions struct {
	MaxAge      time.Duration
	BatchSize   int
	LockTimeout time.Duration
}

func acquire(store db.Locker, j job.Job, timeout time.Duration) (*job.JobLock, error) {
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}

	lock, err := store.MatchingJobLock(j)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job lock")
	}

	if lock != nil {
		if !lock.Expired(timeout, now()) {
			return nil, ErrLocked
		}

		log.Warn().Msgf("Removing expired lock %s", lock)
		err = store.DeleteJobLock(lock)
		if err != nil {
			return nil, errors.Wrap(err, "failed to delete expired job lock")
		}
	}

	lock = &job.JobLock{Job: j, LockDatetime: now().UTC()}
	err = store.SaveJobLock(lock)
	if err != nil {
		if db.IsDuplicate(err) {
			return nil, ErrLocked
		}
		return nil, errors.Wrap(err, "failed to save job lock")
	}

	return lock, nil
}

func release(store db.Locker, lock *job.JobLock) {
	err := store.DeleteJobLock(lock)
	if err != nil {
		log.Error().Err(err).Msgf("Failed to release lock %s", lock)
	}
}

// Collect fetches the feeds that are due and ingests the posts not seen
// before. Feeds that fail to parse and items that fail validation are logged
// and skipped. Each collected feed is rescheduled by whether it had new posts
func Collect(ctx context.Context, store db.Collector, p parser.Parser, opts CollectOptions) (*CollectResult, error) {
	if opts.Window <= 0 {
		opts.Window = DefaultCollectWindow
	}

	lock, err := acquire(store, job.Collect, opts.LockTimeout)
	if err != nil {
		return nil, err
	}
	defer release(store, lock)

	feeds, err := store.Feeds()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get feeds")
	}

	res := &CollectResult{}
	for _, f := range feeds {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		status, err := store.FeedStatus(f.ID)
		if err != nil {
			return res, errors.Wrap(err, "failed to get feed status")
		}
		if status == nil {
			status = &feed.Status{FeedID: f.ID}
		} else if !status.Due(now()) {
			res.Idle++
			continue
		}

		res.Feeds++
		n, err := collectFeed(ctx, store, p, f, opts.Window, res)
		if err != nil {
			return res, err
		}

		status.Reschedule(n, now())
		err = store.SaveFeedStatus(status)
		if err != nil {
			return res, errors.Wrap(err, "failed to save feed status")
		}
	}

	return res, nil
}

// collectFeed ingests the new posts of one feed and returns how many there
// were
func collectFeed(ctx context.Context, store db.Collector, p parser.Parser, f *feed.Feed, window time.Duration, res *CollectResult) (int, error) {
	gfeed, err := p.ParseURL(ctx, f.URL)
	if err != nil {
		log.Warn().Err(err).Msgf("Failed to fetch %s", f.URL)
		res.Failed++
		return 0, nil
	}

	if len(gfeed.Items) == 0 {
		log.Warn().Msgf("%s feed is empty", f.URL)
	}

	collectedAt := now().UTC()
	oldest := collectedAt.Add(-window)

	var n int
	for _, gitem := range gfeed.Items {
		post, err := feed.PostFromGofeedItem(gitem)
		if err != nil {
			log.Debug().Err(err).Msgf("Skipping invalid item from %s", f.URL)
			res.Skipped++
			continue
		}

		if post.PublishedDatetime.After(collectedAt) || post.PublishedDatetime.Before(oldest) {
			log.Debug().Msgf("Skipping '%s' published at %s", post.Title, post.PublishedDatetime.Format(time.RFC3339))
			res.Skipped++
			continue
		}

		existing, err := store.MatchingPost(post)
		if err != nil {
			return n, errors.Wrap(err, "failed to get matching post")
		}
		if existing != nil {
			res.Skipped++
			continue
		}

		post.FeedID = f.ID
		err = store.IngestPost(post)
		if err != nil {
			if db.IsDuplicate(err) {
				res.Skipped++
				continue
			}
			return n, errors.Wrap(err, "failed to ingest post")
		}

		log.Info().Msgf("Ingested '%s'", post.Title)
		res.Ingested++
		n++
	}

	return n, nil
}

// Purge deletes posts published more than MaxAge ago, BatchSize at a time,
// and returns how many were removed
func Purge(store db.Purger, opts PurgeOptions) (int, error) {
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	lock, err := acquire(store, job.Purge, opts.LockTimeout)
	if err != nil {
		return 0, err
	}
	defer release(store, lock)

	cutoff := now().UTC().Add(-opts.MaxAge)

	var total int
	for {
		ids, err := store.ExpiredPostIDs(cutoff, opts.BatchSize)
		if err != nil {
			return total, errors.Wrap(err, "failed to get expired posts")
		}
		if len(ids) == 0 {
			break
		}

		n, err := store.DeletePosts(ids)
		if err != nil {
			return total, errors.Wrap(err, "failed to delete posts")
		}

		total += n
		log.Info().Msgf("Purged %d posts published before %s", n, cutoff.Format(time.RFC3339))

		if n == 0 || len(ids) < opts.BatchSize {
			break
		}
	}

	return total, nil
}

// Watch calls fn immediately and then once per interval until ctx is done.
// Errors from fn are logged and do not stop the loop
func Watch(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	if interval <= 0 {
		return errors.Errorf("invalid interval: %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := fn(ctx)
		switch {
		case errors.Cause(err) == ErrLocked:
			log.Info().Msg("Job is locked by another run, skipping")
		case err != nil && ctx.Err() == nil:
			log.Error().Err(err).Msg("Job failed")
		}

		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

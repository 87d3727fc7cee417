package db

import (
	"ticker/job"
	"ticker/process"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

func (gdb *gormDB) EnqueuedEntities(limit int) ([]*process.EntityQueue, error) {
	var queued []*process.EntityQueue
	err := gdb.db.Order("id").Limit(limit).Find(&queued).Error
	return queued, errors.Wrap(err, "failed to get entity queue")
}

// SaveEntities replaces the entities of a post and removes it from the
// entity queue
func (gdb *gormDB) SaveEntities(postID uint, entities []string) error {
	return gdb.transaction(func(tx *gorm.DB) error {
		err := tx.Where("post_id = ?", postID).Delete(&process.Entity{}).Error
		if err != nil {
			return errors.Wrap(err, "failed to delete entities")
		}

		for _, e := range entities {
			err = tx.Create(&process.Entity{PostID: postID, Entity: e}).Error
			if err != nil {
				return errors.Wrap(err, "failed to save entity")
			}
		}

		err = tx.Where("post_id = ?", postID).Delete(&process.EntityQueue{}).Error
		return errors.Wrap(err, "failed to dequeue post")
	})
}

func (gdb *gormDB) EnqueuedSimilarities(limit int) ([]*process.SimilarityQueue, error) {
	var queued []*process.SimilarityQueue
	err := gdb.db.Order("id").Limit(limit).Find(&queued).Error
	return queued, errors.Wrap(err, "failed to get similarity queue")
}

// SaveSimilarities records the posts related to a post and removes it from
// the similarity queue
func (gdb *gormDB) SaveSimilarities(postID uint, relatedIDs []uint) error {
	return gdb.transaction(func(tx *gorm.DB) error {
		var existing []uint
		err := tx.Model(&process.Similarity{}).
			Where("source_id = ?", postID).
			Pluck("related_id", &existing).Error
		if err != nil {
			return errors.Wrap(err, "failed to get similarities")
		}

		seen := unique(existing)
		seen[postID] = struct{}{}
		for _, id := range relatedIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			err := tx.Create(&process.Similarity{SourceID: postID, RelatedID: id}).Error
			if err != nil {
				return errors.Wrap(err, "failed to save similarity")
			}
		}

		err = tx.Where("post_id = ?", postID).Delete(&process.SimilarityQueue{}).Error
		return errors.Wrap(err, "failed to dequeue post")
	})
}

func (gdb *gormDB) MatchingJobLock(j job.Job) (*job.JobLock, error) {
	var lock job.JobLock
	found, err := first(gdb.db, &lock, "job = ?", j)
	if !found {
		return nil, errors.Wrap(err, "failed to get job lock")
	}

	return &lock, nil
}

func (gdb *gormDB) SaveJobLock(l *job.JobLock) error {
	return errors.Wrap(gdb.db.Save(l).Error, "failed to save job lock")
}

func (gdb *gormDB) DeleteJobLock(l *job.JobLock) error {
	if l.ID == 0 {
		return ErrMissingID
	}

	return errors.Wrap(gdb.db.Delete(l).Error, "failed to delete job lock")
}

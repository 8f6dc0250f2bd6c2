//go:build !unit_test
// +build !unit_test

package dataset

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/odpf/digits/core/dataset"
	repoDataset "github.com/odpf/digits/internal/store/postgres/dataset"
	"github.com/odpf/digits/tests/setup"
)

func BenchmarkJobRepository(b *testing.B) {
	ctx := context.Background()
	createdAt := time.Date(2016, 1, 2, 3, 4, 5, 0, time.UTC)
	details := &dataset.ImageClassification{
		ImageDims: dataset.ImageDims{Height: 28, Width: 28, Channels: 1},
		Stages: []dataset.StageDB{
			{Stage: dataset.StageTrain, Backend: "lmdb", Entries: 45000},
			{Stage: dataset.StageVal, Backend: "lmdb", Entries: 15000},
		},
	}

	dbSetup := func() *gorm.DB {
		dbConn := setup.TestDB()
		setup.TruncateTables(dbConn)
		return dbConn
	}

	b.Run("Save", func(b *testing.B) {
		db := dbSetup()
		repo := repoDataset.NewJobRepository(db)

		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			id := dataset.JobID(fmt.Sprintf("job-%d", i))
			job, err := dataset.NewImageClassificationJob(id, "mnist", "/data/"+id.String(), dataset.StatusDone, createdAt, details)
			assert.NoError(b, err)

			actualError := repo.Save(ctx, job)
			assert.NoError(b, actualError)
		}
	})

	b.Run("GetByID", func(b *testing.B) {
		db := dbSetup()
		repo := repoDataset.NewJobRepository(db)
		maxNumberOfJobs := 50
		for i := 0; i < maxNumberOfJobs; i++ {
			id := dataset.JobID(fmt.Sprintf("job-%d", i))
			job, err := dataset.NewImageClassificationJob(id, "mnist", "/data/"+id.String(), dataset.StatusDone, createdAt, details)
			assert.NoError(b, err)

			actualError := repo.Save(ctx, job)
			assert.NoError(b, actualError)
		}

		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			id := dataset.JobID(fmt.Sprintf("job-%d", i%maxNumberOfJobs))
			actualJob, actualError := repo.GetByID(ctx, id)
			assert.NotNil(b, actualJob)
			assert.NoError(b, actualError)
		}
	})
}

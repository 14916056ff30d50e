package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/mert/facesmash/internal/app/models"
	appRepos "github.com/mert/facesmash/internal/app/repositories"
	"github.com/mert/facesmash/internal/pkg/apperrors"
)

func ptr(s string) *string { return &s }

// sampleStudents is a small roster for local development.
var sampleStudents = []appModels.Student{
	{RollNumber: "cs2021001", ImageURL: "https://picsum.photos/seed/cs2021001/400/400.jpg", Gender: "male", InstagramID: ptr("arda.dev")},
	{RollNumber: "cs2021002", ImageURL: "https://picsum.photos/seed/cs2021002/400/400.jpg", Gender: "female", InstagramID: ptr("elif_k")},
	{RollNumber: "cs2021003", ImageURL: "https://picsum.photos/seed/cs2021003/400/400.jpg", Gender: "male"},
	{RollNumber: "cs2021004", ImageURL: "https://picsum.photos/seed/cs2021004/400/400.jpg", Gender: "female", InstagramID: ptr("zeynep.png")},
	{RollNumber: "cs2021005", ImageURL: "https://picsum.photos/seed/cs2021005/400/400.jpg", Gender: "other"},
	{RollNumber: "ee2022010", ImageURL: "https://picsum.photos/seed/ee2022010/400/400.jpg", Gender: "male", InstagramID: ptr("mert_ee")},
	{RollNumber: "ee2022011", ImageURL: "https://picsum.photos/seed/ee2022011/400/400.jpg", Gender: "female"},
	{RollNumber: "me2020042", ImageURL: "https://picsum.photos/seed/me2020042/400/400.jpg", Gender: "male"},
}

// CreateSampleStudents inserts the development roster. Rows that already
// exist are skipped so the seed is safe to re-run.
func CreateSampleStudents(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repo := appRepos.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating sample students...")
	var finalErr error

	created := 0
	for i := range sampleStudents {
		student := sampleStudents[i]
		err := repo.Create(ctx, &student)
		if errors.Is(err, apperrors.ErrDuplicateRollNumber) {
			continue
		}
		if err != nil {
			lgr.Error().Err(err).Str("rollNumber", student.RollNumber).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Sample student seeding finished")
	return finalErr
}

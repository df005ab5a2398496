package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/pkg/utils"
)

type recordingVacationRepo struct {
	fakeVacationRepo
	created   []*db_models.Vacation
	deletedOK bool
}

func (r *recordingVacationRepo) Create(ctx context.Context, v *db_models.Vacation) error {
	r.created = append(r.created, v)
	return nil
}

func (r *recordingVacationRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	return r.deletedOK, nil
}

func TestCreateVacationValidatesDates(t *testing.T) {
	repo := &recordingVacationRepo{}
	svc := NewVacationService(repo)
	userID := uuid.New()

	cases := []struct {
		name       string
		start, end string
		want       error
	}{
		{"malformed start", "next monday", "2025-11-10", utils.ErrInvalidDate},
		{"malformed end", "2025-11-03", "soon", utils.ErrInvalidDate},
		{"end before start", "2025-11-10", "2025-11-03", utils.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateVacation(context.Background(), userID, request_models.CreateVacationRequest{
				StartDate: tc.start,
				EndDate:   tc.end,
			})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if len(repo.created) != 0 {
		t.Fatalf("invalid requests persisted %d vacations", len(repo.created))
	}
}

func TestCreateVacationSingleDay(t *testing.T) {
	repo := &recordingVacationRepo{}
	svc := NewVacationService(repo)

	vacation, err := svc.CreateVacation(context.Background(), uuid.New(), request_models.CreateVacationRequest{
		StartDate: "2025-11-03",
		EndDate:   "2025-11-03",
		Note:      "long weekend",
	})
	if err != nil {
		t.Fatalf("CreateVacation: %v", err)
	}
	if !vacation.StartDate.Equal(vacation.EndDate) {
		t.Fatal("single-day span mangled")
	}
	if want := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC); !vacation.StartDate.Equal(want) {
		t.Fatalf("StartDate = %s", vacation.StartDate)
	}
}

func TestDeleteVacationNotOwned(t *testing.T) {
	repo := &recordingVacationRepo{deletedOK: false}
	svc := NewVacationService(repo)

	err := svc.DeleteVacation(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

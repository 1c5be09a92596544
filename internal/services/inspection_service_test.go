package services

import (
	"context"
	"testing"
	"time"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInspectionDefaults(t *testing.T) {
	projectRepo := newFakeProjectRepo(testProject("p1"))
	svc := NewInspectionService(newFakeInspectionRepo(), projectRepo, newFakeStore())

	inspection, err := svc.CreateInspection(context.Background(), CreateInspectionRequest{ProjectID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, models.InspectionPending, inspection.PlumbingStatus)
	assert.Equal(t, models.InspectionPending, inspection.ElectricityStatus)
	assert.Equal(t, models.InspectionPending, inspection.ChimneyPointStatus)
	assert.Equal(t, models.InspectionPending, inspection.FalseCeilingStatus)
	assert.Equal(t, models.InspectionPending, inspection.FlooringStatus)
	assert.False(t, inspection.ReadyForNextPhase)
	assert.Empty(t, inspection.OtherVideos)
	assert.False(t, inspection.InspectionDate.IsZero())
}

func TestCreateInspectionWithAspects(t *testing.T) {
	projectRepo := newFakeProjectRepo(testProject("p1"))
	store := newFakeStore()
	svc := NewInspectionService(newFakeInspectionRepo(), projectRepo, store)

	date := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	ready := true
	inspection, err := svc.CreateInspection(context.Background(), CreateInspectionRequest{
		ProjectID:      "p1",
		InspectionDate: &date,
		Plumbing: InspectionAspectInput{
			Status: strPtr(models.InspectionCompleted),
			Video:  testUpload("plumbing walkthrough.mp4"),
		},
		Flooring:          InspectionAspectInput{Status: strPtr(models.InspectionNotRequired)},
		OtherVideos:       []*storage.FileUpload{testUpload("site.mp4")},
		ReadyForNextPhase: &ready,
	})
	require.NoError(t, err)

	assert.Equal(t, date, inspection.InspectionDate)
	assert.Equal(t, models.InspectionCompleted, inspection.PlumbingStatus)
	require.NotNil(t, inspection.PlumbingVideo)
	assert.Contains(t, *inspection.PlumbingVideo, "projects/p1/inspection/")
	assert.Equal(t, models.InspectionNotRequired, inspection.FlooringStatus)
	assert.Equal(t, models.InspectionPending, inspection.ElectricityStatus)
	assert.Len(t, inspection.OtherVideos, 1)
	assert.True(t, inspection.ReadyForNextPhase)
}

func TestCreateInspectionRejectsBadStatus(t *testing.T) {
	projectRepo := newFakeProjectRepo(testProject("p1"))
	svc := NewInspectionService(newFakeInspectionRepo(), projectRepo, newFakeStore())

	_, err := svc.CreateInspection(context.Background(), CreateInspectionRequest{
		ProjectID: "p1",
		Plumbing:  InspectionAspectInput{Status: strPtr("Done")},
	})
	assert.ErrorIs(t, err, ErrInspectionValidation)
}

func TestCreateInspectionUnknownProject(t *testing.T) {
	svc := NewInspectionService(newFakeInspectionRepo(), newFakeProjectRepo(), newFakeStore())

	_, err := svc.CreateInspection(context.Background(), CreateInspectionRequest{ProjectID: "missing"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestUpdateInspectionReplacesAspectVideo(t *testing.T) {
	oldURL := "https://bucket.s3.test.amazonaws.com/projects/p1/inspection/1-old.mp4"
	repo := newFakeInspectionRepo(&models.Inspection{
		ID:                "in1",
		ProjectID:         "p1",
		PlumbingStatus:    models.InspectionInProgress,
		PlumbingVideo:     &oldURL,
		ElectricityStatus: models.InspectionPending,
		ChimneyPointStatus: models.InspectionPending,
		FalseCeilingStatus: models.InspectionPending,
		FlooringStatus:    models.InspectionPending,
		OtherVideos:       []string{},
	})
	store := newFakeStore()
	svc := NewInspectionService(repo, newFakeProjectRepo(testProject("p1")), store)

	inspection, err := svc.UpdateInspection(context.Background(), "in1", UpdateInspectionRequest{
		Plumbing: InspectionAspectInput{
			Status: strPtr(models.InspectionCompleted),
			Video:  testUpload("plumbing final.mp4"),
		},
		OtherVideos: []*storage.FileUpload{testUpload("extra.mp4")},
	})
	require.NoError(t, err)

	assert.Equal(t, models.InspectionCompleted, inspection.PlumbingStatus)
	require.NotNil(t, inspection.PlumbingVideo)
	assert.NotEqual(t, oldURL, *inspection.PlumbingVideo)
	assert.Contains(t, store.deleted, oldURL, "replaced video is removed")
	assert.Len(t, inspection.OtherVideos, 1, "new extra videos are appended")
}

func TestUpdateInspectionKeepsUntouchedAspects(t *testing.T) {
	repo := newFakeInspectionRepo(&models.Inspection{
		ID:                "in1",
		ProjectID:         "p1",
		PlumbingStatus:    models.InspectionCompleted,
		ElectricityStatus: models.InspectionInProgress,
		ChimneyPointStatus: models.InspectionPending,
		FalseCeilingStatus: models.InspectionPending,
		FlooringStatus:    models.InspectionPending,
	})
	svc := NewInspectionService(repo, newFakeProjectRepo(testProject("p1")), newFakeStore())

	inspection, err := svc.UpdateInspection(context.Background(), "in1", UpdateInspectionRequest{
		Flooring: InspectionAspectInput{Status: strPtr(models.InspectionCompleted)},
	})
	require.NoError(t, err)

	assert.Equal(t, models.InspectionCompleted, inspection.PlumbingStatus)
	assert.Equal(t, models.InspectionInProgress, inspection.ElectricityStatus)
	assert.Equal(t, models.InspectionCompleted, inspection.FlooringStatus)
}

func TestDeleteOtherVideo(t *testing.T) {
	repo := newFakeInspectionRepo(&models.Inspection{
		ID:          "in1",
		ProjectID:   "p1",
		OtherVideos: []string{"https://x/a.mp4", "https://x/b.mp4"},
	})
	store := newFakeStore()
	svc := NewInspectionService(repo, newFakeProjectRepo(testProject("p1")), store)

	inspection, err := svc.DeleteOtherVideo(context.Background(), "in1", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://x/b.mp4"}, inspection.OtherVideos)
	assert.Contains(t, store.deleted, "https://x/a.mp4")

	_, err = svc.DeleteOtherVideo(context.Background(), "in1", 5)
	assert.ErrorIs(t, err, ErrInspectionValidation, "out of range index is rejected")
}

func TestDeleteInspectionReportsFileFailures(t *testing.T) {
	plumbingURL := "https://x/plumbing.mp4"
	repo := newFakeInspectionRepo(&models.Inspection{
		ID:            "in1",
		ProjectID:     "p1",
		PlumbingVideo: &plumbingURL,
		OtherVideos:   []string{"https://x/extra.mp4"},
	})
	store := newFakeStore()
	store.failDeletes["https://x/extra.mp4"] = true
	svc := NewInspectionService(repo, newFakeProjectRepo(testProject("p1")), store)

	result, err := svc.DeleteInspection(context.Background(), "in1")
	require.NoError(t, err)

	require.Len(t, result.FileResults, 2)
	outcomes := map[string]bool{}
	for _, res := range result.FileResults {
		outcomes[res.URL] = res.OK
	}
	assert.True(t, outcomes[plumbingURL])
	assert.False(t, outcomes["https://x/extra.mp4"])

	_, err = svc.GetInspectionByID(context.Background(), "in1")
	assert.ErrorIs(t, err, ErrInspectionNotFound)
}

package services

import (
	"context"
	"testing"

	"homeveda_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectKitchen(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	project, err := svc.CreateProject(context.Background(), CreateProjectRequest{
		UserEmail: "client@example.com",
		Kitchen:   &models.KitchenConfig{Layout: "L-Shaped", Finish: "Matte"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, models.StageNew, project.Status, "status defaults to the first stage")
	assert.NotNil(t, project.Kitchen)
	assert.Nil(t, project.Wardrobe)
}

func TestCreateProjectRejectsBothConfigs(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.CreateProject(context.Background(), CreateProjectRequest{
		UserEmail: "client@example.com",
		Kitchen:   &models.KitchenConfig{Layout: "Straight"},
		Wardrobe:  &models.WardrobeConfig{DoorType: "Sliding"},
	})
	assert.ErrorIs(t, err, ErrProjectValidation)
}

func TestCreateProjectRejectsNeitherConfig(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.CreateProject(context.Background(), CreateProjectRequest{UserEmail: "client@example.com"})
	assert.ErrorIs(t, err, ErrProjectValidation)
}

func TestCreateProjectValidatesCategoryAndStatus(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.CreateProject(context.Background(), CreateProjectRequest{
		UserEmail: "client@example.com",
		Kitchen:   &models.KitchenConfig{Layout: "Straight"},
		Category:  strPtr("Luxury"),
	})
	assert.ErrorIs(t, err, ErrProjectValidation)

	_, err = svc.CreateProject(context.Background(), CreateProjectRequest{
		UserEmail: "client@example.com",
		Kitchen:   &models.KitchenConfig{Layout: "Straight"},
		Status:    strPtr("Finished"),
	})
	assert.ErrorIs(t, err, ErrProjectValidation)
}

func TestUpdateProjectSwitchesConfig(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.CreateProject(context.Background(), CreateProjectRequest{
		UserEmail: "client@example.com",
		Kitchen:   &models.KitchenConfig{Layout: "U-Shaped"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProject(context.Background(), project.ID, UpdateProjectRequest{
		Wardrobe: &models.WardrobeConfig{DoorType: "Hinged", HeightMM: 2400},
	})
	require.NoError(t, err)

	assert.Nil(t, updated.Kitchen, "switching to a wardrobe clears the kitchen config")
	require.NotNil(t, updated.Wardrobe)
	assert.Equal(t, "Hinged", updated.Wardrobe.DoorType)
}

func TestUpdateProjectRejectsBothConfigs(t *testing.T) {
	repo := newFakeProjectRepo(testProject("p1"))
	svc := NewProjectService(repo)

	_, err := svc.UpdateProject(context.Background(), "p1", UpdateProjectRequest{
		Kitchen:  &models.KitchenConfig{Layout: "Straight"},
		Wardrobe: &models.WardrobeConfig{DoorType: "Sliding"},
	})
	assert.ErrorIs(t, err, ErrProjectValidation)
}

func TestUpdateProjectAdvancesStage(t *testing.T) {
	repo := newFakeProjectRepo(testProject("p1"))
	svc := NewProjectService(repo)

	updated, err := svc.UpdateProject(context.Background(), "p1", UpdateProjectRequest{
		Status: strPtr(models.StageDesign),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StageDesign, updated.Status)
}

func TestGetProjectByIDNotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.GetProjectByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProjectNotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())
	assert.ErrorIs(t, svc.DeleteProject(context.Background(), "missing"), ErrProjectNotFound)
}

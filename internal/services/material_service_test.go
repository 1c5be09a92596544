package services

import (
	"context"
	"testing"

	"homeveda_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMaterialsCreatesDocumentOnFirstUse(t *testing.T) {
	materialRepo := newFakeMaterialRepo()
	projectRepo := newFakeProjectRepo(testProject("p1"))
	store := newFakeStore()
	svc := NewMaterialService(materialRepo, projectRepo, store)

	material, err := svc.AddMaterials(context.Background(), AddMaterialsRequest{
		ProjectID: "p1",
		Items: []MaterialItemInput{
			{Name: "Laminate", Color: strPtr("Walnut"), Image: testUpload("laminate.jpg")},
			{Name: "Handle"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, material.ID)
	assert.Equal(t, "p1", material.ProjectID)
	require.Len(t, material.Materials, 2)
	require.NotNil(t, material.Materials[0].ImageLink)
	assert.Contains(t, *material.Materials[0].ImageLink, "projects/p1/material/")
	assert.Nil(t, material.Materials[1].ImageLink)
}

func TestAddMaterialsAppendsToExistingDocument(t *testing.T) {
	materialRepo := newFakeMaterialRepo(&models.Material{
		ID:        "m1",
		ProjectID: "p1",
		Materials: []models.MaterialItem{{ID: "i1", Name: "Laminate"}},
	})
	projectRepo := newFakeProjectRepo(testProject("p1"))
	svc := NewMaterialService(materialRepo, projectRepo, newFakeStore())

	material, err := svc.AddMaterials(context.Background(), AddMaterialsRequest{
		ProjectID: "p1",
		Items:     []MaterialItemInput{{Name: "Handle"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "m1", material.ID, "existing document is reused")
	assert.Len(t, material.Materials, 2)
}

func TestAddMaterialsValidation(t *testing.T) {
	projectRepo := newFakeProjectRepo(testProject("p1"))
	svc := NewMaterialService(newFakeMaterialRepo(), projectRepo, newFakeStore())

	_, err := svc.AddMaterials(context.Background(), AddMaterialsRequest{ProjectID: "p1"})
	assert.ErrorIs(t, err, ErrMaterialValidation)

	_, err = svc.AddMaterials(context.Background(), AddMaterialsRequest{
		ProjectID: "missing",
		Items:     []MaterialItemInput{{Name: "Laminate"}},
	})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestUpdateMaterialItemRemoveImage(t *testing.T) {
	imageURL := "https://bucket.s3.test.amazonaws.com/projects/p1/material/1-a.jpg"
	materialRepo := newFakeMaterialRepo(&models.Material{
		ID:        "m1",
		ProjectID: "p1",
		Materials: []models.MaterialItem{{ID: "i1", Name: "Laminate", ImageLink: &imageURL}},
	})
	store := newFakeStore()
	svc := NewMaterialService(materialRepo, newFakeProjectRepo(testProject("p1")), store)

	material, err := svc.UpdateMaterialItem(context.Background(), "p1", "i1", UpdateMaterialItemRequest{
		RemoveImage: true,
	})
	require.NoError(t, err)

	assert.Nil(t, material.Materials[0].ImageLink)
	assert.Contains(t, store.deleted, imageURL)
}

func TestUpdateMaterialItemReplacesImage(t *testing.T) {
	oldURL := "https://bucket.s3.test.amazonaws.com/projects/p1/material/1-old.jpg"
	materialRepo := newFakeMaterialRepo(&models.Material{
		ID:        "m1",
		ProjectID: "p1",
		Materials: []models.MaterialItem{{ID: "i1", Name: "Laminate", ImageLink: &oldURL}},
	})
	store := newFakeStore()
	svc := NewMaterialService(materialRepo, newFakeProjectRepo(testProject("p1")), store)

	material, err := svc.UpdateMaterialItem(context.Background(), "p1", "i1", UpdateMaterialItemRequest{
		Name:  strPtr("Laminate matte"),
		Color: strPtr("Ash grey"),
		Image: testUpload("laminate v2.jpg"),
	})
	require.NoError(t, err)

	item := material.Materials[0]
	assert.Equal(t, "Laminate matte", item.Name)
	require.NotNil(t, item.Color)
	assert.Equal(t, "Ash grey", *item.Color)
	require.NotNil(t, item.ImageLink)
	assert.NotEqual(t, oldURL, *item.ImageLink)
	assert.Contains(t, store.deleted, oldURL)
}

func TestUpdateMaterialItemNotFound(t *testing.T) {
	materialRepo := newFakeMaterialRepo(&models.Material{
		ID:        "m1",
		ProjectID: "p1",
		Materials: []models.MaterialItem{{ID: "i1", Name: "Laminate"}},
	})
	svc := NewMaterialService(materialRepo, newFakeProjectRepo(testProject("p1")), newFakeStore())

	_, err := svc.UpdateMaterialItem(context.Background(), "p1", "missing", UpdateMaterialItemRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrMaterialItemNotFound)

	_, err = svc.UpdateMaterialItem(context.Background(), "other-project", "i1", UpdateMaterialItemRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestRemoveMaterialItem(t *testing.T) {
	imageURL := "https://bucket.s3.test.amazonaws.com/projects/p1/material/1-a.jpg"
	materialRepo := newFakeMaterialRepo(&models.Material{
		ID:        "m1",
		ProjectID: "p1",
		Materials: []models.MaterialItem{
			{ID: "i1", Name: "Laminate", ImageLink: &imageURL},
			{ID: "i2", Name: "Handle"},
		},
	})
	store := newFakeStore()
	svc := NewMaterialService(materialRepo, newFakeProjectRepo(testProject("p1")), store)

	material, err := svc.RemoveMaterialItem(context.Background(), "p1", "i1")
	require.NoError(t, err)

	require.Len(t, material.Materials, 1)
	assert.Equal(t, "i2", material.Materials[0].ID)
	assert.Contains(t, store.deleted, imageURL)
}

func TestDeleteMaterialsReportsFileFailures(t *testing.T) {
	okURL := "https://x/a.jpg"
	badURL := "https://x/b.jpg"
	materialRepo := newFakeMaterialRepo(&models.Material{
		ID:        "m1",
		ProjectID: "p1",
		Materials: []models.MaterialItem{
			{ID: "i1", Name: "Laminate", ImageLink: &okURL},
			{ID: "i2", Name: "Handle", ImageLink: &badURL},
		},
	})
	store := newFakeStore()
	store.failDeletes[badURL] = true
	svc := NewMaterialService(materialRepo, newFakeProjectRepo(testProject("p1")), store)

	result, err := svc.DeleteMaterials(context.Background(), "p1")
	require.NoError(t, err)

	require.Len(t, result.FileResults, 2)
	outcomes := map[string]bool{}
	for _, res := range result.FileResults {
		outcomes[res.URL] = res.OK
	}
	assert.True(t, outcomes[okURL])
	assert.False(t, outcomes[badURL])

	_, err = svc.GetMaterialsByProjectID(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

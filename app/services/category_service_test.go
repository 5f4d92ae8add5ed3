package services

import (
	"testing"

	"orderdesk/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndFindCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	resp := svc.Add(testCtx, models.CategoryDto{Name: "Hardware", Color: "#c0392b"})
	require.Equal(t, StatusSuccess, resp.Status)
	require.NotZero(t, resp.CreatedID)

	dto, err := svc.Find(testCtx, resp.CreatedID)
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "Hardware", dto.Name)
	assert.Equal(t, "#c0392b", dto.Color)
}

func TestFindCategoryAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	dto, err := svc.Find(testCtx, 999)
	require.NoError(t, err)
	assert.Nil(t, dto)
}

func TestUpdateCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	category := seedCategory(t, db, "Hardware", "#c0392b")

	resp := svc.Update(testCtx, category.ID, models.CategoryDto{ID: category.ID, Name: "Lighting", Color: "#f39c12"})
	require.Equal(t, StatusSuccess, resp.Status)

	dto, err := svc.Find(testCtx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "Lighting", dto.Name)
	assert.Equal(t, "#f39c12", dto.Color)
}

func TestUpdateCategoryIDMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	category := seedCategory(t, db, "Hardware", "#c0392b")

	resp := svc.Update(testCtx, category.ID, models.CategoryDto{ID: category.ID + 1, Name: "Other", Color: "#fff"})
	require.Equal(t, StatusBadRequest, resp.Status)

	// Nothing was written.
	dto, err := svc.Find(testCtx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hardware", dto.Name)
}

func TestUpdateAndDeleteCategoryNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	resp := svc.Update(testCtx, 42, models.CategoryDto{ID: 42, Name: "Ghost", Color: "#000"})
	assert.Equal(t, StatusNotFound, resp.Status)

	resp = svc.Delete(testCtx, 42)
	assert.Equal(t, StatusNotFound, resp.Status)
}

func TestLinkCategoryToProductIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	category := seedCategory(t, db, "Hardware", "#c0392b")
	product := seedProduct(t, db, "Widget", "W-1", "9.99")

	require.Equal(t, StatusSuccess, svc.LinkToProduct(testCtx, category.ID, product.ID).Status)
	require.Equal(t, StatusSuccess, svc.LinkToProduct(testCtx, category.ID, product.ID).Status)

	assert.EqualValues(t, 1, countRows(t, db, &models.ProductCategory{}))

	dtos, err := svc.ListForProduct(testCtx, product.ID)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, category.ID, dtos[0].ID)
}

func TestLinkCategoryToProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	category := seedCategory(t, db, "Hardware", "#c0392b")

	resp := svc.LinkToProduct(testCtx, category.ID, 999)
	assert.Equal(t, StatusNotFound, resp.Status)
	assert.EqualValues(t, 0, countRows(t, db, &models.ProductCategory{}))
}

func TestUnlinkCategoryFromProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	category := seedCategory(t, db, "Hardware", "#c0392b")
	product := seedProduct(t, db, "Widget", "W-1", "9.99")

	require.Equal(t, StatusSuccess, svc.LinkToProduct(testCtx, category.ID, product.ID).Status)

	resp := svc.UnlinkFromProduct(testCtx, category.ID, product.ID)
	require.Equal(t, StatusSuccess, resp.Status)

	dtos, err := svc.ListForProduct(testCtx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, dtos)
}

func TestUnlinkAbsentPairIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	category := seedCategory(t, db, "Hardware", "#c0392b")
	product := seedProduct(t, db, "Widget", "W-1", "9.99")

	// The pair was never linked; unlinking converges to the same state.
	resp := svc.UnlinkFromProduct(testCtx, category.ID, product.ID)
	assert.Equal(t, StatusSuccess, resp.Status)
}

func TestListCategoriesForUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	dtos, err := svc.ListForProduct(testCtx, 12345)
	require.NoError(t, err)
	assert.Empty(t, dtos)
}

func TestDeleteCategoryClearsProductLinks(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	category := seedCategory(t, db, "Hardware", "#c0392b")
	product := seedProduct(t, db, "Widget", "W-1", "9.99")

	require.Equal(t, StatusSuccess, svc.LinkToProduct(testCtx, category.ID, product.ID).Status)
	require.Equal(t, StatusSuccess, svc.Delete(testCtx, category.ID).Status)

	assert.EqualValues(t, 0, countRows(t, db, &models.ProductCategory{}))

	dtos, err := svc.ListForProduct(testCtx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, dtos)
}

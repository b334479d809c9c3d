package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	models "gamevault/models/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPlatform(t *testing.T, db *gorm.DB, name string) models.Platform {
	t.Helper()
	platform := models.Platform{Name: name, Manufacturer: "Nintendo", ReleaseYear: 2017}
	require.NoError(t, db.Create(&platform).Error)
	return platform
}

func TestAddPlatform(t *testing.T) {
	r, db := setupTestRouter(t)
	cookies := loginAsAdmin(t, r)

	form := url.Values{
		"name":         {"Switch"},
		"manufacturer": {"Nintendo"},
		"release_year": {"2017"},
	}
	w, _ := doRequest(r, http.MethodPost, "/platforms/add", form, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/platforms", w.Header().Get("Location"))

	var platforms []models.Platform
	require.NoError(t, db.Find(&platforms).Error)
	require.Len(t, platforms, 1)
	assert.Equal(t, "Switch", platforms[0].Name)
	assert.Equal(t, "Nintendo", platforms[0].Manufacturer)
	assert.Equal(t, 2017, platforms[0].ReleaseYear)
}

func TestAddPlatformReleaseYearZero(t *testing.T) {
	r, db := setupTestRouter(t)
	cookies := loginAsAdmin(t, r)

	// Zero is a valid year value; only a missing year is rejected
	form := url.Values{
		"name":         {"Odyssey"},
		"manufacturer": {"Magnavox"},
		"release_year": {"0"},
	}
	w, _ := doRequest(r, http.MethodPost, "/platforms/add", form, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/platforms", w.Header().Get("Location"))

	var platforms []models.Platform
	require.NoError(t, db.Find(&platforms).Error)
	require.Len(t, platforms, 1)
	assert.Equal(t, 0, platforms[0].ReleaseYear)
}

func TestAddPlatformMissingFields(t *testing.T) {
	r, db := setupTestRouter(t)
	cookies := loginAsAdmin(t, r)

	form := url.Values{
		"name": {"Switch"},
	}
	w, _ := doRequest(r, http.MethodPost, "/platforms/add", form, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/platforms/add", w.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Platform{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditPlatformFullOverwrite(t *testing.T) {
	r, db := setupTestRouter(t)
	cookies := loginAsAdmin(t, r)
	platform := seedPlatform(t, db, "Switch")

	form := url.Values{
		"name":         {"Mega Drive"},
		"manufacturer": {"Sega"},
		"release_year": {"1988"},
	}
	w, _ := doRequest(r, http.MethodPost, "/platforms/edit/"+itoa(platform.ID), form, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/platforms", w.Header().Get("Location"))

	var updated models.Platform
	require.NoError(t, db.First(&updated, platform.ID).Error)
	assert.Equal(t, "Mega Drive", updated.Name)
	assert.Equal(t, "Sega", updated.Manufacturer)
	assert.Equal(t, 1988, updated.ReleaseYear)
}

func TestEditPlatformMissingID(t *testing.T) {
	r, db := setupTestRouter(t)
	cookies := loginAsAdmin(t, r)

	form := url.Values{
		"name":         {"Switch"},
		"manufacturer": {"Nintendo"},
		"release_year": {"2017"},
	}
	w, _ := doRequest(r, http.MethodPost, "/platforms/edit/999", form, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Platform{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeletePlatform(t *testing.T) {
	r, db := setupTestRouter(t)
	cookies := loginAsAdmin(t, r)
	platform := seedPlatform(t, db, "Switch")

	w, _ := doRequest(r, http.MethodPost, "/platforms/delete/"+itoa(platform.ID), nil, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/platforms", w.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Platform{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeletePlatformMissingID(t *testing.T) {
	r, _ := setupTestRouter(t)
	cookies := loginAsAdmin(t, r)

	w, _ := doRequest(r, http.MethodPost, "/platforms/delete/999", nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlatformList(t *testing.T) {
	r, db := setupTestRouter(t)
	cookies := loginAsAdmin(t, r)
	seedPlatform(t, db, "Switch")

	w, _ := doRequest(r, http.MethodGet, "/platforms", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Switch")
}

package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	pgconfig "gamevault/config/postgres"
	"gamevault/middleware"
	"gamevault/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestRouter wires the full application against an in-memory
// sqlite database: migrated schema, seeded admin, sessions and routes.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("SESSION_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, pgconfig.MigrateDatabase(db), "migrate schema")
	require.NoError(t, pgconfig.SeedAdminUser(db), "seed admin")

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	middleware.SetUpMiddleware(r)
	routes.SetupRoutes(r, db)
	return r, db
}

// itoa formats a row id for URLs and form values.
func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// doRequest performs a request carrying the given session cookies and
// returns the recorder plus the cookies to use for the next request
// (new Set-Cookie values replace old ones by name).
func doRequest(r *gin.Engine, method, target string, form url.Values, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	merged := map[string]*http.Cookie{}
	for _, ck := range cookies {
		merged[ck.Name] = ck
	}
	for _, ck := range w.Result().Cookies() {
		merged[ck.Name] = ck
	}
	next := make([]*http.Cookie, 0, len(merged))
	for _, ck := range merged {
		next = append(next, ck)
	}
	return w, next
}

// loginAsAdmin authenticates with the bootstrap credentials and
// returns the session cookies.
func loginAsAdmin(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	form := url.Values{
		"username": {pgconfig.DefaultAdminUsername},
		"password": {pgconfig.DefaultAdminPassword},
	}
	w, cookies := doRequest(r, http.MethodPost, "/login", form, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	return cookies
}

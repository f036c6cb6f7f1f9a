package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-manager/internal/resumes"
	"resume-manager/internal/shared/config"
	"resume-manager/internal/shared/server/middleware"
	"resume-manager/internal/shared/server/respond"
	"resume-manager/internal/users"
)

// RouterDeps carries everything the router needs; construction happens in
// bootstrap so the router stays free of wiring decisions.
type RouterDeps struct {
	Config  config.Config
	Auth    middleware.Authenticator
	Users   *users.Handler
	Resumes *resumes.Handler
}

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Resume Manager</title></head>
<body>
<h1>Resume Manager</h1>
<p>Register at <code>POST /api/v1/register</code>, log in at <code>POST /api/v1/login</code>,
then manage resumes under <code>/api/v1/resumes</code> with your bearer token.</p>
</body>
</html>`

var landingTemplate = template.Must(template.New("index").Parse(landingPage))

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.SetHTMLTemplate(landingTemplate)

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index", nil)
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	// Credential endpoints are the brute-force surface; they get their own
	// stricter bucket, keyed by client IP since there is no identity yet.
	public := api.Group("")
	public.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "CREDENTIALS",
		Rules: map[string]middleware.RateLimitRule{
			"CREDENTIALS": {Rate: 2, Burst: 20},
		},
	}))
	deps.Users.RegisterPublicRoutes(public)

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Auth))
	deps.Users.RegisterRoutes(protected)
	deps.Resumes.RegisterRoutes(protected)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

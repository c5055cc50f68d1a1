package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/atelier-works/portfolio-backend/internal/api/http"
	"github.com/atelier-works/portfolio-backend/internal/api/http/middleware"
	"github.com/atelier-works/portfolio-backend/internal/cache"
	contactshttp "github.com/atelier-works/portfolio-backend/internal/contacts/http"
	contactsrepo "github.com/atelier-works/portfolio-backend/internal/contacts/repository"
	contactssvc "github.com/atelier-works/portfolio-backend/internal/contacts/service"
	projectshttp "github.com/atelier-works/portfolio-backend/internal/projects/http"
	projectsrepo "github.com/atelier-works/portfolio-backend/internal/projects/repository"
	projectssvc "github.com/atelier-works/portfolio-backend/internal/projects/service"
	"github.com/atelier-works/portfolio-backend/internal/store"
)

type RouterDeps struct {
	ServiceName      string
	Version          string
	Store            store.Gateway
	Cache            *cache.Cache
	DatabaseURLSet   bool
	DatabaseNameSet  bool
	ContactRateRPS   float64
	ContactRateBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	// The site and the contact form are served from other origins.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	diagHandler := httpapi.NewDiagnosticsHandler(dep.Store, dep.DatabaseURLSet, dep.DatabaseNameSet)
	diagHandler.RegisterRoutes(r)

	projectRepo := projectsrepo.NewRepo(dep.Store)
	projectSvc := projectssvc.NewProjectService(projectRepo, dep.Cache)
	projectshttp.New(projectSvc).Register(r)

	contactRepo := contactsrepo.NewRepo(dep.Store)
	contactSvc := contactssvc.NewContactService(contactRepo)
	contactshttp.New(contactSvc).Register(r, middleware.RateLimit(dep.ContactRateRPS, dep.ContactRateBurst))

	return r
}

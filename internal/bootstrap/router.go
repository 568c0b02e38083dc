package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	httpapi "github.com/sftwrlab/hwlab-backend/internal/api/http"
	"github.com/sftwrlab/hwlab-backend/internal/api/http/middleware"
	projectshttp "github.com/sftwrlab/hwlab-backend/internal/projects/http"
	projectsrepo "github.com/sftwrlab/hwlab-backend/internal/projects/repository"
	resourceshttp "github.com/sftwrlab/hwlab-backend/internal/resources/http"
	resourcesrepo "github.com/sftwrlab/hwlab-backend/internal/resources/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	DB          *mongo.Database
	Pinger      httpapi.Pinger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.Config{
		AllowOrigins:     dep.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		AllowCredentials: true,
	}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Pinger)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	projectRepo := projectsrepo.NewProjectRepository(dep.DB)
	resourceRepo := resourcesrepo.NewResourceRepository(dep.DB)

	projectsGroup := api.Group("/projects")
	projectshttp.New(projectRepo, resourceRepo).Register(projectsGroup)
	resourceshttp.New(resourceRepo).RegisterProjectRoutes(projectsGroup)

	return r
}

package api

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/ginx"
)

//go:embed static/*
var embeddedWeb embed.FS

func newFrontendFS() http.FileSystem {
	sub, err := fs.Sub(embeddedWeb, "static")
	if err != nil {
		return http.FS(embeddedWeb)
	}
	return http.FS(sub)
}

// serveFile 从 fsys 中返回 name，不存在或是目录时返回 false
func serveFile(fsys http.FileSystem, name string, w http.ResponseWriter, r *http.Request) bool {
	f, err := fsys.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

// serveFrontend 返回内嵌页面，未知路径回退到 index.html
func serveFrontend(frontendFS http.FileSystem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestPath := strings.TrimPrefix(r.URL.Path, "/")
		if requestPath == "" {
			requestPath = "index.html"
		}
		if serveFile(frontendFS, requestPath, w, r) {
			return
		}
		if serveFile(frontendFS, "index.html", w, r) {
			return
		}
		http.NotFound(w, r)
	}
}

// mountFrontend 注册内嵌前端，/api 下的未知路径返回 JSON 404
func (a *API) mountFrontend() {
	a.frontendFS = newFrontendFS()
	a.engine.StaticFS("/static", a.frontendFS)

	a.engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			notFound := apierror.NewErrorWithStatus("NotFound", "The requested API does not exist.", http.StatusNotFound)
			c.JSON(http.StatusNotFound, apierror.NewErrorResponse(ginx.GetRequestID(c), notFound))
			return
		}
		serveFrontend(a.frontendFS).ServeHTTP(c.Writer, c.Request)
	})
}
